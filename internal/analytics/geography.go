package analytics

import (
	"sort"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/go-gota/gota/dataframe"
)

// CustomersByState counts distinct customers per state, largest first.
// Only states present in the filtered frame appear; merging against the
// full state list is left to the consumer.
func CustomersByState(df dataframe.DataFrame) []StateCustomers {
	result := []StateCustomers{}
	if df.Nrow() == 0 {
		return result
	}

	states := df.Col(dataset.ColCustomerState).Records()
	customers := df.Col(dataset.ColCustomerID).Records()

	customersByState := make(map[string]map[string]bool)
	order := []string{}
	for i, state := range states {
		set, exists := customersByState[state]
		if !exists {
			set = make(map[string]bool)
			customersByState[state] = set
			order = append(order, state)
		}
		set[customers[i]] = true
	}

	for _, state := range order {
		result = append(result, StateCustomers{State: state, CustomerCount: len(customersByState[state])})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CustomerCount > result[j].CustomerCount
	})

	return result
}

package analytics

import (
	"math"
	"sort"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/go-gota/gota/dataframe"
)

// PaymentTypeSplit sums order-level payment value per payment type, largest
// share first. Orders are deduplicated to their first row before summing so
// multi-item orders are not double counted. Payment types absent from the
// filtered frame do not appear.
func PaymentTypeSplit(df dataframe.DataFrame) []PaymentShare {
	result := []PaymentShare{}
	if df.Nrow() == 0 {
		return result
	}

	orders := firstPerOrder(df)
	types := orders.Col(dataset.ColPaymentType).Records()
	values := orders.Col(dataset.ColPaymentValue).Float()

	totals := make(map[string]float64)
	order := []string{}
	for i, paymentType := range types {
		if _, exists := totals[paymentType]; !exists {
			order = append(order, paymentType)
			totals[paymentType] = 0
		}
		if !math.IsNaN(values[i]) {
			totals[paymentType] += values[i]
		}
	}

	for _, paymentType := range order {
		result = append(result, PaymentShare{PaymentType: paymentType, TotalValue: totals[paymentType]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalValue > result[j].TotalValue
	})

	return result
}

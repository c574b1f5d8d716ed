package analytics

import (
	"math"
	"sort"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Delivery outcome labels. The day offset is signed: zero or positive means
// the order arrived on or before the estimate.
const (
	DeliveryOnTime = "on time"
	DeliveryLate   = "late"
)

// DeliveryStatusCounts classifies delivered orders as on time or late by
// their signed day offset and counts distinct orders per outcome, largest
// group first. Orders that are not delivered, or delivered orders whose
// offset is still unresolved, are excluded.
func DeliveryStatusCounts(df dataframe.DataFrame) []DeliveryStatusCount {
	result := []DeliveryStatusCount{}
	if df.Nrow() == 0 {
		return result
	}

	delivered := df.Filter(dataframe.F{
		Colname:    dataset.ColOrderStatus,
		Comparator: series.Eq,
		Comparando: dataset.StatusDelivered,
	})
	if delivered.Nrow() == 0 {
		return result
	}

	orderIDs := delivered.Col(dataset.ColOrderID).Records()
	offsets := delivered.Col(dataset.ColOnTimeDelivery).Float()

	ordersByStatus := map[string]map[string]bool{
		DeliveryOnTime: {},
		DeliveryLate:   {},
	}
	for i, offset := range offsets {
		if math.IsNaN(offset) {
			continue
		}
		status := DeliveryOnTime
		if offset < 0 {
			status = DeliveryLate
		}
		ordersByStatus[status][orderIDs[i]] = true
	}

	for _, status := range []string{DeliveryOnTime, DeliveryLate} {
		if len(ordersByStatus[status]) > 0 {
			result = append(result, DeliveryStatusCount{Status: status, OrderCount: len(ordersByStatus[status])})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].OrderCount > result[j].OrderCount
	})

	return result
}

package analytics

import (
	"math"
	"time"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"
)

type rfmAccum struct {
	lastPurchase time.Time
	orders       map[string]bool
	monetary     float64
}

// RFMTable scores each customer in the filtered frame. Recency is measured
// in whole days from the customer's latest purchase date to the latest
// purchase date in the whole frame, so it is always >= 0 and the most
// recent buyer scores 0. Frequency is the distinct order count. Monetary
// sums payment_value over every line-item row of the customer, matching
// the upstream dashboard; unlike the revenue aggregations it does not
// deduplicate per order, so multi-item orders weigh heavier here.
func RFMTable(df dataframe.DataFrame) []RFMRow {
	result := []RFMRow{}
	if df.Nrow() == 0 {
		return result
	}

	customers := df.Col(dataset.ColCustomerID).Records()
	orders := df.Col(dataset.ColOrderID).Records()
	purchases := df.Col(dataset.ColPurchaseTime).Records()
	payments := df.Col(dataset.ColPaymentValue).Float()

	accums := make(map[string]*rfmAccum)
	order := []string{}
	var recent time.Time
	for i, customer := range customers {
		acc, exists := accums[customer]
		if !exists {
			acc = &rfmAccum{orders: make(map[string]bool)}
			accums[customer] = acc
			order = append(order, customer)
		}
		acc.orders[orders[i]] = true
		if !math.IsNaN(payments[i]) {
			acc.monetary += payments[i]
		}
		if t, ok := dataset.ParseTimestamp(purchases[i]); ok {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			if day.After(acc.lastPurchase) {
				acc.lastPurchase = day
			}
			if day.After(recent) {
				recent = day
			}
		}
	}

	for _, customer := range order {
		acc := accums[customer]
		recency := 0
		if !acc.lastPurchase.IsZero() {
			recency = int(recent.Sub(acc.lastPurchase).Hours() / 24)
		}
		result = append(result, RFMRow{
			CustomerID: customer,
			Recency:    recency,
			Frequency:  len(acc.orders),
			Monetary:   acc.monetary,
		})
	}

	return result
}

// RFMSummary computes the headline recency/frequency/monetary means the
// dashboard shows next to the RFM table.
func RFMSummary(rows []RFMRow) RFMAverages {
	if len(rows) == 0 {
		return RFMAverages{}
	}

	recency := make([]float64, len(rows))
	frequency := make([]float64, len(rows))
	monetary := make([]float64, len(rows))
	for i, row := range rows {
		recency[i] = float64(row.Recency)
		frequency[i] = float64(row.Frequency)
		monetary[i] = row.Monetary
	}

	return RFMAverages{
		Recency:   stat.Mean(recency, nil),
		Frequency: stat.Mean(frequency, nil),
		Monetary:  stat.Mean(monetary, nil),
	}
}

package analytics

import (
	"math"
	"sort"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"
)

// firstPerOrder reduces the frame to one row per order_id, keeping the
// first occurrence. payment_value is attached per order but repeated on
// every line item, so any revenue sum has to go through this first.
func firstPerOrder(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	seen := make(map[string]bool)
	indexes := make([]int, 0, df.Nrow())
	for i, id := range df.Col(dataset.ColOrderID).Records() {
		if seen[id] {
			continue
		}
		seen[id] = true
		indexes = append(indexes, i)
	}

	return df.Subset(indexes)
}

type ordersAccum struct {
	orderCount int
	revenue    float64
	reviews    []float64
}

// OrdersOverTime buckets the filtered frame into calendar periods of the
// given granularity, one bucket per period that has at least one approved
// order: distinct order count plus summed order-level payment value, and
// for the daily granularity the mean review score. Periods with no orders
// are omitted rather than zero-filled. Rows without an approval timestamp
// are excluded.
func OrdersOverTime(df dataframe.DataFrame, g Granularity) []OrdersBucket {
	result := []OrdersBucket{}
	if df.Nrow() == 0 {
		return result
	}

	orders := firstPerOrder(df)
	approved := orders.Col(dataset.ColApprovedAt).Records()
	payments := orders.Col(dataset.ColPaymentValue).Float()
	reviews := orders.Col(dataset.ColReviewScore).Float()

	buckets := make(map[string]*ordersAccum)
	periods := []string{}
	for i, raw := range approved {
		t, ok := dataset.ParseTimestamp(raw)
		if !ok {
			continue
		}
		period := t.Format(g.periodFormat())
		acc, exists := buckets[period]
		if !exists {
			acc = &ordersAccum{}
			buckets[period] = acc
			periods = append(periods, period)
		}
		acc.orderCount++
		if !math.IsNaN(payments[i]) {
			acc.revenue += payments[i]
		}
		if !math.IsNaN(reviews[i]) {
			acc.reviews = append(acc.reviews, reviews[i])
		}
	}

	sort.Strings(periods)
	for _, period := range periods {
		acc := buckets[period]
		bucket := OrdersBucket{
			Period:     period,
			OrderCount: acc.orderCount,
			Revenue:    acc.revenue,
		}
		if g == Daily && len(acc.reviews) > 0 {
			bucket.MeanReviewScore = stat.Mean(acc.reviews, nil)
		}
		result = append(result, bucket)
	}

	return result
}

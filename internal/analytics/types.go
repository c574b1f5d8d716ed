package analytics

// Granularity selects the bucket width for the time-series aggregation.
type Granularity int

const (
	Monthly Granularity = iota
	Daily
)

func (g Granularity) periodFormat() string {
	if g == Daily {
		return "2006-01-02"
	}
	return "2006-01"
}

// OrdersBucket is one calendar period of the orders time series. The mean
// review score is only populated for the daily granularity.
type OrdersBucket struct {
	Period          string  `json:"period"`
	OrderCount      int     `json:"order_count"`
	Revenue         float64 `json:"revenue"`
	MeanReviewScore float64 `json:"mean_review_score,omitempty"`
}

// CategorySales is one product category with its line-item count.
type CategorySales struct {
	Category string `json:"product_category"`
	Quantity int    `json:"quantity"`
}

// PaymentShare is the summed order-level payment value of one payment type.
type PaymentShare struct {
	PaymentType string  `json:"payment_type"`
	TotalValue  float64 `json:"total_value"`
}

// DeliveryStatusCount is the distinct-order count of one delivery outcome.
type DeliveryStatusCount struct {
	Status     string `json:"status"`
	OrderCount int    `json:"order_count"`
}

// StateCustomers is the distinct-customer count of one state.
type StateCustomers struct {
	State         string `json:"customer_state"`
	CustomerCount int    `json:"customer_count"`
}

// RFMRow scores one customer by recency (days since their last purchase,
// relative to the most recent purchase in the filtered set), frequency
// (distinct orders) and monetary value.
type RFMRow struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
}

// RFMAverages are the headline means over an RFM table.
type RFMAverages struct {
	Recency   float64 `json:"avg_recency"`
	Frequency float64 `json:"avg_frequency"`
	Monetary  float64 `json:"avg_monetary"`
}

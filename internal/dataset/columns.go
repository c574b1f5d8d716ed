package dataset

import "github.com/go-gota/gota/series"

// Column names of the flat order-item table. Every row is one order line
// item; payment_value and payment_type are order-level and repeat across
// the line items of the same order.
const (
	ColOrderID         = "order_id"
	ColCustomerID      = "customer_id"
	ColProductCategory = "product_category"
	ColPurchaseTime    = "order_purchase_timestamp"
	ColApprovedAt      = "order_approved_at"
	ColOrderStatus     = "order_status"
	ColPaymentType     = "payment_type"
	ColPaymentValue    = "payment_value"
	ColCustomerState   = "customer_state"
	ColReviewScore     = "review_score"
	ColOnTimeDelivery  = "on_time_delivery"
)

// StatusDelivered is the order_status value the delivery classifier keys on.
const StatusDelivered = "delivered"

var requiredColumns = []string{
	ColOrderID,
	ColCustomerID,
	ColProductCategory,
	ColPurchaseTime,
	ColApprovedAt,
	ColOrderStatus,
	ColPaymentType,
	ColPaymentValue,
	ColCustomerState,
	ColReviewScore,
	ColOnTimeDelivery,
}

// ColumnTypes returns the explicit series types used when decoding the raw
// table, so that numeric columns with missing values come out as float NaN
// instead of being guessed per file.
func ColumnTypes() map[string]series.Type {
	return map[string]series.Type{
		ColOrderID:         series.String,
		ColCustomerID:      series.String,
		ColProductCategory: series.String,
		ColPurchaseTime:    series.String,
		ColApprovedAt:      series.String,
		ColOrderStatus:     series.String,
		ColPaymentType:     series.String,
		ColPaymentValue:    series.Float,
		ColCustomerState:   series.String,
		ColReviewScore:     series.Float,
		ColOnTimeDelivery:  series.Float,
	}
}

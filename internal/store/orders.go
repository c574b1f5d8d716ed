package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type OrdersStore struct {
	db *sqlx.DB
}

// OrderItemRow is one line item of the flat order_items table. Timestamps
// are selected as ISO strings and nullable fields coalesced (empty string
// for timestamps, NaN for the delivery offset) so the rows slot directly
// into the in-memory frame with the same null conventions as the CSV path.
type OrderItemRow struct {
	OrderID         string  `db:"order_id" dataframe:"order_id"`
	CustomerID      string  `db:"customer_id" dataframe:"customer_id"`
	ProductCategory string  `db:"product_category" dataframe:"product_category"`
	PurchaseTime    string  `db:"order_purchase_timestamp" dataframe:"order_purchase_timestamp"`
	ApprovedAt      string  `db:"order_approved_at" dataframe:"order_approved_at"`
	OrderStatus     string  `db:"order_status" dataframe:"order_status"`
	PaymentType     string  `db:"payment_type" dataframe:"payment_type"`
	PaymentValue    float64 `db:"payment_value" dataframe:"payment_value"`
	CustomerState   string  `db:"customer_state" dataframe:"customer_state"`
	ReviewScore     float64 `db:"review_score" dataframe:"review_score"`
	OnTimeDelivery  float64 `db:"on_time_delivery" dataframe:"on_time_delivery"`
}

func (os *OrdersStore) LoadOrderItems(ctx context.Context) ([]OrderItemRow, error) {

	query := `
	SELECT
		order_id,
		customer_id,
		product_category,
		to_char(order_purchase_timestamp, 'YYYY-MM-DD HH24:MI:SS') AS order_purchase_timestamp,
		COALESCE(to_char(order_approved_at, 'YYYY-MM-DD HH24:MI:SS'), '') AS order_approved_at,
		order_status,
		payment_type,
		payment_value,
		customer_state,
		COALESCE(review_score, 'NaN'::float8) AS review_score,
		COALESCE(on_time_delivery, 'NaN'::float8) AS on_time_delivery
	FROM order_items
	ORDER BY order_approved_at NULLS FIRST;
	`

	rows := []OrderItemRow{}
	if err := os.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load order items: %v", err)
	}

	return rows, nil
}

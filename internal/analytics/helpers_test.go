package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/go-gota/gota/dataframe"
)

const orderItemsHeader = "order_id,customer_id,product_category,order_purchase_timestamp,order_approved_at,order_status,payment_type,payment_value,customer_state,review_score,on_time_delivery"

func frameFromRows(t *testing.T, rows ...string) dataframe.DataFrame {
	t.Helper()
	csvData := orderItemsHeader + "\n" + strings.Join(rows, "\n") + "\n"
	df := dataframe.ReadCSV(strings.NewReader(csvData), dataframe.WithTypes(dataset.ColumnTypes()))
	if df.Error() != nil {
		t.Fatalf("failed to build test frame: %v", df.Error())
	}
	return df
}

// emptyFrame produces a zero-row frame with the full schema, the shape every
// aggregator receives when a filter matches nothing.
func emptyFrame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df := frameFromRows(t,
		"O1,C1,toys,2021-01-01 10:00:00,2021-01-01 11:00:00,delivered,credit_card,10.0,SP,5,1",
	)
	filter := Filter{StartDate: mustDate(t, "2030-01-01"), EndDate: mustDate(t, "2030-01-02")}
	filtered := filter.Apply(df)
	if filtered.Nrow() != 0 {
		t.Fatalf("expected empty frame, got %d rows", filtered.Nrow())
	}
	return filtered
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// multiItemOrders is the canonical scenario: 3 orders, each split across 2
// line items, payment_value 100 per order (repeated on both items).
func multiItemOrders(t *testing.T) dataframe.DataFrame {
	t.Helper()
	return frameFromRows(t,
		"O1,C1,toys,2021-01-05 09:00:00,2021-01-05 10:00:00,delivered,credit_card,100.0,SP,4,2",
		"O1,C1,books,2021-01-05 09:00:00,2021-01-05 10:00:00,delivered,credit_card,100.0,SP,4,2",
		"O2,C2,toys,2021-01-10 09:00:00,2021-01-10 10:00:00,delivered,credit_card,100.0,RJ,5,-1",
		"O2,C2,garden,2021-01-10 09:00:00,2021-01-10 10:00:00,delivered,credit_card,100.0,RJ,5,-1",
		"O3,C3,toys,2021-02-01 09:00:00,2021-02-01 10:00:00,delivered,boleto,100.0,SP,3,0",
		"O3,C3,books,2021-02-01 09:00:00,2021-02-01 10:00:00,delivered,boleto,100.0,SP,3,0",
	)
}

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filzarahma/commerce-insights/internal/logger"
)

const testCSV = `order_id,customer_id,product_category,order_purchase_timestamp,order_approved_at,order_status,payment_type,payment_value,customer_state,review_score,on_time_delivery
O2,C2,books,2021-06-01 09:00:00,2021-06-01 10:00:00,delivered,boleto,55.5,RJ,4,-2
O1,C1,toys,2021-01-05 09:00:00,2021-01-05 10:00:00,delivered,credit_card,100.0,SP,5,1
O3,C3,toys,2021-03-01 09:00:00,,created,credit_card,20.0,SP,3,
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "order_items.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, testCSV)

	ds, err := LoadCSV(path, EncodingUTF8, logger.New(logger.LevelError))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if ds.Rows() != 3 {
		t.Errorf("expected 3 rows, got %d", ds.Rows())
	}

	// Bounds come from approval timestamps; the unapproved O3 row is
	// skipped by the bounds scan.
	minDate, maxDate := ds.Bounds()
	if minDate.Format("2006-01-02") != "2021-01-05" {
		t.Errorf("minDate: expected 2021-01-05, got %s", minDate.Format("2006-01-02"))
	}
	if maxDate.Format("2006-01-02") != "2021-06-01" {
		t.Errorf("maxDate: expected 2021-06-01, got %s", maxDate.Format("2006-01-02"))
	}

	// Frame is sorted by approval timestamp on load.
	first := ds.Frame().Col(ColOrderID).Records()
	if first[len(first)-1] != "O2" {
		t.Errorf("expected O2 (latest approval) last after sorting, got %v", first)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "order_id,customer_id\nO1,C1\n")

	if _, err := LoadCSV(path, EncodingUTF8, logger.New(logger.LevelError)); err == nil {
		t.Fatal("expected an error for a table missing required columns")
	}
}

func TestLoadCSVUnsupportedEncoding(t *testing.T) {
	path := writeTempCSV(t, testCSV)

	if _, err := LoadCSV(path, "utf-16", logger.New(logger.LevelError)); err == nil {
		t.Fatal("expected an error for an unsupported encoding")
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), EncodingUTF8, logger.New(logger.LevelError)); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseTimestamp(t *testing.T) {
	if ts, ok := ParseTimestamp("2021-01-05 09:30:00"); !ok || ts.Hour() != 9 {
		t.Errorf("full timestamp parse failed: %v %v", ts, ok)
	}
	if ts, ok := ParseTimestamp("2021-01-05"); !ok || ts.Day() != 5 {
		t.Errorf("date-only parse failed: %v %v", ts, ok)
	}
	for _, raw := range []string{"", "NA", "NaN", "not-a-date"} {
		if _, ok := ParseTimestamp(raw); ok {
			t.Errorf("expected %q to report ok=false", raw)
		}
	}
}

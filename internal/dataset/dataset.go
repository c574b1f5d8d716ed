package dataset

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Dataset wraps the raw order-item table. It is built once at startup and
// read-only afterwards; every filter change recomputes from this frame.
type Dataset struct {
	df      dataframe.DataFrame
	minDate time.Time
	maxDate time.Time
}

// New validates the frame schema, sorts it by approval timestamp and
// captures the [min, max] approval-date bounds used to validate filters.
func New(df dataframe.DataFrame) (*Dataset, error) {
	if df.Error() != nil {
		return nil, fmt.Errorf("invalid order-item frame: %v", df.Error())
	}
	if err := checkRequiredColumns(df); err != nil {
		return nil, err
	}

	// ISO timestamps sort correctly as strings; rows with a missing
	// approval timestamp end up first and are skipped by the bounds scan.
	sorted := df.Arrange(dataframe.Sort(ColApprovedAt))
	if sorted.Error() != nil {
		return nil, fmt.Errorf("sorting by %s: %v", ColApprovedAt, sorted.Error())
	}

	minDate, maxDate := approvalBounds(sorted)

	return &Dataset{df: sorted, minDate: minDate, maxDate: maxDate}, nil
}

// FromStructs builds a Dataset from a slice of row structs, e.g. rows
// selected out of Postgres by the store layer.
func FromStructs(rows interface{}) (*Dataset, error) {
	df := dataframe.LoadStructs(rows)
	if df.Error() != nil {
		return nil, fmt.Errorf("loading rows into frame: %v", df.Error())
	}
	return New(df)
}

// Frame returns the full sorted order-item table.
func (d *Dataset) Frame() dataframe.DataFrame {
	return d.df
}

// Bounds returns the earliest and latest order approval dates present.
func (d *Dataset) Bounds() (minDate, maxDate time.Time) {
	return d.minDate, d.maxDate
}

// Rows returns the number of line-item rows loaded.
func (d *Dataset) Rows() int {
	return d.df.Nrow()
}

func checkRequiredColumns(df dataframe.DataFrame) error {
	names := df.Names()
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("order-item table is missing column %q", col)
		}
	}
	return nil
}

func approvalBounds(df dataframe.DataFrame) (minDate, maxDate time.Time) {
	for _, rec := range df.Col(ColApprovedAt).Records() {
		t, ok := ParseTimestamp(rec)
		if !ok {
			continue
		}
		if minDate.IsZero() || t.Before(minDate) {
			minDate = t
		}
		if t.After(maxDate) {
			maxDate = t
		}
	}
	return minDate, maxDate
}

// ParseTimestamp parses a raw timestamp cell. Missing values ("", NA, NaN)
// report ok=false rather than an error so callers can just skip the row.
func ParseTimestamp(raw string) (time.Time, bool) {
	switch raw {
	case "", "NA", "NaN", "<nil>":
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02 15:04:05", raw)
	if err == nil {
		return t, true
	}
	t, err = time.Parse("2006-01-02", raw)
	if err == nil {
		return t, true
	}
	return time.Time{}, false
}

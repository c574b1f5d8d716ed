package analytics

import (
	"fmt"
	"time"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Filter is the set of parameters a dashboard interaction carries. It is
// passed explicitly into every aggregation instead of living in shared
// state. Empty Categories/States mean "no restriction".
type Filter struct {
	StartDate  time.Time
	EndDate    time.Time
	Categories []string
	States     []string
}

// Validation outcome codes for a filter's date range.
const (
	ValidationInvertedRange = "inverted_range"
	ValidationOutOfRange    = "out_of_range"
)

// ValidationError describes why a filter was rejected. The API layer
// surfaces it to the user instead of silently keeping the previous filter.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the date range against the dataset bounds. Both bounds
// are inclusive; a start after the end, or a range entirely outside
// [minDate, maxDate], is rejected with a typed error.
func (f Filter) Validate(minDate, maxDate time.Time) *ValidationError {
	if f.StartDate.After(f.EndDate) {
		return &ValidationError{
			Code:    ValidationInvertedRange,
			Message: fmt.Sprintf("start date %s is after end date %s", f.StartDate.Format("2006-01-02"), f.EndDate.Format("2006-01-02")),
		}
	}
	if f.EndDate.Before(truncateToDay(minDate)) || f.StartDate.After(maxDate) {
		return &ValidationError{
			Code: ValidationOutOfRange,
			Message: fmt.Sprintf("date range [%s, %s] is outside the dataset bounds [%s, %s]",
				f.StartDate.Format("2006-01-02"), f.EndDate.Format("2006-01-02"),
				minDate.Format("2006-01-02"), maxDate.Format("2006-01-02")),
		}
	}
	return nil
}

// Apply restricts the order-item frame to the filter. Category and state
// restrictions use frame filters; the date window is an inclusive scan over
// the approval timestamp. Rows without an approval timestamp never match.
func (f Filter) Apply(df dataframe.DataFrame) dataframe.DataFrame {
	result := df

	if len(f.Categories) > 0 {
		result = result.Filter(dataframe.F{
			Colname:    dataset.ColProductCategory,
			Comparator: series.In,
			Comparando: f.Categories,
		})
	}
	if len(f.States) > 0 && result.Nrow() > 0 {
		result = result.Filter(dataframe.F{
			Colname:    dataset.ColCustomerState,
			Comparator: series.In,
			Comparando: f.States,
		})
	}
	if result.Nrow() == 0 {
		return result
	}

	// End bound is inclusive on the calendar day, so compare against the
	// first instant of the following day.
	endExclusive := truncateToDay(f.EndDate).AddDate(0, 0, 1)
	start := truncateToDay(f.StartDate)

	indexes := make([]int, 0, result.Nrow())
	for i, rec := range result.Col(dataset.ColApprovedAt).Records() {
		t, ok := dataset.ParseTimestamp(rec)
		if !ok {
			continue
		}
		if !t.Before(start) && t.Before(endExclusive) {
			indexes = append(indexes, i)
		}
	}

	return result.Subset(indexes)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

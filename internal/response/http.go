package response

// AppliedFilter echoes back the filter parameters a summary was computed
// with, so the presentation layer can label its charts.
type AppliedFilter struct {
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Categories []string `json:"categories,omitempty"`
	States     []string `json:"states,omitempty"`
}

type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Filter  *AppliedFilter `json:"filter,omitempty"`
	Data    T              `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

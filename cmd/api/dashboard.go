package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/filzarahma/commerce-insights/internal/analytics"
	"github.com/filzarahma/commerce-insights/internal/response"
	"github.com/go-gota/gota/dataframe"
)

const defaultRankingSlice = 5

type OrdersSummaryResponse = response.APIResponse[[]analytics.OrdersBucket]
type CategoryRankingResponse = response.APIResponse[CategoryRankingData]
type PaymentSplitResponse = response.APIResponse[[]analytics.PaymentShare]
type DeliveryStatusResponse = response.APIResponse[[]analytics.DeliveryStatusCount]
type CustomersByStateResponse = response.APIResponse[[]analytics.StateCustomers]
type RFMResponse = response.APIResponse[RFMData]
type OverviewResponse = response.APIResponse[DashboardOverview]

type CategoryRankingData struct {
	Ranking []analytics.CategorySales `json:"ranking"`
	Best    []analytics.CategorySales `json:"best,omitempty"`
	Worst   []analytics.CategorySales `json:"worst,omitempty"`
}

type RFMData struct {
	Averages analytics.RFMAverages `json:"averages"`
	Rows     []analytics.RFMRow    `json:"rows"`
}

// DashboardOverview is the single-payload shape the dashboard page renders:
// headline metrics plus all six summary tables.
type DashboardOverview struct {
	TotalOrders      int                             `json:"total_orders"`
	TotalRevenue     float64                         `json:"total_revenue"`
	MonthlyOrders    []analytics.OrdersBucket        `json:"monthly_orders"`
	BestCategories   []analytics.CategorySales       `json:"best_categories"`
	WorstCategories  []analytics.CategorySales       `json:"worst_categories"`
	PaymentSplit     []analytics.PaymentShare        `json:"payment_split"`
	DeliveryStatus   []analytics.DeliveryStatusCount `json:"delivery_status"`
	CustomersByState []analytics.StateCustomers      `json:"customers_by_state"`
	RFM              analytics.RFMAverages           `json:"rfm"`
}

// filteredFrame parses and validates the filter parameters of a dashboard
// request, then applies them to the dataset. Invalid parameters are written
// as a 400 response and reported via ok=false.
func (app *application) filteredFrame(w http.ResponseWriter, r *http.Request) (dataframe.DataFrame, analytics.Filter, bool) {
	minDate, maxDate := app.dataset.Bounds()

	filter := analytics.Filter{StartDate: minDate, EndDate: maxDate}

	var err error
	if startParam := r.URL.Query().Get("start_date"); startParam != "" {
		if filter.StartDate, err = parseTime(startParam); err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid start_date %q, expected YYYY-MM-DD", startParam))
			return dataframe.DataFrame{}, filter, false
		}
	}
	if endParam := r.URL.Query().Get("end_date"); endParam != "" {
		if filter.EndDate, err = parseTime(endParam); err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid end_date %q, expected YYYY-MM-DD", endParam))
			return dataframe.DataFrame{}, filter, false
		}
	}
	filter.Categories = splitListParam(r.URL.Query().Get("categories"))
	filter.States = splitListParam(r.URL.Query().Get("states"))

	if verr := filter.Validate(minDate, maxDate); verr != nil {
		app.logger.Warn(component, "Rejected filter: code=%s detail=%s", verr.Code, verr.Message)
		writeJSONValidationError(w, verr)
		return dataframe.DataFrame{}, filter, false
	}

	frame := filter.Apply(app.dataset.Frame())
	app.logger.Debug(component, "Filter applied: start=%s end=%s categories=%d states=%d rows=%d",
		filter.StartDate.Format("2006-01-02"), filter.EndDate.Format("2006-01-02"),
		len(filter.Categories), len(filter.States), frame.Nrow())

	return frame, filter, true
}

func (app *application) handleGetMonthlyOrders(w http.ResponseWriter, r *http.Request) {
	app.respondOrders(w, r, analytics.Monthly, "Monthly orders summary computed")
}

func (app *application) handleGetDailyOrders(w http.ResponseWriter, r *http.Request) {
	app.respondOrders(w, r, analytics.Daily, "Daily orders summary computed")
}

func (app *application) respondOrders(w http.ResponseWriter, r *http.Request, g analytics.Granularity, message string) {
	frame, filter, ok := app.filteredFrame(w, r)
	if !ok {
		return
	}

	resp := &OrdersSummaryResponse{
		Success: true,
		Message: message,
		Filter:  appliedFilter(filter),
		Data:    analytics.OrdersOverTime(frame, g),
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetCategoryRanking(w http.ResponseWriter, r *http.Request) {
	frame, filter, ok := app.filteredFrame(w, r)
	if !ok {
		return
	}

	topN, err := parseSliceParam(r.URL.Query().Get("top"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid top parameter: "+err.Error())
		return
	}
	bottomN, err := parseSliceParam(r.URL.Query().Get("bottom"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid bottom parameter: "+err.Error())
		return
	}

	ranking := analytics.CategoryRanking(frame)
	resp := &CategoryRankingResponse{
		Success: true,
		Message: "Category sales ranking computed",
		Filter:  appliedFilter(filter),
		Data: CategoryRankingData{
			Ranking: ranking,
			Best:    analytics.TopCategories(ranking, topN),
			Worst:   analytics.BottomCategories(ranking, bottomN),
		},
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetPaymentSplit(w http.ResponseWriter, r *http.Request) {
	frame, filter, ok := app.filteredFrame(w, r)
	if !ok {
		return
	}

	resp := &PaymentSplitResponse{
		Success: true,
		Message: "Payment type split computed",
		Filter:  appliedFilter(filter),
		Data:    analytics.PaymentTypeSplit(frame),
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	frame, filter, ok := app.filteredFrame(w, r)
	if !ok {
		return
	}

	resp := &DeliveryStatusResponse{
		Success: true,
		Message: "Delivery status classification computed",
		Filter:  appliedFilter(filter),
		Data:    analytics.DeliveryStatusCounts(frame),
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetCustomersByState(w http.ResponseWriter, r *http.Request) {
	frame, filter, ok := app.filteredFrame(w, r)
	if !ok {
		return
	}

	resp := &CustomersByStateResponse{
		Success: true,
		Message: "Customer geography computed",
		Filter:  appliedFilter(filter),
		Data:    analytics.CustomersByState(frame),
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetRFM(w http.ResponseWriter, r *http.Request) {
	frame, filter, ok := app.filteredFrame(w, r)
	if !ok {
		return
	}

	rows := analytics.RFMTable(frame)
	resp := &RFMResponse{
		Success: true,
		Message: "RFM table computed",
		Filter:  appliedFilter(filter),
		Data: RFMData{
			Averages: analytics.RFMSummary(rows),
			Rows:     rows,
		},
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetOverview(w http.ResponseWriter, r *http.Request) {
	frame, filter, ok := app.filteredFrame(w, r)
	if !ok {
		return
	}

	monthly := analytics.OrdersOverTime(frame, analytics.Monthly)
	totalOrders := 0
	totalRevenue := 0.0
	for _, bucket := range monthly {
		totalOrders += bucket.OrderCount
		totalRevenue += bucket.Revenue
	}

	ranking := analytics.CategoryRanking(frame)

	resp := &OverviewResponse{
		Success: true,
		Message: "Dashboard overview computed",
		Filter:  appliedFilter(filter),
		Data: DashboardOverview{
			TotalOrders:      totalOrders,
			TotalRevenue:     totalRevenue,
			MonthlyOrders:    monthly,
			BestCategories:   analytics.TopCategories(ranking, defaultRankingSlice),
			WorstCategories:  analytics.BottomCategories(ranking, defaultRankingSlice),
			PaymentSplit:     analytics.PaymentTypeSplit(frame),
			DeliveryStatus:   analytics.DeliveryStatusCounts(frame),
			CustomersByState: analytics.CustomersByState(frame),
			RFM:              analytics.RFMSummary(analytics.RFMTable(frame)),
		},
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func appliedFilter(filter analytics.Filter) *response.AppliedFilter {
	return &response.AppliedFilter{
		StartDate:  filter.StartDate.Format("2006-01-02"),
		EndDate:    filter.EndDate.Format("2006-01-02"),
		Categories: filter.Categories,
		States:     filter.States,
	}
}

func splitListParam(param string) []string {
	if param == "" {
		return nil
	}
	values := []string{}
	for _, v := range strings.Split(param, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func parseSliceParam(param string) (int, error) {
	if param == "" {
		return defaultRankingSlice, nil
	}
	n, err := strconv.Atoi(param)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("expected a non-negative integer, got %q", param)
	}
	return n, nil
}

package main

import (
	"encoding/json"
	"net/http"

	"github.com/filzarahma/commerce-insights/internal/analytics"
	"github.com/filzarahma/commerce-insights/internal/response"
)

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &response.ErrorResponse{Error: message})
}

func writeJSONValidationError(w http.ResponseWriter, verr *analytics.ValidationError) error {
	return writeJSON(w, http.StatusBadRequest, &response.ErrorResponse{Error: verr.Message, Code: verr.Code})
}

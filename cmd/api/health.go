package main

import (
	"net/http"
	"strconv"
)

// @Summary		Health check
// @Description	returns the status of the service and the loaded dataset size
// @Tags			Health
// @Produce		json
// @Success		200	{object}	map[string]string
// @Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {

	data := map[string]string{
		"status":       "available",
		"version":      "0.0.1",
		"dataset_rows": strconv.Itoa(app.dataset.Rows()),
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

package main

import (
	"net/http"
	"time"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/filzarahma/commerce-insights/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type application struct {
	config  config
	dataset *dataset.Dataset
	logger  *logger.Logger
}

type config struct {
	addr string
	data dataConfig
	db   dbConfig
}

type dataConfig struct {
	source   string
	path     string
	encoding string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/overview", app.handleGetOverview)
			r.Route("/orders", func(r chi.Router) {
				r.Get("/monthly", app.handleGetMonthlyOrders)
				r.Get("/daily", app.handleGetDailyOrders)
			})
			r.Get("/products/ranking", app.handleGetCategoryRanking)
			r.Get("/payments/split", app.handleGetPaymentSplit)
			r.Get("/delivery/status", app.handleGetDeliveryStatus)
			r.Route("/customers", func(r chi.Router) {
				r.Get("/by-state", app.handleGetCustomersByState)
				r.Get("/rfm", app.handleGetRFM)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	app.logger.Info(component, "Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/VAT-Calculator-Backend/internal/api/middleware"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/config"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	calculatorService *service.CalculatorService,
	preferenceService *service.PreferenceService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/vat", func(r chi.Router) {
			calculatorHandler := handlers.NewCalculatorHandler(calculatorService)
			r.Get("/rates", calculatorHandler.Rates)
			r.Post("/calculate", calculatorHandler.Calculate)
			r.Post("/session", calculatorHandler.CreateSession)

			r.Route("/session/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", calculatorHandler.Session)
				r.Delete("/", calculatorHandler.DeleteSession)
				r.Put("/amount", calculatorHandler.UpdateAmount)
				r.Put("/rate", calculatorHandler.SelectRate)
				r.Put("/custom-rate", calculatorHandler.UpdateCustomRate)
				r.Put("/mode", calculatorHandler.UpdateMode)
				r.Post("/clear", calculatorHandler.Clear)
				r.Post("/copy", calculatorHandler.Copy)
			})
		})

		r.Route("/preferences", func(r chi.Router) {
			preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
			r.Get("/theme", preferenceHandler.Theme)
			r.Put("/theme", preferenceHandler.SetTheme)
			r.Post("/theme/toggle", preferenceHandler.ToggleTheme)
		})
	})

	return r
}

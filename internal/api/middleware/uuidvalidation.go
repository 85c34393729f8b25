// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/response"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/validation"
)

// ValidateUUIDMiddleware validates that the uuid URL parameter is present and is a valid UUID.
// Returns 400 Bad Request if the ID is missing or invalid, before any session lookup.
//
// Example usage in router:
//
//	r.Route("/session/{uuid}", func(r chi.Router) {
//	    r.Use(middleware.ValidateUUIDMiddleware)
//	    r.Get("/", handler.Session)
//	})
func ValidateUUIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		UUID := chi.URLParam(r, "uuid")

		if UUID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid UUID is required", "")
			return
		}

		if err := validation.ValidateUUID(UUID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

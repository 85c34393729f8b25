package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/request"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
)

// TestParseJSON tests the parseJSON helper function.
// This is an internal test (package handlers, not handlers_test) because
// parseJSON is unexported.
func TestParseJSON(t *testing.T) {
	t.Run("decodes known fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"value":"12.5"}`))

		got, err := parseJSON[request.TextInputRequest](req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.Value == nil || *got.Value != "12.5" {
			t.Errorf("Expected value 12.5, got %v", got.Value)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"value":"1","extra":true}`))

		if _, err := parseJSON[request.TextInputRequest](req); !errors.Is(err, apperrors.ErrInvalidRequestBody) {
			t.Errorf("Expected ErrInvalidRequestBody, got %v", err)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"value":`))

		if _, err := parseJSON[request.TextInputRequest](req); !errors.Is(err, apperrors.ErrInvalidRequestBody) {
			t.Errorf("Expected ErrInvalidRequestBody, got %v", err)
		}
	})

	t.Run("rejects oversized bodies", func(t *testing.T) {
		body := `{"value":"` + strings.Repeat("1", maxBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))

		if _, err := parseJSON[request.TextInputRequest](req); err == nil {
			t.Error("Expected error for oversized body")
		}
	})
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "session not found", err: apperrors.ErrSessionNotFound, want: http.StatusNotFound},
		{name: "unknown rate", err: apperrors.ErrUnknownRate, want: http.StatusBadRequest},
		{name: "unknown mode", err: apperrors.ErrUnknownMode, want: http.StatusBadRequest},
		{name: "invalid theme", err: apperrors.ErrInvalidTheme, want: http.StatusBadRequest},
		{name: "wrapped", err: fmt.Errorf("select: %w", apperrors.ErrUnknownRate), want: http.StatusBadRequest},
		{name: "anything else", err: apperrors.ErrFailedToSavePreference, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			respondServiceError(w, "failed", tt.err)

			if w.Code != tt.want {
				t.Errorf("Expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

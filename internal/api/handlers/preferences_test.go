package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/testutil"
)

func TestPreferenceHandler(t *testing.T) {
	setupHandler := func(t *testing.T) *PreferenceHandler {
		t.Helper()
		db := testutil.SetupTestDB(t)
		return NewPreferenceHandler(testutil.NewTestPreferenceService(t, db))
	}

	t.Run("defaults to light", func(t *testing.T) {
		handler := setupHandler(t)

		w := httptest.NewRecorder()
		handler.Theme(w, httptest.NewRequest(http.MethodGet, "/api/preferences/theme", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if resp := testutil.DecodeJSON[ThemeResponse](t, w); resp.Theme != "light" {
			t.Errorf("Expected light, got %s", resp.Theme)
		}
	})

	t.Run("set then read", func(t *testing.T) {
		handler := setupHandler(t)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/preferences/theme", nil,
			map[string]string{"theme": "dark"})
		w := httptest.NewRecorder()
		handler.SetTheme(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		w = httptest.NewRecorder()
		handler.Theme(w, httptest.NewRequest(http.MethodGet, "/api/preferences/theme", nil))
		if resp := testutil.DecodeJSON[ThemeResponse](t, w); resp.Theme != "dark" {
			t.Errorf("Expected dark, got %s", resp.Theme)
		}
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		handler := setupHandler(t)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/preferences/theme", nil,
			map[string]string{"theme": "blue"})
		w := httptest.NewRecorder()
		handler.SetTheme(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("toggle flips", func(t *testing.T) {
		handler := setupHandler(t)

		for _, want := range []string{"dark", "light", "dark"} {
			w := httptest.NewRecorder()
			handler.ToggleTheme(w, httptest.NewRequest(http.MethodPost, "/api/preferences/theme/toggle", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if resp := testutil.DecodeJSON[ThemeResponse](t, w); resp.Theme != want {
				t.Errorf("Expected %s, got %s", want, resp.Theme)
			}
		}
	})
}

package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	t.Run("sets content-type and status code", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, http.StatusOK, map[string]string{"message": "success"})

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", w.Header().Get("Content-Type"))
		}

		var got map[string]string
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if got["message"] != "success" {
			t.Errorf("Expected message 'success', got %q", got["message"])
		}
	})

	t.Run("no content writes no body", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, http.StatusNoContent, map[string]string{"ignored": "yes"})

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("Expected empty body, got %q", w.Body.String())
		}
	})

	t.Run("un-encodable data keeps status", func(t *testing.T) {
		w := httptest.NewRecorder()

		// Channels cannot be JSON encoded
		RespondJSON(w, http.StatusOK, map[string]any{"channel": make(chan int)})

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondError(w, http.StatusConflict, "nothing to copy", "no calculation")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}

	var got ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if got.Error != "nothing to copy" || got.Details != "no calculation" {
		t.Errorf("Unexpected error response %+v", got)
	}
}

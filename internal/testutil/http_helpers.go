package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// NewRequestWithURLParams creates an HTTP request with chi URL parameters.
// This helper simplifies testing chi handlers that use chi.URLParam() to extract path parameters.
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodGet,
//	    "/api/vat/session/123-456",
//	    map[string]string{"uuid": "123-456"},
//	)
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	return NewJSONRequestWithURLParams(nil, method, path, params, nil)
}

// NewJSONRequestWithURLParams is NewRequestWithURLParams with body encoded as JSON.
// A nil body sends no body. t may be nil when body is nil.
//
// Example:
//
//	req := testutil.NewJSONRequestWithURLParams(t,
//	    http.MethodPut,
//	    "/api/vat/session/123-456/amount",
//	    map[string]string{"uuid": "123-456"},
//	    map[string]string{"value": "100"},
//	)
func NewJSONRequestWithURLParams(t *testing.T, method, path string, params map[string]string, body any) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		t.Helper()
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	}

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// DecodeJSON decodes a recorded response body into T, failing the test on error.
func DecodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

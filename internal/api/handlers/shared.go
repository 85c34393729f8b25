package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/response"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
)

// maxBodyBytes bounds request bodies; every calculator request is a few short strings.
const maxBodyBytes = 1 << 16

// parseJSON decodes the request body into T, rejecting unknown fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	if r.Body == nil {
		return req, apperrors.ErrInvalidRequestBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %v", apperrors.ErrInvalidRequestBody, err)
	}
	return req, nil
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		response.RespondError(w, http.StatusNotFound, "calculator session not found", err.Error())
	case errors.Is(err, apperrors.ErrUnknownRate),
		errors.Is(err, apperrors.ErrUnknownMode),
		errors.Is(err, apperrors.ErrInvalidTheme),
		errors.Is(err, apperrors.ErrInvalidRequestBody):
		response.RespondError(w, http.StatusBadRequest, message, err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, message, err.Error())
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/request"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/response"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/service"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/session"
)

// CalculatorHandler handles HTTP requests for the VAT calculator.
// Each session endpoint is one input event of the calculator form and
// responds with the recomputed session state.
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler with the provided service dependency.
func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
	}
}

// AmountResponse is the session state after an amount edit.
// Accepted is false when the edit was rejected and the previous amount kept.
type AmountResponse struct {
	session.Snapshot
	Accepted bool `json:"accepted"`
}

// CopyResponse reports the outcome of a copy request.
type CopyResponse struct {
	Success      bool                 `json:"success"`
	Notification session.Notification `json:"notification"`
}

// Rates handles GET requests for the rate picker options.
//
// Endpoint: GET /api/vat/rates
// Response: 200 OK with array of RateOption
func (h *CalculatorHandler) Rates(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.calculatorService.RateOptions())
}

// Calculate handles POST requests for a one-shot calculation without a session.
// An invalid amount is not an HTTP error: the result carries the reason and a null calculation.
//
// Endpoint: POST /api/vat/calculate
// Request Body: CalculateRequest (amount, rateSelection, customRate, calculationType)
// Response: 200 OK with CalculationResult
// Error: 400 Bad Request for a malformed body, unknown rate selection or calculation type
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CalculateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.calculatorService.Calculate(service.CalculationRequest{
		Amount:        req.Amount,
		RateSelection: req.RateSelection,
		CustomRate:    req.CustomRate,
		Mode:          req.Mode,
	})
	if err != nil {
		respondServiceError(w, "failed to calculate", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// CreateSession handles POST requests to start a calculator session.
//
// Endpoint: POST /api/vat/session
// Response: 201 Created with Snapshot in its initial state
func (h *CalculatorHandler) CreateSession(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusCreated, h.calculatorService.CreateSession())
}

// Session handles GET requests for the current session state.
//
// Endpoint: GET /api/vat/session/{uuid}
// Response: 200 OK with Snapshot
// Error: 404 Not Found if the session does not exist or was evicted
func (h *CalculatorHandler) Session(w http.ResponseWriter, r *http.Request) {
	snap, err := h.calculatorService.GetSession(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "failed to retrieve session", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, snap)
}

// DeleteSession handles DELETE requests to discard a session.
//
// Endpoint: DELETE /api/vat/session/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the session does not exist
func (h *CalculatorHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.calculatorService.DeleteSession(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "failed to delete session", err)
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}

// UpdateAmount handles PUT requests carrying the amount field's raw text.
//
// Endpoint: PUT /api/vat/session/{uuid}/amount
// Request Body: TextInputRequest (value)
// Response: 200 OK with AmountResponse
// Error: 400 Bad Request if the body has no value
// Error: 404 Not Found if the session does not exist
func (h *CalculatorHandler) UpdateAmount(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TextInputRequest](r)
	if err != nil || req.Value == nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", "value is required")
		return
	}

	snap, accepted, err := h.calculatorService.UpdateAmount(chi.URLParam(r, "uuid"), *req.Value)
	if err != nil {
		respondServiceError(w, "failed to update amount", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, AmountResponse{Snapshot: snap, Accepted: accepted})
}

// SelectRate handles PUT requests changing the rate selection.
//
// Endpoint: PUT /api/vat/session/{uuid}/rate
// Request Body: RateSelectionRequest (selection: preset value or "custom")
// Response: 200 OK with Snapshot
// Error: 400 Bad Request for an unknown selection
// Error: 404 Not Found if the session does not exist
func (h *CalculatorHandler) SelectRate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RateSelectionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	snap, err := h.calculatorService.SelectRate(chi.URLParam(r, "uuid"), req.Selection)
	if err != nil {
		respondServiceError(w, "failed to select rate", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, snap)
}

// UpdateCustomRate handles PUT requests carrying the custom rate field's raw text.
//
// Endpoint: PUT /api/vat/session/{uuid}/custom-rate
// Request Body: TextInputRequest (value)
// Response: 200 OK with Snapshot
// Error: 404 Not Found if the session does not exist
func (h *CalculatorHandler) UpdateCustomRate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TextInputRequest](r)
	if err != nil || req.Value == nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", "value is required")
		return
	}

	snap, err := h.calculatorService.UpdateCustomRate(chi.URLParam(r, "uuid"), *req.Value)
	if err != nil {
		respondServiceError(w, "failed to update custom rate", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, snap)
}

// UpdateMode handles PUT requests switching between add and remove.
//
// Endpoint: PUT /api/vat/session/{uuid}/mode
// Request Body: ModeRequest (calculationType)
// Response: 200 OK with Snapshot
// Error: 400 Bad Request for an unknown calculation type
// Error: 404 Not Found if the session does not exist
func (h *CalculatorHandler) UpdateMode(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ModeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	snap, err := h.calculatorService.UpdateMode(chi.URLParam(r, "uuid"), req.Mode)
	if err != nil {
		respondServiceError(w, "failed to update calculation type", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, snap)
}

// Clear handles POST requests resetting the form.
//
// Endpoint: POST /api/vat/session/{uuid}/clear
// Response: 200 OK with Snapshot in its initial state
// Error: 404 Not Found if the session does not exist
func (h *CalculatorHandler) Clear(w http.ResponseWriter, r *http.Request) {
	snap, err := h.calculatorService.Clear(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "failed to clear session", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, snap)
}

// Copy handles POST requests to copy the final amount to the clipboard.
// A clipboard failure is a notification, not an HTTP error.
//
// Endpoint: POST /api/vat/session/{uuid}/copy
// Response: 200 OK with CopyResponse
// Error: 404 Not Found if the session does not exist
// Error: 409 Conflict if there is no calculation to copy
func (h *CalculatorHandler) Copy(w http.ResponseWriter, r *http.Request) {
	note, err := h.calculatorService.Copy(chi.URLParam(r, "uuid"))
	switch {
	case err == nil:
		response.RespondJSON(w, http.StatusOK, CopyResponse{Success: true, Notification: note})
	case errors.Is(err, apperrors.ErrNothingToCopy):
		response.RespondError(w, http.StatusConflict, "nothing to copy", err.Error())
	case errors.Is(err, apperrors.ErrSessionNotFound):
		respondServiceError(w, "failed to copy result", err)
	default:
		response.RespondJSON(w, http.StatusOK, CopyResponse{Success: false, Notification: note})
	}
}

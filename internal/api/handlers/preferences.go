package handlers

import (
	"net/http"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/request"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/response"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/service"
)

// PreferenceHandler handles presentation preference requests.
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// ThemeResponse represents the theme preference
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// Theme handles GET requests for the stored theme.
//
// Endpoint: GET /api/preferences/theme
// Response: 200 OK with ThemeResponse
func (h *PreferenceHandler) Theme(w http.ResponseWriter, _ *http.Request) {
	theme, err := h.preferenceService.GetTheme()
	if err != nil {
		respondServiceError(w, "failed to retrieve theme", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

// SetTheme handles PUT requests storing a theme.
//
// Endpoint: PUT /api/preferences/theme
// Request Body: ThemeRequest (theme: "light" or "dark")
// Response: 200 OK with ThemeResponse
// Error: 400 Bad Request for any other theme
func (h *PreferenceHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ThemeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	theme, err := h.preferenceService.SetTheme(req.Theme)
	if err != nil {
		respondServiceError(w, "failed to save theme", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

// ToggleTheme handles POST requests flipping between light and dark.
//
// Endpoint: POST /api/preferences/theme/toggle
// Response: 200 OK with ThemeResponse holding the new theme
func (h *PreferenceHandler) ToggleTheme(w http.ResponseWriter, _ *http.Request) {
	theme, err := h.preferenceService.ToggleTheme()
	if err != nil {
		respondServiceError(w, "failed to toggle theme", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

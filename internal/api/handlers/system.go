package handlers

import (
	"net/http"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/api/response"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	// Check database health
	if err := h.systemService.CheckHealth(); err != nil {
		resp := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
		response.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	// System is healthy
	resp := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	response.RespondJSON(w, http.StatusOK, resp)
}

// VersionInfoResponse represents the version check response containing application
// and schema version information and feature availability.
type VersionInfoResponse struct {
	AppVersion       string          `json:"app_version"`
	DbVersion        string          `json:"db_version"`
	Features         map[string]bool `json:"features"`
	MigrationNeeded  bool            `json:"migration_needed"`
	MigrationMessage *string         `json:"migration_message"`
}

// Version handles GET requests to retrieve version information and feature availability.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
// Error: 500 Internal Server Error if version check fails
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	version, err := h.systemService.CheckVersion(r.Context())
	if err != nil {
		errorResponse := map[string]string{
			"error":  "failed to get version information",
			"detail": err.Error(),
		}
		response.RespondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	resp := VersionInfoResponse{
		AppVersion:       version.AppVersion,
		DbVersion:        version.DbVersion,
		Features:         version.Features,
		MigrationNeeded:  version.MigrationNeeded,
		MigrationMessage: version.MigrationMessage,
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/database"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/model"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db               *sql.DB
	clipboardEnabled bool
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, clipboardEnabled bool) *SystemService {
	return &SystemService{
		db:               db,
		clipboardEnabled: clipboardEnabled,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version, the applied schema version
// and which optional features are switched on.
func (s *SystemService) CheckVersion(ctx context.Context) (model.VersionInfo, error) {
	dbVersion, err := database.SchemaVersion(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("failed to get version information: %w", err)
	}

	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  strconv.FormatInt(dbVersion, 10),
		Features: map[string]bool{
			"clipboard":   s.clipboardEnabled,
			"custom_rate": true,
			"theme":       true,
		},
	}

	pending, err := database.HasPendingMigrations(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("failed to get version information: %w", err)
	}
	if pending {
		msg := "database schema is behind the application; restart to apply migrations"
		info.MigrationNeeded = true
		info.MigrationMessage = &msg
	}

	return info, nil
}

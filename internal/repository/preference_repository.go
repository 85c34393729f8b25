package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/model"
)

// PreferenceRepository provides key-value access to the preference table.
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new PreferenceRepository with the provided database connection.
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetPreference retrieves the stored value for key.
// Returns apperrors.ErrPreferenceNotFound when nothing has been stored yet.
func (r *PreferenceRepository) GetPreference(key string) (model.Preference, error) {
	query := `
          SELECT "key", value, updated_at
          FROM preference
          WHERE "key" = ?
      `
	var p model.Preference
	var updatedAt string

	err := r.db.QueryRow(query, key).Scan(
		&p.Key,
		&p.Value,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Preference{}, apperrors.ErrPreferenceNotFound
	}
	if err != nil {
		return model.Preference{}, fmt.Errorf("failed to query preference: %w", err)
	}

	p.UpdatedAt, err = ParseTime(updatedAt)
	if err != nil {
		return model.Preference{}, err
	}

	return p, nil
}

// SetPreference inserts or replaces the value for key.
func (r *PreferenceRepository) SetPreference(key, value string) (model.Preference, error) {
	query := `
          INSERT INTO preference ("key", value, updated_at)
          VALUES (?, ?, ?)
          ON CONFLICT("key") DO UPDATE SET
              value = excluded.value,
              updated_at = excluded.updated_at
      `
	p := model.Preference{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}

	if _, err := r.db.Exec(query, p.Key, p.Value, p.UpdatedAt.Format(time.RFC3339)); err != nil {
		return model.Preference{}, fmt.Errorf("failed to upsert preference: %w", err)
	}

	return p, nil
}

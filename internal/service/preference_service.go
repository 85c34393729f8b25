package service

import (
	"errors"
	"fmt"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/model"
)

// PreferenceStore is key-value storage for presentation preferences.
// repository.PreferenceRepository is the SQLite implementation.
type PreferenceStore interface {
	GetPreference(key string) (model.Preference, error)
	SetPreference(key, value string) (model.Preference, error)
}

// PreferenceService handles the theme preference: read on init, written on toggle.
// It is independent of the calculator and never touches session state.
type PreferenceService struct {
	store        PreferenceStore
	defaultTheme string
}

// NewPreferenceService creates a new PreferenceService. An invalid
// defaultTheme falls back to light.
func NewPreferenceService(store PreferenceStore, defaultTheme string) *PreferenceService {
	if !validTheme(defaultTheme) {
		defaultTheme = model.ThemeLight
	}
	return &PreferenceService{
		store:        store,
		defaultTheme: defaultTheme,
	}
}

// GetTheme returns the stored theme, or the default when none is stored.
func (s *PreferenceService) GetTheme() (string, error) {
	p, err := s.store.GetPreference(model.PreferenceKeyTheme)
	if errors.Is(err, apperrors.ErrPreferenceNotFound) {
		return s.defaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrievePreference, err)
	}
	if !validTheme(p.Value) {
		return s.defaultTheme, nil
	}
	return p.Value, nil
}

// SetTheme stores theme. Returns apperrors.ErrInvalidTheme for anything but light or dark.
func (s *PreferenceService) SetTheme(theme string) (string, error) {
	if !validTheme(theme) {
		return "", apperrors.ErrInvalidTheme
	}
	p, err := s.store.SetPreference(model.PreferenceKeyTheme, theme)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrFailedToSavePreference, err)
	}
	return p.Value, nil
}

// ToggleTheme flips between light and dark and stores the result.
func (s *PreferenceService) ToggleTheme() (string, error) {
	current, err := s.GetTheme()
	if err != nil {
		return "", err
	}

	next := model.ThemeDark
	if current == model.ThemeDark {
		next = model.ThemeLight
	}
	return s.SetTheme(next)
}

func validTheme(theme string) bool {
	return theme == model.ThemeLight || theme == model.ThemeDark
}

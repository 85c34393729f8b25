package model

import "time"

// Preference is a stored presentation setting, such as the theme.
type Preference struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PreferenceKeyTheme is the preference key holding the theme.
const PreferenceKeyTheme = "theme"

package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Theme values recognized in the preference file.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences is the persisted UI preference file: a single JSON object in
// the per-user configuration directory. Only the theme key is recognized.
type Preferences struct {
	Theme string `json:"theme"`
}

// LoadPreferences reads the preference file from the default path. A
// missing or unreadable file yields the light theme.
func LoadPreferences() Preferences {
	return LoadPreferencesFrom(PreferencesPath())
}

// LoadPreferencesFrom reads the preference file from a specific path.
func LoadPreferencesFrom(path string) Preferences {
	prefs := Preferences{Theme: ThemeLight}

	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Preferences{Theme: ThemeLight}
	}

	if strings.ToLower(prefs.Theme) == ThemeDark {
		prefs.Theme = ThemeDark
	} else {
		prefs.Theme = ThemeLight
	}
	return prefs
}

// Save writes the preferences to the default path.
func (p Preferences) Save() error {
	return p.SaveTo(PreferencesPath())
}

// SaveTo writes the preferences to a specific path.
func (p Preferences) SaveTo(path string) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Dark reports whether the dark theme is selected.
func (p Preferences) Dark() bool {
	return p.Theme == ThemeDark
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPreferencesMissingFile(t *testing.T) {
	prefs := LoadPreferencesFrom(filepath.Join(t.TempDir(), "nope.json"))
	if prefs.Theme != ThemeLight {
		t.Errorf("missing file theme = %q, want light", prefs.Theme)
	}
	if prefs.Dark() {
		t.Error("Dark() = true for default preferences")
	}
}

func TestLoadPreferencesUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if prefs := LoadPreferencesFrom(path); prefs.Theme != ThemeLight {
		t.Errorf("unreadable file theme = %q, want light", prefs.Theme)
	}
}

func TestLoadPreferences(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"dark", `{"theme":"dark"}`, ThemeDark},
		{"light", `{"theme":"light"}`, ThemeLight},
		{"mixed case", `{"theme":"DARK"}`, ThemeDark},
		{"unknown value", `{"theme":"solarized"}`, ThemeLight},
		{"missing key", `{}`, ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "preferences.json")
			if err := os.WriteFile(path, []byte(tt.json), 0644); err != nil {
				t.Fatal(err)
			}

			if prefs := LoadPreferencesFrom(path); prefs.Theme != tt.want {
				t.Errorf("theme = %q, want %q", prefs.Theme, tt.want)
			}
		})
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	p := Preferences{Theme: ThemeDark}
	if err := p.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := LoadPreferencesFrom(path)
	if !loaded.Dark() {
		t.Errorf("round trip theme = %q, want dark", loaded.Theme)
	}
}

package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestConfigDirRespectsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG paths are linux-only")
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg-config", appName) {
		t.Errorf("ConfigDir() = %q", got)
	}
}

func TestDataDirRespectsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG paths are linux-only")
	}

	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir(); got != filepath.Join("/tmp/xdg-data", appName) {
		t.Errorf("DataDir() = %q", got)
	}
}

func TestPathsUnderAppDirs(t *testing.T) {
	if !strings.HasPrefix(ConfigPath(), ConfigDir()) {
		t.Errorf("ConfigPath() = %q not under ConfigDir()", ConfigPath())
	}
	if !strings.HasPrefix(PreferencesPath(), ConfigDir()) {
		t.Errorf("PreferencesPath() = %q not under ConfigDir()", PreferencesPath())
	}
	if !strings.HasPrefix(HistoryPath(), DataDir()) {
		t.Errorf("HistoryPath() = %q not under DataDir()", HistoryPath())
	}

	if filepath.Base(ConfigPath()) != "config.toml" {
		t.Errorf("config file name = %q", filepath.Base(ConfigPath()))
	}
	if filepath.Base(PreferencesPath()) != "preferences.json" {
		t.Errorf("preferences file name = %q", filepath.Base(PreferencesPath()))
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.API.BaseURL != "https://pacstall.dev" {
		t.Errorf("default base URL = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 15 {
		t.Errorf("default timeout = %d, want 15", cfg.API.TimeoutSeconds)
	}
	if cfg.Manager.Binary != "pacstall" {
		t.Errorf("default binary = %q", cfg.Manager.Binary)
	}
	if cfg.Manager.Sudo != "sudo" {
		t.Errorf("default sudo = %q", cfg.Manager.Sudo)
	}
	if !cfg.Output.Color {
		t.Error("expected Color to be true by default")
	}
	if !cfg.Output.Unicode {
		t.Error("expected Unicode to be true by default")
	}
	if cfg.General.AutoConfirm {
		t.Error("expected AutoConfirm to be false by default")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "http://localhost:8080"
timeout_seconds = 5

[manager]
binary = "fakestall"

[output]
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("base URL = %q", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", cfg.Timeout())
	}
	if cfg.Manager.Binary != "fakestall" {
		t.Errorf("binary = %q", cfg.Manager.Binary)
	}
	if !cfg.Output.Verbose {
		t.Error("verbose not applied")
	}
	// Untouched sections keep defaults.
	if cfg.Manager.Sudo != "sudo" {
		t.Errorf("sudo = %q, want default", cfg.Manager.Sudo)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is not toml ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should error on invalid TOML")
	}
}

func TestTimeoutFallback(t *testing.T) {
	cfg := Default()
	cfg.API.TimeoutSeconds = 0
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Timeout() with zero setting = %v, want 15s", cfg.Timeout())
	}
}

func TestShouldUseColorRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfg := Default()
	if cfg.ShouldUseColor() {
		t.Error("ShouldUseColor() must be false with NO_COLOR set")
	}
}

// Package config handles pacstore settings and persisted preferences.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the complete pacstore configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Manager ManagerConfig `toml:"manager"`
	Output  OutputConfig  `toml:"output"`
	General GeneralConfig `toml:"general"`
}

// APIConfig contains settings for the remote catalog API.
type APIConfig struct {
	// BaseURL is the root of the Pacstall web API.
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds bounds every catalog/detail fetch. Fetches that run
	// past it are treated as failed; there is no retry.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// ManagerConfig contains settings for the local package manager.
type ManagerConfig struct {
	// Binary is the package manager executable.
	Binary string `toml:"binary"`

	// Sudo is the privilege-escalation front-end.
	Sudo string `toml:"sudo"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// AutoConfirm skips confirmation prompts when true (like -y flag).
	AutoConfirm bool `toml:"auto_confirm"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://pacstall.dev",
			TimeoutSeconds: 15,
		},
		Manager: ManagerConfig{
			Binary: "pacstall",
			Sudo:   "sudo",
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
		General: GeneralConfig{
			AutoConfirm: false,
		},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Timeout returns the fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the config file kept in the user's home directory
const FileName = ".hslboard.yaml"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	StopCode      string        `yaml:"stop_code,omitempty"`
	ShowDelays    *bool         `yaml:"show_delays,omitempty"`
	ShowLongNames bool          `yaml:"show_long_names,omitempty"`
	Threshold     time.Duration `yaml:"threshold,omitempty" validate:"omitempty,min=1s,max=1h"`
	Interval      time.Duration `yaml:"interval,omitempty" validate:"omitempty,min=1s,max=10m"`
	Limit         int           `yaml:"limit,omitempty" validate:"gte=0,lte=100"`
	Endpoint      string        `yaml:"endpoint,omitempty" validate:"omitempty,url"`
	APIKey        string        `yaml:"api_key,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty" validate:"gte=0"`
	AccentColor   string        `yaml:"accent_color,omitempty"`
	LogFile       string        `yaml:"log_file,omitempty"`
}

// DelaysEnabled reports whether delays are shown; unset means enabled
func (c *AppConfig) DelaysEnabled() bool {
	return c.ShowDelays == nil || *c.ShowDelays
}

var validate = validator.New()

// Validate checks value ranges and formats
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config value for %s: %s", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// getConfigPath returns the absolute path to ~/.hslboard.yaml
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, FileName), nil
}

// Path returns where Load and Save keep the config
func Path() (string, error) {
	return getConfigPath()
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// may hold an API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the config file
	ConfigFileName = "config.yml"

	// DefaultHTTPTimeout is the request timeout in seconds
	DefaultHTTPTimeout = 10
)

// Config represents the settings file
type Config struct {
	Visibility  string `yaml:"visibility,omitempty"`
	HTTPTimeout int    `yaml:"http_timeout,omitempty"`
	Browser     string `yaml:"browser,omitempty"`
}

// ConfigDir returns the directory where config files are stored
func ConfigDir() (string, error) {
	if dir := os.Getenv("SNIPPER_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "snipper"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".config", "snipper"), nil
}

// LoadConfig loads the config file, returning defaults when it does not exist
func LoadConfig() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the config file
func SaveConfig(config *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0600); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}

	return nil
}

func defaultConfig() *Config {
	return &Config{
		Visibility:  DefaultVisibility,
		HTTPTimeout: DefaultHTTPTimeout,
	}
}

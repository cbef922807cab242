package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvAPIKey is the environment variable holding the Gemini API credential.
// It is supplied out-of-band: missing is fatal for CLI use and a warning
// for the UI shells, which start but fail every request.
const EnvAPIKey = "GEMINI_API_KEY"

// EnvModel optionally overrides the generation model name.
const EnvModel = "GEMINI_MODEL"

// Config holds application configuration.
type Config struct {
	APIKey     string `json:"api_key,omitempty"`
	Model      string `json:"model,omitempty"`
	UploadsDir string `json:"uploads_dir,omitempty"`
}

// DefaultConfig returns a new config with default values.
func DefaultConfig() *Config {
	return &Config{}
}

// GetConfigPath returns the path to the configuration file.
// On Windows: %APPDATA%/AIResumeTools/config.json
// On Unix: ~/.config/AIResumeTools/config.json
func GetConfigPath() (string, error) {
	var configDir string

	if os.Getenv("APPDATA") != "" {
		configDir = filepath.Join(os.Getenv("APPDATA"), "AIResumeTools")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "AIResumeTools")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads configuration from the default config path.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path. A missing file yields
// the default config.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the default config path.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyToEnv applies configuration values to environment variables so
// components reading the environment pick them up. An already-set variable
// wins over the config file.
func (c *Config) ApplyToEnv() {
	if c.APIKey != "" && os.Getenv(EnvAPIKey) == "" {
		os.Setenv(EnvAPIKey, c.APIKey)
	}
	if c.Model != "" && os.Getenv(EnvModel) == "" {
		os.Setenv(EnvModel, c.Model)
	}
}

// ResolveAPIKey returns the API credential from the environment, falling
// back to the config file value.
func (c *Config) ResolveAPIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	return c.APIKey
}

// ResolveModel returns the model name from the environment, falling back
// to the config file value. Empty means the client default.
func (c *Config) ResolveModel() string {
	if model := os.Getenv(EnvModel); model != "" {
		return model
	}
	return c.Model
}

// Package config loads the pushover CLI configuration. Values merge from
// four sources with increasing priority: built-in defaults, the global config
// file, a local config file, and PUSHOVER_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the CLI defaults so token and user key don't have to be
// passed on every invocation.
type Configuration struct {
	// Token is the default application API token.
	Token string `koanf:"token"`

	// User is the default user or group key.
	User string `koanf:"user"`

	// Device is an optional default device list (comma-separated).
	Device string `koanf:"device"`

	// Sound is an optional default notification sound.
	Sound string `koanf:"sound"`

	// Priority is an optional default priority name or number.
	Priority string `koanf:"priority"`

	// Timeout is the HTTP timeout in seconds.
	Timeout int `koanf:"timeout" validate:"min=1,max=600"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	if globalPath, err := GlobalPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("PUSHOVER_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// GlobalPath returns the path of the global config file,
// ~/.pushover/config.json.
func GlobalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pushover", "config.json"), nil
}

// Init writes a starter config file at path, creating the parent directory.
// The file is created with 0600 permissions since it holds API credentials.
// Fails if the file already exists.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	template := `{
  "token": "",
  "user": "",
  "device": "",
  "sound": "",
  "priority": "",
  "timeout": 30
}
`
	if err := os.WriteFile(path, []byte(template), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: PUSHOVER_TOKEN -> token
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PUSHOVER_"))
}

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Bauke/pushover"
	"github.com/Bauke/pushover/internal/config"
)

// apiURLEnv overrides the API endpoint, for tests and API-compatible proxies.
const apiURLEnv = "PUSHOVER_API_URL"

// loadConfig loads the effective configuration, honoring --config.
func loadConfig() (*config.Configuration, error) {
	return config.Load(cfgFile)
}

// apiClient builds a Pushover client from the configuration.
func apiClient(cfg *config.Configuration) *pushover.Client {
	client := pushover.NewClient(time.Duration(cfg.Timeout) * time.Second)
	if u := os.Getenv(apiURLEnv); u != "" {
		client.SetBaseURL(u)
	}
	return client
}

// resolveToken returns the application token from the flag or configuration.
func resolveToken(flagValue string, cfg *config.Configuration) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Token != "" {
		return cfg.Token, nil
	}
	return "", withExitCode(ExitInvalidArguments,
		fmt.Errorf("no application token: pass --token, set PUSHOVER_TOKEN, or run 'pushover config init'"))
}

// resolveUser returns the user key from the flag or configuration.
func resolveUser(flagValue string, cfg *config.Configuration) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.User != "" {
		return cfg.User, nil
	}
	return "", withExitCode(ExitInvalidArguments,
		fmt.Errorf("no user key: pass --user, set PUSHOVER_USER, or run 'pushover config init'"))
}

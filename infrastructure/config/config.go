package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIKey is the environment variable holding the YouTube Data API v3 key.
	EnvAPIKey = "YOUTUBE_API_KEY"
	// EnvFile is where SaveAPIKey persists the key.
	EnvFile = ".env"
)

// Config holds application configuration. The API key is loaded here once and
// handed explicitly to the provider; nothing reads the environment ambiently.
type Config struct {
	APIKey string
}

// Load reads the optional .env file and then the environment. A missing key
// is not an error: the TUI offers a setup view in that case.
func Load() Config {
	// .env is optional; system environment still applies without it.
	_ = godotenv.Load(EnvFile)

	return Config{
		APIKey: strings.TrimSpace(os.Getenv(EnvAPIKey)),
	}
}

// SaveAPIKey persists the key to .env and to the current process environment.
func SaveAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("api key cannot be empty")
	}

	line := fmt.Sprintf("%s=%s\n", EnvAPIKey, key)
	if err := os.WriteFile(EnvFile, []byte(line), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", EnvFile, err)
	}

	if err := os.Setenv(EnvAPIKey, key); err != nil {
		return fmt.Errorf("failed to set %s: %w", EnvAPIKey, err)
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnv is the environment variable holding the Jules API key.
const APIKeyEnv = "JULES_API_KEY"

// RepoEnv optionally overrides the repository of the schedules report.
const RepoEnv = "JULES_REPO"

// ErrMissingAPIKey is returned when no API key is available.
var ErrMissingAPIKey = errors.New("missing " + APIKeyEnv + " in .env or environment")

// LoadEnv loads a dotenv file into the process environment. Variables that
// are already set are left untouched. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// APIKey returns the API key from the environment.
func APIKey() (string, error) {
	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

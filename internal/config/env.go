package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
)

// Credential carries the API key for the remote transcription service.
// It is resolved once at startup and passed explicitly into the runner, so
// tests can inject a fake key or simulate its absence without touching
// process-wide environment state.
type Credential struct {
	APIKey string
}

// IsZero reports whether no key was configured.
func (c Credential) IsZero() bool {
	return c.APIKey == ""
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error, the key may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetCredential reads OPENAI_API_KEY from the environment. An empty result
// is allowed here, providers that require a key fail with an auth error at
// construction, before any network request.
func GetCredential() (Credential, error) {
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key != "" {
		if err := validateAPIKey(key); err != nil {
			return Credential{}, err
		}
	}
	return Credential{APIKey: key}, nil
}

// RequireCredential is the fail-fast variant used by operations that always
// need a key.
func RequireCredential() (Credential, error) {
	cred, err := GetCredential()
	if err != nil {
		return Credential{}, err
	}
	if cred.IsZero() {
		return Credential{}, api.NewAuthError("openai",
			"OPENAI_API_KEY is not set - add it to the environment or a .env file", nil)
	}
	return cred, nil
}

func validateAPIKey(key string) error {
	if !strings.HasPrefix(key, "sk-") {
		return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}
	if len(key) < 20 {
		return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
	}
	return nil
}

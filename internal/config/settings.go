package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings is the optional a2t.yaml configuration. It selects the default
// transcription provider and carries per-provider options.
type Settings struct {
	DefaultProvider string                      `yaml:"default_provider" validate:"required"`
	Providers       map[string]ProviderSettings `yaml:"providers" validate:"dive"`
}

// ProviderSettings holds the options a single provider understands. Unknown
// fields for a given provider are ignored by its creator.
type ProviderSettings struct {
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	BaseURL    string `yaml:"base_url" validate:"omitempty,url"`
	TimeoutSec int    `yaml:"timeout_sec" validate:"gte=0"`
}

var validate = validator.New()

// DefaultSettings returns the built-in configuration used when no a2t.yaml
// is found: the OpenAI whisper-1 backend with no language pinning.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultProvider: "openai",
		Providers: map[string]ProviderSettings{
			"openai": {Model: "whisper-1"},
		},
	}
}

// settingsSearchPaths lists the locations probed when no explicit path is
// given, in priority order.
func settingsSearchPaths() []string {
	paths := []string{"a2t.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "a2t", "a2t.yaml"))
	}
	return paths
}

// LoadSettings reads settings from path. An empty path triggers the search
// list, and a missing file falls back to DefaultSettings.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		for _, candidate := range settingsSearchPaths() {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return DefaultSettings(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return settings, nil
}

// Validate checks the structural constraints declared on the settings.
func (s *Settings) Validate() error {
	return validate.Struct(s)
}

// Provider returns the settings block for name, or a zero value when the
// file does not mention it.
func (s *Settings) Provider(name string) ProviderSettings {
	return s.Providers[name]
}

package whisper_server

import (
	"fmt"
	"time"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
	"github.com/xrx0xmx/my-ia-assistant/internal/app/api/provider"
)

func init() {
	provider.Register(providerName, newFromConfig)
}

// newFromConfig builds the whisper-server provider. No API key is required,
// the server is assumed to sit on a trusted network.
func newFromConfig(cfg provider.Config) (api.Transcriber, error) {
	if cfg.Settings.BaseURL == "" {
		return nil, fmt.Errorf("whisper_server requires base_url in the settings file")
	}
	return NewProvider(Config{
		BaseURL:  cfg.Settings.BaseURL,
		Timeout:  time.Duration(cfg.Settings.TimeoutSec) * time.Second,
		Language: cfg.Settings.Language,
		Prompt:   cfg.Settings.Prompt,
		Progress: cfg.Progress,
	}), nil
}

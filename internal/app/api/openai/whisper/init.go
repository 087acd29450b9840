package whisper

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
	"github.com/xrx0xmx/my-ia-assistant/internal/app/api/provider"
)

func init() {
	provider.Register(providerName, newFromConfig)
}

// newFromConfig builds the OpenAI transcriber. A missing key is an auth
// failure here, before any payload leaves the machine.
func newFromConfig(cfg provider.Config) (api.Transcriber, error) {
	if cfg.Credential.IsZero() {
		return nil, api.NewAuthError(providerName,
			"OPENAI_API_KEY is not set - add it to the environment or a .env file", nil)
	}

	clientConfig := openai.DefaultConfig(cfg.Credential.APIKey)
	if cfg.Settings.BaseURL != "" {
		clientConfig.BaseURL = cfg.Settings.BaseURL
	}
	if cfg.Settings.TimeoutSec > 0 {
		clientConfig.HTTPClient = &http.Client{
			Timeout: time.Duration(cfg.Settings.TimeoutSec) * time.Second,
		}
	}

	opts := Options{
		Model:    cfg.Settings.Model,
		Language: cfg.Settings.Language,
		Prompt:   cfg.Settings.Prompt,
		Progress: cfg.Progress,
	}
	return NewRemoteTranscriber(openai.NewClientWithConfig(clientConfig), opts), nil
}

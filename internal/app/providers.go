package app

import (
	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
	"github.com/xrx0xmx/my-ia-assistant/internal/app/api/provider"
	"github.com/xrx0xmx/my-ia-assistant/internal/config"
)

// ProvideTranscriber builds the named transcription backend from the
// settings file and the explicitly passed credential.
func ProvideTranscriber(providerName string, settings *config.Settings,
	cred config.Credential, progressFn api.ProgressFunc) (api.Transcriber, error) {
	return provider.Create(providerName, provider.Config{
		Settings:   settings.Provider(providerName),
		Credential: cred,
		Progress:   progressFn,
	})
}

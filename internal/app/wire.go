//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
	"github.com/xrx0xmx/my-ia-assistant/internal/app/runner"
	"github.com/xrx0xmx/my-ia-assistant/internal/config"
)

// InitializeRunner assembles a Runner for the named provider.
func InitializeRunner(providerName string, settings *config.Settings,
	cred config.Credential, progressFn api.ProgressFunc, logger *zap.Logger) (*runner.Runner, error) {
	wire.Build(ProvideTranscriber, runner.NewRunner)
	return nil, nil
}

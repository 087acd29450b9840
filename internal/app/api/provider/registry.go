package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
	"github.com/xrx0xmx/my-ia-assistant/internal/config"
)

// Config bundles everything a provider creator needs. Credentials arrive
// here explicitly instead of being read from the process environment inside
// the provider.
type Config struct {
	Settings   config.ProviderSettings
	Credential config.Credential
	Progress   api.ProgressFunc
}

// Creator builds a transcriber from its configuration. Creators must fail
// here, before any network traffic, when required configuration is missing.
type Creator func(cfg Config) (api.Transcriber, error)

var (
	mu       sync.RWMutex
	registry = make(map[string]Creator)
)

// Register adds a named provider creator. Provider packages call this from
// init, duplicate names indicate a programming error.
func Register(name string, creator Creator) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("provider %q registered twice", name))
	}
	registry[name] = creator
}

// Create instantiates the named provider.
func Create(name string, cfg Config) (api.Transcriber, error) {
	mu.RLock()
	creator, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (available: %v)", name, Registered())
	}
	return creator(cfg)
}

// Registered returns the sorted list of provider names.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

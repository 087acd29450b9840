package main

import (
	"fmt"
	"os"

	"github.com/xrx0xmx/my-ia-assistant/cmd/a2t/cmd"
	"github.com/xrx0xmx/my-ia-assistant/internal/config"

	// Import providers to register them
	_ "github.com/xrx0xmx/my-ia-assistant/internal/app/api/openai/whisper"
	_ "github.com/xrx0xmx/my-ia-assistant/internal/app/api/whisper_server"
)

func main() {
	// A broken .env file is worth a warning, a missing one is not. The key
	// may be set system-wide, and commands that need it fail on their own.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}

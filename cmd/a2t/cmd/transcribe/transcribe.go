package transcribe

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xrx0xmx/my-ia-assistant/internal/app"
	"github.com/xrx0xmx/my-ia-assistant/internal/app/audio"
	"github.com/xrx0xmx/my-ia-assistant/internal/app/common"
	"github.com/xrx0xmx/my-ia-assistant/internal/app/progress"
	"github.com/xrx0xmx/my-ia-assistant/internal/config"
)

var (
	outputPath   string
	language     string
	prompt       string
	providerName string
	configPath   string
	convertWav   bool
	noProgress   bool
)

func init() {
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"output file path (default: input path with extension replaced by .txt)")
	Cmd.Flags().StringVarP(&language, "language", "l", "",
		"language hint passed to the transcription service, example: es")
	Cmd.Flags().StringVarP(&prompt, "prompt", "p", "",
		"context prompt passed to the transcription service to guide the transcription")
	Cmd.Flags().StringVar(&providerName, "provider", "",
		"transcription backend to use (default: default_provider from the settings file)")
	Cmd.Flags().StringVar(&configPath, "config", "",
		"settings file path (default: ./a2t.yaml, then ~/.config/a2t/a2t.yaml)")
	Cmd.Flags().BoolVar(&convertWav, "wav", false,
		"convert the input to 16kHz WAV with ffmpeg before upload")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the upload progress bar")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [audio-file]",
	Short: "Transcribe a local audio file to a sibling .txt file",
	Long: `Transcribe a local audio file to a sibling .txt file

- The file is uploaded once to the configured transcription backend
- The returned text is written to <input base name>.txt, overwriting it
- With no argument, the path is requested interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger := common.MustNewLogger(verbose)
		defer logger.Sync()

		settings, err := config.LoadSettings(configPath)
		if err != nil {
			return err
		}

		name := providerName
		if name == "" {
			name = settings.DefaultProvider
		}
		applyFlagOverrides(settings, name)

		cred, err := config.GetCredential()
		if err != nil {
			return err
		}

		input := ""
		if len(args) > 0 {
			input = args[0]
		} else {
			input, err = promptForPath(cmd)
			if err != nil {
				return err
			}
		}

		if convertWav {
			converted, err := audio.ConvertTo16kHzWav(input)
			if err != nil {
				return err
			}
			input = converted
		}

		pm := progress.NewManager(progress.Config{
			Enabled: !noProgress && progress.ShouldShowProgress(false),
			Writer:  cmd.ErrOrStderr(),
		})
		defer pm.Wait()

		runner, err := app.InitializeRunner(name, settings, cred, pm.UploadReader, logger)
		if err != nil {
			return err
		}

		written, err := runner.Run(input, outputPath)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "transcript written to %s\n", written)
		return nil
	},
}

// applyFlagOverrides layers the command-line language and prompt over the
// provider's settings block.
func applyFlagOverrides(settings *config.Settings, name string) {
	if language == "" && prompt == "" {
		return
	}
	if settings.Providers == nil {
		settings.Providers = make(map[string]config.ProviderSettings)
	}
	ps := settings.Provider(name)
	if language != "" {
		ps.Language = language
	}
	if prompt != "" {
		ps.Prompt = prompt
	}
	settings.Providers[name] = ps
}

func promptForPath(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Path to audio file: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read audio file path: %w", err)
	}
	return strings.TrimSpace(line), nil
}

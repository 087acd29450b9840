package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xrx0xmx/my-ia-assistant/cmd/a2t/cmd/probe"
	"github.com/xrx0xmx/my-ia-assistant/cmd/a2t/cmd/transcribe"
	"github.com/xrx0xmx/my-ia-assistant/cmd/a2t/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "An application for converting local audio files to text",
	Long: `An application for converting local audio files to text.
- Point it at an audio file (mp3, wav, m4a and similar)
- The file is sent to a remote transcription service
- The transcript is written to a sibling .txt file`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(probe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}

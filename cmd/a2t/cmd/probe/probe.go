package probe

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/audio"
)

// Cmd represents the probe command
var Cmd = &cobra.Command{
	Use:   "probe <audio-file>",
	Short: "Print duration, size and codec info for an audio file",
	Long: `Print duration, size and codec info for an audio file

- Runs ffprobe over the file, ffprobe must be installed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		info, err := audio.Probe(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file:        %s\n", info.Path)
		fmt.Fprintf(out, "format:      %s\n", info.FormatName)
		fmt.Fprintf(out, "codec:       %s\n", info.CodecName)
		fmt.Fprintf(out, "sample rate: %d Hz\n", info.SampleRate)
		fmt.Fprintf(out, "channels:    %d\n", info.Channels)
		fmt.Fprintf(out, "duration:    %s\n", info.Duration)
		fmt.Fprintf(out, "size:        %d bytes\n", info.SizeBytes)
		return nil
	},
}

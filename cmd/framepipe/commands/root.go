package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "framepipe",
	Short: "Timeline editing and timestamp gap correction for frame streams",
	Long: `framepipe - an in-stream correction pipeline for timestamped frames.

The pipeline has two stages, both optional:
  editor   keeps frames inside configured [start-end) source-time segments
           and re-bases survivors onto a contiguous output timeline
  buffer   holds a bounded lookahead window and discards frames whose
           timestamps do not fit the stream's expected cadence

Streams are read from framepipe recordings (see 'framepipe run --help')
or from RFC 4571 framed RTP packet dumps.

Examples:
  # Keep seconds 0-2 and 5-7 of a recording
  framepipe run -c pipeline.yaml -i in.fpr -o out.fpr

  # Correct an RTP capture, reading from stdin
  framepipe run -c pipeline.yaml --rtp --clock-rate 90000 -i - -o out.fpr`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

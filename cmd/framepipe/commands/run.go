package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kinestream/framepipe/pkg/frameio"
	"github.com/kinestream/framepipe/pkg/media"
	"github.com/kinestream/framepipe/pkg/pipeline"
	"github.com/kinestream/framepipe/pkg/rtpsrc"
)

var (
	runConfigFile string
	runInput      string
	runOutput     string
	runRTP        bool
	runClockRate  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a pipeline over a frame stream",
	Long: `Run the configured pipeline over an input stream and write the
surviving frames as a framepipe recording.

The input is a framepipe recording by default. With --rtp the input is a
dump of RFC 4571 framed RTP packets and --clock-rate selects the RTP clock;
the stream description (kind, cadence) still comes from the config file.
'-' selects stdin or stdout.`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigFile, "config", "c", "", "pipeline YAML config file (required)")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "-", "input file ('-' for stdin)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "-", "output file ('-' for stdout)")
	runCmd.Flags().BoolVar(&runRTP, "rtp", false, "input is RFC 4571 framed RTP packets")
	runCmd.Flags().IntVar(&runClockRate, "clock-rate", 90000, "RTP clock rate in Hz (with --rtp)")
	runCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := pipeline.LoadConfig(runConfigFile)
	if err != nil {
		return err
	}

	in, err := openInput(runInput)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := buildSource(in)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, src)
	if err != nil {
		return err
	}

	out, err := openOutput(runOutput)
	if err != nil {
		return err
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	info, err := cfg.StreamInfo()
	if err != nil {
		return err
	}
	sink, err := frameio.NewWriter(bw, info)
	if err != nil {
		return err
	}

	stats, err := p.Run(sink)
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d frames in, %d out, %d dropped\n",
		stats.In, stats.Out, stats.Dropped())
	return nil
}

func buildSource(in io.Reader) (media.Source, error) {
	if runRTP {
		return rtpsrc.New(bufio.NewReader(in), runClockRate)
	}
	return frameio.NewReader(bufio.NewReader(in))
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

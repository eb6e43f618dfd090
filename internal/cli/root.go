// Package cli provides the command-line interface for hexgen.
package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/hexgen/internal/version"
)

// EnvOutputDir overrides the default dataset directory.
const EnvOutputDir = "HEXGEN_OUTPUT_DIR"

// defaultOutputDir is used when neither the flag nor EnvOutputDir is set.
const defaultOutputDir = "./images"

// rootOptions holds the global flags and what is built from them.
type rootOptions struct {
	verbose bool
	quiet   bool
	logger  hclog.Logger
}

// NewRootCmd builds the hexgen command tree. Every call returns fresh
// commands and flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "hexgen",
		Short: "A synthetic hexagon image dataset generator",
		Long: `hexgen draws randomly placed, randomly coloured hexagons on contrasting
backgrounds and writes them out as a labelled image dataset.

Each image is 255x255 pixels and holds between zero and a few hexagons.
The number of hexagons is the label, and images are stored by label:

  <output-dir>/<count>/<id>.png

Every image is reproducible from the run's base seed, which is logged at
the start of each run.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newVerifyCmd(opts))
	rootCmd.AddCommand(newPackCmd(opts))

	return rootCmd
}

// newLogger returns the root logger writing to w. Colour is only used when
// w is a terminal.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	color := hclog.ColorOff
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { // #nosec G115 -- file descriptors fit in int
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "hexgen",
		Output: w,
		Level:  level,
		Color:  color,
	})
}

// outputDirDefault returns the dataset directory used when -o is not given.
func outputDirDefault() string {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		return dir
	}
	return defaultOutputDir
}

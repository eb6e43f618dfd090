package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hexgen/internal/colour"
	"github.com/jmylchreest/hexgen/internal/dataset"
	"github.com/jmylchreest/hexgen/internal/seed"
	"github.com/jmylchreest/hexgen/internal/synth"
)

const (
	defaultRenderPath = "./images/generatedImage.png"
	previewCell       = 6
)

type renderOptions struct {
	output    string
	count     int
	seedValue int64
	preview   bool
	shapes    shapeFlags
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single image with a fixed number of hexagons",
		Long: `Render one 255x255 image holding exactly --shapes hexagons. The format
follows the output file extension (.png or .bmp).

Examples:
  # One hexagon, written to ./images/generatedImage.png
  hexgen render

  # Reproduce an image from a dataset manifest
  hexgen render --shapes 2 --seed 8342176109834 -o sample.png

  # Show the colours that were picked
  hexgen render --shapes 3 --background navy --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value := opts.seedValue
			cfg := seed.Config{Mode: seed.ModeRandom}
			if cmd.Flags().Changed("seed") {
				cfg = seed.Config{Mode: seed.ModeManual, Value: &value}
			}
			s, err := seed.Calculate(cfg)
			if err != nil {
				return err
			}
			return runRender(cmd, root, opts, s)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", defaultRenderPath, "output file")
	flags.IntVar(&opts.count, "shapes", 1, "number of hexagons")
	flags.Int64Var(&opts.seedValue, "seed", 0, "render seed, random when unset")
	flags.BoolVar(&opts.preview, "preview", false, "print the chosen colours as terminal swatches")
	opts.shapes.register(flags)

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, s int64) error {
	format, err := dataset.ParseFormat(filepath.Ext(opts.output))
	if err != nil {
		return fmt.Errorf("output %s: %w", opts.output, err)
	}

	gen, err := synth.NewGenerator(opts.shapes.config(), root.logger)
	if err != nil {
		return err
	}
	if err := gen.Config().CheckShapes(opts.count); err != nil {
		return fmt.Errorf("--shapes %d: %w", opts.count, err)
	}
	sample, err := gen.Render(s, opts.count)
	if err != nil {
		return err
	}

	w := dataset.NewWriter(filepath.Dir(opts.output), format)
	if err := w.Write(opts.output, sample.Canvas); err != nil {
		return err
	}

	root.logger.Debug("rendered image", "path", opts.output, "background", sample.Background)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s (%d shapes, seed %d)\n", opts.output, len(sample.Shapes), s)
	if opts.preview {
		fmt.Fprint(out, preview(sample))
	}
	return nil
}

// preview lists each colour of sample with its hex code, followed by a strip
// of numbered swatches in drawing order.
func preview(sample *synth.Sample) string {
	var b strings.Builder
	strip := colour.SwatchWithText(sample.Background, "bg", previewCell)
	b.WriteString(colour.FormatWithLabel(sample.Background, "background", 0) + "\n")
	for i, sh := range sample.Shapes {
		label := strconv.Itoa(i + 1)
		b.WriteString(colour.FormatWithLabel(sh.Colour, "shape "+label, 0) + "\n")
		strip += colour.SwatchWithText(sh.Colour, label, previewCell)
	}
	b.WriteString(strip + "\n")
	return b.String()
}

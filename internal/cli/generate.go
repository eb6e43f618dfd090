package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hexgen/internal/dataset"
	"github.com/jmylchreest/hexgen/internal/seed"
	"github.com/jmylchreest/hexgen/internal/synth"
)

type generateOptions struct {
	outputDir string
	count     int
	maxShapes int
	seedMode  seedModeValue
	seedValue int64
	seedSet   bool
	format    formatValue
	manifest  bool
	dryRun    bool
	shapes    shapeFlags
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{
		seedMode: seedModeValue(seed.ModeRandom),
		format:   formatValue(dataset.FormatPNG),
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a labelled dataset of hexagon images",
		Long: `Generate a dataset of 255x255 images, each holding a random number of
hexagons between zero and --max-shapes. Images are written to
<output-dir>/<count>/<id>.<format>. Larger edge lengths fit fewer
non-overlapping hexagons: --max-shapes above what the edge length can
always hold is rejected unless --allow-overlap is set.

The output directory defaults to $` + EnvOutputDir + ` when set, otherwise ./images.

Examples:
  # 1000 images with 0-3 hexagons each
  hexgen generate -n 1000

  # Reproducible run with a label manifest
  hexgen generate -n 500 --seed 42 --manifest -o ./data/train

  # Larger hexagons on a fixed black background, written as BMP
  hexgen generate -n 10 --edge-length 30 --background '#000000' --format bmp

  # See what would be written
  hexgen generate -n 5 --dry-run -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			if opts.seedSet && !cmd.Flags().Changed("seed-mode") {
				opts.seedMode = seedModeValue(seed.ModeManual)
			}
			return runGenerate(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.outputDir, "output-dir", "o", outputDirDefault(), "dataset directory")
	flags.IntVarP(&opts.count, "count", "n", 100, "number of images to generate")
	flags.IntVar(&opts.maxShapes, "max-shapes", synth.MaxShapes, "largest number of hexagons per image")
	flags.Var(&opts.seedMode, "seed-mode", "base seed mode (random, manual)")
	flags.Int64Var(&opts.seedValue, "seed", 0, "base seed (implies --seed-mode manual)")
	flags.Var(&opts.format, "format", "image format (png, bmp)")
	flags.BoolVar(&opts.manifest, "manifest", false, "append a record per image to "+dataset.ManifestName)
	flags.BoolVar(&opts.dryRun, "dry-run", false, "render images without writing anything")
	opts.shapes.register(flags)

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	logger := root.logger

	if opts.count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", opts.count)
	}
	if opts.maxShapes < 0 {
		return fmt.Errorf("--max-shapes must not be negative, got %d", opts.maxShapes)
	}

	cfg := seed.Config{Mode: seed.Mode(opts.seedMode)}
	if cfg.Mode == seed.ModeManual && opts.seedSet {
		cfg.Value = &opts.seedValue
	}
	base, err := seed.Calculate(cfg)
	if err != nil {
		return err
	}

	gen, err := synth.NewGenerator(opts.shapes.config(), logger)
	if err != nil {
		return err
	}
	if err := gen.Config().CheckShapes(opts.maxShapes); err != nil {
		return fmt.Errorf("--max-shapes %d: %w", opts.maxShapes, err)
	}

	tasks, err := dataset.Plan(opts.count, base, opts.maxShapes)
	if err != nil {
		return err
	}

	logger.Info("generating dataset", "dir", opts.outputDir, "count", opts.count, "seed", base, "format", string(opts.format))

	runner := &dataset.Runner{
		Generator: gen,
		Writer:    dataset.NewWriter(opts.outputDir, dataset.Format(opts.format)),
		Logger:    logger,
		Manifest:  opts.manifest,
		DryRun:    opts.dryRun,
	}
	summary, err := runner.Run(cmd.Context(), tasks)
	printSummary(cmd, opts, base, summary)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d images failed: %w", summary.Failed, len(tasks), summary.Err())
	}
	return nil
}

func printSummary(cmd *cobra.Command, opts *generateOptions, base int64, summary dataset.Summary) {
	out := cmd.OutOrStdout()

	verb := "Wrote"
	n := summary.Written
	if opts.dryRun {
		verb = "Rendered (dry run)"
		n = summary.Rendered
	}
	fmt.Fprintf(out, "%s %d images to %s (seed %d)\n", verb, n, opts.outputDir, base)

	counts := make([]int, 0, len(summary.ByShapes))
	for shapes := range summary.ByShapes {
		counts = append(counts, shapes)
	}
	sort.Ints(counts)

	tbl := newTable("SHAPES", "IMAGES")
	for _, shapes := range counts {
		tbl.addRow(strconv.Itoa(shapes), strconv.Itoa(summary.ByShapes[shapes]))
	}
	if summary.Failed > 0 {
		tbl.addRow("failed", strconv.Itoa(summary.Failed))
	}
	if len(tbl.rows) > 0 {
		fmt.Fprint(out, tbl.render())
	}
}

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hexgen/internal/compression"
	"github.com/jmylchreest/hexgen/internal/dataset"
	"github.com/jmylchreest/hexgen/internal/image"
)

func newVerifyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <dir|archive>",
		Short: "Check that every image holds as many hexagons as its label",
		Long: `Verify a dataset by counting the hexagons in every labelled image and
comparing the count with the image's directory name. Archives written by
'hexgen pack' are unpacked to a temporary directory first.

Datasets generated with --allow-overlap are expected to fail.

Examples:
  hexgen verify ./images
  hexgen verify dataset.tar.xz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, root, args[0])
		},
	}
}

// runVerify executes the verify command.
func runVerify(cmd *cobra.Command, root *rootOptions, target string) error {
	logger := root.logger
	dir := target

	if compression.IsArchive(target) {
		tmp, err := os.MkdirTemp("", "hexgen-verify-")
		if err != nil {
			return fmt.Errorf("failed to create temporary directory: %w", err)
		}
		defer os.RemoveAll(tmp)

		res, err := compression.Unpack(target, tmp)
		if err != nil {
			return err
		}
		logger.Debug("unpacked archive", "archive", target, "files", res.Files, "dir", tmp)
		dir = tmp
	}

	entries, err := image.ScanDataset(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no labelled images found in %s", target)
	}

	report := dataset.Verify(entries, image.NewFileLoader())
	out := cmd.OutOrStdout()
	if len(report.Mismatches) > 0 {
		tbl := newTable("PATH", "LABEL", "COUNTED", "ERROR")
		tbl.setMaxWidth(3, 60)
		for _, m := range report.Mismatches {
			counted, reason := strconv.Itoa(m.Counted), ""
			if m.Err != nil {
				counted, reason = "-", m.Err.Error()
			}
			tbl.addRow(m.Path, strconv.Itoa(m.Label), counted, reason)
		}
		fmt.Fprint(out, tbl.render())
	}
	fmt.Fprintf(out, "Checked %d images: %d passed, %d failed\n", report.Checked, report.Passed, len(report.Mismatches))

	if !report.OK() {
		return fmt.Errorf("%d of %d images do not match their label", len(report.Mismatches), report.Checked)
	}
	return nil
}

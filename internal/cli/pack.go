package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hexgen/internal/compression"
)

func newPackCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <dir> <archive>",
		Short: "Archive a dataset directory",
		Long: `Pack every file of a dataset directory into a single archive. The format
follows the archive extension: .tar.xz, .tar.gz or .zip. The archive is
read back after writing and must list every packed file.

Examples:
  hexgen pack ./images dataset.tar.xz
  hexgen pack ./images dataset.zip`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := compression.Pack(args[0], args[1])
			if err != nil {
				return err
			}
			root.logger.Debug("packed dataset", "dir", args[0], "archive", res.Path)

			entries, err := compression.List(res.Path)
			if err != nil {
				return fmt.Errorf("failed to read back %s: %w", res.Path, err)
			}
			if len(entries) != res.Files {
				return fmt.Errorf("archive %s lists %d entries, packed %d files", res.Path, len(entries), res.Files)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Packed %d files into %s (%d bytes)\n", res.Files, res.Path, res.Bytes)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ngbind/internal/convert"
	"github.com/pdiddy/ngbind/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert SOURCE",
	Short: "Decode .cng files in a directory tree to JPEGs",
	Long: `Convert walks SOURCE recursively, decodes every .cng file it finds, and
writes plain JPEGs. Without --dest the JPEGs land next to their sources;
with --dest the source layout is mirrored under the destination root.

Files whose output already exists are skipped, and a file that fails to
decode is reported and skipped without stopping the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("dest", "", "destination root for decoded JPEGs (default: alongside sources)")
	convertCmd.Flags().Bool("remove-originals", false, "delete each .cng after its JPEG is written")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	dest, _ := cmd.Flags().GetString("dest")
	if dest == "" {
		dest = viper.GetString("convert.dest")
	}
	remove, _ := cmd.Flags().GetBool("remove-originals")
	if !remove {
		remove = viper.GetBool("convert.remove_originals")
	}

	cfg := types.ConvertConfig{
		SourceDir:       args[0],
		DestDir:         dest,
		RemoveOriginals: remove,
	}

	result, err := convert.Tree(cfg, os.Stdout)
	if err != nil {
		return err
	}
	// Per-file failures are already reported in the run output; they do not
	// fail the command as long as the walk itself completed.
	if result.HasFailures() {
		fmt.Fprintf(os.Stderr, "%d file(s) failed conversion\n", result.Failed)
	}
	return nil
}

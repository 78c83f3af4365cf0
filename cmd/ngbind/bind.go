// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ngbind/internal/bind"
	"github.com/pdiddy/ngbind/internal/issue"
	"github.com/pdiddy/ngbind/pkg/types"
)

var bindCmd = &cobra.Command{
	Use:   "bind ROOT YYYYMM",
	Short: "Bind the pages of one issue into a PDF",
	Long: `Bind locates the directory of a single issue under ROOT by its YYYYMM
identifier, orders its page images, and assembles them into one PDF named
NGM_YYYYMM.pdf. Numbered magazine pages come first in page order; any other
images follow alphabetically.

With --dir the issue directory is given directly and ROOT/YYYYMM are not
needed. --manifest records the bound page sequence next to the PDF, and
--from-manifest rebuilds a PDF from such a record without re-scanning.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runBind,
}

func init() {
	bindCmd.Flags().String("dir", "", "exact issue directory (skips the ROOT/YYYYMM lookup)")
	bindCmd.Flags().String("output", "", "directory for the PDF (default: current directory)")
	bindCmd.Flags().Bool("manifest", false, "write a YAML manifest of the bound pages next to the PDF")
	bindCmd.Flags().String("from-manifest", "", "rebuild a PDF from a saved manifest file")

	rootCmd.AddCommand(bindCmd)
}

func runBind(cmd *cobra.Command, args []string) error {
	fromManifest, _ := cmd.Flags().GetString("from-manifest")
	if fromManifest != "" {
		return bindFromManifest(fromManifest, outputDir(cmd))
	}

	cfg, err := bindConfig(cmd, args)
	if err != nil {
		return err
	}

	issueDir := cfg.IssueDir
	if issueDir == "" {
		issueDir, err = issue.Locate(cfg.RootDir, cfg.Issue)
		if err != nil {
			return err
		}
	}

	pages, err := issue.Pages(issueDir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no images found in %s", issueDir)
	}

	outPath := filepath.Join(cfg.OutputDir, bind.OutputName(cfg.Issue))
	n, err := bind.Assemble(pages, outPath)
	if err != nil {
		return err
	}
	fmt.Printf("bound %d pages into %s\n", n, outPath)

	if cfg.WriteManifest {
		manifestPath := filepath.Join(cfg.OutputDir, bind.ManifestName(cfg.Issue))
		if err := bind.WriteManifest(manifestPath, cfg.Issue, issueDir, pages); err != nil {
			return err
		}
		fmt.Printf("wrote manifest %s\n", manifestPath)
	}
	return nil
}

// bindConfig resolves flags, config values, and positional arguments into a
// BindConfig.
func bindConfig(cmd *cobra.Command, args []string) (types.BindConfig, error) {
	cfg := types.BindConfig{OutputDir: outputDir(cmd)}
	cfg.WriteManifest, _ = cmd.Flags().GetBool("manifest")

	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		id, ok := issue.ExtractID(filepath.Base(dir))
		if !ok {
			return cfg, fmt.Errorf("cannot find a YYYYMM identifier in directory name %q", filepath.Base(dir))
		}
		cfg.IssueDir = dir
		cfg.Issue = id
		return cfg, nil
	}

	if len(args) != 2 {
		return cfg, fmt.Errorf("provide ROOT and YYYYMM, or use --dir")
	}
	if !issue.ValidID(args[1]) {
		return cfg, fmt.Errorf("invalid issue identifier %q: want YYYYMM", args[1])
	}
	cfg.RootDir = args[0]
	cfg.Issue = args[1]
	return cfg, nil
}

func bindFromManifest(path, outDir string) error {
	m, err := bind.ReadManifest(path)
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, bind.OutputName(m.Issue))
	n, err := bind.Assemble(m.PageList(), outPath)
	if err != nil {
		return err
	}
	fmt.Printf("bound %d pages into %s\n", n, outPath)
	return nil
}

func outputDir(cmd *cobra.Command) string {
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = viper.GetString("bind.output")
	}
	if out == "" {
		out = "."
	}
	return out
}

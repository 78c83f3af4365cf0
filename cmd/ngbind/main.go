// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ngbind CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ngbind CLI.
var rootCmd = &cobra.Command{
	Use:   "ngbind",
	Short: "Decode and bind The Complete National Geographic archive",
	Long: `ngbind works with the image archive of The Complete National Geographic
disc collection. The discs store every magazine page as a .cng file, a JPEG
obfuscated with a fixed byte mask. ngbind decodes those files back into
plain JPEGs and binds the pages of an issue into a single PDF.

Each stage is a subcommand: convert decodes .cng trees, bind assembles one
issue into a PDF.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ngbind.yaml or ~/.config/ngbind/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ngbind")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ngbind"))
		}
	}

	viper.SetEnvPrefix("NGBIND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

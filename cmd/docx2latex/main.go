// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docx2latex CLI.
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

// rootCmd is the base command for the docx2latex CLI.
var rootCmd = &cobra.Command{
	Use:   "docx2latex",
	Short: "Assemble DOCX manuscripts into journal-ready LaTeX",
	Long: `docx2latex turns a manuscript exported from a word processor into a
submission-ready LaTeX document. The pipeline converts DOCX to Markdown with
pandoc, splits the text into classified sections, resolves [@key] citation
markers against a BibTeX database, and merges the result into a journal
template.

Each pipeline surface is a subcommand: convert, assemble, compile, bib,
template, and runs. assemble runs the full conversion-to-document pipeline in
one step.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docx2latex.yaml or ~/.config/docx2latex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docx2latex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docx2latex"))
		}
	}

	viper.SetEnvPrefix("DOCX2LATEX")
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

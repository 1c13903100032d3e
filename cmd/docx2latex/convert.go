package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docx2latex/internal/toolchain"
	"github.com/pdiddy/docx2latex/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [manuscript.docx]",
	Short: "Convert a DOCX manuscript to Markdown with pandoc",
	Long: `Convert runs pandoc on a DOCX manuscript and writes the Markdown to
output/<manuscript>/content.md. Line wrapping is disabled so each paragraph
stays on one line for the section splitter.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	docxPath := args[0]
	outputDir, _ := cmd.Flags().GetString("output-dir")
	cfg := types.ConvertConfig{
		OutputDir:  outputDir,
		PandocPath: viper.GetString("pandoc_path"),
	}

	pandoc, err := toolchain.NewPandoc(cfg.PandocPath)
	if err != nil {
		return err
	}

	markdown, err := pandoc.Convert(docxPath)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(docxPath), filepath.Ext(docxPath))
	runDir := filepath.Join(cfg.OutputDir, stem)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	contentPath := filepath.Join(runDir, "content.md")
	if err := os.WriteFile(contentPath, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("writing converted markdown: %w", err)
	}

	fmt.Println("Wrote", contentPath)
	return nil
}

func init() {
	convertCmd.Flags().String("output-dir", "output", "base directory for converted manuscripts")

	rootCmd.AddCommand(convertCmd)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docx2latex/internal/toolchain"
	"github.com/pdiddy/docx2latex/pkg/types"
)

var compileCmd = &cobra.Command{
	Use:   "compile [article.tex]",
	Short: "Compile an assembled LaTeX document to PDF",
	Long: `Compile runs a LaTeX engine on an assembled document. The engine is
auto-detected (tectonic, then latexmk, then pdflatex) unless --engine names
one explicitly. Compilation runs in the document's directory so relative
template assets resolve.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	texPath := args[0]
	engineName, _ := cmd.Flags().GetString("engine")
	cfg := types.CompileConfig{Engine: engineName}

	compiler, err := toolchain.DetectCompiler(cfg.Engine)
	if err != nil {
		return err
	}

	dir := filepath.Dir(texPath)
	file := filepath.Base(texPath)
	fmt.Fprintf(os.Stderr, "compiling %s with %s\n", texPath, compiler.Name())
	if err := compiler.Compile(dir, file, os.Stderr); err != nil {
		return err
	}

	fmt.Println("Compiled", texPath)
	return nil
}

func init() {
	compileCmd.Flags().String("engine", "", "LaTeX engine: tectonic, latexmk, or pdflatex (default: auto-detect)")

	rootCmd.AddCommand(compileCmd)
}

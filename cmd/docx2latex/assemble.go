// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docx2latex/internal/assembly"
	"github.com/pdiddy/docx2latex/internal/citations"
	"github.com/pdiddy/docx2latex/internal/journal"
	"github.com/pdiddy/docx2latex/internal/template"
	"github.com/pdiddy/docx2latex/internal/toolchain"
	"github.com/pdiddy/docx2latex/pkg/types"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble [manuscript]",
	Short: "Run the full pipeline: convert, split, cite, and merge",
	Long: `Assemble takes a manuscript (.docx or already-converted .md), a BibTeX
database, and a journal template folder, and produces the merged LaTeX
document under output/<manuscript>/article.tex.

Unresolved citations and structural mismatches are reported as warnings on
stderr; the document is still written. Every run is recorded in the run
journal.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssemble,
}

func runAssemble(cmd *cobra.Command, args []string) error {
	manuscript := args[0]
	bibPath, _ := cmd.Flags().GetString("bib")

	if bibPath == "" {
		return fmt.Errorf("a BibTeX database is required: pass --bib")
	}

	cfg, err := assemblyConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.TemplateDir == "" {
		return fmt.Errorf("a journal template folder is required: pass --template")
	}

	stem := strings.TrimSuffix(filepath.Base(manuscript), filepath.Ext(manuscript))
	runDir := filepath.Join(cfg.OutputDir, stem)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	markdown, err := loadManuscript(manuscript, runDir)
	if err != nil {
		return err
	}

	bibSource, err := os.ReadFile(bibPath)
	if err != nil {
		return fmt.Errorf("reading bibliography: %w", err)
	}

	tpl, err := template.LoadDir(cfg.TemplateDir)
	if err != nil {
		return err
	}

	style, err := citations.ByName(cfg.CitationStyle)
	if err != nil {
		return err
	}

	engine := assembly.New(assembly.Config{
		SectionKinds: cfg.SectionKinds,
		Progress:     os.Stderr,
	})

	result, assembleErr := engine.Assemble(assembly.Input{
		Markdown:     markdown,
		Bibliography: string(bibSource),
		Template:     tpl,
		Style:        style,
	})

	outPath := filepath.Join(runDir, "article.tex")
	status := "ok"
	var unresolved, warnings []string
	if assembleErr != nil {
		status = "failed"
		outPath = ""
	} else {
		unresolved = result.UnresolvedCitations
		warnings = result.Warnings
		if err := os.WriteFile(outPath, []byte(result.Document), 0o644); err != nil {
			return fmt.Errorf("writing document: %w", err)
		}
	}

	if err := recordRun(cmd, journal.Record{
		Manuscript: manuscript,
		Template:   tpl.Name,
		Style:      style.Name(),
		OutputPath: outPath,
		Status:     status,
		Unresolved: unresolved,
		Warnings:   warnings,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "warning: run not journaled:", err)
	}

	if assembleErr != nil {
		return assembleErr
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	fmt.Printf("Wrote %s (%d warning(s), %d unresolved citation key(s))\n",
		outPath, len(result.Warnings), len(result.UnresolvedCitations))
	return nil
}

// loadManuscript returns the manuscript Markdown, converting from DOCX via
// pandoc when needed. Converted Markdown is kept next to the output as
// content.md so it can be inspected and re-run.
func loadManuscript(path, runDir string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".docx") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading manuscript: %w", err)
		}
		return string(data), nil
	}

	pandoc, err := toolchain.NewPandoc(viper.GetString("pandoc_path"))
	if err != nil {
		return "", err
	}
	markdown, err := pandoc.Convert(path)
	if err != nil {
		return "", err
	}
	contentPath := filepath.Join(runDir, "content.md")
	if err := os.WriteFile(contentPath, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("writing converted markdown: %w", err)
	}
	fmt.Fprintln(os.Stderr, "converted manuscript to", contentPath)
	return markdown, nil
}

// assemblyConfig builds the assembly stage config from flags, with the
// section_kinds vocabulary extension coming from the config file.
func assemblyConfig(cmd *cobra.Command) (types.AssemblyConfig, error) {
	templateDir, _ := cmd.Flags().GetString("template")
	styleName, _ := cmd.Flags().GetString("style")
	outputDir, _ := cmd.Flags().GetString("output-dir")

	cfg := types.AssemblyConfig{
		TemplateDir:   templateDir,
		CitationStyle: styleName,
		OutputDir:     outputDir,
	}

	raw := viper.GetStringMapString("section_kinds")
	if len(raw) > 0 {
		cfg.SectionKinds = make(map[string]types.SectionKind, len(raw))
		for heading, kind := range raw {
			k := types.SectionKind(kind)
			if !types.ValidKind(k) {
				return cfg, fmt.Errorf("config section_kinds: unknown kind %q for heading %q", kind, heading)
			}
			cfg.SectionKinds[heading] = k
		}
	}
	return cfg, nil
}

func recordRun(cmd *cobra.Command, rec journal.Record) error {
	journalDir, _ := cmd.Flags().GetString("journal-dir")
	cfg := types.JournalConfig{Dir: journalDir}
	if cfg.Dir == "" {
		return nil
	}
	store, err := journal.Open(cfg.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Add(context.Background(), rec)
	return err
}

func init() {
	assembleCmd.Flags().String("bib", "", "BibTeX database file (.bib)")
	assembleCmd.Flags().String("template", "", "journal template folder (main.tex + template.yaml)")
	assembleCmd.Flags().String("style", "numeric", "citation style: numeric or author-year")
	assembleCmd.Flags().String("output-dir", "output", "base directory for assembled documents")
	assembleCmd.Flags().String("journal-dir", "output", "directory holding the run journal database")

	rootCmd.AddCommand(assembleCmd)
}

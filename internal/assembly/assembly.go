// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assembly sequences the pipeline that turns converted Markdown,
// a BibTeX database, and a journal template into a final LaTeX document:
// bibliography -> sections -> citations -> merge. Each run builds its own
// intermediate state, so concurrent runs need no coordination.
package assembly

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/docx2latex/internal/bibliography"
	"github.com/pdiddy/docx2latex/internal/citations"
	"github.com/pdiddy/docx2latex/internal/manuscript"
	"github.com/pdiddy/docx2latex/internal/template"
	"github.com/pdiddy/docx2latex/pkg/types"
)

// Stage names the pipeline stage a fatal error came from, so the caller
// can point at "bibliography" vs "template" as the failure source.
type Stage string

const (
	StageBibliography Stage = "bibliography"
	StageSections     Stage = "sections"
	StageCitations    Stage = "citations"
	StageMerge        Stage = "merge"
)

// StageError is a fatal pipeline error tagged with its stage. Stages never
// retry; retrying with corrected input is the caller's job.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Input carries everything one assembly run needs. All fields are read
// only for the duration of the run.
type Input struct {
	// Markdown is the converted manuscript text.
	Markdown string

	// Bibliography is the BibTeX database source.
	Bibliography string

	// Template is the loaded journal template.
	Template *types.Template

	// Style renders resolved citation groups; nil selects numeric.
	Style citations.Style
}

// Engine runs assembly pipelines. The zero value is usable; Config tunes
// the heading vocabulary and progress output.
type Engine struct {
	classifier *manuscript.Classifier
	progress   io.Writer
}

// Config holds Engine construction options.
type Config struct {
	// SectionKinds extends the heading-keyword vocabulary.
	SectionKinds map[string]types.SectionKind

	// Progress receives one line per stage; nil discards.
	Progress io.Writer
}

// New builds an Engine.
func New(cfg Config) *Engine {
	w := cfg.Progress
	if w == nil {
		w = io.Discard
	}
	return &Engine{
		classifier: manuscript.NewClassifier(cfg.SectionKinds),
		progress:   w,
	}
}

// Assemble runs the full pipeline. Fatal errors abort at their stage and
// come back as a *StageError; everything recoverable accumulates into the
// result's warnings instead. A summary warning is appended whenever
// unresolved citations remain.
func (e *Engine) Assemble(in Input) (*types.AssemblyResult, error) {
	if in.Template == nil {
		return nil, &StageError{Stage: StageMerge, Err: errors.New("no template provided")}
	}
	style := in.Style
	if style == nil {
		style = citations.Numeric{}
	}

	fmt.Fprintln(e.progress, "building bibliography index")
	index, err := bibliography.Build(in.Bibliography)
	if err != nil {
		return nil, &StageError{Stage: StageBibliography, Err: err}
	}
	fmt.Fprintf(e.progress, "indexed %d bibliography entries\n", index.Len())

	sections := manuscript.SplitWith(in.Markdown, e.classifier)
	fmt.Fprintf(e.progress, "split manuscript into %d sections\n", len(sections))

	resolved, unresolved := citations.Resolve(sections, index, style)
	fmt.Fprintf(e.progress, "resolved citations, %d unresolved key(s)\n", len(unresolved))

	result := template.Merge(resolved, in.Template)
	result.UnresolvedCitations = unresolved

	// Per-key citation warnings come before structural merge warnings so
	// diagnostics read in pipeline order.
	var warnings []string
	for _, key := range unresolved {
		warnings = append(warnings, fmt.Sprintf("citation key %q not found in bibliography", key))
	}
	warnings = append(warnings, result.Warnings...)
	if len(unresolved) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%d unresolved citation key(s): %s", len(unresolved), strings.Join(unresolved, ", ")))
	}
	result.Warnings = warnings

	fmt.Fprintf(e.progress, "merged into template %q (%d placeholders filled, %d empty)\n",
		in.Template.Name, len(result.PlaceholdersFilled), len(result.PlaceholdersEmpty))

	return result, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assembly

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/docx2latex/internal/bibliography"
	"github.com/pdiddy/docx2latex/internal/citations"
	"github.com/pdiddy/docx2latex/internal/template"
	"github.com/pdiddy/docx2latex/pkg/types"
)

const testMarkdown = `# Sepsis Outcomes in the ICU

## Abstract

Background text [@smith2020].

## Methods

We followed prior work [@wilson2019; @unknownkey].

## Results

Outcomes improved [@smith2020].
`

const testBib = `@article{smith2020, author = {Smith, Jane}, year = {2020}}
@article{wilson2019, author = {Wilson, Ada}, year = {2019}}
`

const testManifest = `name: testjournal
placeholders:
  - name: abstract
    kind: abstract
    required: true
  - name: body
    kind: body
    repeating: true
`

func testTemplate(t *testing.T, body string) *types.Template {
	t.Helper()
	tpl, err := template.Load(body, []byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}
	return tpl
}

func TestAssemble(t *testing.T) {
	var progress bytes.Buffer
	engine := New(Config{Progress: &progress})

	tpl := testTemplate(t, "\\begin{abstract}\n{{SECTION:abstract}}\n\\end{abstract}\n{{SECTION:body}}\n")
	result, err := engine.Assemble(Input{
		Markdown:     testMarkdown,
		Bibliography: testBib,
		Template:     tpl,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Document, `\cite{smith2020}`) {
		t.Error("resolved citation missing from document")
	}
	if !strings.Contains(result.Document, "[??wilson2019; ??unknownkey]") {
		t.Error("unresolved group placeholder missing from document")
	}
	if len(result.UnresolvedCitations) != 1 || result.UnresolvedCitations[0] != "unknownkey" {
		t.Errorf("UnresolvedCitations = %v, want [unknownkey]", result.UnresolvedCitations)
	}

	var summary, perKey bool
	for _, w := range result.Warnings {
		if strings.Contains(w, "1 unresolved citation key(s): unknownkey") {
			summary = true
		}
		if strings.Contains(w, `citation key "unknownkey" not found`) {
			perKey = true
		}
	}
	if !summary || !perKey {
		t.Errorf("missing citation diagnostics in %v", result.Warnings)
	}

	for _, stage := range []string{"bibliography", "sections", "citations", "merged"} {
		if !strings.Contains(progress.String(), stage) {
			t.Errorf("progress output missing %q:\n%s", stage, progress.String())
		}
	}
}

func TestAssembleBibliographyFailure(t *testing.T) {
	engine := New(Config{})
	tpl := testTemplate(t, "{{SECTION:abstract}}{{SECTION:body}}")

	_, err := engine.Assemble(Input{
		Markdown:     testMarkdown,
		Bibliography: "@article{dup, year={1}}\n@article{dup, year={2}}\n",
		Template:     tpl,
	})

	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("err = %v, want *StageError", err)
	}
	if stageErr.Stage != StageBibliography {
		t.Errorf("Stage = %s, want bibliography", stageErr.Stage)
	}
	var dupErr *bibliography.DuplicateKeyError
	if !errors.As(err, &dupErr) {
		t.Errorf("StageError must unwrap to the underlying load error, got %v", err)
	}
}

func TestAssembleNoTemplate(t *testing.T) {
	engine := New(Config{})
	_, err := engine.Assemble(Input{Markdown: "x", Bibliography: ""})
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("err = %v, want *StageError", err)
	}
	if stageErr.Stage != StageMerge {
		t.Errorf("Stage = %s, want merge", stageErr.Stage)
	}
}

func TestAssembleRequiredPlaceholderMissing(t *testing.T) {
	engine := New(Config{})
	tpl := testTemplate(t, "A:{{SECTION:abstract}} B:{{SECTION:body}}")

	result, err := engine.Assemble(Input{
		Markdown:     "# Introduction\n\nNo abstract here.\n",
		Bibliography: "",
		Template:     tpl,
	})
	if err != nil {
		t.Fatalf("merge must complete despite missing required section: %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, `"abstract"`) && strings.Contains(w, "not filled") {
			found = true
		}
	}
	if !found {
		t.Errorf("no abstract warning in %v", result.Warnings)
	}
	if !strings.Contains(result.Document, "A: B:") {
		t.Errorf("abstract slot not empty: %q", result.Document)
	}
}

func TestAssembleAuthorYearStyle(t *testing.T) {
	engine := New(Config{})
	tpl := testTemplate(t, "{{SECTION:abstract}}{{SECTION:body}}")

	result, err := engine.Assemble(Input{
		Markdown:     "## Abstract\n\nSee [@smith2020].\n",
		Bibliography: "@article{smith2020, year = {2020}}",
		Template:     tpl,
		Style:        citations.AuthorYear{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Document, `\citep{smith2020}`) {
		t.Errorf("Document = %q", result.Document)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	engine := New(Config{})
	tpl := testTemplate(t, "{{SECTION:abstract}}\n{{SECTION:body}}")
	in := Input{Markdown: testMarkdown, Bibliography: testBib, Template: tpl}

	first, err := engine.Assemble(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Assemble(in)
	if err != nil {
		t.Fatal(err)
	}
	if first.Document != second.Document {
		t.Error("documents differ across identical runs")
	}
	if strings.Join(first.Warnings, "|") != strings.Join(second.Warnings, "|") {
		t.Error("warnings differ across identical runs")
	}
}

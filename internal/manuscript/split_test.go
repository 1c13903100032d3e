// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuscript

import (
	"strings"
	"testing"

	"github.com/pdiddy/docx2latex/pkg/types"
)

const sampleDoc = `# A Study of Outcomes

## Abstract

We studied outcomes.

## Methods

We used methods.

### Statistical Analysis

Two-sided tests.

## Results

Results were obtained [@smith2020].

## References
`

func TestSplit(t *testing.T) {
	sections := Split(sampleDoc)

	want := []struct {
		kind    types.SectionKind
		heading string
		level   int
	}{
		{types.KindBody, "A Study of Outcomes", 1},
		{types.KindAbstract, "Abstract", 2},
		{types.KindBody, "Methods", 2},
		{types.KindSubsection, "Statistical Analysis", 3},
		{types.KindBody, "Results", 2},
		{types.KindReferences, "References", 2},
	}

	if len(sections) != len(want) {
		t.Fatalf("len(sections) = %d, want %d", len(sections), len(want))
	}
	for i, w := range want {
		s := sections[i]
		if s.Kind != w.kind || s.Heading != w.heading || s.Level != w.level {
			t.Errorf("section %d = {%s %q %d}, want {%s %q %d}",
				i, s.Kind, s.Heading, s.Level, w.kind, w.heading, w.level)
		}
		if s.Order != i {
			t.Errorf("section %d Order = %d", i, s.Order)
		}
	}

	if !strings.Contains(sections[3].Content, "Two-sided tests.") {
		t.Errorf("subsection content = %q", sections[3].Content)
	}
}

func TestSplitPreambleBecomesOther(t *testing.T) {
	sections := Split("Stray opening paragraph.\n\n# Introduction\n\nText.\n")
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	first := sections[0]
	if first.Kind != types.KindOther || first.Heading != "" || first.Order != 0 {
		t.Errorf("preamble section = %+v", first)
	}
	if !strings.Contains(first.Content, "Stray opening paragraph.") {
		t.Errorf("preamble content = %q", first.Content)
	}
}

func TestSplitBlankPreambleSkipped(t *testing.T) {
	sections := Split("\n\n# Introduction\n\nText.\n")
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	if sections[0].Heading != "Introduction" {
		t.Errorf("Heading = %q", sections[0].Heading)
	}
}

func TestSplitNoHeadings(t *testing.T) {
	sections := Split("Just a paragraph.\nAnother line.\n")
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	s := sections[0]
	if s.Kind != types.KindOther {
		t.Errorf("Kind = %s, want other", s.Kind)
	}
	if !strings.Contains(s.Content, "Just a paragraph.") {
		t.Errorf("Content = %q", s.Content)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	if sections := Split(""); len(sections) != 0 {
		t.Errorf("len(sections) = %d, want 0", len(sections))
	}
}

func TestSplitSetextHeadings(t *testing.T) {
	doc := "A Study of Outcomes\n===================\n\nAbstract\n--------\n\nText.\n"
	sections := Split(doc)
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	if sections[0].Heading != "A Study of Outcomes" || sections[0].Level != 1 {
		t.Errorf("first = %+v", sections[0])
	}
	if sections[1].Kind != types.KindAbstract || sections[1].Level != 2 {
		t.Errorf("second = %+v", sections[1])
	}
}

// TestSplitRoundTrip checks that headings plus contents, concatenated in
// order, reconstruct the source document up to heading-syntax
// normalization.
func TestSplitRoundTrip(t *testing.T) {
	sections := Split(sampleDoc)

	var parts []string
	for _, s := range sections {
		if s.Heading != "" {
			parts = append(parts, strings.Repeat("#", s.Level)+" "+s.Heading)
		}
		parts = append(parts, s.Content)
	}
	got := strings.Join(parts, "\n")

	if got != sampleDoc {
		t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, sampleDoc)
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		heading string
		level   int
		want    types.SectionKind
	}{
		{"Abstract", 1, types.KindAbstract},
		{"ABSTRACT", 2, types.KindAbstract},
		{"2. Methods", 1, types.KindBody},
		{"3.1 Results:", 2, types.KindBody},
		{"IV. Discussion", 1, types.KindBody},
		{"Key Words", 2, types.KindKeywords},
		{"Bibliography", 1, types.KindReferences},
		{"Study Design", 1, types.KindBody},
		{"Study Design", 2, types.KindSubsection},
		{"Discussion of limitations", 3, types.KindSubsection},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.heading, tt.level); got != tt.want {
			t.Errorf("Classify(%q, %d) = %s, want %s", tt.heading, tt.level, got, tt.want)
		}
	}
}

func TestClassifierExtraVocabulary(t *testing.T) {
	c := NewClassifier(map[string]types.SectionKind{
		"Résumé": types.KindAbstract,
	})
	if got := c.Classify("résumé", 2); got != types.KindAbstract {
		t.Errorf("Classify(résumé) = %s, want abstract", got)
	}
}

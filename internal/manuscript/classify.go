// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuscript

import (
	"regexp"
	"strings"

	"github.com/pdiddy/docx2latex/pkg/types"
)

// numberingRe strips leading section numbering such as "2.", "3.1", or
// roman numerals like "IV." from a heading before vocabulary lookup.
var numberingRe = regexp.MustCompile(`^(\d+(\.\d+)*\.?|[ivxlcdmIVXLCDM]+\.)\s+`)

// Classifier maps normalized heading text to a section kind via a fixed
// vocabulary, optionally extended with caller-supplied keywords.
type Classifier struct {
	vocab map[string]types.SectionKind
}

// NewClassifier builds a classifier from the default vocabulary plus any
// extra heading-to-kind pairs. Extra keys are normalized the same way
// headings are, so "Key Words" and "key words" are the same entry.
func NewClassifier(extra map[string]types.SectionKind) *Classifier {
	vocab := DefaultVocabulary()
	for k, v := range extra {
		vocab[normalizeHeading(k)] = v
	}
	return &Classifier{vocab: vocab}
}

// DefaultVocabulary returns the built-in heading-keyword table. Body
// keywords map to KindBody explicitly so a "Methods" heading at any depth
// is still addressable as body content by a template.
func DefaultVocabulary() map[string]types.SectionKind {
	return map[string]types.SectionKind{
		"title": types.KindTitle,

		"abstract": types.KindAbstract,
		"summary":  types.KindAbstract,

		"keywords":  types.KindKeywords,
		"key words": types.KindKeywords,

		"references":       types.KindReferences,
		"bibliography":     types.KindReferences,
		"works cited":      types.KindReferences,
		"literature cited": types.KindReferences,

		"introduction":          types.KindBody,
		"background":           types.KindBody,
		"methods":              types.KindBody,
		"materials and methods": types.KindBody,
		"patients and methods":  types.KindBody,
		"results":              types.KindBody,
		"discussion":           types.KindBody,
		"conclusion":           types.KindBody,
		"conclusions":          types.KindBody,
		"limitations":          types.KindBody,
		"acknowledgments":      types.KindBody,
		"acknowledgements":     types.KindBody,
		"funding":              types.KindBody,
		"conflicts of interest": types.KindBody,
	}
}

// Classify returns the kind for a heading at the given level. The whole
// normalized heading is matched, never substrings: "Discussion of
// limitations" is an unmatched heading, not a forced vocabulary hit.
// Unmatched top-level headings are body sections; deeper ones are
// subsections.
func (c *Classifier) Classify(heading string, level int) types.SectionKind {
	if kind, ok := c.vocab[normalizeHeading(heading)]; ok {
		return kind
	}
	if level <= 1 {
		return types.KindBody
	}
	return types.KindSubsection
}

// normalizeHeading lowercases, strips numbering and trailing punctuation,
// and collapses interior whitespace.
func normalizeHeading(heading string) string {
	h := strings.TrimSpace(heading)
	h = numberingRe.ReplaceAllString(h, "")
	h = strings.ToLower(h)
	h = strings.TrimRight(h, ":;.")
	h = strings.Join(strings.Fields(h), " ")
	return h
}

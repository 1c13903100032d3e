// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SectionKind is the semantic role of a manuscript section, inferred from
// its heading text.
type SectionKind string

const (
	KindTitle      SectionKind = "title"
	KindAbstract   SectionKind = "abstract"
	KindKeywords   SectionKind = "keywords"
	KindBody       SectionKind = "body"
	KindSubsection SectionKind = "subsection"
	KindReferences SectionKind = "references"
	KindOther      SectionKind = "other"
)

// ValidKind reports whether k is one of the defined section kinds.
func ValidKind(k SectionKind) bool {
	switch k {
	case KindTitle, KindAbstract, KindKeywords, KindBody,
		KindSubsection, KindReferences, KindOther:
		return true
	}
	return false
}

// Section is one logical unit of the manuscript. Sections are stored as a
// flat ordered sequence; nesting depth is recorded in Level rather than as
// a tree, because template merging addresses sections by kind and heading.
type Section struct {
	// Kind classifies the section's role.
	Kind SectionKind `json:"kind" yaml:"kind"`

	// Heading is the heading text, empty for sections with no heading line.
	Heading string `json:"heading" yaml:"heading"`

	// Level is the heading nesting depth, 1 for top-level headings.
	Level int `json:"level" yaml:"level"`

	// Content is the markdown body of the section, excluding the heading line.
	Content string `json:"content" yaml:"content"`

	// Order is the section's position in the source document.
	Order int `json:"order" yaml:"order"`
}

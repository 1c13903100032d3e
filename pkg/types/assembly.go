// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AssemblyResult is the terminal artifact of one assembly run.
type AssemblyResult struct {
	// Document is the final LaTeX source.
	Document string `json:"document" yaml:"document"`

	// UnresolvedCitations lists the distinct citation keys that could not
	// be resolved anywhere in the manuscript, sorted.
	UnresolvedCitations []string `json:"unresolved_citations" yaml:"unresolved_citations"`

	// Warnings is the ordered sequence of human-readable diagnostics
	// accumulated across the run.
	Warnings []string `json:"warnings" yaml:"warnings"`

	// PlaceholdersFilled and PlaceholdersEmpty record which template
	// placeholders received content and which were left empty.
	PlaceholdersFilled []string `json:"placeholders_filled" yaml:"placeholders_filled"`
	PlaceholdersEmpty  []string `json:"placeholders_empty" yaml:"placeholders_empty"`

	// SectionsUnused lists source sections no placeholder consumed; their
	// content is dropped from Document.
	SectionsUnused []string `json:"sections_unused" yaml:"sections_unused"`
}

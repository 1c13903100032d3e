// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BibEntry is one bibliographic record from a BibTeX database.
type BibEntry struct {
	// Key is the unique, case-sensitive citation key.
	Key string `json:"key" yaml:"key"`

	// Type is the lowercased entry type (e.g. "article", "inproceedings").
	Type string `json:"type" yaml:"type"`

	// Fields maps lowercased field names (author, year, title, ...) to
	// their values with delimiters stripped.
	Fields map[string]string `json:"fields" yaml:"fields"`

	// Raw is the original record text, preserved for pass-through into
	// the generated bibliography.
	Raw string `json:"raw" yaml:"raw"`
}

// Field returns the named field value, or the empty string when absent.
func (e BibEntry) Field(name string) string {
	return e.Fields[name]
}

// Marker is one occurrence of an inline citation group inside a section's
// content, e.g. [@smith2020] or [@smith2020; @jones2019].
type Marker struct {
	// Keys lists the citation keys in source order.
	Keys []string `json:"keys" yaml:"keys"`

	// Start and End are byte offsets of the marker within the owning
	// section's content, End exclusive.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`

	// Resolved reports whether every key in the group was found.
	Resolved bool `json:"resolved" yaml:"resolved"`

	// Rendered is the replacement text once resolved, empty otherwise.
	Rendered string `json:"rendered,omitempty" yaml:"rendered,omitempty"`
}

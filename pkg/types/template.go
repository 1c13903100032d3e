// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Placeholder is one named insertion point declared by a journal template.
type Placeholder struct {
	// Name identifies the placeholder; the template body references it
	// as {{SECTION:name}}.
	Name string `json:"name" yaml:"name"`

	// Kind is the section kind the placeholder accepts.
	Kind SectionKind `json:"kind" yaml:"kind"`

	// Heading, when set, restricts matching to sections whose heading
	// equals it case-insensitively.
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`

	// Required marks placeholders whose absence is worth a warning.
	// A missing required section never aborts the merge.
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Repeating placeholders consume every matching section in source
	// order instead of the first one.
	Repeating bool `json:"repeating,omitempty" yaml:"repeating,omitempty"`
}

// Template is a journal's LaTeX boilerplate plus the ordered declaration
// of its placeholders.
type Template struct {
	// Name identifies the template (e.g. the journal short name).
	Name string `json:"name" yaml:"name"`

	// Body is the LaTeX source containing {{SECTION:name}} tokens.
	Body string `json:"body" yaml:"body"`

	// Placeholders lists the insertion points in substitution order.
	Placeholders []Placeholder `json:"placeholders" yaml:"placeholders"`
}

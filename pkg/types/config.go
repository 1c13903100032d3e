package types

// AssemblyConfig holds settings for the assembly stage.
type AssemblyConfig struct {
	// TemplateDir is the journal template folder (main.tex + template.yaml).
	TemplateDir string `json:"template_dir" yaml:"template_dir"`

	// CitationStyle selects the citation rendering rule: numeric or author-year.
	CitationStyle string `json:"citation_style" yaml:"citation_style"`

	// OutputDir is the base directory for generated artifacts; each
	// manuscript gets its own subdirectory named after the source file.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SectionKinds adds heading-keyword to section-kind mappings on top of
	// the built-in vocabulary (e.g. "patients: body").
	SectionKinds map[string]SectionKind `json:"section_kinds,omitempty" yaml:"section_kinds,omitempty"`
}

// ConvertConfig holds settings for the DOCX-to-Markdown boundary step.
type ConvertConfig struct {
	// OutputDir is the base directory for conversion output.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// PandocPath overrides the pandoc binary looked up on PATH.
	PandocPath string `json:"pandoc_path,omitempty" yaml:"pandoc_path,omitempty"`
}

// CompileConfig holds settings for the LaTeX-to-PDF boundary step.
type CompileConfig struct {
	// Engine forces a specific compiler (tectonic, latexmk, pdflatex).
	// Empty means detect in that order.
	Engine string `json:"engine,omitempty" yaml:"engine,omitempty"`
}

// JournalConfig holds settings for the run journal.
type JournalConfig struct {
	// Dir is the directory holding the journal database. Empty disables
	// run recording.
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Assembly AssemblyConfig `json:"assembly" yaml:"assembly"`
	Convert  ConvertConfig  `json:"convert" yaml:"convert"`
	Compile  CompileConfig  `json:"compile" yaml:"compile"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template loads journal templates and merges resolved manuscript
// sections into them. A template folder holds the journal's LaTeX
// boilerplate in main.tex, with {{SECTION:name}} tokens marking insertion
// points, and a template.yaml manifest declaring each placeholder's
// expected section kind, optional heading, and whether it is required or
// repeating.
package template

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docx2latex/pkg/types"
)

const (
	bodyFile     = "main.tex"
	manifestFile = "template.yaml"
)

// manifest mirrors template.yaml.
type manifest struct {
	Name         string              `yaml:"name"`
	Placeholders []types.Placeholder `yaml:"placeholders"`
}

// LoadDir reads a template folder: main.tex plus template.yaml.
func LoadDir(dir string) (*types.Template, error) {
	body, err := os.ReadFile(filepath.Join(dir, bodyFile))
	if err != nil {
		return nil, fmt.Errorf("reading template body: %w", err)
	}
	mf, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading template manifest: %w", err)
	}
	tpl, err := Load(string(body), mf)
	if err != nil {
		return nil, err
	}
	if tpl.Name == "" {
		tpl.Name = filepath.Base(dir)
	}
	return tpl, nil
}

// Load builds a Template from LaTeX body text and manifest YAML.
func Load(body string, manifestYAML []byte) (*types.Template, error) {
	var m manifest
	if err := yaml.Unmarshal(manifestYAML, &m); err != nil {
		return nil, fmt.Errorf("parsing template manifest: %w", err)
	}
	if len(m.Placeholders) == 0 {
		return nil, fmt.Errorf("template manifest declares no placeholders")
	}

	seen := make(map[string]bool, len(m.Placeholders))
	for _, ph := range m.Placeholders {
		if ph.Name == "" {
			return nil, fmt.Errorf("template manifest has a placeholder with no name")
		}
		if seen[ph.Name] {
			return nil, fmt.Errorf("template manifest declares placeholder %q twice", ph.Name)
		}
		seen[ph.Name] = true
		if !types.ValidKind(ph.Kind) {
			return nil, fmt.Errorf("placeholder %q has unknown section kind %q", ph.Name, ph.Kind)
		}
	}

	return &types.Template{
		Name:         m.Name,
		Body:         body,
		Placeholders: m.Placeholders,
	}, nil
}

// Token returns the body token for a placeholder name.
func Token(name string) string {
	return "{{SECTION:" + name + "}}"
}

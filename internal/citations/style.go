// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"fmt"
	"strings"

	"github.com/pdiddy/docx2latex/pkg/types"
)

// Style renders a fully resolved citation group into a LaTeX citation
// command. Implementations must keep keys in the order given: citation
// order in text is an authorial choice.
type Style interface {
	// Name returns the style's configuration name.
	Name() string

	// Render produces the replacement text for one resolved group.
	Render(keys []string, entries []types.BibEntry) string
}

// Numeric renders groups as \cite{key1,key2}, the convention for journals
// with numbered reference lists.
type Numeric struct{}

func (Numeric) Name() string { return "numeric" }

func (Numeric) Render(keys []string, _ []types.BibEntry) string {
	return `\cite{` + strings.Join(keys, ",") + `}`
}

// AuthorYear renders groups as \citep{key1,key2} for natbib author-year
// journals.
type AuthorYear struct{}

func (AuthorYear) Name() string { return "author-year" }

func (AuthorYear) Render(keys []string, _ []types.BibEntry) string {
	return `\citep{` + strings.Join(keys, ",") + `}`
}

// ByName resolves a configuration value to a Style. The empty string
// selects Numeric.
func ByName(name string) (Style, error) {
	switch name {
	case "", "numeric":
		return Numeric{}, nil
	case "author-year", "authoryear":
		return AuthorYear{}, nil
	}
	return nil, fmt.Errorf("unknown citation style %q (want numeric or author-year)", name)
}

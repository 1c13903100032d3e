// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/docx2latex/pkg/types"
)

// tokenRe matches {{SECTION:name}} tokens left in a merged body.
var tokenRe = regexp.MustCompile(`\{\{SECTION:([A-Za-z0-9_-]+)\}\}`)

// Merge substitutes section content into the template's placeholders and
// returns the assembled document with its diagnostics. Matching is
// first-fit in declared placeholder order over a used-flag array, so the
// section slice is never reordered or shrunk. A required placeholder with
// no match warns and stays empty; sections no placeholder wants are
// dropped from the document and reported. The merge always completes.
func Merge(sections []types.Section, tpl *types.Template) *types.AssemblyResult {
	result := &types.AssemblyResult{}
	used := make([]bool, len(sections))
	body := tpl.Body

	for _, ph := range tpl.Placeholders {
		token := Token(ph.Name)
		if !strings.Contains(body, token) {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"template %q declares placeholder %q but its body has no %s token",
				tpl.Name, ph.Name, token))
		}

		var filled string
		var matched bool
		if ph.Repeating {
			filled, matched = consumeRepeating(sections, used, ph)
		} else {
			filled, matched = consumeFirst(sections, used, ph)
		}

		if matched {
			result.PlaceholdersFilled = append(result.PlaceholdersFilled, ph.Name)
		} else {
			result.PlaceholdersEmpty = append(result.PlaceholdersEmpty, ph.Name)
			if ph.Required {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"required placeholder %q not filled: manuscript has no %s section%s",
					ph.Name, ph.Kind, headingClause(ph.Heading)))
			}
		}

		body = strings.ReplaceAll(body, token, filled)
	}

	// Tokens in the body the manifest never declared stay as-is.
	for _, m := range tokenRe.FindAllStringSubmatch(body, -1) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"template body contains undeclared placeholder token %q", m[0]))
	}

	for i, s := range sections {
		if used[i] {
			continue
		}
		result.SectionsUnused = append(result.SectionsUnused, sectionLabel(s))
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"section %s has no matching placeholder; content dropped", sectionLabel(s)))
	}

	result.Document = body
	return result
}

// consumeFirst marks the first unused matching section used and returns
// its fill text.
func consumeFirst(sections []types.Section, used []bool, ph types.Placeholder) (string, bool) {
	for i, s := range sections {
		if used[i] || !matches(ph, s) {
			continue
		}
		used[i] = true
		return fillText(s), true
	}
	return "", false
}

// consumeRepeating consumes every unused matching section in source order.
// For body placeholders each matched section renders as \section{...} and
// the subsections that follow it nest underneath as \subsection{...}; a
// subsection with no preceding matched body section stays unconsumed.
func consumeRepeating(sections []types.Section, used []bool, ph types.Placeholder) (string, bool) {
	var blocks []string
	open := false

	for i, s := range sections {
		if used[i] {
			continue
		}
		switch {
		case matches(ph, s):
			used[i] = true
			open = true
			if ph.Kind == types.KindBody {
				blocks = append(blocks, renderHeaded(`\section`, s))
			} else {
				blocks = append(blocks, fillText(s))
			}
		case open && ph.Kind == types.KindBody && s.Kind == types.KindSubsection:
			used[i] = true
			blocks = append(blocks, renderHeaded(`\subsection`, s))
		default:
			// A non-subsection closes the current parent block.
			if s.Kind != types.KindSubsection {
				open = false
			}
		}
	}

	if len(blocks) == 0 {
		return "", false
	}
	return strings.Join(blocks, "\n\n"), true
}

// matches reports whether a section satisfies a placeholder's kind and
// optional heading constraint. Heading comparison is case-insensitive; no
// fuzzy matching.
func matches(ph types.Placeholder, s types.Section) bool {
	if s.Kind != ph.Kind {
		return false
	}
	if ph.Heading != "" && !strings.EqualFold(ph.Heading, s.Heading) {
		return false
	}
	return true
}

// fillText returns the substitution text for a section: its content, or
// its heading when the content is blank (a title manuscript line often
// arrives as a bare heading).
func fillText(s types.Section) string {
	content := strings.TrimSpace(s.Content)
	if content == "" {
		return s.Heading
	}
	return content
}

// renderHeaded renders a section under a LaTeX sectioning command.
func renderHeaded(command string, s types.Section) string {
	var b strings.Builder
	b.WriteString(command)
	b.WriteString("{")
	b.WriteString(s.Heading)
	b.WriteString("}")
	if content := strings.TrimSpace(s.Content); content != "" {
		b.WriteString("\n\n")
		b.WriteString(content)
	}
	return b.String()
}

func sectionLabel(s types.Section) string {
	if s.Heading != "" {
		return fmt.Sprintf("%q", s.Heading)
	}
	return fmt.Sprintf("(unheaded %s, order %d)", s.Kind, s.Order)
}

func headingClause(heading string) string {
	if heading == "" {
		return ""
	}
	return fmt.Sprintf(" headed %q", heading)
}

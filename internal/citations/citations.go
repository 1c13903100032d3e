// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations scans section content for inline citation markers and
// resolves them against a bibliography index. Markers are bracketed groups
// of one or more keys: [@smith2020] or [@smith2020; @jones2019].
//
// Resolution is all-or-nothing per group: a group with any unknown key is
// rewritten into a visible placeholder rather than partially rendered,
// because silently dropping one citation out of a group is worse than an
// explicit flag the editor can see.
package citations

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/docx2latex/internal/bibliography"
	"github.com/pdiddy/docx2latex/pkg/types"
)

// bracketRe matches any bracketed group whose body cannot contain brackets.
// Whether the group is a citation marker is decided by parseGroup.
var bracketRe = regexp.MustCompile(`\[([^\[\]]+)\]`)

// Markers returns every citation marker in content with byte offsets.
// Bracketed text that does not parse as a citation group (markdown links,
// numeric references, prose asides) is not a marker.
func Markers(content string) []types.Marker {
	var markers []types.Marker
	for _, m := range bracketRe.FindAllStringSubmatchIndex(content, -1) {
		inner := content[m[2]:m[3]]
		keys, ok := parseGroup(inner)
		if !ok {
			continue
		}
		markers = append(markers, types.Marker{
			Keys:  keys,
			Start: m[0],
			End:   m[1],
		})
	}
	return markers
}

// parseGroup splits the bracket body on semicolons and validates that every
// segment is an @-prefixed citation key. Any malformed segment disqualifies
// the whole group.
func parseGroup(inner string) ([]string, bool) {
	parts := strings.Split(inner, ";")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !strings.HasPrefix(p, "@") {
			return nil, false
		}
		key := p[1:]
		if !isKey(key) {
			return nil, false
		}
		keys = append(keys, key)
	}
	return keys, true
}

// isKey checks whether s is a plausible BibTeX citation key: letters,
// digits, and the punctuation BibTeX allows, with at least one letter or
// digit.
func isKey(s string) bool {
	if s == "" {
		return false
	}
	hasAlnum := false
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			hasAlnum = true
		case c == '-', c == '_', c == ':', c == '.', c == '+', c == '/':
			// allowed
		default:
			return false
		}
	}
	return hasAlnum
}

// Resolve rewrites citation markers in every section against the index
// using the given render style. It returns new sections (inputs are not
// mutated) and the sorted distinct set of unresolved keys. Groups whose
// keys all resolve are rewritten as one unit with keys in original order;
// groups with any missing key become [??key; ...] placeholders and every
// missing key is reported.
//
// Resolve is deterministic and idempotent: rendered citation commands and
// placeholders contain no [@...] pattern, so a second pass is a no-op.
func Resolve(sections []types.Section, index *bibliography.Index, style Style) ([]types.Section, []string) {
	resolved := make([]types.Section, len(sections))
	missing := make(map[string]bool)

	for i, s := range sections {
		resolved[i] = s
		resolved[i].Content = rewrite(s.Content, index, style, missing)
	}

	keys := make([]string, 0, len(missing))
	for k := range missing {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return resolved, keys
}

// rewrite replaces each marker in content, accumulating unresolved keys.
func rewrite(content string, index *bibliography.Index, style Style, missing map[string]bool) string {
	markers := Markers(content)
	if len(markers) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	prev := 0
	for _, m := range markers {
		b.WriteString(content[prev:m.Start])

		entries := make([]types.BibEntry, 0, len(m.Keys))
		groupMissing := false
		for _, key := range m.Keys {
			if e, ok := index.Get(key); ok {
				entries = append(entries, e)
			} else {
				groupMissing = true
				missing[key] = true
			}
		}

		if groupMissing {
			b.WriteString(placeholder(m.Keys))
		} else {
			b.WriteString(style.Render(m.Keys, entries))
		}
		prev = m.End
	}
	b.WriteString(content[prev:])
	return b.String()
}

// placeholder renders an unresolved group visibly, e.g. [??a; ??b]. The
// whole group is flagged even when some keys would resolve.
func placeholder(keys []string) string {
	flagged := make([]string, len(keys))
	for i, k := range keys {
		flagged[i] = "??" + k
	}
	return "[" + strings.Join(flagged, "; ") + "]"
}

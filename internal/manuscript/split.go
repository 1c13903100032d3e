// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manuscript splits converted Markdown into an ordered sequence of
// typed sections. Splitting never fails: a document with no recognizable
// structure still comes back as a single section so the rest of the
// pipeline has something to work with.
package manuscript

import (
	"regexp"
	"strings"

	"github.com/pdiddy/docx2latex/pkg/types"
)

// atxHeadingRe matches an ATX heading line: one to six '#' plus a space.
var atxHeadingRe = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)

// setextUnderlineRe matches a Setext underline: '=' runs mark level 1,
// '-' runs (two or more) mark level 2.
var setextUnderlineRe = regexp.MustCompile(`^(=+|-{2,})\s*$`)

// Split parses markdown into sections using the default heading vocabulary.
func Split(markdown string) []types.Section {
	return SplitWith(markdown, NewClassifier(nil))
}

// SplitWith parses markdown into a flat, ordered sequence of sections.
// Every heading line starts a new section; text before the first heading
// becomes an implicit "other" section at order 0 when non-blank. Nesting
// depth is recorded in Level, not as a tree.
func SplitWith(markdown string, c *Classifier) []types.Section {
	lines := strings.Split(markdown, "\n")

	var sections []types.Section
	var heading string
	var level int
	var body []string
	started := false

	flush := func() {
		content := strings.Join(body, "\n")
		if !started && strings.TrimSpace(content) == "" {
			// Blank preamble before the first heading: nothing to keep.
			body = body[:0]
			return
		}
		kind := c.Classify(heading, level)
		if heading == "" {
			kind = types.KindOther
		}
		sections = append(sections, types.Section{
			Kind:    kind,
			Heading: heading,
			Level:   level,
			Content: content,
			Order:   len(sections),
		})
		body = body[:0]
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := atxHeadingRe.FindStringSubmatch(line); m != nil {
			flush()
			started = true
			heading = m[2]
			level = len(m[1])
			continue
		}

		// Setext heading: a text line underlined by '=' or '-'.
		if i+1 < len(lines) && strings.TrimSpace(line) != "" &&
			setextUnderlineRe.MatchString(lines[i+1]) {
			flush()
			started = true
			heading = strings.TrimSpace(line)
			if strings.HasPrefix(strings.TrimSpace(lines[i+1]), "=") {
				level = 1
			} else {
				level = 2
			}
			i++ // skip the underline
			continue
		}

		body = append(body, line)
	}
	flush()

	return sections
}

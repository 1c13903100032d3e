// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibliography parses a BibTeX database into an immutable index
// keyed by citation key. The index is rebuilt fresh for every assembly run;
// there is no cross-run caching because the database can change between runs.
package bibliography

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/docx2latex/pkg/types"
)

// ParseError reports malformed record syntax at a position in the source.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bibliography: parse error at line %d: %s", e.Line, e.Reason)
}

// DuplicateKeyError reports a citation key defined by more than one record.
// Duplicate keys are fatal for the whole load: silent precedence would make
// citation resolution undefined.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("bibliography: duplicate citation key %q", e.Key)
}

// Index is a read-only lookup of BibTeX entries by citation key.
type Index struct {
	entries map[string]types.BibEntry
}

// Build parses BibTeX source and returns an Index. It fails with a
// *ParseError on malformed record syntax and with a *DuplicateKeyError when
// the same key appears twice. Text between records is ignored, as are
// @comment, @preamble, and @string records.
func Build(src string) (*Index, error) {
	s := &scanner{src: src, line: 1}
	entries := make(map[string]types.BibEntry)

	for {
		if !s.seek('@') {
			break
		}
		start, startLine := s.pos, s.line
		s.advance() // consume '@'

		entryType := s.readName()
		if entryType == "" {
			return nil, &ParseError{Line: startLine, Reason: "missing entry type after '@'"}
		}
		entryType = strings.ToLower(entryType)

		s.skipSpace()
		if !s.consume('{') {
			return nil, &ParseError{Line: s.line, Reason: fmt.Sprintf("expected '{' after @%s", entryType)}
		}

		// Non-entry records carry no citation key; skip their balanced body.
		if entryType == "comment" || entryType == "preamble" || entryType == "string" {
			if !s.skipBalanced() {
				return nil, &ParseError{Line: startLine, Reason: fmt.Sprintf("unterminated @%s record", entryType)}
			}
			continue
		}

		entry, err := s.readEntry(entryType, startLine)
		if err != nil {
			return nil, err
		}
		entry.Raw = src[start:s.pos]

		if _, exists := entries[entry.Key]; exists {
			return nil, &DuplicateKeyError{Key: entry.Key}
		}
		entries[entry.Key] = entry
	}

	return &Index{entries: entries}, nil
}

// Get returns the entry for key. Lookup is O(1), case-sensitive, and never
// mutates the index.
func (ix *Index) Get(key string) (types.BibEntry, bool) {
	e, ok := ix.entries[key]
	return e, ok
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Keys returns all citation keys, sorted.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.entries))
	for k := range ix.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// scanner walks BibTeX source byte by byte, tracking line numbers.
type scanner struct {
	src  string
	pos  int
	line int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) advance() {
	if s.src[s.pos] == '\n' {
		s.line++
	}
	s.pos++
}

// seek advances to the next occurrence of b, returning false at EOF.
func (s *scanner) seek(b byte) bool {
	for !s.eof() {
		if s.src[s.pos] == b {
			return true
		}
		s.advance()
	}
	return false
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

// consume advances past b if it is the current byte.
func (s *scanner) consume(b byte) bool {
	if !s.eof() && s.src[s.pos] == b {
		s.advance()
		return true
	}
	return false
}

// readName reads an identifier made of letters, digits, and a few
// punctuation characters BibTeX allows in type and field names.
func (s *scanner) readName() string {
	start := s.pos
	for !s.eof() && isNameByte(s.src[s.pos]) {
		s.advance()
	}
	return s.src[start:s.pos]
}

func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-', b == '_', b == ':', b == '.', b == '+', b == '/':
		return true
	}
	return false
}

// skipBalanced consumes up to and including the '}' matching an already
// consumed '{'. Returns false at EOF.
func (s *scanner) skipBalanced() bool {
	depth := 1
	for !s.eof() {
		switch s.src[s.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				s.advance()
				return true
			}
		}
		s.advance()
	}
	return false
}

// readEntry parses the body of @type{key, field = value, ...} with the
// opening brace already consumed.
func (s *scanner) readEntry(entryType string, startLine int) (types.BibEntry, error) {
	var entry types.BibEntry
	entry.Type = entryType
	entry.Fields = make(map[string]string)

	s.skipSpace()
	key := s.readName()
	if key == "" {
		return entry, &ParseError{Line: s.line, Reason: fmt.Sprintf("missing citation key in @%s record", entryType)}
	}
	entry.Key = key

	for {
		s.skipSpace()
		if s.consume('}') {
			return entry, nil
		}
		if !s.consume(',') {
			return entry, &ParseError{Line: s.line, Reason: fmt.Sprintf("expected ',' or '}' in record %q", key)}
		}
		s.skipSpace()
		if s.consume('}') {
			// Trailing comma before the closing brace.
			return entry, nil
		}

		name := s.readName()
		if name == "" {
			return entry, &ParseError{Line: s.line, Reason: fmt.Sprintf("missing field name in record %q", key)}
		}
		s.skipSpace()
		if !s.consume('=') {
			return entry, &ParseError{Line: s.line, Reason: fmt.Sprintf("expected '=' after field %q in record %q", name, key)}
		}
		s.skipSpace()

		value, err := s.readValue(key)
		if err != nil {
			return entry, err
		}
		entry.Fields[strings.ToLower(name)] = value
	}
}

// readValue reads one field value: {braced, possibly nested}, "quoted", or
// a bare word or number.
func (s *scanner) readValue(key string) (string, error) {
	if s.eof() {
		return "", &ParseError{Line: s.line, Reason: fmt.Sprintf("unexpected end of input in record %q", key)}
	}

	switch s.src[s.pos] {
	case '{':
		openLine := s.line
		s.advance()
		start := s.pos
		depth := 1
		for !s.eof() {
			switch s.src[s.pos] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					value := s.src[start:s.pos]
					s.advance()
					return value, nil
				}
			}
			s.advance()
		}
		return "", &ParseError{Line: openLine, Reason: fmt.Sprintf("unterminated braces in record %q", key)}

	case '"':
		openLine := s.line
		s.advance()
		start := s.pos
		for !s.eof() {
			if s.src[s.pos] == '"' {
				value := s.src[start:s.pos]
				s.advance()
				return value, nil
			}
			s.advance()
		}
		return "", &ParseError{Line: openLine, Reason: fmt.Sprintf("unterminated quoted value in record %q", key)}

	default:
		start := s.pos
		for !s.eof() {
			b := s.src[s.pos]
			if b == ',' || b == '}' || b == ' ' || b == '\t' || b == '\r' || b == '\n' {
				break
			}
			s.advance()
		}
		value := s.src[start:s.pos]
		if value == "" {
			return "", &ParseError{Line: s.line, Reason: fmt.Sprintf("missing field value in record %q", key)}
		}
		return value, nil
	}
}

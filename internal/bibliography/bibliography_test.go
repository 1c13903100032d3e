// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibliography

import (
	"errors"
	"strings"
	"testing"
)

const sampleBib = `% Bibliography for the hypertension manuscript.

@article{smith2020,
  author  = {Smith, Jane and Doe, John},
  title   = {Blood Pressure Outcomes in {ICU} Patients},
  journal = {The Lancet},
  year    = 2020,
}

@inproceedings{wilson2019,
  author    = "Wilson, Ada",
  title     = "Sepsis Screening at Scale",
  booktitle = {Proc.\ Critical Care},
  year      = {2019}
}
`

func TestBuild(t *testing.T) {
	ix, err := Build(sampleBib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ix.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ix.Len())
	}

	e, ok := ix.Get("smith2020")
	if !ok {
		t.Fatal("Get(smith2020) not found")
	}
	if e.Type != "article" {
		t.Errorf("Type = %q, want %q", e.Type, "article")
	}
	if got := e.Field("author"); got != "Smith, Jane and Doe, John" {
		t.Errorf("author = %q", got)
	}
	if got := e.Field("title"); got != "Blood Pressure Outcomes in {ICU} Patients" {
		t.Errorf("title = %q (nested braces must survive)", got)
	}
	if got := e.Field("year"); got != "2020" {
		t.Errorf("year = %q, want %q", got, "2020")
	}
	if !strings.HasPrefix(e.Raw, "@article{smith2020,") {
		t.Errorf("Raw does not start with record text: %q", e.Raw)
	}
	if !strings.HasSuffix(e.Raw, "}") {
		t.Errorf("Raw does not end with closing brace: %q", e.Raw)
	}

	q, ok := ix.Get("wilson2019")
	if !ok {
		t.Fatal("Get(wilson2019) not found")
	}
	if got := q.Field("author"); got != "Wilson, Ada" {
		t.Errorf("quoted author = %q", got)
	}
}

func TestBuildCaseSensitiveKeys(t *testing.T) {
	ix, err := Build("@article{Smith2020, year = {2020}}\n@article{smith2020, year = {2020}}\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ix.Get("Smith2020"); !ok {
		t.Error("Get(Smith2020) not found")
	}
	if _, ok := ix.Get("SMITH2020"); ok {
		t.Error("lookup must be case-sensitive")
	}
}

func TestBuildDuplicateKey(t *testing.T) {
	src := "@article{dup2020, year = {2020}}\n@book{dup2020, year = {2021}}\n"
	_, err := Build(src)
	var dupErr *DuplicateKeyError
	if !errors.As(err, &dupErr) {
		t.Fatalf("err = %v, want *DuplicateKeyError", err)
	}
	if dupErr.Key != "dup2020" {
		t.Errorf("Key = %q, want %q", dupErr.Key, "dup2020")
	}
}

func TestBuildParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
		reason   string
	}{
		{
			name:     "unterminated braces",
			src:      "@article{a2020,\n  title = {never closed\n",
			wantLine: 2,
			reason:   "unterminated braces",
		},
		{
			name:     "missing key",
			src:      "@article{,\n  year = {2020},\n}\n",
			wantLine: 1,
			reason:   "missing citation key",
		},
		{
			name:     "missing entry type",
			src:      "@{a2020, year = {2020}}",
			wantLine: 1,
			reason:   "missing entry type",
		},
		{
			name:     "missing equals",
			src:      "@article{a2020,\n  year {2020},\n}\n",
			wantLine: 2,
			reason:   "expected '='",
		},
		{
			name:     "unterminated quote",
			src:      "@article{a2020,\n  title = \"no end\n",
			wantLine: 2,
			reason:   "unterminated quoted value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.src)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if parseErr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", parseErr.Line, tt.wantLine)
			}
			if !strings.Contains(parseErr.Reason, tt.reason) {
				t.Errorf("Reason = %q, want substring %q", parseErr.Reason, tt.reason)
			}
		})
	}
}

func TestBuildSkipsNonEntryRecords(t *testing.T) {
	src := `@comment{this is {nested} commentary}
@preamble{"\newcommand{\noop}[1]{#1}"}
@string{lancet = {The Lancet}}
@article{real2021, year = {2021}}
`
	ix, err := Build(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
	if _, ok := ix.Get("real2021"); !ok {
		t.Error("Get(real2021) not found")
	}
}

func TestBuildIgnoresInterRecordText(t *testing.T) {
	src := "Some stray prose.\n@misc{a1, note = {x}}\nmore prose\n@misc{b2, note = {y}}\n"
	ix, err := Build(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ix.Keys(); len(got) != 2 || got[0] != "a1" || got[1] != "b2" {
		t.Errorf("Keys() = %v, want [a1 b2]", got)
	}
}

func TestBuildEmptySource(t *testing.T) {
	ix, err := Build("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ix.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ix.Len())
	}
	if _, ok := ix.Get("anything"); ok {
		t.Error("Get on empty index must miss")
	}
}

func TestBuildTrailingComma(t *testing.T) {
	ix, err := Build("@article{a2020,\n  year = {2020},\n}\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, _ := ix.Get("a2020")
	if e.Field("year") != "2020" {
		t.Errorf("year = %q, want 2020", e.Field("year"))
	}
}

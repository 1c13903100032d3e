// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolchain wraps the external tools at the pipeline boundary:
// pandoc for DOCX-to-Markdown conversion and a LaTeX engine for PDF
// compilation. The engine itself never touches these; they run before and
// after assembly as black boxes.
package toolchain

import (
	"fmt"
	"io"
	"os/exec"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, dir string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args []string, dir string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Compiler runs a LaTeX engine on a generated .tex source. Engines differ
// only in binary name and argument shape.
type Compiler struct {
	bin  string
	args func(texFile string) []string
	exec executor
}

// Name returns the compiler binary name.
func (c *Compiler) Name() string { return c.bin }

// Compile runs the engine on texFile inside dir, streaming tool output to w.
func (c *Compiler) Compile(dir, texFile string, w io.Writer) error {
	if err := c.exec.Run(c.bin, c.args(texFile), dir, w, w); err != nil {
		return fmt.Errorf("compiling %s with %s: %w", texFile, c.bin, err)
	}
	return nil
}

func newCompilers(exec executor) []*Compiler {
	return []*Compiler{
		{
			bin:  "tectonic",
			args: func(tex string) []string { return []string{tex} },
			exec: exec,
		},
		{
			bin:  "latexmk",
			args: func(tex string) []string { return []string{"-pdf", "-interaction=nonstopmode", tex} },
			exec: exec,
		},
		{
			bin:  "pdflatex",
			args: func(tex string) []string { return []string{"-interaction=nonstopmode", tex} },
			exec: exec,
		},
	}
}

// DetectCompiler tries tectonic, then latexmk, then pdflatex. Returns an
// error when none is on PATH.
func DetectCompiler(preferred string) (*Compiler, error) {
	return detectCompiler(defaultExec, preferred)
}

func detectCompiler(exec executor, preferred string) (*Compiler, error) {
	candidates := newCompilers(exec)

	if preferred != "" {
		for _, c := range candidates {
			if c.bin == preferred {
				if _, err := exec.LookPath(c.bin); err != nil {
					return nil, fmt.Errorf("requested LaTeX engine %s not found on PATH: %w", preferred, err)
				}
				return c, nil
			}
		}
		return nil, fmt.Errorf("unknown LaTeX engine %q (want tectonic, latexmk, or pdflatex)", preferred)
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c.bin); err == nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no LaTeX engine available: none of tectonic, latexmk, pdflatex found on PATH")
}

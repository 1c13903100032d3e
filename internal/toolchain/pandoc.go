// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

import (
	"bytes"
	"fmt"
)

// Pandoc converts DOCX manuscripts to Markdown by invoking the pandoc
// binary. The engine consumes its output as an opaque string.
type Pandoc struct {
	bin  string
	exec executor
}

// NewPandoc locates pandoc on PATH, or at binPath when given.
func NewPandoc(binPath string) (*Pandoc, error) {
	return newPandoc(defaultExec, binPath)
}

func newPandoc(exec executor, binPath string) (*Pandoc, error) {
	bin := binPath
	if bin == "" {
		bin = "pandoc"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("pandoc not found on PATH: %w", err)
	}
	return &Pandoc{bin: bin, exec: exec}, nil
}

// Convert runs pandoc on docxPath and returns the Markdown text. Line
// wrapping is disabled so the splitter sees one line per paragraph.
func (p *Pandoc) Convert(docxPath string) (string, error) {
	var out, errOut bytes.Buffer
	args := []string{docxPath, "--to", "gfm", "--wrap=none", "--output", "-"}
	if err := p.exec.Run(p.bin, args, "", &out, &errOut); err != nil {
		return "", fmt.Errorf("converting %s with pandoc: %w (%s)", docxPath, err, bytes.TrimSpace(errOut.Bytes()))
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("pandoc produced empty output for %s", docxPath)
	}
	return out.String(), nil
}

package action

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Mode identifies the document context a citation is inserted into.
type Mode string

const (
	// ModeNone falls back to the bare citation key.
	ModeNone Mode = ""
	// ModeLaTeX wraps the key in a \cite command.
	ModeLaTeX Mode = "latex"
	// ModeOrg wraps the key in org-cite markup.
	ModeOrg Mode = "org"
)

// ModeForFile infers the citation mode from a file's extension.
func ModeForFile(path string) Mode {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tex", ".latex", ".sty":
		return ModeLaTeX
	case ".org":
		return ModeOrg
	default:
		return ModeNone
	}
}

// Citation formats the citation text for a key in the given mode.
func Citation(key string, mode Mode) string {
	switch mode {
	case ModeLaTeX:
		return fmt.Sprintf(`\cite{%s}`, key)
	case ModeOrg:
		return fmt.Sprintf("[cite:@%s]", key)
	default:
		return key
	}
}

// Cite selects an entry and writes its formatted citation to w, the
// insertion point of the calling context. Purely textual: no file I/O.
// The boolean is false when the user cancelled and nothing was written.
func (p *Pipeline) Cite(w io.Writer, mode Mode, opts Options) (bool, error) {
	e, picked, err := p.pick(opts)
	if err != nil || !picked {
		return picked, err
	}

	if _, err := io.WriteString(w, Citation(e.Key, mode)); err != nil {
		return true, fmt.Errorf("inserting citation: %w", err)
	}
	return true, nil
}

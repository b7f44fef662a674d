package action

import (
	"github.com/refdex/refdex/internal/document"
)

// Open selects an entry, resolves its document file, and launches the
// external viewer without waiting for it. When no document exists in any of
// the probed extensions the error identifies the citation key and no
// process is spawned.
func (p *Pipeline) Open(opts Options) error {
	e, picked, err := p.pick(opts)
	if err != nil || !picked {
		return err
	}

	path, err := document.Resolve(p.Config.DocsDir, e.Key)
	if err != nil {
		return err
	}

	return p.Opener.Open(path)
}

// DOI selects an entry, resolves its document, and extracts the DOI from
// its first pages. The boolean is false when the user cancelled.
func (p *Pipeline) DOI(opts Options) (string, bool, error) {
	e, picked, err := p.pick(opts)
	if err != nil || !picked {
		return "", picked, err
	}

	path, err := document.Resolve(p.Config.DocsDir, e.Key)
	if err != nil {
		return "", true, err
	}

	doi, err := document.ExtractDOI(path)
	if err != nil {
		return "", true, err
	}
	return doi, true, nil
}

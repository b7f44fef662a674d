package action

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/refdex/refdex/internal/bib"
	"github.com/refdex/refdex/internal/config"
)

// noteTemplate is the front matter for a fresh note: the title as heading,
// the author in the property drawer.
const noteTemplate = `* %s
:PROPERTIES:
:AUTHOR: %s
:END:

`

// Note selects an entry and opens its note, creating the file with templated
// front matter when it does not exist yet. An existing note is opened
// unmodified.
func (p *Pipeline) Note(opts Options) error {
	e, picked, err := p.pick(opts)
	if err != nil || !picked {
		return err
	}

	path := filepath.Join(p.Config.NotesDir, e.Key+config.NoteExt)
	if err := createNote(path, e); err != nil {
		return err
	}

	return p.Editor.Edit(path)
}

// createNote writes the note template if, and only if, the file does not
// already exist. O_EXCL makes the check-then-create atomic, so re-running
// the action never overwrites content.
func createNote(path string, e bib.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating notes directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("creating note: %w", err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, noteTemplate, e.Title, e.Author)
	if err != nil {
		return fmt.Errorf("writing note template: %w", err)
	}
	return nil
}

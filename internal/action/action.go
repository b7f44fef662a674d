// Package action implements the post-selection behaviors: note, cite, open.
//
// Every action runs the same pipeline: reload the bibliography, build the
// display index, let the user narrow to one entry, then apply the
// action-specific continuation. Nothing is cached across invocations.
package action

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/refdex/refdex/internal/bib"
	"github.com/refdex/refdex/internal/bibtex"
	"github.com/refdex/refdex/internal/chooser"
	"github.com/refdex/refdex/internal/config"
	"github.com/refdex/refdex/internal/document"
	"github.com/refdex/refdex/internal/editor"
	"github.com/refdex/refdex/internal/index"
)

// Parser turns bibliography files into an entry store.
type Parser func(paths []string, fields []string) (bib.Store, error)

// Opener launches an external viewer for a resolved document path.
type Opener interface {
	Open(path string) error
}

// Editor opens a note file in the host editing surface.
type Editor interface {
	Edit(path string) error
}

// Pipeline holds the configuration and injected collaborators shared by all
// actions.
type Pipeline struct {
	Config  *config.Config
	Parse   Parser
	Chooser chooser.Chooser
	Opener  Opener
	Editor  Editor
}

// New wires a pipeline with the real collaborators.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		Config:  cfg,
		Parse:   bibtex.Parse,
		Chooser: chooser.NewTUI(),
		Opener:  document.NewOpener(cfg.Opener, cfg.LogFile),
		Editor:  editor.New(cfg.Editor),
	}
}

// Options are call-scoped overrides. They layer over the configuration for
// one invocation and are never written back.
type Options struct {
	// SearchField overrides the configured search field.
	SearchField string
	// AnnotationField overrides the configured annotation field.
	AnnotationField string
	// Key bypasses the chooser and selects the entry directly.
	Key string
}

// pick runs the shared selection pipeline. The second return value is false
// when the user cancelled; cancellation is not an error and must produce no
// side effects in the caller.
func (p *Pipeline) pick(opts Options) (bib.Entry, bool, error) {
	searchField := p.Config.SearchField
	if opts.SearchField != "" {
		searchField = opts.SearchField
	}
	annotationField := p.Config.AnnotationField
	if opts.AnnotationField != "" {
		annotationField = opts.AnnotationField
	}

	store, err := p.Parse(p.Config.Bibliography, p.Config.Fields)
	if err != nil {
		return bib.Entry{}, false, fmt.Errorf("loading bibliography: %w", err)
	}

	if opts.Key != "" {
		e, ok := store[opts.Key]
		if !ok {
			return bib.Entry{}, false, unknownKeyError(store, opts.Key)
		}
		return e, true, nil
	}

	idx := index.Build(store, searchField)
	label, err := p.Chooser.Choose("Bib entry: ", idx.Labels(), func(candidate string) string {
		return idx.Annotation(candidate, annotationField)
	})
	if err != nil {
		if errors.Is(err, chooser.ErrCancelled) {
			return bib.Entry{}, false, nil
		}
		return bib.Entry{}, false, err
	}

	// A label that fails to resolve degrades to an empty entry; downstream
	// field lookups return empty strings rather than crashing.
	return idx[label], true, nil
}

// unknownKeyError builds the error for a --key miss, suggesting the nearest
// known citation key.
func unknownKeyError(store bib.Store, key string) error {
	if suggestion := nearestKey(store, key); suggestion != "" {
		return fmt.Errorf("unknown citation key %q (did you mean %q?)", key, suggestion)
	}
	return fmt.Errorf("unknown citation key %q", key)
}

// nearestKey returns the known key closest to the given one by edit
// distance, or "" when nothing is plausibly close.
func nearestKey(store bib.Store, key string) string {
	best := ""
	bestDist := len(key)/2 + 1 // further than half the key is not a typo
	for _, k := range store.Keys() {
		dist := levenshtein.ComputeDistance(key, k)
		if dist < bestDist {
			best = k
			bestDist = dist
		}
	}
	return best
}

// Package chooser provides the interactive narrowing selection capability.
package chooser

import "errors"

// ErrCancelled is returned when the user aborts selection. Callers treat it
// as a clean end of the pipeline, not a failure.
var ErrCancelled = errors.New("selection cancelled")

// AnnotateFunc produces the annotation text displayed beside a candidate.
// It must not mutate or filter the candidate set.
type AnnotateFunc func(candidate string) string

// Chooser presents candidates to the user and returns the chosen one.
// Implementations return ErrCancelled when the user aborts.
type Chooser interface {
	Choose(prompt string, candidates []string, annotate AnnotateFunc) (string, error)
}

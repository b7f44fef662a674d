// Package index builds the display index used for entry selection.
package index

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/refdex/refdex/internal/bib"
)

// Column widths for the display label. The label must stay column-aligned
// when listed in a fixed-width terminal, and every differing choice must
// still keep labels unique and sortable by column.
const (
	SearchWidth     = 55 // search field, truncated and left-padded
	TypeWidth       = 7  // entry type, truncated
	TypePad         = 8  // entry type, left-padded
	AnnotationWidth = 15 // annotation field, truncated
)

// Index maps display labels to their entries. It is rebuilt from scratch on
// every action invocation; nothing is cached across runs.
type Index map[string]bib.Entry

// Trim returns the first n characters of s, or s unchanged when it is
// shorter. Truncation counts runes, never splitting a multi-byte character.
// No ellipsis marker is added.
func Trim(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Label synthesizes the display label for an entry: the search field padded
// to a fixed width, the entry type, and the raw citation key, tab-separated.
// The key segment keeps labels unique even when two entries share identical
// search-field and type values.
func Label(e bib.Entry, searchField string) string {
	return fmt.Sprintf("%*s\t%*s\t%s",
		SearchWidth, Trim(e.Field(searchField), SearchWidth),
		TypePad, Trim(e.Type, TypeWidth),
		e.Key)
}

// Build computes the display index for every entry in the store. A missing
// search field yields an empty first segment; one malformed entry never
// aborts indexing of the rest.
func Build(store bib.Store, searchField string) Index {
	idx := make(Index, len(store))
	for _, e := range store {
		idx[Label(e, searchField)] = e
	}
	return idx
}

// Labels returns the index labels in sorted order.
func (idx Index) Labels() []string {
	labels := make([]string, 0, len(idx))
	for l := range idx {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Annotation returns the annotation text shown beside a candidate label:
// the configured field of the label's entry, truncated for display. Unknown
// labels annotate as empty rather than failing.
func (idx Index) Annotation(label, annotationField string) string {
	e, ok := idx[label]
	if !ok {
		return ""
	}
	return Trim(e.Field(annotationField), AnnotationWidth)
}

// Package bib defines the core domain types for bibliography entries.
package bib

import "sort"

// Reserved pseudo-field names. The parser reports the entry type and the
// citation key under these names alongside the regular fields.
const (
	FieldKey  = "key"
	FieldType = "type"
)

// Default field names assumed present by the rest of the system.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
)

// Entry represents one bibliographic record. Entries are immutable once
// loaded; they are rebuilt from scratch on every lookup.
type Entry struct {
	// Identity
	Key  string // Citation key, unique within one load
	Type string // BibTeX entry type (article, book, ...)

	// Common metadata
	Title  string
	Author string

	// Extra holds every other extracted field by name.
	Extra map[string]string
}

// Field returns the value of the named field, resolving the reserved
// pseudo-fields and the named metadata fields before falling back to Extra.
// A missing field yields the empty string, never an error.
func (e Entry) Field(name string) string {
	switch name {
	case FieldKey:
		return e.Key
	case FieldType:
		return e.Type
	case FieldTitle:
		return e.Title
	case FieldAuthor:
		return e.Author
	default:
		return e.Extra[name]
	}
}

// Store holds all entries from one load, keyed by citation key.
type Store map[string]Entry

// Keys returns the citation keys in sorted order.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package bibtex parses BibTeX databases into bibliography entries.
//
// The parser is deliberately line-oriented: it recognizes entry starts and
// simple field assignments with a pair of regexes rather than implementing
// the full BibTeX grammar. Malformed lines are skipped so one bad entry
// cannot abort a whole load.
package bibtex

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/refdex/refdex/internal/bib"
)

// Match entry start: @type{key,
var entryStartRegex = regexp.MustCompile(`^\s*@(\w+)\s*[\{(]\s*([^,\s]+)\s*,`)

// Match field start: name = value (value may continue on following lines)
var fieldStartRegex = regexp.MustCompile(`^\s*(\w+)\s*=\s*(.*)$`)

// Entry types that carry no citable entry.
var skipTypes = map[string]bool{
	"comment":  true,
	"preamble": true,
	"string":   true,
}

// Parse reads the given BibTeX files and returns a store of entries.
//
// fields names the non-core fields to retain; title and author are always
// extracted. An empty list retains every field. When the same citation key
// appears in multiple files, the last occurrence wins.
func Parse(paths []string, fields []string) (bib.Store, error) {
	store := make(bib.Store)

	var keep map[string]bool
	if len(fields) > 0 {
		keep = make(map[string]bool, len(fields))
		for _, f := range fields {
			keep[strings.ToLower(f)] = true
		}
		keep[bib.FieldTitle] = true
		keep[bib.FieldAuthor] = true
	}

	for _, path := range paths {
		if err := parseFile(path, keep, store); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	return store, nil
}

func parseFile(path string, keep map[string]bool, store bib.Store) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *bib.Entry

	flush := func() {
		if current != nil && current.Key != "" {
			store[current.Key] = *current
		}
		current = nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		if matches := entryStartRegex.FindStringSubmatch(line); len(matches) > 2 {
			flush()
			entryType := strings.ToLower(matches[1])
			if skipTypes[entryType] {
				continue
			}
			current = &bib.Entry{
				Key:   strings.TrimSpace(matches[2]),
				Type:  entryType,
				Extra: make(map[string]string),
			}
			continue
		}

		if current == nil {
			continue
		}

		matches := fieldStartRegex.FindStringSubmatch(line)
		if len(matches) < 3 {
			continue
		}
		name := strings.ToLower(matches[1])
		raw := matches[2]

		// Braced values may span lines; keep reading until balanced.
		for braceDepth(raw) > 0 && scanner.Scan() {
			raw += " " + strings.TrimSpace(scanner.Text())
		}

		setField(current, name, cleanValue(raw), keep)
	}
	flush()

	return scanner.Err()
}

// setField assigns a parsed field to the entry, routing title and author to
// their named slots and everything else to the Extra map.
func setField(e *bib.Entry, name, value string, keep map[string]bool) {
	switch name {
	case bib.FieldTitle:
		e.Title = value
	case bib.FieldAuthor:
		e.Author = value
	default:
		if keep == nil || keep[name] {
			e.Extra[name] = value
		}
	}
}

// braceDepth returns open minus closed braces in s, ignoring escaped braces.
func braceDepth(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}

// cleanValue strips the surrounding delimiters and trailing punctuation from
// a raw field value: {value}, "value", or a bare word.
func cleanValue(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ",")
	s = strings.TrimSpace(s)

	if len(s) >= 2 {
		if s[0] == '{' && s[len(s)-1] == '}' {
			s = s[1 : len(s)-1]
		} else if s[0] == '"' && s[len(s)-1] == '"' {
			s = s[1 : len(s)-1]
		}
	}

	// Collapse internal runs of whitespace left by line joins.
	s = strings.Join(strings.Fields(s), " ")

	// Inner braces protect capitalization in BibTeX; drop them for display.
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")

	return strings.TrimSpace(s)
}

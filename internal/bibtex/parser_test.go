package bibtex

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBib(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestParseBasicEntry(t *testing.T) {
	path := writeBib(t, "refs.bib", `
@article{doe2020,
  title = {A Study of Things},
  author = {Doe, Jane and Roe, Richard},
  journal = {Journal of Things},
  year = {2020},
}
`)

	store, err := Parse([]string{path}, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(store) != 1 {
		t.Fatalf("Parse() returned %d entries, want 1", len(store))
	}

	e, ok := store["doe2020"]
	if !ok {
		t.Fatal("entry doe2020 not found")
	}
	if e.Type != "article" {
		t.Errorf("Type = %q, want %q", e.Type, "article")
	}
	if e.Title != "A Study of Things" {
		t.Errorf("Title = %q, want %q", e.Title, "A Study of Things")
	}
	if e.Author != "Doe, Jane and Roe, Richard" {
		t.Errorf("Author = %q", e.Author)
	}
	if e.Extra["year"] != "2020" {
		t.Errorf("Extra[year] = %q, want %q", e.Extra["year"], "2020")
	}
}

func TestParseQuotedAndBareValues(t *testing.T) {
	path := writeBib(t, "refs.bib", `
@book{smith19,
  title = "Quoted Title",
  year = 2019,
}
`)

	store, err := Parse([]string{path}, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	e := store["smith19"]
	if e.Title != "Quoted Title" {
		t.Errorf("Title = %q, want %q", e.Title, "Quoted Title")
	}
	if e.Extra["year"] != "2019" {
		t.Errorf("Extra[year] = %q, want %q", e.Extra["year"], "2019")
	}
}

func TestParseMultilineValue(t *testing.T) {
	path := writeBib(t, "refs.bib", `
@article{lee2021,
  title = {A Title That
           Spans Two Lines},
  author = {Lee, Ana},
}
`)

	store, err := Parse([]string{path}, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := store["lee2021"].Title; got != "A Title That Spans Two Lines" {
		t.Errorf("Title = %q", got)
	}
}

func TestParseProtectedCapitals(t *testing.T) {
	path := writeBib(t, "refs.bib", `
@article{dna90,
  title = {The {DNA} Story},
}
`)

	store, err := Parse([]string{path}, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := store["dna90"].Title; got != "The DNA Story" {
		t.Errorf("Title = %q, want %q", got, "The DNA Story")
	}
}

func TestParseSkipsNonEntries(t *testing.T) {
	path := writeBib(t, "refs.bib", `
@comment{this is not an entry}
@string{jt = "Journal of Things"}
@preamble{"\newcommand{\x}{y}"}
@misc{only1,
  title = {Real Entry},
}
`)

	store, err := Parse([]string{path}, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(store) != 1 {
		t.Fatalf("Parse() returned %d entries, want 1: %v", len(store), store.Keys())
	}
	if _, ok := store["only1"]; !ok {
		t.Error("entry only1 not found")
	}
}

func TestParseMalformedLinesDoNotAbort(t *testing.T) {
	path := writeBib(t, "refs.bib", `
this line is garbage
@article{good1,
  title = {Fine},
  = broken =
}
@article{good2,
  title = {Also Fine},
}
`)

	store, err := Parse([]string{path}, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(store) != 2 {
		t.Errorf("Parse() returned %d entries, want 2", len(store))
	}
}

func TestParseFieldFilter(t *testing.T) {
	path := writeBib(t, "refs.bib", `
@article{doe2020,
  title = {T},
  author = {A},
  year = {2020},
  journal = {J},
}
`)

	store, err := Parse([]string{path}, []string{"year"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	e := store["doe2020"]
	if e.Title != "T" || e.Author != "A" {
		t.Error("title/author must always be extracted")
	}
	if e.Extra["year"] != "2020" {
		t.Errorf("Extra[year] = %q, want %q", e.Extra["year"], "2020")
	}
	if _, ok := e.Extra["journal"]; ok {
		t.Error("journal should be filtered out")
	}
}

func TestParseLastFileWins(t *testing.T) {
	first := writeBib(t, "a.bib", `
@article{dup1,
  title = {First},
}
`)
	second := writeBib(t, "b.bib", `
@article{dup1,
  title = {Second},
}
`)

	store, err := Parse([]string{first, second}, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := store["dup1"].Title; got != "Second" {
		t.Errorf("Title = %q, want %q", got, "Second")
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse([]string{"/nonexistent/refs.bib"}, nil)
	if err == nil {
		t.Fatal("Parse() expected error for missing file")
	}
}

func TestParseEmptyStoreHasNoKeys(t *testing.T) {
	path := writeBib(t, "empty.bib", "")

	store, err := Parse([]string{path}, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(store) != 0 {
		t.Errorf("Parse() returned %d entries, want 0", len(store))
	}
	if keys := store.Keys(); len(keys) != 0 {
		t.Errorf("Keys() = %v, want empty", keys)
	}
}

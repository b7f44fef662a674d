package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError writes an error message to stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// ListEntry is one row of the list command's JSON output.
type ListEntry struct {
	Key    string `json:"key"`
	Type   string `json:"type"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// Package document handles document path resolution and opening.
package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// Extensions is probed in order; the first match wins. The ordering is a
// compatibility contract, not incidental.
var Extensions = []string{"pdf", "epub", "doc", "docx"}

// NotFoundError reports that no document exists for a citation key in any
// of the probed extensions.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no document found for %s (tried %v)", e.Key, Extensions)
}

// Resolve probes dir for <key>.<ext> across the fixed extension list and
// returns the first existing path. Returns a NotFoundError when none of
// the extensions resolve.
func Resolve(dir, key string) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, key+"."+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", &NotFoundError{Key: key}
}

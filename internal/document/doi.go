package document

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// doiScanPages bounds how many pages are scanned for a DOI. Publisher
// layouts put it on the first page; a couple more covers cover sheets.
const doiScanPages = 3

// A DOI is 10.<4-9 digits>/<suffix>. The suffix must end on an
// alphanumeric so sentence punctuation around the identifier is never
// captured.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]*[a-zA-Z0-9]`)

// ExtractDOI scans the leading pages of a PDF document for a DOI. Returns
// an empty string (not an error) when none is found. Only PDF documents
// are supported.
func ExtractDOI(path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", fmt.Errorf("DOI extraction supports pdf only: %s", path)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	last := min(r.NumPage(), doiScanPages)
	for n := 1; n <= last; n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // unextractable page, keep scanning
		}
		if doi := findDOI(text); doi != "" {
			return doi, nil
		}
	}

	return "", nil
}

// findDOI returns the first DOI in text, or "".
func findDOI(text string) string {
	return doiPattern.FindString(text)
}

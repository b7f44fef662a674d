package chooser

import (
	"sort"
	"strings"
)

// pickerState is the pure narrowing state machine behind the TUI: a query,
// the candidates that survive it, and a cursor. It holds no terminal state
// so it can be driven headlessly in tests.
type pickerState struct {
	candidates []string
	filtered   []string
	query      string
	cursor     int
}

type scoredCandidate struct {
	candidate string
	score     int
}

func newPickerState(candidates []string) *pickerState {
	p := &pickerState{candidates: append([]string(nil), candidates...)}
	p.rebuildFiltered()
	return p
}

func (p *pickerState) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

func (p *pickerState) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *pickerState) MoveDown() {
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

// Current returns the candidate under the cursor, or "" when the filter
// matches nothing.
func (p *pickerState) Current() string {
	if len(p.filtered) == 0 {
		return ""
	}
	return p.filtered[p.cursor]
}

func (p *pickerState) rebuildFiltered() {
	q := strings.TrimSpace(p.query)

	scored := make([]scoredCandidate, 0, len(p.candidates))
	for _, c := range p.candidates {
		matched, score := fuzzyMatchScore(c, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredCandidate{candidate: c, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].candidate < scored[j].candidate
	})

	p.filtered = p.filtered[:0]
	for _, s := range scored {
		p.filtered = append(p.filtered, s.candidate)
	}

	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// fuzzyMatchScore reports whether query is a subsequence of candidate and
// scores the match: prefix matches and adjacent runs rank higher, exact
// matches highest.
func fuzzyMatchScore(candidate, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	candidateLower := strings.ToLower(candidate)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(candidateLower); j++ {
			if candidateLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(candidate), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

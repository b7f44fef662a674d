package chooser

import "testing"

func TestFuzzyMatchScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		query     string
		wantMatch bool
	}{
		{"empty query matches", "anything", "", true},
		{"exact match", "doe2020", "doe2020", true},
		{"subsequence match", "doe2020", "d22", true},
		{"case insensitive", "Doe2020", "doe", true},
		{"no match", "doe2020", "xyz", false},
		{"out of order", "abc", "cb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, _ := fuzzyMatchScore(tt.candidate, tt.query)
			if matched != tt.wantMatch {
				t.Errorf("fuzzyMatchScore(%q, %q) = %v, want %v",
					tt.candidate, tt.query, matched, tt.wantMatch)
			}
		})
	}
}

func TestFuzzyMatchScoreRanking(t *testing.T) {
	_, prefix := fuzzyMatchScore("doe2020", "doe")
	_, scattered := fuzzyMatchScore("xdxoxe2020", "doe")
	if prefix <= scattered {
		t.Errorf("prefix score %d should beat scattered score %d", prefix, scattered)
	}

	_, exact := fuzzyMatchScore("doe", "doe")
	if exact <= prefix {
		t.Errorf("exact score %d should beat prefix score %d", exact, prefix)
	}
}

func TestPickerNarrowing(t *testing.T) {
	p := newPickerState([]string{"adams2019", "doe2020", "smith19"})

	if len(p.filtered) != 3 {
		t.Fatalf("initial filtered = %d, want 3", len(p.filtered))
	}

	p.SetQuery("doe")
	if len(p.filtered) != 1 {
		t.Fatalf("filtered = %d, want 1", len(p.filtered))
	}
	if p.Current() != "doe2020" {
		t.Errorf("Current() = %q, want %q", p.Current(), "doe2020")
	}

	p.SetQuery("doex")
	if len(p.filtered) != 0 {
		t.Fatalf("filtered = %d, want 0", len(p.filtered))
	}
	if p.Current() != "" {
		t.Errorf("Current() = %q, want empty", p.Current())
	}

	// Widening the query again restores candidates.
	p.SetQuery("")
	if len(p.filtered) != 3 {
		t.Fatalf("filtered = %d after reset, want 3", len(p.filtered))
	}
}

func TestPickerCursorClamping(t *testing.T) {
	p := newPickerState([]string{"a", "b", "c"})

	p.MoveUp()
	if p.cursor != 0 {
		t.Errorf("cursor = %d after MoveUp at top, want 0", p.cursor)
	}

	p.MoveDown()
	p.MoveDown()
	p.MoveDown()
	if p.cursor != 2 {
		t.Errorf("cursor = %d after MoveDown past end, want 2", p.cursor)
	}

	// Narrowing below the cursor pulls it back in range.
	p.SetQuery("a")
	if p.cursor != 0 {
		t.Errorf("cursor = %d after narrowing, want 0", p.cursor)
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name      string
		cursor    int
		total     int
		wantStart int
		wantEnd   int
	}{
		{"fits entirely", 0, 10, 0, 10},
		{"cursor at top", 0, 100, 0, maxVisible},
		{"cursor at bottom", 99, 100, 100 - maxVisible, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleWindow(tt.cursor, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleWindow(%d, %d) = (%d, %d), want (%d, %d)",
					tt.cursor, tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
			if tt.cursor < start || tt.cursor >= end {
				t.Errorf("cursor %d outside window [%d, %d)", tt.cursor, start, end)
			}
		})
	}
}

package bib

import "testing"

func TestEntryField(t *testing.T) {
	e := Entry{
		Key:    "doe2020",
		Type:   "article",
		Title:  "A Study",
		Author: "Doe, Jane",
		Extra:  map[string]string{"year": "2020"},
	}

	tests := []struct {
		field string
		want  string
	}{
		{FieldKey, "doe2020"},
		{FieldType, "article"},
		{FieldTitle, "A Study"},
		{FieldAuthor, "Doe, Jane"},
		{"year", "2020"},
		{"journal", ""},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := e.Field(tt.field); got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestEntryFieldZeroValue(t *testing.T) {
	var e Entry
	if got := e.Field(FieldTitle); got != "" {
		t.Errorf("Field(title) on zero entry = %q, want empty", got)
	}
	if got := e.Field("anything"); got != "" {
		t.Errorf("Field(anything) on zero entry = %q, want empty", got)
	}
}

func TestStoreKeys(t *testing.T) {
	s := Store{
		"zimmer2021": {Key: "zimmer2021"},
		"adams2019":  {Key: "adams2019"},
		"doe2020":    {Key: "doe2020"},
	}

	keys := s.Keys()
	want := []string{"adams2019", "doe2020", "zimmer2021"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

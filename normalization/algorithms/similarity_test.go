package algorithms

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1       string
		s2       string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"ab", "ac", 1},
		{"ab", "xy", 2},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		// Сравнение по кодовым точкам, не по байтам
		{"café", "cafe", 1},
		{"ромашка", "ромашки", 1},
		{"ромашка", "", 7},
	}

	for _, tt := range tests {
		if got := LevenshteinDistance(tt.s1, tt.s2); got != tt.expected {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.expected)
		}
	}
}

func TestLevenshteinDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"acme", "acmi"},
		{"", "abc"},
	}

	for _, pair := range pairs {
		forward := LevenshteinDistance(pair[0], pair[1])
		backward := LevenshteinDistance(pair[1], pair[0])
		if forward != backward {
			t.Errorf("distance not symmetric for (%q, %q): %d vs %d", pair[0], pair[1], forward, backward)
		}
	}
}

func TestLevenshteinSimilarity(t *testing.T) {
	if got := LevenshteinSimilarity("acme", "acme"); got != 1.0 {
		t.Errorf("similarity of identical strings = %f, want 1.0", got)
	}
	if got := LevenshteinSimilarity("", ""); got != 1.0 {
		t.Errorf("similarity of empty strings = %f, want 1.0", got)
	}
	if got := LevenshteinSimilarity("ab", "xy"); got != 0.0 {
		t.Errorf("similarity of disjoint strings = %f, want 0.0", got)
	}

	got := LevenshteinSimilarity("acme", "acmi")
	if got != 0.75 {
		t.Errorf("LevenshteinSimilarity(%q, %q) = %f, want 0.75", "acme", "acmi", got)
	}
}

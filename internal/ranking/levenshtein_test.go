package ranking

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"stripe", "stripe", 0},
		{"stripe", "", 6},
		{"", "figma", 5},
		{"stripe", "strape", 1},
		{"stripe", "stripes", 1},
		{"kitten", "sitting", 3},
		{"notion", "motion", 1},
	}

	for _, tt := range tests {
		if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

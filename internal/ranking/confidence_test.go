package ranking

import "testing"

func TestSearchConfidence(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		query  string
		want   float64
	}{
		{"no scores", nil, "stripe", 0},
		{"single dominant score", []float64{18}, "stripe", 0.9},
		{"top tier with strong pair", []float64{12, 8}, "payments", 1.0}, // 0.9 + 0.1 multi-strong, clamped
		{"mid tier", []float64{6, 2}, "payments", 0.75},                  // 0.6 + 0.075*(6-4)
		{"weak tail does not drag tier", []float64{6, 0.5}, "payments", 0.75},
		{"low tier", []float64{2}, "payments", 0.33},       // 0.2 + 0.13*1
		{"sub one score", []float64{0.5}, "payments", 0.1}, // 0.2 * 0.5
		{
			name:   "complex query weak matches halved",
			scores: []float64{2},
			query:  "ai powered fitness tracking marketplace",
			want:   0.165, // (0.2 + 0.13) * 0.5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchConfidence(tt.scores, tt.query)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("SearchConfidence(%v, %q) = %v, want %v", tt.scores, tt.query, got, tt.want)
			}
		})
	}
}

func TestSearchConfidenceMultiStrongBonus(t *testing.T) {
	base := SearchConfidence([]float64{5, 1}, "payments")
	boosted := SearchConfidence([]float64{5, 3}, "payments")
	if boosted <= base {
		t.Errorf("two strong candidates should lift confidence: base=%v boosted=%v", base, boosted)
	}
}

package ranking

import (
	"testing"

	"github.com/startwise/startwise/internal/models"
)

func record(name, desc string, categories ...string) *models.StartupRecord {
	return &models.StartupRecord{
		Name:        name,
		Description: desc,
		Source:      "YC",
		Categories:  categories,
	}
}

func TestScoreExactNameMatch(t *testing.T) {
	s := NewRelevanceScorer(nil)

	stripe := record("Stripe", "Online payment processing platform for internet businesses", "FinTech")
	other := record("Acme Analytics", "Dashboards for warehouse metrics", "SaaS")

	tokens := []string{"stripe"}
	stripeScore := s.Score(stripe, tokens, "Stripe")
	otherScore := s.Score(other, tokens, "Stripe")

	if stripeScore <= otherScore {
		t.Errorf("exact name match should dominate: stripe=%v other=%v", stripeScore, otherScore)
	}
	// Contains, prefix, and fuzzy all fire on the same token, the phrase
	// bonus lands, and both exact hits trigger the 1.3 multiplier:
	// (8 + 5 + 0.5 + 10) * 1.3.
	if diff := stripeScore - 30.55; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("stripe score = %v, want 30.55", stripeScore)
	}
}

func TestScoreDescriptionOnlyMatchesAreNotExact(t *testing.T) {
	s := NewRelevanceScorer(nil)

	rec := record("DataForge", "etl pipelines and spark clusters", "SaaS")
	score := s.Score(rec, []string{"spark", "clusters"}, "clusters spark")

	// Two description hits at 3 each plus their fuzzy echoes at 0.5. The
	// multi-exact multiplier stays off: only name and phrase hits count
	// as exact.
	if diff := score - 7; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("description-only score = %v, want 7", score)
	}
}

func TestScoreTypoStillRegisters(t *testing.T) {
	s := NewRelevanceScorer(nil)

	rec := record("PayFlow", "invoice pay runs for contractors", "FinTech")
	score := s.Score(rec, []string{"pai"}, "pai")

	// 0.5 fuzzy against "pay", then the no-exact and single-token
	// penalties: 0.5 * 0.1 * 0.05.
	if diff := score - 0.0025; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("typo score = %v, want 0.0025", score)
	}
}

func TestScoreGenericTermSuppression(t *testing.T) {
	s := NewRelevanceScorer(nil)

	rec := record("Acme Analytics", "A platform for warehouse dashboards", "SaaS")
	score := s.Score(rec, []string{"platform"}, "platform startups")

	if score >= 1 {
		t.Errorf("lone generic term scored %v, want < 1", score)
	}
}

func TestScoreCategoryMatch(t *testing.T) {
	s := NewRelevanceScorer(nil)

	rec := record("MediTrack", "Patient scheduling for clinics", "HealthTech")
	with := s.Score(rec, []string{"healthtech"}, "healthtech")
	without := s.Score(rec, []string{"robotics"}, "robotics")

	if with <= without {
		t.Errorf("category match should raise the score: with=%v without=%v", with, without)
	}
}

func TestScoreEmptyTokens(t *testing.T) {
	s := NewRelevanceScorer(nil)
	if got := s.Score(record("Stripe", "Payments"), nil, ""); got != 0 {
		t.Errorf("Score with no tokens = %v, want 0", got)
	}
}

func TestApplyPenalties(t *testing.T) {
	s := NewRelevanceScorer(nil)

	tests := []struct {
		name  string
		score float64
		tally matchTally
		want  float64
	}{
		{
			name:  "mostly generic suppressed",
			score: 10,
			tally: matchTally{tokens: 2, exactMatches: 1, genericMatches: 2, matchedTokens: 2},
			want:  1, // 10 * 0.1
		},
		{
			name:  "weak coverage penalized",
			score: 6,
			tally: matchTally{tokens: 4, exactMatches: 1, matchedTokens: 1},
			want:  1.8, // 6 * 0.3
		},
		{
			name:  "multi exact rewarded",
			score: 10,
			tally: matchTally{tokens: 2, exactMatches: 2, matchedTokens: 2},
			want:  13, // 10 * 1.3
		},
		{
			name:  "no exact weak hit near eliminated",
			score: 1.5,
			tally: matchTally{tokens: 2, matchedTokens: 1},
			want:  0.15, // 1.5 * 0.1
		},
		{
			name:  "single weak token doubly penalized",
			score: 0.5,
			tally: matchTally{tokens: 1, matchedTokens: 1},
			want:  0.0025, // 0.5 * 0.1 * 0.05
		},
		{
			name:  "strong score untouched",
			score: 9,
			tally: matchTally{tokens: 1, exactMatches: 1, matchedTokens: 1},
			want:  9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.applyPenalties(tt.score, tt.tally)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("applyPenalties(%v, %+v) = %v, want %v", tt.score, tt.tally, got, tt.want)
			}
		})
	}
}

func TestFuzzyEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"stripe", "stripe", true},
		{"stripe", "strape", true},  // one substitution
		{"stripe", "stripes", true}, // length diff 1, no mismatch over shorter
		{"stripe", "shopify", false},
		{"stripe", "str", false}, // length diff 3
	}

	for _, tt := range tests {
		if got := fuzzyEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("fuzzyEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

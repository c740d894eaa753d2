package ranking

import (
	"strings"

	"github.com/startwise/startwise/internal/models"
)

// RelevanceScorer computes a numeric match score between one corpus record
// and an extracted token list. The weights live in ScoringConfig so the
// calibration stays auditable in one place.
type RelevanceScorer struct {
	cfg *ScoringConfig
}

// NewRelevanceScorer creates a scorer with the given config, falling back to
// the calibrated defaults when cfg is nil.
func NewRelevanceScorer(cfg *ScoringConfig) *RelevanceScorer {
	if cfg == nil {
		cfg = DefaultScoringConfig()
	}
	return &RelevanceScorer{cfg: cfg}
}

// matchTally records what happened across the match checks. applyPenalties
// consumes only this struct, which keeps every penalty rule testable with
// synthetic counts instead of full corpus searches.
type matchTally struct {
	tokens         int
	exactMatches   int
	genericMatches int
	matchedTokens  int
}

// Score accumulates additive per-token contributions across name,
// description, and category fields, adds a phrase bonus when the whole raw
// query appears verbatim, then applies the multiplicative penalty cascade.
func (s *RelevanceScorer) Score(record *models.StartupRecord, tokens []string, rawQuery string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	name := strings.ToLower(record.Name)
	desc := strings.ToLower(record.Description)
	cats := strings.ToLower(strings.Join(record.Categories, " "))
	nameWords := strings.Fields(name)

	var score float64
	tally := matchTally{tokens: len(tokens)}

	for _, token := range tokens {
		generic := IsGenericTerm(token)
		matched := false

		// The field checks are independent: a token sitting inside a name
		// word collects the contains, prefix, and fuzzy contributions at once.
		if strings.Contains(name, token) {
			matched = true
			tally.exactMatches++
			score += pick(generic, s.cfg.NameGenericScore, s.cfg.NameMatchScore)
		}
		if anyWordHasPrefix(nameWords, token) {
			matched = true
			score += pick(generic, s.cfg.NamePrefixGeneric, s.cfg.NamePrefixScore)
		}
		if strings.Contains(desc, token) {
			matched = true
			if generic {
				tally.genericMatches++
			}
			score += pick(generic, s.cfg.DescriptionGeneric, s.cfg.DescriptionScore)
		}
		if cats != "" && strings.Contains(cats, token) {
			matched = true
			score += pick(generic, s.cfg.CategoryGenericScore, s.cfg.CategoryScore)
		}
		if fuzzyMatch(token, name) || fuzzyMatch(token, desc) {
			matched = true
			score += pick(generic, s.cfg.FuzzyGenericScore, s.cfg.FuzzyScore)
		}
		if matched {
			tally.matchedTokens++
		}
	}

	phrase := strings.TrimSpace(strings.ToLower(rawQuery))
	if phrase != "" && (strings.Contains(name, phrase) || strings.Contains(desc, phrase)) {
		score += s.cfg.PhraseBonus
		tally.exactMatches++
	}

	return s.applyPenalties(score, tally)
}

// applyPenalties runs the multiplicative adjustment cascade over the raw
// additive score. The cascade suppresses false positives from common words
// while leaving exact brand and category hits heavily rewarded.
func (s *RelevanceScorer) applyPenalties(score float64, t matchTally) float64 {
	if t.tokens == 0 {
		return 0
	}

	if float64(t.genericMatches) >= s.cfg.GenericRatio*float64(t.tokens) {
		score *= s.cfg.GenericPenalty
	}
	if t.tokens > 2 && float64(t.matchedTokens) < s.cfg.WeakCoverageRatio*float64(t.tokens) {
		score *= s.cfg.WeakCoveragePenalty
	}
	if t.exactMatches > 1 {
		score *= s.cfg.MultiExactBonus
	}
	if t.exactMatches == 0 && score < s.cfg.NoExactScoreFloor {
		score *= s.cfg.NoExactPenalty
		if t.tokens == 1 && score < s.cfg.SingleTokenFloor {
			score *= s.cfg.SingleTokenPenalty
		}
	}
	return score
}

func pick(generic bool, genericScore, fullScore float64) float64 {
	if generic {
		return genericScore
	}
	return fullScore
}

func anyWordHasPrefix(words []string, token string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, token) {
			return true
		}
	}
	return false
}

// fuzzyMatch reports whether any word of text nearly equals the token:
// length difference of at most 2 and at most one character mismatch over
// the shorter length, compared position by position.
func fuzzyMatch(token, text string) bool {
	for _, word := range strings.Fields(text) {
		if fuzzyEqual(token, word) {
			return true
		}
	}
	return false
}

func fuzzyEqual(a, b string) bool {
	diff := len(a) - len(b)
	if diff < -2 || diff > 2 {
		return false
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	mismatches := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			mismatches++
			if mismatches > 1 {
				return false
			}
		}
	}
	return true
}

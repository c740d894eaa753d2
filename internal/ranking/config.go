package ranking

// ScoringConfig holds every tunable constant used by the relevance scorer and
// the search orchestrator. The values are calibrated empirically; change them
// and the ranking behaviors the test suite pins down will shift.
type ScoringConfig struct {
	// Per-token additive contributions
	NameMatchScore       float64 `yaml:"name_match_score"`       // default: 8
	NameGenericScore     float64 `yaml:"name_generic_score"`     // default: 2
	NamePrefixScore      float64 `yaml:"name_prefix_score"`      // default: 5
	NamePrefixGeneric    float64 `yaml:"name_prefix_generic"`    // default: 1
	DescriptionScore     float64 `yaml:"description_score"`      // default: 3
	DescriptionGeneric   float64 `yaml:"description_generic"`    // default: 0.5
	CategoryScore        float64 `yaml:"category_score"`         // default: 4
	CategoryGenericScore float64 `yaml:"category_generic_score"` // default: 1
	FuzzyScore           float64 `yaml:"fuzzy_score"`            // default: 0.5
	FuzzyGenericScore    float64 `yaml:"fuzzy_generic_score"`    // default: 0.1
	PhraseBonus          float64 `yaml:"phrase_bonus"`           // default: 10

	// Multiplicative penalties and bonuses
	GenericRatio        float64 `yaml:"generic_ratio"`         // default: 0.7
	GenericPenalty      float64 `yaml:"generic_penalty"`       // default: 0.1
	WeakCoverageRatio   float64 `yaml:"weak_coverage_ratio"`   // default: 0.3
	WeakCoveragePenalty float64 `yaml:"weak_coverage_penalty"` // default: 0.3
	MultiExactBonus     float64 `yaml:"multi_exact_bonus"`     // default: 1.3
	NoExactScoreFloor   float64 `yaml:"no_exact_score_floor"`  // default: 2
	NoExactPenalty      float64 `yaml:"no_exact_penalty"`      // default: 0.1
	SingleTokenFloor    float64 `yaml:"single_token_floor"`    // default: 1
	SingleTokenPenalty  float64 `yaml:"single_token_penalty"`  // default: 0.05

	// Orchestrator-level constants
	CategoryBoost    float64 `yaml:"category_boost"`    // default: 1.5
	DefaultThreshold float64 `yaml:"default_threshold"` // default: 1.0
	WeakTopScore     float64 `yaml:"weak_top_score"`    // default: 2.0
}

// DefaultScoringConfig returns the calibrated default configuration.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		NameMatchScore:       8,
		NameGenericScore:     2,
		NamePrefixScore:      5,
		NamePrefixGeneric:    1,
		DescriptionScore:     3,
		DescriptionGeneric:   0.5,
		CategoryScore:        4,
		CategoryGenericScore: 1,
		FuzzyScore:           0.5,
		FuzzyGenericScore:    0.1,
		PhraseBonus:          10,

		GenericRatio:        0.7,
		GenericPenalty:      0.1,
		WeakCoverageRatio:   0.3,
		WeakCoveragePenalty: 0.3,
		MultiExactBonus:     1.3,
		NoExactScoreFloor:   2,
		NoExactPenalty:      0.1,
		SingleTokenFloor:    1,
		SingleTokenPenalty:  0.05,

		CategoryBoost:    1.5,
		DefaultThreshold: 1.0,
		WeakTopScore:     2.0,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *ScoringConfig) ApplyDefaults() {
	d := DefaultScoringConfig()

	if c.NameMatchScore == 0 {
		c.NameMatchScore = d.NameMatchScore
	}
	if c.NameGenericScore == 0 {
		c.NameGenericScore = d.NameGenericScore
	}
	if c.NamePrefixScore == 0 {
		c.NamePrefixScore = d.NamePrefixScore
	}
	if c.NamePrefixGeneric == 0 {
		c.NamePrefixGeneric = d.NamePrefixGeneric
	}
	if c.DescriptionScore == 0 {
		c.DescriptionScore = d.DescriptionScore
	}
	if c.DescriptionGeneric == 0 {
		c.DescriptionGeneric = d.DescriptionGeneric
	}
	if c.CategoryScore == 0 {
		c.CategoryScore = d.CategoryScore
	}
	if c.CategoryGenericScore == 0 {
		c.CategoryGenericScore = d.CategoryGenericScore
	}
	if c.FuzzyScore == 0 {
		c.FuzzyScore = d.FuzzyScore
	}
	if c.FuzzyGenericScore == 0 {
		c.FuzzyGenericScore = d.FuzzyGenericScore
	}
	if c.PhraseBonus == 0 {
		c.PhraseBonus = d.PhraseBonus
	}
	if c.GenericRatio == 0 {
		c.GenericRatio = d.GenericRatio
	}
	if c.GenericPenalty == 0 {
		c.GenericPenalty = d.GenericPenalty
	}
	if c.WeakCoverageRatio == 0 {
		c.WeakCoverageRatio = d.WeakCoverageRatio
	}
	if c.WeakCoveragePenalty == 0 {
		c.WeakCoveragePenalty = d.WeakCoveragePenalty
	}
	if c.MultiExactBonus == 0 {
		c.MultiExactBonus = d.MultiExactBonus
	}
	if c.NoExactScoreFloor == 0 {
		c.NoExactScoreFloor = d.NoExactScoreFloor
	}
	if c.NoExactPenalty == 0 {
		c.NoExactPenalty = d.NoExactPenalty
	}
	if c.SingleTokenFloor == 0 {
		c.SingleTokenFloor = d.SingleTokenFloor
	}
	if c.SingleTokenPenalty == 0 {
		c.SingleTokenPenalty = d.SingleTokenPenalty
	}
	if c.CategoryBoost == 0 {
		c.CategoryBoost = d.CategoryBoost
	}
	if c.DefaultThreshold == 0 {
		c.DefaultThreshold = d.DefaultThreshold
	}
	if c.WeakTopScore == 0 {
		c.WeakTopScore = d.WeakTopScore
	}
}

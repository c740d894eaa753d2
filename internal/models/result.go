package models

// IntentType labels what kind of question the classifier believes was asked.
type IntentType string

const (
	// IntentStartupRelated marks an in-scope startup or business-analysis query.
	IntentStartupRelated IntentType = "startup_related"
	// IntentNonStartup marks a query outside the startup domain entirely.
	IntentNonStartup IntentType = "non_startup"
	// IntentImpossible marks a query about fictional or physically impossible technology.
	IntentImpossible IntentType = "impossible"
	// IntentAmbiguous marks a query the classifier could not place.
	IntentAmbiguous IntentType = "ambiguous"
	// IntentKnownStartupMissing marks a query that likely names a real company
	// absent from the corpus.
	IntentKnownStartupMissing IntentType = "known_startup_missing"
	// IntentStartupNoMatches marks a valid startup query with no corpus coverage.
	IntentStartupNoMatches IntentType = "startup_related_no_matches"
)

// Search strategy labels describing which code path produced a result.
const (
	StrategyStartupFocused = "startup_focused"
	StrategyHybridFallback = "hybrid_fallback"
)

// Intent is the classifier's verdict for a single query.
type Intent struct {
	Type                IntentType `json:"type"`
	Confidence          float64    `json:"confidence"`
	SuggestedCategories []string   `json:"suggested_categories,omitempty"`
	Reasoning           string     `json:"reasoning,omitempty"`
	DetectedCompany     string     `json:"detected_company,omitempty"`
}

// ScoredCandidate is a StartupRecord annotated with a request-scoped relevance
// score. The score is never serialized; it exists only for ranking.
type ScoredCandidate struct {
	StartupRecord
	Score float64 `json:"-"`
}

// SearchResult is the orchestrator's answer for one query: ranked candidates,
// the classified intent, and a strategy label describing how they were produced.
type SearchResult struct {
	Startups     []*ScoredCandidate `json:"startups"`
	Intent       *Intent            `json:"intent"`
	Strategy     string             `json:"search_strategy"`
	Confidence   float64            `json:"confidence"`
	Reason       string             `json:"reason,omitempty"`
	TotalMatches int                `json:"total_matches"`
}

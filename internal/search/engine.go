// Package search drives query processing: intent triage, corpus scoring,
// fallback routing, prompt construction, and the multi-strategy discovery
// flow.
package search

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/corpus"
	"github.com/startwise/startwise/internal/models"
	"github.com/startwise/startwise/internal/ranking"
)

// Engine orchestrates classification, extraction, scoring, and filtering
// into a single Search call. It holds no per-request state; every request
// captures its own corpus snapshot.
type Engine struct {
	store      *corpus.Store
	classifier *ranking.IntentClassifier
	extractor  *ranking.KeywordExtractor
	scorer     *ranking.RelevanceScorer
	detector   *ranking.CompanyDetector
	cfg        *ranking.ScoringConfig
	logger     *zap.Logger
}

// NewEngine creates an engine over the given store. A nil cfg selects the
// calibrated defaults.
func NewEngine(store *corpus.Store, cfg *ranking.ScoringConfig, logger *zap.Logger) *Engine {
	if cfg == nil {
		cfg = ranking.DefaultScoringConfig()
	}
	return &Engine{
		store:      store,
		classifier: ranking.NewIntentClassifier(),
		extractor:  ranking.NewKeywordExtractor(),
		scorer:     ranking.NewRelevanceScorer(cfg),
		detector:   ranking.NewCompanyDetector(),
		cfg:        cfg,
		logger:     logger,
	}
}

// Search runs the full pipeline for one query. Out-of-scope intents
// short-circuit to a hybrid fallback result; empty and weak result sets are
// routed either to "known startup missing" or "no matches", never an error.
func (e *Engine) Search(q *models.SearchQuery) *models.SearchResult {
	q.Normalize()
	snap := e.store.Snapshot()

	intent := e.classifier.Classify(q.Query)
	e.logger.Debug("query classified",
		zap.String("query", q.Query),
		zap.String("intent", string(intent.Type)),
		zap.Float64("confidence", intent.Confidence))

	switch intent.Type {
	case models.IntentNonStartup:
		return fallbackResult(intent, "Query not related to startup analysis")
	case models.IntentImpossible:
		return fallbackResult(intent, "Query about fictional/impossible technology")
	}

	tokens := e.extractor.Extract(q.Query)

	threshold := q.Threshold
	if threshold <= 0 {
		threshold = e.cfg.DefaultThreshold
	}

	var matched []*models.ScoredCandidate
	for _, rec := range snap.Records {
		score := e.scorer.Score(rec, tokens, q.Query)
		if score > 0 && categoryIntersects(rec.Categories, intent.SuggestedCategories) {
			score *= e.cfg.CategoryBoost
		}
		if score < threshold {
			continue
		}
		if q.CategoryFilter != "" && !rec.HasCategory(q.CategoryFilter) {
			continue
		}
		if q.SourceFilter != "" && rec.Source != q.SourceFilter {
			continue
		}
		matched = append(matched, &models.ScoredCandidate{StartupRecord: *rec, Score: score})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})

	if len(matched) == 0 || matched[0].Score < e.cfg.WeakTopScore {
		return e.noMatchResult(q.Query, intent)
	}

	top := matched
	if len(top) > q.MaxResults {
		top = top[:q.MaxResults]
	}
	scores := make([]float64, len(top))
	for i, c := range top {
		scores[i] = c.Score
	}

	return &models.SearchResult{
		Startups:     top,
		Intent:       intent,
		Strategy:     models.StrategyStartupFocused,
		Confidence:   ranking.SearchConfidence(scores, q.Query),
		TotalMatches: len(matched),
	}
}

// noMatchResult distinguishes a query naming a real company we don't index
// from one that simply has no corpus coverage.
func (e *Engine) noMatchResult(query string, intent *models.Intent) *models.SearchResult {
	if company := e.detector.Detect(query); company != "" {
		missing := *intent
		missing.Type = models.IntentKnownStartupMissing
		missing.DetectedCompany = company
		return &models.SearchResult{
			Startups:   []*models.ScoredCandidate{},
			Intent:     &missing,
			Strategy:   models.StrategyHybridFallback,
			Confidence: 0.2,
			Reason: fmt.Sprintf("%q appears to be a real startup, but it's not in our current database. "+
				"Our database contains primarily Y Combinator and Crunchbase companies, "+
				"but may not include all existing startups.", company),
		}
	}

	noMatch := *intent
	noMatch.Type = models.IntentStartupNoMatches
	return &models.SearchResult{
		Startups:   []*models.ScoredCandidate{},
		Intent:     &noMatch,
		Strategy:   models.StrategyHybridFallback,
		Confidence: 0.1,
		Reason: fmt.Sprintf("No relevant startups found in database for: %q. "+
			"This appears to be a valid startup-related query, but we don't have data on this specific topic.", query),
	}
}

func fallbackResult(intent *models.Intent, reason string) *models.SearchResult {
	return &models.SearchResult{
		Startups:   []*models.ScoredCandidate{},
		Intent:     intent,
		Strategy:   models.StrategyHybridFallback,
		Confidence: intent.Confidence,
		Reason:     reason,
	}
}

func categoryIntersects(have, want []string) bool {
	if len(have) == 0 || len(want) == 0 {
		return false
	}
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

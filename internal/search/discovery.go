package search

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/models"
	"github.com/startwise/startwise/internal/ranking"
)

const (
	discoveryPerStrategy  = 8
	discoveryMinRelevance = 1.5
	crossStrategyBonus    = 0.5
)

type taggedHit struct {
	record   *models.ScoredCandidate
	strategy string
}

// Strategy is one derived sub-query in the discovery flow, with its own
// score threshold. Thresholds decrease down the list: later strategies are
// broader and noisier.
type Strategy struct {
	Name      string  `json:"strategy"`
	Query     string  `json:"query"`
	Threshold float64 `json:"-"`
}

// StrategyStats reports how one strategy fared.
type StrategyStats struct {
	Strategy string `json:"strategy"`
	Query    string `json:"query"`
	Results  int    `json:"results"`
}

// DiscoveredStartup is a corpus record found by discovery, tagged with every
// strategy that surfaced it and a merged relevance score.
type DiscoveredStartup struct {
	models.StartupRecord
	Relevance  float64  `json:"relevance_score"`
	Strategies []string `json:"discovery_strategies"`
}

// DiscoveryResult bundles merged candidates with per-strategy metadata.
type DiscoveryResult struct {
	Startups []*DiscoveredStartup `json:"startups"`
	Metadata DiscoveryMetadata    `json:"metadata"`
}

// DiscoveryMetadata describes which strategies ran and what they produced.
type DiscoveryMetadata struct {
	Strategies   []StrategyStats `json:"strategies"`
	TotalQueries int             `json:"total_queries"`
}

// NameSimilarity reports whether two startup names identify the same
// company for dedup purposes.
type NameSimilarity func(a, b string) bool

// ExactNameMatch is the default dedup similarity: case-insensitive equality.
func ExactNameMatch(a, b string) bool {
	return strings.EqualFold(a, b)
}

// FuzzyNameMatch returns a similarity tolerating up to maxDistance edits,
// for corpora where the same company appears with slightly different names.
func FuzzyNameMatch(maxDistance int) NameSimilarity {
	return func(a, b string) bool {
		a, b = strings.ToLower(a), strings.ToLower(b)
		if a == b {
			return true
		}
		return ranking.LevenshteinDistance(a, b) <= maxDistance
	}
}

// industryMismatches blacklists category families that must never surface
// for a given target industry, even when keyword overlap scores them in.
var industryMismatches = map[string][]string{
	"Fashion & Beauty":     {"finance", "banking", "healthcare", "medical"},
	"Healthcare & Medical": {"fashion", "gaming", "entertainment"},
	"Financial Technology": {"healthcare", "fashion", "food", "gaming"},
}

// Discoverer runs the multi-strategy discovery flow over the search engine.
type Discoverer struct {
	engine   *Engine
	sameName NameSimilarity
	logger   *zap.Logger
}

// NewDiscoverer creates a discoverer. similarity may be nil for the default
// exact-name dedup.
func NewDiscoverer(engine *Engine, similarity NameSimilarity, logger *zap.Logger) *Discoverer {
	if similarity == nil {
		similarity = ExactNameMatch
	}
	return &Discoverer{engine: engine, sameName: similarity, logger: logger}
}

// GenerateStrategies derives up to six sub-queries from an understanding.
func GenerateStrategies(u *IdeaUnderstanding) []Strategy {
	var strategies []Strategy

	strategies = append(strategies, Strategy{
		Name: "direct_concept", Query: u.Concept, Threshold: 0.4,
	})
	if u.Problem != "" && u.Solution != "" {
		strategies = append(strategies, Strategy{
			Name: "problem_solution", Query: u.Problem + " " + u.Solution, Threshold: 0.35,
		})
	}
	strategies = append(strategies, Strategy{
		Name: "industry_audience", Query: u.Industry + " " + u.Audience, Threshold: 0.3,
	})
	if len(u.Technologies) > 0 {
		strategies = append(strategies, Strategy{
			Name: "technology_focus", Query: strings.Join(u.Technologies, " ") + " " + u.Industry, Threshold: 0.3,
		})
	}
	strategies = append(strategies, Strategy{
		Name: "business_model", Query: u.BusinessModel + " " + u.Industry, Threshold: 0.25,
	})
	if len(u.SemanticKeywords) > 0 {
		kw := u.SemanticKeywords
		if len(kw) > 4 {
			kw = kw[:4]
		}
		strategies = append(strategies, Strategy{
			Name: "semantic_keywords", Query: strings.Join(kw, " "), Threshold: 0.25,
		})
	}
	return strategies
}

// Discover runs every strategy, merges and deduplicates the hits, applies
// the relevance floor and industry-mismatch filter, and returns the top
// maxResults candidates plus metadata.
func (d *Discoverer) Discover(u *IdeaUnderstanding, maxResults int) *DiscoveryResult {
	if maxResults <= 0 {
		maxResults = 5
	}
	strategies := GenerateStrategies(u)

	meta := DiscoveryMetadata{}
	var hits []taggedHit

	for _, st := range strategies {
		result := d.engine.Search(&models.SearchQuery{
			Query:      st.Query,
			MaxResults: discoveryPerStrategy,
			Threshold:  st.Threshold,
		})
		meta.Strategies = append(meta.Strategies, StrategyStats{
			Strategy: st.Name,
			Query:    st.Query,
			Results:  len(result.Startups),
		})
		meta.TotalQueries++

		for _, s := range result.Startups {
			hits = append(hits, taggedHit{record: s, strategy: st.Name})
		}
	}

	merged := d.dedupe(hits, u)
	filtered := merged[:0]
	for _, s := range merged {
		if s.Relevance < discoveryMinRelevance {
			continue
		}
		if isIndustryMismatch(s.Categories, u.Industry) {
			continue
		}
		filtered = append(filtered, s)
	}

	if len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}
	d.logger.Debug("discovery complete",
		zap.Int("strategies", len(strategies)),
		zap.Int("raw_hits", len(hits)),
		zap.Int("returned", len(filtered)))

	return &DiscoveryResult{Startups: filtered, Metadata: meta}
}

// dedupe merges hits by name similarity, accumulating strategy tags and a
// cross-strategy bonus, then sorts by relevance.
func (d *Discoverer) dedupe(hits []taggedHit, u *IdeaUnderstanding) []*DiscoveredStartup {
	var merged []*DiscoveredStartup

	for _, hit := range hits {
		var existing *DiscoveredStartup
		for _, m := range merged {
			if d.sameName(m.Name, hit.record.Name) {
				existing = m
				break
			}
		}
		if existing == nil {
			merged = append(merged, &DiscoveredStartup{
				StartupRecord: hit.record.StartupRecord,
				Relevance:     ideaRelevance(&hit.record.StartupRecord, u),
				Strategies:    []string{hit.strategy},
			})
			continue
		}
		existing.Strategies = append(existing.Strategies, hit.strategy)
		existing.Relevance += crossStrategyBonus
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Relevance > merged[j].Relevance
	})
	return merged
}

// ideaRelevance scores how well a record aligns with the understood idea,
// independent of the per-strategy keyword scores that surfaced it. Industry
// carries the most weight, then audience and problem, then technology.
func ideaRelevance(rec *models.StartupRecord, u *IdeaUnderstanding) float64 {
	score := 1.0
	desc := strings.ToLower(rec.Description)

	score += industryAlignment(rec.Categories, u.Industry) * 3.0
	score += audienceAlignment(desc, u.Audience) * 2.0
	score += technologyOverlap(desc, u.Technologies) * 1.5
	score += semanticMatch(desc, u.SemanticKeywords)
	score += keywordMatch(desc, u.BusinessModel) * 0.4
	if u.Problem != "" {
		score += problemAlignment(desc, u.Problem) * 2.0
	}
	return score
}

// industryAlignment counts keyword overlap between the record's categories
// and the target industry, capped at 2.
func industryAlignment(categories []string, industry string) float64 {
	keywords := strings.FieldsFunc(strings.ToLower(industry), func(r rune) bool {
		return r == ' ' || r == '&'
	})
	var alignment float64
	for _, cat := range categories {
		catLower := strings.ToLower(cat)
		for _, kw := range keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(catLower, kw) || strings.Contains(kw, catLower) {
				alignment++
			}
		}
	}
	if alignment > 2 {
		alignment = 2
	}
	return alignment
}

// audienceVocabulary maps an audience label fragment to description words
// that signal the same audience.
var audienceVocabulary = map[string][]string{
	"consumer":   {"consumer", "user", "personal", "individual", "people"},
	"business":   {"business", "company", "entrepreneur", "startup", "smb"},
	"enterprise": {"enterprise", "corporate", "organization"},
	"healthcare": {"healthcare", "medical", "doctor", "patient", "clinical"},
	"student":    {"education", "student", "teacher", "academic", "school"},
}

// audienceAlignment scores description overlap with the vocabulary of the
// target audience, 0.5 per matched word, best vocabulary wins.
func audienceAlignment(desc, audience string) float64 {
	audienceLower := strings.ToLower(audience)
	var best float64
	for fragment, words := range audienceVocabulary {
		if !strings.Contains(audienceLower, fragment) {
			continue
		}
		matches := 0
		for _, w := range words {
			if strings.Contains(desc, w) {
				matches++
			}
		}
		if a := float64(matches) * 0.5; a > best {
			best = a
		}
	}
	return best
}

func technologyOverlap(desc string, technologies []string) float64 {
	var overlap float64
	for _, tech := range technologies {
		for _, kw := range strings.FieldsFunc(strings.ToLower(tech), func(r rune) bool {
			return r == ' ' || r == '/' || r == '&'
		}) {
			if kw != "" && strings.Contains(desc, kw) {
				overlap += 0.5
			}
		}
	}
	if overlap > 2 {
		overlap = 2
	}
	return overlap
}

func semanticMatch(desc string, keywords []string) float64 {
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(desc, strings.ToLower(kw)) {
			matches++
		}
	}
	return float64(matches) * 0.3
}

func keywordMatch(desc, phrase string) float64 {
	matches := 0
	for _, kw := range strings.Fields(strings.ToLower(phrase)) {
		if strings.Contains(desc, kw) {
			matches++
		}
	}
	return float64(matches)
}

func problemAlignment(desc, problem string) float64 {
	matches := 0
	for _, kw := range strings.Fields(strings.ToLower(problem)) {
		if len(kw) > 3 && strings.Contains(desc, kw) {
			matches++
		}
	}
	return float64(matches) * 0.3
}

func isIndustryMismatch(categories []string, industry string) bool {
	forbidden, ok := industryMismatches[industry]
	if !ok || len(categories) == 0 {
		return false
	}
	joined := strings.ToLower(strings.Join(categories, " "))
	for _, f := range forbidden {
		if strings.Contains(joined, f) {
			return true
		}
	}
	return false
}

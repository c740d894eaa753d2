package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/llm"
)

// IdeaUnderstanding is the structured breakdown of a user's startup idea
// that drives the multi-strategy discovery flow.
type IdeaUnderstanding struct {
	Concept          string   `json:"concept"`
	Problem          string   `json:"problem"`
	Solution         string   `json:"solution"`
	Industry         string   `json:"industry"`
	Audience         string   `json:"audience"`
	BusinessModel    string   `json:"business_model"`
	Technologies     []string `json:"technologies,omitempty"`
	SemanticKeywords []string `json:"semantic_keywords,omitempty"`
	SearchTerms      []string `json:"search_terms,omitempty"`
}

// Understander turns free-text idea descriptions into an IdeaUnderstanding.
// It asks the language model for a structured breakdown and falls back to
// keyword heuristics when the model is unavailable or returns unparseable
// output.
type Understander struct {
	generator llm.Generator
	logger    *zap.Logger
}

// NewUnderstander creates an Understander. generator may be nil, in which
// case only the heuristic path runs.
func NewUnderstander(generator llm.Generator, logger *zap.Logger) *Understander {
	return &Understander{generator: generator, logger: logger}
}

const understandingPrompt = `Analyze this startup idea and extract key information:

User's Idea: %q

Please identify:
1. Business Category (HealthTech, EdTech, FinTech, Food & Beverage, E-commerce, etc.)
2. Target Audience (Consumers, Businesses, Students, etc.)
3. Core Problem being solved and the Solution approach
4. Business Model if clear (Marketplace, SaaS, E-commerce, etc.)

Respond in this exact JSON format:
{
  "concept": "one-line summary of the idea",
  "industry": "identified category",
  "audience": "target audience",
  "problem": "core problem being solved",
  "solution": "how the idea solves it",
  "business_model": "model if clear",
  "search_terms": ["term1", "term2", "term3"]
}`

// Understand produces the structured breakdown for an idea.
func (u *Understander) Understand(ctx context.Context, idea string) *IdeaUnderstanding {
	heuristic := u.heuristicUnderstanding(idea)
	if u.generator == nil {
		return heuristic
	}

	response, err := u.generator.Generate(ctx, fmt.Sprintf(understandingPrompt, idea))
	if err != nil {
		u.logger.Debug("model unavailable for idea understanding, using heuristics", zap.Error(err))
		return heuristic
	}

	parsed, err := parseUnderstanding(response)
	if err != nil {
		u.logger.Debug("unparseable understanding response, using heuristics", zap.Error(err))
		return heuristic
	}

	// The model doesn't see the technology or semantic keyword extraction;
	// merge those in from the heuristic pass.
	parsed.Technologies = heuristic.Technologies
	parsed.SemanticKeywords = heuristic.SemanticKeywords
	if parsed.Concept == "" {
		parsed.Concept = heuristic.Concept
	}
	if parsed.Industry == "" {
		parsed.Industry = heuristic.Industry
	}
	if parsed.Audience == "" {
		parsed.Audience = heuristic.Audience
	}
	if parsed.BusinessModel == "" {
		parsed.BusinessModel = heuristic.BusinessModel
	}
	return parsed
}

// parseUnderstanding strips markdown code fences the model may wrap around
// its JSON and decodes it.
func parseUnderstanding(response string) (*IdeaUnderstanding, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var parsed IdeaUnderstanding
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("decode understanding: %w", err)
	}
	return &parsed, nil
}

// industryPatterns maps trigger keywords to the industry label the discovery
// flow uses for alignment and mismatch filtering.
var industryPatterns = []struct {
	keywords []string
	label    string
}{
	{[]string{"food", "delivery", "restaurant", "meal"}, "Food & Beverage"},
	{[]string{"health", "medical", "patient", "fitness", "wellness"}, "Healthcare & Medical"},
	{[]string{"education", "learning", "student", "teaching", "course"}, "Education Technology"},
	{[]string{"finance", "payment", "banking", "lending", "invest"}, "Financial Technology"},
	{[]string{"fashion", "beauty", "clothing", "cosmetic"}, "Fashion & Beauty"},
	{[]string{"shop", "ecommerce", "e-commerce", "retail", "marketplace"}, "E-commerce & Retail"},
	{[]string{"game", "gaming", "entertainment", "streaming"}, "Gaming & Entertainment"},
}

var technologyPatterns = []struct {
	keywords []string
	label    string
}{
	{[]string{"ai", "artificial intelligence", "machine learning", "ml", "neural"}, "AI & Machine Learning"},
	{[]string{"mobile", "ios", "android", "app"}, "Mobile Development"},
	{[]string{"cloud", "aws", "azure", "hosting", "infrastructure"}, "Cloud & Infrastructure"},
	{[]string{"blockchain", "crypto", "web3", "decentralized"}, "Blockchain & Crypto"},
	{[]string{"iot", "sensor", "hardware", "device"}, "IoT & Hardware"},
	{[]string{"api", "integration", "webhook"}, "API & Integration"},
}

// heuristicUnderstanding builds an understanding from keyword patterns
// alone. Deterministic, so the discovery flow stays testable without a
// model.
func (u *Understander) heuristicUnderstanding(idea string) *IdeaUnderstanding {
	lower := strings.ToLower(idea)

	industry := "Consumer Technology"
	for _, p := range industryPatterns {
		if containsAny(lower, p.keywords) {
			industry = p.label
			break
		}
	}

	audience := "Consumers"
	switch {
	case containsAny(lower, []string{"business", "enterprise", "company", "b2b", "team"}):
		audience = "Businesses"
	case containsAny(lower, []string{"student", "teacher", "school"}):
		audience = "Students"
	case containsAny(lower, []string{"doctor", "patient", "clinic", "hospital"}):
		audience = "Healthcare"
	}

	model := "Platform"
	switch {
	case containsAny(lower, []string{"subscription", "saas"}):
		model = "SaaS"
	case containsAny(lower, []string{"marketplace", "connects"}):
		model = "Marketplace"
	case containsAny(lower, []string{"shop", "store", "sell"}):
		model = "E-commerce"
	}

	var technologies []string
	for _, p := range technologyPatterns {
		if containsAny(lower, p.keywords) {
			technologies = append(technologies, p.label)
		}
	}

	words := strings.Fields(lower)
	var semantic []string
	for _, w := range words {
		w = strings.Trim(w, ".,!?")
		if len(w) > 4 {
			semantic = append(semantic, w)
		}
	}

	terms := []string{strings.ToLower(industry)}
	if len(words) > 0 {
		n := 3
		if len(words) < n {
			n = len(words)
		}
		terms = append(terms, strings.Join(words[:n], " "))
	}

	return &IdeaUnderstanding{
		Concept:          idea,
		Problem:          "Improving user experience",
		Industry:         industry,
		Audience:         audience,
		BusinessModel:    model,
		Technologies:     technologies,
		SemanticKeywords: semantic,
		SearchTerms:      terms,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Package ranking implements keyword extraction, intent classification, and
// heuristic relevance scoring for startup queries.
package ranking

import (
	"regexp"
	"strings"
)

// stopWords are common function words plus conversational filler ("tell me
// about", "show me") that carry no retrieval signal.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "will": true,
	"with": true, "about": true, "what": true, "tell": true, "me": true,
	"show": true,
}

// synonyms expands domain shorthand into the longer forms corpus descriptions
// actually use. Expansions are appended, not substituted.
var synonyms = map[string][]string{
	"ai":         {"artificial intelligence", "machine learning", "ml"},
	"fintech":    {"financial", "finance", "payment"},
	"healthcare": {"health", "medical", "biotech"},
	"saas":       {"software", "platform", "service"},
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// KeywordExtractor normalizes a free-text query into scoring tokens.
type KeywordExtractor struct{}

// NewKeywordExtractor creates a new KeywordExtractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// Extract lowercases the query, strips punctuation, drops stop words and
// tokens of length <= 2, and appends synonym expansions. Synonym-table keys
// survive regardless of length so that "ai" still expands. The result is not
// deduplicated: repeated themes intentionally contribute repeatedly to the
// relevance score. An empty query yields an empty slice.
func (e *KeywordExtractor) Extract(query string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(query), " ")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if expansions, ok := synonyms[word]; ok {
			tokens = append(tokens, word)
			tokens = append(tokens, expansions...)
			continue
		}
		if len(word) <= 2 || stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// IsGenericTerm reports whether the token is on the fixed list of overly
// common domain words whose matches the scorer down-weights.
func IsGenericTerm(token string) bool {
	return genericTerms[strings.ToLower(token)]
}

// genericTerms shouldn't contribute much to a match: almost every record's
// description mentions at least one of them.
var genericTerms = map[string]bool{
	"startup":  true,
	"company":  true,
	"business": true,
	"service":  true,
	"platform": true,
	"software": true,
	"app":      true,
	"tool":     true,
}

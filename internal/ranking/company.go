package ranking

import (
	"regexp"
	"strings"
	"unicode"
)

// CompanyDetector guesses whether a query names a specific real company.
// The search engine consults it when a query produced no (or only weak)
// corpus matches, to distinguish "known startup we don't index" from
// "nothing resembles this query".
type CompanyDetector struct {
	patterns []*regexp.Regexp
	known    map[string]bool
}

// knownCompanies is a curated list of widely recognized startups and tech
// companies. Lowercased single tokens only.
var knownCompanies = []string{
	"figma", "stripe", "airbnb", "uber", "lyft", "dropbox", "slack",
	"notion", "canva", "discord", "coinbase", "instacart", "doordash",
	"robinhood", "plaid", "brex", "rippling", "retool", "vercel",
	"supabase", "linear", "airtable", "zapier", "gusto", "deel",
	"openai", "anthropic", "databricks", "snowflake", "twilio",
	"segment", "amplitude", "mixpanel", "webflow", "shopify",
}

// NewCompanyDetector creates a detector with the built-in indicator
// patterns and known-name list.
func NewCompanyDetector() *CompanyDetector {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?:what\s+is|who\s+is|tell\s+me\s+about|about)\s+([a-z][a-z0-9]+)\s*\??$`),
		regexp.MustCompile(`^([a-z][a-z0-9]+)\s+(?:startup|company)\b`),
		regexp.MustCompile(`(?:startup|company)\s+(?:called|named)\s+([a-z][a-z0-9]+)`),
	}
	known := make(map[string]bool, len(knownCompanies))
	for _, name := range knownCompanies {
		known[name] = true
	}
	return &CompanyDetector{patterns: patterns, known: known}
}

// Detect returns the detected company name formatted with a leading capital,
// or "" when the query does not appear to name one. A bare single-word query
// matching the known list counts; indicator phrases extract the candidate
// word and accept it only if it survives the stop-word check.
func (d *CompanyDetector) Detect(query string) string {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return ""
	}

	if !strings.ContainsAny(lower, " \t") {
		word := strings.Trim(lower, "?!.")
		if d.known[word] {
			return capitalizeFirst(word)
		}
		return ""
	}

	for _, re := range d.patterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		candidate := m[1]
		if stopWords[candidate] || IsGenericTerm(candidate) || len(candidate) <= 2 {
			continue
		}
		return capitalizeFirst(candidate)
	}

	for _, word := range strings.Fields(lower) {
		word = strings.Trim(word, "?!.,")
		if d.known[word] {
			return capitalizeFirst(word)
		}
	}
	return ""
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

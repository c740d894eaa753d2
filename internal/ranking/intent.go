package ranking

import (
	"regexp"
	"strings"

	"github.com/startwise/startwise/internal/models"
)

// intentRule pairs a compiled pattern with the classification it produces.
// Rules are evaluated in declaration order, first match wins, so the
// impossible-concept patterns shadow the broader startup vocabulary:
// "time travel startup" is still impossible.
type intentRule struct {
	re         *regexp.Regexp
	intent     models.IntentType
	confidence float64
	reasoning  string
}

// categoryFamily maps a technology-niche pattern to the corpus categories it
// suggests. Unlike the rules above, families are not exclusive: a query can
// hit several and collect all of their suggestions.
type categoryFamily struct {
	re         *regexp.Regexp
	categories []string
}

// IntentClassifier decides what kind of question a query is before any
// corpus lookup happens. It is a cheap regex triage, not real NLU; that
// limitation is deliberate.
type IntentClassifier struct {
	rules     []intentRule
	families  []categoryFamily
	startupRe *regexp.Regexp
	detector  *CompanyDetector
}

// NewIntentClassifier creates a classifier with the built-in rule cascade.
func NewIntentClassifier() *IntentClassifier {
	mk := func(expr string, it models.IntentType, conf float64, reason string) intentRule {
		return intentRule{
			re:         regexp.MustCompile(expr),
			intent:     it,
			confidence: conf,
			reasoning:  reason,
		}
	}

	rules := []intentRule{
		// Physically or legally impossible concepts.
		mk(`time\s*travel|time\s*machine`, models.IntentImpossible, 0.9,
			"time travel is not physically possible"),
		mk(`teleport`, models.IntentImpossible, 0.9,
			"teleportation is not physically possible"),
		mk(`perpetual\s*motion|infinite\s*energy`, models.IntentImpossible, 0.9,
			"perpetual motion violates thermodynamics"),
		mk(`faster\s*than\s*light|warp\s*drive`, models.IntentImpossible, 0.9,
			"faster-than-light travel is not physically possible"),
		mk(`immortality|live\s*forever|resurrect`, models.IntentImpossible, 0.9,
			"immortality is not achievable"),
		mk(`mind\s*read|telepath|magic\s*spell`, models.IntentImpossible, 0.9,
			"the concept is not technologically feasible"),
		mk(`invisibility\s*cloak|invisible\s*people`, models.IntentImpossible, 0.9,
			"invisibility is not technologically feasible"),

		// Plausible but absurdly narrow niches that no corpus covers.
		mk(`underwater\s*(basket|hair)|pet\s*psychic|ghost\s*hunt|alien\s*(dating|translation)|dream\s*record`,
			models.IntentStartupNoMatches, 0.8,
			"the niche is too specific to have corpus coverage"),

		// Clearly off-topic requests. Checked before the startup vocabulary
		// so "pizza delivery tracker" stays off-topic even though "delivery"
		// smells like logistics.
		mk(`pizza|recipe|cook|bake|restaurant|food\s*delivery|ingredient`, models.IntentNonStartup, 0.8,
			"cooking and food questions are outside the startup domain"),
		mk(`weather|forecast|temperature\s*today`, models.IntentNonStartup, 0.8,
			"weather questions are outside the startup domain"),
		mk(`movie|film\s*recommend|song|playlist|tv\s*show`, models.IntentNonStartup, 0.8,
			"entertainment questions are outside the startup domain"),
		mk(`sports\s*score|game\s*result|who\s*won\s*the`, models.IntentNonStartup, 0.8,
			"sports questions are outside the startup domain"),
		mk(`dating\s*advice|relationship\s*advice|horoscope`, models.IntentNonStartup, 0.8,
			"personal advice questions are outside the startup domain"),
	}

	fam := func(expr string, cats ...string) categoryFamily {
		return categoryFamily{re: regexp.MustCompile(expr), categories: cats}
	}
	families := []categoryFamily{
		fam(`\bai\b|artificial\s*intelligence|machine\s*learning|\bml\b|deep\s*learning|neural`,
			"AI/ML", "Artificial Intelligence"),
		fam(`fintech|payment|banking|financial|crypto|blockchain|lending|insurance`,
			"FinTech", "Financial Technology"),
		fam(`health|medical|biotech|pharma|telemedicine|wellness|fitness`,
			"HealthTech", "Healthcare & Medical"),
		fam(`e-?commerce|marketplace|retail|shopping|storefront`,
			"E-commerce", "Retail"),
		fam(`\bsaas\b|software\s*as\s*a\s*service|b2b\s*software|enterprise\s*software|subscription\s*software`,
			"SaaS", "Enterprise Software"),
		fam(`education|learning\s*platform|edtech|teaching|tutoring|online\s*course`,
			"EdTech", "Education"),
	}

	startupRe := regexp.MustCompile(
		`startup|founder|funding|venture|unicorn|valuation|seed\s*round|series\s*[ab]|incubator|accelerator|y\s*combinator|\byc\b|company|companies|business|entrepreneur`)

	return &IntentClassifier{
		rules:     rules,
		families:  families,
		startupRe: startupRe,
		detector:  NewCompanyDetector(),
	}
}

// Classify runs the rule cascade against the lowercased query. Queries that
// miss every pattern are ambiguous with confidence 0.5. When a known company
// name is detected it is recorded on the intent so the search engine can
// answer "known startup, not in corpus" instead of returning noise.
func (c *IntentClassifier) Classify(query string) *models.Intent {
	lower := strings.ToLower(query)
	intent := c.classify(lower)

	if company := c.detector.Detect(query); company != "" {
		intent.DetectedCompany = company
	}
	return intent
}

func (c *IntentClassifier) classify(lower string) *models.Intent {
	for _, rule := range c.rules {
		if rule.re.MatchString(lower) {
			return &models.Intent{
				Type:       rule.intent,
				Confidence: rule.confidence,
				Reasoning:  rule.reasoning,
			}
		}
	}

	var suggested []string
	for _, f := range c.families {
		if f.re.MatchString(lower) {
			suggested = append(suggested, f.categories...)
		}
	}
	if len(suggested) > 0 || c.startupRe.MatchString(lower) {
		return &models.Intent{
			Type:                models.IntentStartupRelated,
			Confidence:          0.9,
			SuggestedCategories: suggested,
			Reasoning:           "query targets the startup domain",
		}
	}

	return &models.Intent{
		Type:       models.IntentAmbiguous,
		Confidence: 0.5,
		Reasoning:  "query matched no known pattern",
	}
}

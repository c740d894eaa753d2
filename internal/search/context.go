package search

import (
	"fmt"
	"strings"

	"github.com/startwise/startwise/internal/models"
)

// BuildContext renders a search result into the prompt block handed to the
// language model. Template selection follows the strategy label and intent
// type; no scoring logic lives here.
func BuildContext(result *models.SearchResult, query string) string {
	if result.Strategy == models.StrategyHybridFallback {
		return buildHybridContext(result, query)
	}
	if len(result.Startups) == 0 {
		return buildNoResultsContext(result, query)
	}
	return buildResultsContext(result, query)
}

func buildResultsContext(result *models.SearchResult, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on the startup database, here are the most relevant companies for your query: %q\n\n", query)
	b.WriteString("RELEVANT STARTUPS:\n")

	for i, s := range result.Startups {
		fmt.Fprintf(&b, "%d. **%s** (%s)\n", i+1, s.Name, s.Source)
		fmt.Fprintf(&b, "   Description: %s\n", s.Description)
		if len(s.Categories) > 0 {
			fmt.Fprintf(&b, "   Categories: %s\n", strings.Join(s.Categories, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("ANALYSIS CONTEXT:\n")
	fmt.Fprintf(&b, "- Found %d relevant startups from the database\n", len(result.Startups))
	fmt.Fprintf(&b, "- Search confidence: %.0f%% (%s)\n", result.Confidence*100, confidenceLabel(result.Confidence))
	if result.Intent != nil && len(result.Intent.SuggestedCategories) > 0 {
		fmt.Fprintf(&b, "- Detected categories: %s\n", strings.Join(result.Intent.SuggestedCategories, ", "))
	}

	b.WriteString("\nPlease provide insights based on this startup data and answer the user's question comprehensively.")
	return b.String()
}

func confidenceLabel(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return "High - Strong matches found"
	case confidence >= 0.5:
		return "Medium - Good matches found"
	default:
		return "Low - Matches may be loosely related"
	}
}

func buildHybridContext(result *models.SearchResult, query string) string {
	intent := result.Intent

	if intent != nil && intent.Type == models.IntentKnownStartupMissing && intent.DetectedCompany != "" {
		return fmt.Sprintf(
			"The user asked about: %q\n\n"+
				"It appears you're asking about %q, which seems to be a real startup company. "+
				"However, this company is not currently in our database.\n\n"+
				"%s\n\n"+
				"Please provide general information about this company if you know about it, and discuss its potential "+
				"market position, business model, or competitive landscape. If you're not familiar with this specific company, "+
				"please provide insights about the industry or market segment it might operate in.",
			query, intent.DetectedCompany, result.Reason)
	}

	reason := result.Reason
	if reason == "" && intent != nil {
		reason = intent.Reasoning
	}
	return fmt.Sprintf(
		"The user asked: %q\n\n"+
			"%s.\n"+
			"Since this is not directly related to startup analysis, please provide a helpful general business/entrepreneurship perspective on this question.\n\n"+
			"Note: Our startup database contains information about companies from Y Combinator, Crunchbase, and other sources, but this query falls outside that scope.",
		query, reason)
}

func buildNoResultsContext(result *models.SearchResult, query string) string {
	reason := result.Reason
	if reason == "" {
		reason = "Our database contains companies from Y Combinator, Crunchbase, and other startup sources."
	}
	reasoning := ""
	if result.Intent != nil {
		reasoning = result.Intent.Reasoning
	}
	return fmt.Sprintf(
		"No startups in our database match the query: %q\n\n"+
			"%s\n"+
			"%s\n\n"+
			"Please provide general business insights about this topic, and suggest what types of startups might be relevant or what opportunities might exist in this space.",
		query, reason, reasoning)
}

// Package cli provides CLI output utilities for StartWise.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/startwise/startwise/internal/models"
	"github.com/startwise/startwise/internal/search"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteSearchResult writes a search result to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSearchResult(w io.Writer, result *models.SearchResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, result)
	}
	writeSearchResultText(w, result)
	return nil
}

func writeSearchResultText(w io.Writer, result *models.SearchResult) {
	fmt.Fprintf(w, "Intent: %s (%.0f%%) | Strategy: %s\n",
		result.Intent.Type, result.Intent.Confidence*100, result.Strategy)
	if result.Reason != "" {
		fmt.Fprintf(w, "Reason: %s\n", result.Reason)
	}
	for i, s := range result.Startups {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, s.Name, s.Source)
		fmt.Fprintf(w, "%s\n", s.Description)
		if len(s.Categories) > 0 {
			fmt.Fprintf(w, "Categories: %s\n", strings.Join(s.Categories, ", "))
		}
	}
	if len(result.Startups) > 0 {
		fmt.Fprintf(w, "\n%d of %d matches, confidence %.0f%%\n",
			len(result.Startups), result.TotalMatches, result.Confidence*100)
	}
}

// WriteAnswer writes a pipeline answer to w in the given format.
func WriteAnswer(w io.Writer, answer *search.Answer, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, answer)
	}
	fmt.Fprintln(w, answer.Text)
	if answer.Fallback {
		fmt.Fprintln(w, "\n(model unavailable; answer synthesized from search results)")
	}
	return nil
}

// WriteDiscovery writes an idea analysis to w in the given format.
func WriteDiscovery(w io.Writer, analysis *search.IdeaAnalysis, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, analysis)
	}

	u := analysis.Understanding
	fmt.Fprintf(w, "Industry: %s | Audience: %s | Model: %s\n", u.Industry, u.Audience, u.BusinessModel)
	if len(analysis.Similar.Startups) == 0 {
		fmt.Fprintln(w, "\nNo similar startups found.")
		return nil
	}
	fmt.Fprintln(w, "\nSimilar startups:")
	for i, s := range analysis.Similar.Startups {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "%d. %s (%s) | relevance %.1f\n", i+1, s.Name, s.Source, s.Relevance)
		fmt.Fprintf(w, "%s\n", s.Description)
		fmt.Fprintf(w, "Found by: %s\n", strings.Join(s.Strategies, ", "))
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

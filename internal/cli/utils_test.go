package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/startwise/startwise/internal/models"
	"github.com/startwise/startwise/internal/search"
)

func sampleResult() *models.SearchResult {
	return &models.SearchResult{
		Startups: []*models.ScoredCandidate{
			{
				StartupRecord: models.StartupRecord{
					Name:        "Stripe",
					Description: "Online payment processing",
					Source:      "YC",
					Categories:  []string{"FinTech"},
				},
				Score: 12,
			},
		},
		Intent:       &models.Intent{Type: models.IntentStartupRelated, Confidence: 0.9},
		Strategy:     models.StrategyStartupFocused,
		Confidence:   0.9,
		TotalMatches: 1,
	}
}

func TestWriteSearchResultText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSearchResult(&buf, sampleResult(), OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Stripe (YC)", "Online payment processing", "Categories: FinTech", "1 of 1 matches"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSearchResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSearchResult(&buf, sampleResult(), OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.SearchResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Startups) != 1 || decoded.Startups[0].Name != "Stripe" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteAnswerFallbackNote(t *testing.T) {
	var buf bytes.Buffer
	answer := &search.Answer{Text: "some answer", Fallback: true}
	if err := WriteAnswer(&buf, answer, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "model unavailable") {
		t.Errorf("expected fallback note:\n%s", buf.String())
	}
}

func TestWriteDiscoveryText(t *testing.T) {
	analysis := &search.IdeaAnalysis{
		Understanding: &search.IdeaUnderstanding{
			Industry:      "Financial Technology",
			Audience:      "Businesses",
			BusinessModel: "SaaS",
		},
		Similar: &search.DiscoveryResult{
			Startups: []*search.DiscoveredStartup{
				{
					StartupRecord: models.StartupRecord{Name: "Stripe", Source: "YC", Description: "Payments"},
					Relevance:     3.5,
					Strategies:    []string{"direct_concept", "industry_audience"},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteDiscovery(&buf, analysis, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Industry: Financial Technology", "Stripe (YC)", "direct_concept, industry_audience"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

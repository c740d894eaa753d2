package search

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/llm"
)

func TestUnderstandParsesModelJSON(t *testing.T) {
	gen := &llm.MockGenerator{Response: "```json\n" + `{
		"concept": "meal kit marketplace",
		"industry": "Food & Beverage",
		"audience": "Consumers",
		"problem": "cooking takes too long",
		"solution": "pre-portioned meal kits",
		"business_model": "Marketplace",
		"search_terms": ["meal kit", "food delivery"]
	}` + "\n```"}
	u := NewUnderstander(gen, zap.NewNop())

	got := u.Understand(context.Background(), "a marketplace for pre-portioned meal kits")
	if got.Industry != "Food & Beverage" {
		t.Errorf("Industry = %q, want Food & Beverage", got.Industry)
	}
	if got.BusinessModel != "Marketplace" {
		t.Errorf("BusinessModel = %q", got.BusinessModel)
	}
	if got.Problem != "cooking takes too long" {
		t.Errorf("Problem = %q", got.Problem)
	}
}

func TestUnderstandFallsBackOnModelError(t *testing.T) {
	gen := &llm.MockGenerator{Err: errors.New("connection refused")}
	u := NewUnderstander(gen, zap.NewNop())

	got := u.Understand(context.Background(), "an app that helps doctors schedule patient visits")
	if got.Industry != "Healthcare & Medical" {
		t.Errorf("Industry = %q, want Healthcare & Medical", got.Industry)
	}
	if got.Audience != "Healthcare" {
		t.Errorf("Audience = %q, want Healthcare", got.Audience)
	}
}

func TestUnderstandFallsBackOnGarbage(t *testing.T) {
	gen := &llm.MockGenerator{Response: "Sure! Here are my thoughts on your idea..."}
	u := NewUnderstander(gen, zap.NewNop())

	got := u.Understand(context.Background(), "subscription software for teaching students math")
	if got.Industry != "Education Technology" {
		t.Errorf("Industry = %q, want Education Technology", got.Industry)
	}
	if got.BusinessModel != "SaaS" {
		t.Errorf("BusinessModel = %q, want SaaS", got.BusinessModel)
	}
}

func TestHeuristicUnderstandingKeywords(t *testing.T) {
	u := NewUnderstander(nil, zap.NewNop())

	got := u.Understand(context.Background(), "blockchain payments for small businesses")
	if got.Industry != "Financial Technology" {
		t.Errorf("Industry = %q, want Financial Technology", got.Industry)
	}
	if got.Audience != "Businesses" {
		t.Errorf("Audience = %q, want Businesses", got.Audience)
	}
	foundTech := false
	for _, tech := range got.Technologies {
		if tech == "Blockchain & Crypto" {
			foundTech = true
		}
	}
	if !foundTech {
		t.Errorf("Technologies = %v, want Blockchain & Crypto", got.Technologies)
	}
	if len(got.SemanticKeywords) == 0 {
		t.Error("SemanticKeywords empty")
	}
}

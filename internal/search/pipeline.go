package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/llm"
	"github.com/startwise/startwise/internal/models"
)

// Answer is the full response for one question: the model's (or fallback)
// text plus the search result that produced the prompt.
type Answer struct {
	Text         string                    `json:"answer"`
	Context      []*models.ScoredCandidate `json:"context"`
	Strategy     string                    `json:"search_strategy"`
	TotalMatches int                       `json:"total_matches"`
	Confidence   float64                   `json:"confidence"`
	Intent       *models.Intent            `json:"intent"`
	Elapsed      time.Duration             `json:"-"`
	Fallback     bool                      `json:"fallback,omitempty"`
}

// Pipeline ties the search engine to the language model: search, build the
// prompt, ask the model, and degrade to synthesized text when the model is
// unavailable. Model failure is never surfaced to the caller as an error.
type Pipeline struct {
	engine       *Engine
	generator    llm.Generator
	understander *Understander
	discoverer   *Discoverer
	logger       *zap.Logger
}

// NewPipeline creates an answer pipeline.
func NewPipeline(engine *Engine, generator llm.Generator, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		engine:       engine,
		generator:    generator,
		understander: NewUnderstander(generator, logger),
		discoverer:   NewDiscoverer(engine, nil, logger),
		logger:       logger,
	}
}

// Ask answers one question end to end.
func (p *Pipeline) Ask(ctx context.Context, query *models.SearchQuery) *Answer {
	start := time.Now()

	result := p.engine.Search(query)
	prompt := BuildContext(result, query.Query)

	text, err := p.generator.Generate(ctx, prompt)
	fallback := false
	if err != nil {
		p.logger.Warn("model unavailable, using synthesized answer",
			zap.String("query", query.Query),
			zap.Error(err))
		text = FallbackAnswer(result, query.Query)
		fallback = true
	}

	return &Answer{
		Text:         text,
		Context:      result.Startups,
		Strategy:     result.Strategy,
		TotalMatches: result.TotalMatches,
		Confidence:   result.Confidence,
		Intent:       result.Intent,
		Elapsed:      time.Since(start),
		Fallback:     fallback,
	}
}

// IdeaAnalysis is the response for the discovery entry point: the structured
// understanding of the idea plus the similar startups it surfaced.
type IdeaAnalysis struct {
	Understanding *IdeaUnderstanding `json:"understanding"`
	Similar       *DiscoveryResult   `json:"similar_startups"`
	Elapsed       time.Duration      `json:"-"`
}

// AnalyzeIdea runs the multi-strategy discovery flow for a startup idea.
func (p *Pipeline) AnalyzeIdea(ctx context.Context, q *models.IdeaQuery) *IdeaAnalysis {
	start := time.Now()
	q.Normalize()

	understanding := p.understander.Understand(ctx, q.Idea)
	similar := p.discoverer.Discover(understanding, q.MaxResults)

	return &IdeaAnalysis{
		Understanding: understanding,
		Similar:       similar,
		Elapsed:       time.Since(start),
	}
}

// FallbackAnswer synthesizes deterministic answer text from whatever the
// search already found. Three shapes: out-of-scope queries, queries with
// candidates, and queries with nothing at all.
func FallbackAnswer(result *models.SearchResult, query string) string {
	if result.Strategy == models.StrategyHybridFallback {
		return fmt.Sprintf("I understand you're asking about %q. While this isn't directly related to startup analysis, "+
			"here's what I can tell you: This query falls outside our startup database scope. "+
			"Our system specializes in analyzing companies from Y Combinator, Crunchbase, and other startup sources. "+
			"For general questions like this, I'd recommend consulting more general-purpose resources.", query)
	}

	if len(result.Startups) > 0 {
		var b strings.Builder
		b.WriteString("Based on the available startup data, here are the most relevant companies:\n\n")
		for i, s := range result.Startups {
			fmt.Fprintf(&b, "%d. **%s** (%s): %s", i+1, s.Name, s.Source, s.Description)
			if len(s.Categories) > 0 {
				fmt.Fprintf(&b, "\n   Categories: %s", strings.Join(s.Categories, ", "))
			}
			if i < len(result.Startups)-1 {
				b.WriteString("\n\n")
			}
		}
		return b.String()
	}

	return fmt.Sprintf("I couldn't find any startups matching your query %q in our current database. This might be because:\n\n"+
		"1. The topic is outside our startup focus areas\n"+
		"2. We don't have data on startups in this specific niche yet\n"+
		"3. The query might be too general or specific\n\n"+
		"Our database includes companies from Y Combinator, Crunchbase, and other sources. "+
		"You might want to try rephrasing your question or asking about a different aspect of the startup ecosystem.", query)
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// ErrUnavailable marks a model call that failed for infrastructure reasons
// (timeout, connection refused, server error). Callers test with errors.Is
// and substitute fallback text.
var ErrUnavailable = errors.New("language model unavailable")

const defaultTimeout = 30 * time.Second

// OllamaGenerator calls a local Ollama server through langchaingo. A single
// attempt with a bounded timeout; no retries.
type OllamaGenerator struct {
	client  *ollama.LLM
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewOllamaGenerator connects to the Ollama server at serverURL using the
// given model. timeout bounds each Generate call; zero means the 30 second
// default.
func NewOllamaGenerator(serverURL, model string, timeout time.Duration, logger *zap.Logger) (*OllamaGenerator, error) {
	client, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OllamaGenerator{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Generate sends the prompt and returns the completion. Any transport or
// timeout failure is wrapped in ErrUnavailable.
func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	completion, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt)
	if err != nil {
		g.logger.Warn("model call failed",
			zap.String("model", g.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	g.logger.Debug("model call completed",
		zap.String("model", g.model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("prompt_chars", len(prompt)),
		zap.Int("completion_chars", len(completion)))
	return completion, nil
}

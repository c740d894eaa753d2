// Package llm wraps the external language model behind a small interface so
// the answer pipeline can degrade to local fallback text when the model is
// unreachable.
package llm

import "context"

// Generator produces a text completion for a prompt. Implementations must
// honor ctx cancellation and return ErrUnavailable (wrapped) for timeouts and
// connection failures so callers can branch on the variant instead of
// parsing error strings.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

package llm

import "context"

// MockGenerator is a test double. It returns a fixed response, a fixed
// error, or echoes through Fn when set.
type MockGenerator struct {
	Response string
	Err      error
	Fn       func(ctx context.Context, prompt string) (string, error)
	Prompts  []string
}

// Generate records the prompt and replays the configured behavior.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Fn != nil {
		return m.Fn(ctx, prompt)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

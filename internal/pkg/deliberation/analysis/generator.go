package analysis

import (
	"context"
	"errors"
)

// TextGenerator is the black-box text-generation capability the analysis
// pipeline is built on. Output for the same prompt may differ across calls;
// nothing in this package or downstream of it may assume otherwise.
//
// The grouping strategy of the Consolidator is injected through this port,
// so a deterministic clustering backend can be substituted without touching
// callers.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// GeneratorFunc adapts a plain function to the TextGenerator interface.
type GeneratorFunc func(ctx context.Context, prompt string, maxTokens int) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return f(ctx, prompt, maxTokens)
}

// ErrExtraction wraps any text-generation failure or timeout surfaced by the
// analysis pipeline. There is no built-in retry here; the caller owns the
// retry policy. A failed call must never fabricate a position or
// justification.
var ErrExtraction = errors.New("analysis: text generation failed")

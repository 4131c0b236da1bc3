package llm

import (
	"context"
	"fmt"
	"io"

	"github.com/lshigami/mockverse/config"
)

// New builds the configured backend behind the logging and limits decorators.
func New(ctx context.Context, cfg config.LLM) (Generator, error) {
	var (
		base Generator
		err  error
	)
	switch cfg.Provider {
	case "", "gemini":
		base, err = NewGeminiGenerator(ctx, cfg.GeminiApiKey, cfg.GeminiModel, cfg.MaxTokens)
	case "genai":
		base, err = NewGenAIGenerator(ctx, cfg.GeminiApiKey, cfg.GeminiModel, cfg.MaxTokens)
	case "openai":
		base, err = NewOpenAIGenerator(cfg.OpenAIApiKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.MaxTokens)
	case "anthropic":
		base, err = NewAnthropicGenerator(cfg.AnthropicApiKey, cfg.AnthropicModel, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLimits(WithLogging(base), Limits{
		Timeout:       cfg.Timeout,
		MaxConcurrent: cfg.MaxConcurrent,
		RatePerSecond: cfg.RatePerSecond,
		Burst:         cfg.Burst,
	}), nil
}

// Close releases the backend client underneath any decorators, if it holds one.
func Close(g Generator) error {
	for g != nil {
		if c, ok := g.(io.Closer); ok {
			return c.Close()
		}
		u, ok := g.(interface{ Unwrap() Generator })
		if !ok {
			return nil
		}
		g = u.Unwrap()
	}
	return nil
}

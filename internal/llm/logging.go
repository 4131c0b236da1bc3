package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// LoggingGenerator logs latency and outcome of every call.
type LoggingGenerator struct {
	inner Generator
}

func WithLogging(g Generator) *LoggingGenerator {
	return &LoggingGenerator{inner: g}
}

func (l *LoggingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := l.inner.Generate(ctx, prompt)
	latency := time.Since(start)

	if err != nil {
		log.Warn().Err(err).Str("model", l.inner.ModelID()).Dur("latency", latency).Msg("LLM generation failed")
		return "", err
	}
	log.Debug().
		Str("model", l.inner.ModelID()).
		Dur("latency", latency).
		Int("prompt_len", len(prompt)).
		Int("response_len", len(text)).
		Msg("LLM generation completed")
	return text, nil
}

func (l *LoggingGenerator) ModelID() string { return l.inner.ModelID() }

func (l *LoggingGenerator) Unwrap() Generator { return l.inner }

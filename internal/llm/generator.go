package llm

import (
	"context"
)

//go:generate mockgen -source=./generator.go -destination=./mocks/generator.mock.go -package=llmmocks Generator

// Generator is the external text-generation capability. One call per prompt,
// no streaming. Implementations never retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelID() string
}

// GeneratorFunc adapts a function to Generator. Handy for wiring fakes.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func (f GeneratorFunc) ModelID() string { return "func" }

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through so callers can use raw model IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

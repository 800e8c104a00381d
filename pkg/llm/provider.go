package llm

import "context"

// Provider is the minimal surface the question-generation step needs from
// an AI backend.
type Provider interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

package ai

import "context"

// Provider is the language-model collaborator. Both reply generation and
// the model-assisted risk check go through it; callers own the fallback
// behavior when it fails.
type Provider interface {
	Complete(ctx context.Context, model string, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, model string, systemPrompt string, prompt string) (string, error)
}

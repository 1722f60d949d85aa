package llm

import "context"

// Provider defines the interface all generative model backends implement.
// It is a unified abstraction over remote services (OpenAI, Anthropic) and
// local runtimes (Ollama). Calls are blocking and network-bound; callers
// impose deadlines through the context.
type Provider interface {
	// Name returns the provider name (e.g. "openai", "ollama").
	Name() string

	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

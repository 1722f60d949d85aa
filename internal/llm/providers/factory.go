package providers

import (
	"fmt"

	"github.com/ybai789/moviegraph/internal/llm"
	"github.com/ybai789/moviegraph/internal/types"
)

// NewProvider creates a model provider based on the configuration.
func NewProvider(cfg llm.ProviderConfig) (llm.Provider, error) {
	switch cfg.Type {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "anthropic":
		return NewAnthropicProvider(cfg)
	case "ollama":
		return NewOllamaProvider(cfg)
	case "mock":
		return NewMockProvider("mock response"), nil
	default:
		return nil, types.NewError(llm.ErrProviderNotFound,
			fmt.Sprintf("unknown provider type: %q", cfg.Type))
	}
}

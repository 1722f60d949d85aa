package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ybai789/moviegraph/internal/llm"
	"github.com/ybai789/moviegraph/internal/types"
)

// Composer error codes
const (
	ErrCodeComposeFailed types.ErrorCode = "QA_COMPOSE_FAILED"
)

const composerSystemPrompt = `You are a helpful movie information assistant. Generate a natural, conversational response
using the provided query results. Keep the following guidelines in mind:
- Be concise but informative
- Include relevant numbers and statistics when available
- Use a friendly, conversational tone
- Highlight interesting connections or patterns in the data
- If no results are found, suggest possible reasons or alternative queries`

// Composer renders structured query results into a natural-language answer.
// Unlike the synthesizer it runs at a higher temperature: phrasing variety is
// acceptable, query correctness is not.
type Composer struct {
	provider    llm.Provider
	model       string
	temperature float64
	timeout     time.Duration
	logger      *slog.Logger
}

// NewComposer creates a Composer backed by provider.
func NewComposer(provider llm.Provider, model string, timeout time.Duration, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		provider:    provider,
		model:       model,
		temperature: 0.7,
		timeout:     timeout,
		logger:      logger,
	}
}

// Compose turns the original question and its query results into an answer.
// The zero-row case is handled by prompt guidance: the model suggests reasons
// or alternatives instead of asserting false data. A blank model response is
// an error; the orchestrator owns the user-visible fallback.
func (c *Composer) Compose(ctx context.Context, question string, results []map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	serialized, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", types.WrapError(ErrCodeComposeFailed, "failed to serialize query results", err)
	}

	userPrompt := fmt.Sprintf(
		"Question: %s\n\nQuery Results: %s\n\nGenerate a natural language response based on these results.",
		question, serialized)

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Model: c.model,
		Messages: []llm.Message{
			llm.NewSystemMessage(composerSystemPrompt),
			llm.NewUserMessage(userPrompt),
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}

	answer := resp.Text()
	if answer == "" {
		return "", types.NewError(ErrCodeComposeFailed, "model returned an empty answer")
	}
	return answer, nil
}

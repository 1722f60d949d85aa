package qa

import (
	"context"
	"log/slog"
	"time"

	"github.com/ybai789/moviegraph/internal/llm"
)

// QuestionIntent is the structured result of intent/entity extraction.
// Primary is empty when no intent could be determined. Entities maps a
// category ("movies", "people", "genres") to the names extracted from the
// question.
type QuestionIntent struct {
	Primary  string              `json:"primary_intent"`
	Entities map[string][]string `json:"entities"`
}

// IsZero reports whether nothing was extracted.
func (q QuestionIntent) IsZero() bool {
	return q.Primary == "" && len(q.Entities) == 0
}

const intentSystemPrompt = `Analyze the following question and extract its intent and entities.
The output should be a JSON object with the following fields:
- primary_intent: A string describing the main intent (e.g., "movie_search", "person_info").
- entities: A dictionary with keys such as "movies", "people", or "genres",
  each containing a list of relevant names or terms extracted from the question.`

// Extractor classifies a question's intent and extracts entity mentions using
// a generative model. It is advisory: every failure degrades to a neutral
// QuestionIntent, never to an error.
type Extractor struct {
	provider llm.Provider
	model    string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewExtractor creates an Extractor backed by provider.
func NewExtractor(provider llm.Provider, model string, timeout time.Duration, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		provider: provider,
		model:    model,
		timeout:  timeout,
		logger:   logger,
	}
}

// Extract returns the intent and entities mentioned in question. On any
// failure (call error, timeout, unparseable model output) it returns a
// neutral QuestionIntent with empty entities.
func (e *Extractor) Extract(ctx context.Context, question string) QuestionIntent {
	neutral := QuestionIntent{Entities: map[string][]string{}}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model: e.model,
		Messages: []llm.Message{
			llm.NewSystemMessage(intentSystemPrompt),
			llm.NewUserMessage("Question: " + question),
		},
		Temperature: 0,
	})
	if err != nil {
		e.logger.Error("intent extraction call failed", "question", question, "error", err)
		return neutral
	}

	intent, err := llm.UnmarshalResponse[QuestionIntent](resp.Text())
	if err != nil {
		e.logger.Error("intent extraction parse failed",
			"question", question,
			"response", resp.Text(),
			"error", err)
		return neutral
	}

	if intent.Entities == nil {
		intent.Entities = map[string][]string{}
	}
	return intent
}

package qa

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/ybai789/moviegraph/internal/llm"
)

// cypherSchemaPrompt is the fixed schema description supplied to the model.
// The synthesizer never accepts queries over anything but this schema.
const cypherSchemaPrompt = `You are a Cypher query generator for a movie knowledge graph with the following schema:
Nodes:
- Movie (properties: id, name, year, rating, certificate, run_time, tagline, budget, box_office)
- Person (properties: name)
- Genre (properties: name)

Relationships:
- (Person)-[:DIRECTED]->(Movie)
- (Person)-[:ACTED_IN]->(Movie)
- (Person)-[:WROTE]->(Movie)
- (Movie)-[:BELONGS_TO]->(Genre)

Generate only the Cypher query without any explanation or additional text.
Only generate read queries; never generate queries that modify the graph.`

// Synthesizer translates a free-form question into a Cypher query over the
// fixed movie schema. Generation runs at temperature zero: two different
// queries for the same question would be a correctness regression.
type Synthesizer struct {
	provider llm.Provider
	model    string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewSynthesizer creates a Synthesizer backed by provider.
func NewSynthesizer(provider llm.Provider, model string, timeout time.Duration, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{
		provider: provider,
		model:    model,
		timeout:  timeout,
		logger:   logger,
	}
}

// Synthesize produces a Cypher query for question. hint, when non-zero,
// carries the extractor's advisory intent classification. The returned text
// is stripped of code fences but deliberately not validated here: screening
// and execution failures are handled downstream by the executor's fail-soft
// contract.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, hint QuestionIntent) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var user strings.Builder
	fmt.Fprintf(&user, "Generate a Cypher query for the question: %s", question)
	if !hint.IsZero() {
		fmt.Fprintf(&user, "\n\nIntent analysis of the question: %s", hint.Describe())
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.Message{
			llm.NewSystemMessage(cypherSchemaPrompt),
			llm.NewUserMessage(user.String()),
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}

	query := llm.StripFences(resp.Text())
	s.logger.Info("generated cypher query", "question", question, "query", query)
	return query, nil
}

// Describe renders the intent as a short hint line for the synthesizer
// prompt. Categories are sorted so the same intent always produces the same
// prompt text.
func (q QuestionIntent) Describe() string {
	var parts []string
	if q.Primary != "" {
		parts = append(parts, "intent="+q.Primary)
	}

	categories := make([]string, 0, len(q.Entities))
	for category := range q.Entities {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		if names := q.Entities[category]; len(names) > 0 {
			parts = append(parts, category+"="+strings.Join(names, ", "))
		}
	}
	return strings.Join(parts, "; ")
}

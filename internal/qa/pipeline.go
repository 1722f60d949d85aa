package qa

import (
	"context"
	"log/slog"

	"github.com/ybai789/moviegraph/internal/graph"
)

// Fixed user-visible messages. No raw error text ever reaches the user.
const (
	// UnknownQuestionMessage answers questions no pattern matched.
	UnknownQuestionMessage = "I'm sorry, I don't understand that question."

	// ErrorMessage is the deterministic pipeline's degraded answer.
	ErrorMessage = "I encountered an error while processing your question."

	// RetryErrorMessage is the generative pipeline's degraded answer.
	RetryErrorMessage = "I encountered an error while processing your question. Please try again."
)

// Pipeline answers a natural-language question. Answer never fails: every
// internal error degrades to a fixed user-visible message.
type Pipeline interface {
	Answer(ctx context.Context, question string) string
}

// TemplatePipeline is the deterministic pipeline: pattern match, template
// query, fixed per-intent formatting. No generative calls.
type TemplatePipeline struct {
	matcher  *Matcher
	executor *graph.Executor
	logger   *slog.Logger
}

// NewTemplatePipeline creates the deterministic pipeline over the default
// rule table.
func NewTemplatePipeline(executor *graph.Executor, logger *slog.Logger) *TemplatePipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplatePipeline{
		matcher:  NewMatcher(DefaultRules()),
		executor: executor,
		logger:   logger,
	}
}

// Answer processes question through match, execute, and format. An unmatched
// question short-circuits to the fixed unknown-question message.
func (p *TemplatePipeline) Answer(ctx context.Context, question string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic while processing question", "question", question, "panic", r)
			answer = ErrorMessage
		}
	}()

	match, ok := p.matcher.Match(question)
	if !ok {
		return UnknownQuestionMessage
	}

	var params map[string]any
	if match.HasParam {
		params = map[string]any{"param1": match.Param}
	}

	rows := p.executor.Execute(ctx, match.Query, params)

	text, err := FormatResults(match.Intent, rows)
	if err != nil {
		p.logger.Error("failed to format results",
			"question", question,
			"intent", match.Intent,
			"error", err)
		return ErrorMessage
	}
	return text
}

// GenerativePipeline is the open-ended pipeline: a model synthesizes a Cypher
// query for any free-form question, the executor runs it fail-soft, and a
// second model call renders the rows as prose. There is no unmatched branch;
// a bad query naturally collapses to an empty result set, which the composer
// still turns into a coherent answer.
type GenerativePipeline struct {
	extractor   *Extractor // advisory, may be nil
	synthesizer *Synthesizer
	composer    *Composer
	executor    *graph.Executor
	logger      *slog.Logger
}

// NewGenerativePipeline creates the generative pipeline. extractor may be nil
// to skip the advisory intent analysis step.
func NewGenerativePipeline(extractor *Extractor, synthesizer *Synthesizer, composer *Composer, executor *graph.Executor, logger *slog.Logger) *GenerativePipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerativePipeline{
		extractor:   extractor,
		synthesizer: synthesizer,
		composer:    composer,
		executor:    executor,
		logger:      logger,
	}
}

// Answer processes question through synthesize, execute, and compose.
// Generative call failures have no reasonable empty value, so they degrade
// here, at the orchestration boundary, to the fixed retry message.
func (p *GenerativePipeline) Answer(ctx context.Context, question string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic while processing question", "question", question, "panic", r)
			answer = RetryErrorMessage
		}
	}()

	var hint QuestionIntent
	if p.extractor != nil {
		hint = p.extractor.Extract(ctx, question)
	}

	cypher, err := p.synthesizer.Synthesize(ctx, question, hint)
	if err != nil {
		p.logger.Error("query synthesis failed", "question", question, "error", err)
		return RetryErrorMessage
	}

	// Model-generated Cypher is untrusted input: it runs through the
	// read-only screen and is never string-formatted with further parameters.
	rows := p.executor.ExecuteChecked(ctx, cypher)

	text, err := p.composer.Compose(ctx, question, rows)
	if err != nil {
		p.logger.Error("answer composition failed", "question", question, "error", err)
		return RetryErrorMessage
	}
	return text
}

package qa

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybai789/moviegraph/internal/llm"
	"github.com/ybai789/moviegraph/internal/llm/providers"
)

func TestExtractor_ParsesIntent(t *testing.T) {
	provider := providers.NewMockProvider(
		`{"primary_intent": "movie_search", "entities": {"people": ["Quentin Tarantino"], "genres": ["Crime"]}}`)

	extractor := NewExtractor(provider, "test-model", time.Second, discardLogger())
	intent := extractor.Extract(context.Background(), "crime movies by Quentin Tarantino")

	assert.Equal(t, "movie_search", intent.Primary)
	assert.Equal(t, []string{"Quentin Tarantino"}, intent.Entities["people"])
	assert.Equal(t, []string{"Crime"}, intent.Entities["genres"])
	assert.False(t, intent.IsZero())
}

func TestExtractor_ParsesFencedResponse(t *testing.T) {
	provider := providers.NewMockProvider(
		"```json\n{\"primary_intent\": \"person_info\", \"entities\": {\"people\": [\"Meryl Streep\"]}}\n```")

	extractor := NewExtractor(provider, "test-model", time.Second, discardLogger())
	intent := extractor.Extract(context.Background(), "who is Meryl Streep")

	assert.Equal(t, "person_info", intent.Primary)
}

func TestExtractor_MalformedOutputDegradesToNeutral(t *testing.T) {
	provider := providers.NewMockProvider("I think this question is about movies.")

	extractor := NewExtractor(provider, "test-model", time.Second, discardLogger())
	intent := extractor.Extract(context.Background(), "anything")

	assert.True(t, intent.IsZero())
	assert.NotNil(t, intent.Entities)
}

func TestExtractor_CallFailureDegradesToNeutral(t *testing.T) {
	provider := providers.NewMockProvider()
	provider.Err = errors.New("request timed out")

	extractor := NewExtractor(provider, "test-model", time.Second, discardLogger())
	intent := extractor.Extract(context.Background(), "anything")

	assert.True(t, intent.IsZero())
}

func TestExtractor_UsesTemperatureZero(t *testing.T) {
	provider := providers.NewMockProvider(`{"primary_intent": "x", "entities": {}}`)

	extractor := NewExtractor(provider, "test-model", time.Second, discardLogger())
	extractor.Extract(context.Background(), "a question")

	req := provider.LastRequest()
	assert.Zero(t, req.Temperature)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, "a question")
}

func TestQuestionIntent_Describe(t *testing.T) {
	intent := QuestionIntent{
		Primary: "movie_search",
		Entities: map[string][]string{
			"people": {"Sofia Coppola"},
			"genres": {"Drama", "Romance"},
		},
	}

	assert.Equal(t, "intent=movie_search; genres=Drama, Romance; people=Sofia Coppola", intent.Describe())
	assert.Equal(t, "", QuestionIntent{}.Describe())
}

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

func TestSynthesizer_StripsFences(t *testing.T) {
	provider := providers.NewMockProvider(
		"```cypher\nMATCH (m:Movie)-[:BELONGS_TO]->(g:Genre {name: 'Horror'}) RETURN m.name\n```")

	synth := NewSynthesizer(provider, "test-model", time.Second, discardLogger())
	query, err := synth.Synthesize(context.Background(), "list horror movies", QuestionIntent{})

	require.NoError(t, err)
	assert.Equal(t, "MATCH (m:Movie)-[:BELONGS_TO]->(g:Genre {name: 'Horror'}) RETURN m.name", query)
}

func TestSynthesizer_SendsSchemaAndTemperatureZero(t *testing.T) {
	provider := providers.NewMockProvider("MATCH (m:Movie) RETURN m.name")

	synth := NewSynthesizer(provider, "test-model", time.Second, discardLogger())
	_, err := synth.Synthesize(context.Background(), "list movies", QuestionIntent{})
	require.NoError(t, err)

	req := provider.LastRequest()
	assert.Zero(t, req.Temperature)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "(Person)-[:DIRECTED]->(Movie)")
	assert.Contains(t, req.Messages[0].Content, "(Movie)-[:BELONGS_TO]->(Genre)")
	assert.Contains(t, req.Messages[0].Content, "box_office")
	assert.Contains(t, req.Messages[1].Content, "list movies")
}

func TestSynthesizer_IncludesHint(t *testing.T) {
	provider := providers.NewMockProvider("MATCH (m:Movie) RETURN m.name")

	synth := NewSynthesizer(provider, "test-model", time.Second, discardLogger())
	hint := QuestionIntent{Primary: "movie_search", Entities: map[string][]string{"people": {"Ang Lee"}}}
	_, err := synth.Synthesize(context.Background(), "movies by Ang Lee", hint)
	require.NoError(t, err)

	assert.Contains(t, provider.LastRequest().Messages[1].Content, "intent=movie_search")
	assert.Contains(t, provider.LastRequest().Messages[1].Content, "people=Ang Lee")
}

func TestSynthesizer_OmitsEmptyHint(t *testing.T) {
	provider := providers.NewMockProvider("MATCH (m:Movie) RETURN m.name")

	synth := NewSynthesizer(provider, "test-model", time.Second, discardLogger())
	_, err := synth.Synthesize(context.Background(), "movies", QuestionIntent{Entities: map[string][]string{}})
	require.NoError(t, err)

	assert.NotContains(t, provider.LastRequest().Messages[1].Content, "Intent analysis")
}

func TestSynthesizer_PropagatesCallFailure(t *testing.T) {
	provider := providers.NewMockProvider()
	provider.Err = errors.New("service unavailable")

	synth := NewSynthesizer(provider, "test-model", time.Second, discardLogger())
	_, err := synth.Synthesize(context.Background(), "anything", QuestionIntent{})

	require.Error(t, err)
}

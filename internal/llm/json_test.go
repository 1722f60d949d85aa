package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_FencedBlock(t *testing.T) {
	response := "Here is the analysis:\n\n```json\n{\"primary_intent\": \"movie_search\", \"entities\": {\"people\": [\"Tom Hanks\"]}}\n```\n\nLet me know if you need more."

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"primary_intent": "movie_search", "entities": {"people": ["Tom Hanks"]}}`, result)
}

func TestExtractJSON_RawObject(t *testing.T) {
	result, err := ExtractJSON(`{"primary_intent": "person_info", "entities": {}}`)
	require.NoError(t, err)
	assert.Equal(t, `{"primary_intent": "person_info", "entities": {}}`, result)
}

func TestExtractJSON_RawArray(t *testing.T) {
	response := `[{"movie": "Heat"}, {"movie": "Ronin"}]`
	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, response, result)
}

func TestExtractJSON_ObjectWithSurroundingProse(t *testing.T) {
	response := `Sure! The intent breakdown is {"primary_intent": "genre_search", "entities": {"genres": ["Drama"]}} as requested.`

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"primary_intent": "genre_search", "entities": {"genres": ["Drama"]}}`, result)
}

func TestExtractJSON_NestedBracesInStrings(t *testing.T) {
	response := `{"note": "braces { and } in a string", "ok": true}`

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, response, result)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON("I could not determine the intent of that question.")
	require.Error(t, err)
}

func TestExtractJSON_SkipsInvalidPrefix(t *testing.T) {
	response := `{broken then valid: {"ok": true}`

	result, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, result)
}

func TestUnmarshalResponse(t *testing.T) {
	type intentPayload struct {
		PrimaryIntent string              `json:"primary_intent"`
		Entities      map[string][]string `json:"entities"`
	}

	payload, err := UnmarshalResponse[intentPayload]("```json\n{\"primary_intent\": \"movie_search\", \"entities\": {\"movies\": [\"Alien\"]}}\n```")
	require.NoError(t, err)
	assert.Equal(t, "movie_search", payload.PrimaryIntent)
	assert.Equal(t, []string{"Alien"}, payload.Entities["movies"])
}

func TestUnmarshalResponse_TypeMismatch(t *testing.T) {
	type intentPayload struct {
		PrimaryIntent string `json:"primary_intent"`
	}

	_, err := UnmarshalResponse[intentPayload](`{"primary_intent": 42}`)
	require.Error(t, err)
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"MATCH (m:Movie) RETURN m.name":                                 "MATCH (m:Movie) RETURN m.name",
		"```\nMATCH (m:Movie) RETURN m.name\n```":                       "MATCH (m:Movie) RETURN m.name",
		"```cypher\nMATCH (m:Movie) RETURN m.name\n```":                 "MATCH (m:Movie) RETURN m.name",
		"  ```cypher\nMATCH (m:Movie)\nRETURN m.name\n```  ":            "MATCH (m:Movie)\nRETURN m.name",
		"```MATCH (m:Movie) RETURN m.name```":                           "MATCH (m:Movie) RETURN m.name",
		"MATCH (p:Person) WHERE p.name = 'Jodie Foster' RETURN p.name": "MATCH (p:Person) WHERE p.name = 'Jodie Foster' RETURN p.name",
	}

	for in, want := range cases {
		assert.Equal(t, want, StripFences(in), "input: %q", in)
	}
}

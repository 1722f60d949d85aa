package llm

import (
	"encoding/json"
	"strings"

	"github.com/ybai789/moviegraph/internal/types"
)

// ExtractJSON pulls the first complete JSON object or array out of a model
// response. Models wrap structured output in markdown fences, prose, or both;
// instead of pattern-matching the wrapping, this scans for the first opening
// bracket from which a full JSON value can be decoded.
func ExtractJSON(response string) (string, error) {
	for i := 0; i < len(response); i++ {
		if response[i] != '{' && response[i] != '[' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(response[i:]))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err == nil {
			return string(raw), nil
		}
	}
	return "", types.NewError(ErrResponseParseFailed, "no valid JSON value found in response")
}

// UnmarshalResponse extracts JSON from a model response and unmarshals it
// into T.
func UnmarshalResponse[T any](response string) (T, error) {
	var result T

	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return result, types.WrapError(ErrResponseParseFailed, "failed to unmarshal response JSON", err)
	}
	return result, nil
}

// StripFences removes a surrounding markdown code fence (``` or ```cypher)
// from model output, returning the inner text trimmed of whitespace.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop a language tag on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 && isFenceTag(s[:idx]) {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isFenceTag(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "cypher", "sql", "json", "text":
		return true
	default:
		return false
	}
}

package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_DirectorMovies(t *testing.T) {
	m := NewMatcher(DefaultRules())

	match, ok := m.Match("What movies did Christopher Nolan direct")
	require.True(t, ok)
	assert.Equal(t, IntentDirectorMovies, match.Intent)
	assert.Equal(t, "Christopher Nolan", match.Param)
	assert.True(t, match.HasParam)
	assert.Contains(t, match.Query, "[:DIRECTED]")
	assert.Contains(t, match.Query, "$param1")
}

func TestMatcher_CaseInsensitive(t *testing.T) {
	m := NewMatcher(DefaultRules())

	match, ok := m.Match("WHAT MOVIES DID STANLEY KUBRICK DIRECT")
	require.True(t, ok)
	assert.Equal(t, IntentDirectorMovies, match.Intent)
	assert.Equal(t, "STANLEY KUBRICK", match.Param)
}

func TestMatcher_AlternativePhrasings(t *testing.T) {
	m := NewMatcher(DefaultRules())

	cases := []struct {
		question string
		intent   IntentTag
		param    string
	}{
		{"show me movies directed by Ridley Scott", IntentDirectorMovies, "Ridley Scott"},
		{"what movies did Tom Hanks act in", IntentActorMovies, "Tom Hanks"},
		{"show me movies starring Al Pacino", IntentActorMovies, "Al Pacino"},
		{"which movies featured Jodie Foster", IntentActorMovies, "Jodie Foster"},
		{"tell me about the movie The Godfather", IntentMovieInfo, "The Godfather"},
		{"show details of movie Casablanca", IntentMovieInfo, "Casablanca"},
	}

	for _, tc := range cases {
		match, ok := m.Match(tc.question)
		require.True(t, ok, tc.question)
		assert.Equal(t, tc.intent, match.Intent, tc.question)
		assert.Equal(t, tc.param, match.Param, tc.question)
	}
}

func TestMatcher_TrimsWhitespaceAndPunctuation(t *testing.T) {
	m := NewMatcher(DefaultRules())

	match, ok := m.Match("  what movies did Christopher Nolan direct?  ")
	require.True(t, ok)
	assert.Equal(t, "Christopher Nolan", match.Param)

	match, ok = m.Match("tell me about the movie Seven.")
	require.True(t, ok)
	assert.Equal(t, "Seven", match.Param)
}

func TestMatcher_AnchoredAtStart(t *testing.T) {
	m := NewMatcher(DefaultRules())

	// The pattern occurs inside the string but not at the start.
	_, ok := m.Match("I wonder, what movies did Christopher Nolan direct")
	assert.False(t, ok)
}

func TestMatcher_FirstMatchWins(t *testing.T) {
	m := NewMatcher(DefaultRules())

	// "what movies did X direct" is tried before actor patterns, and within
	// a rule the alternatives are tried in order.
	match, ok := m.Match("what movies did Clint Eastwood direct")
	require.True(t, ok)
	assert.Equal(t, IntentDirectorMovies, match.Intent)

	match, ok = m.Match("what movies did Clint Eastwood act in")
	require.True(t, ok)
	assert.Equal(t, IntentActorMovies, match.Intent)
}

func TestMatcher_NoMatch(t *testing.T) {
	m := NewMatcher(DefaultRules())

	match, ok := m.Match("how is the weather today")
	assert.False(t, ok)
	assert.Equal(t, Match{}, match)
}

func TestMatcher_EmptyQuestion(t *testing.T) {
	m := NewMatcher(DefaultRules())

	_, ok := m.Match("")
	assert.False(t, ok)
	_, ok = m.Match("   ")
	assert.False(t, ok)
}

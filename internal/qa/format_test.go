package qa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResults_MovieList(t *testing.T) {
	rows := []map[string]any{
		{"movie": "The Dark Knight", "year": int64(2008), "rating": 9.0},
		{"movie": "Inception", "year": int64(2010), "rating": 8.8},
		{"movie": "Interstellar", "year": int64(2014), "rating": 8.7},
	}

	out, err := FormatResults(IntentDirectorMovies, rows)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "The Dark Knight (2008) - Rating: 9", lines[0])
	assert.Equal(t, "Inception (2010) - Rating: 8.8", lines[1])
	assert.Equal(t, "Interstellar (2014) - Rating: 8.7", lines[2])
}

func TestFormatResults_PreservesRowOrder(t *testing.T) {
	rows := []map[string]any{
		{"movie": "B", "year": int64(2000), "rating": 5.0},
		{"movie": "A", "year": int64(1999), "rating": 9.9},
	}

	out, err := FormatResults(IntentActorMovies, rows)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "B "))
	assert.True(t, strings.HasPrefix(lines[1], "A "))
}

func TestFormatResults_Empty(t *testing.T) {
	out, err := FormatResults(IntentDirectorMovies, nil)
	require.NoError(t, err)
	assert.Equal(t, "No results found.", out)

	out, err = FormatResults(IntentMovieInfo, []map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "No results found.", out)
}

func TestFormatResults_MovieInfo(t *testing.T) {
	rows := []map[string]any{{
		"movie":       "Pulp Fiction",
		"year":        int64(1994),
		"rating":      8.9,
		"certificate": "R",
		"runtime":     "2h 34m",
		"directors":   []any{"Quentin Tarantino"},
		"genres":      []any{"Crime", "Drama"},
		"actors":      []any{"John Travolta", "Samuel L. Jackson", "Uma Thurman"},
	}}

	out, err := FormatResults(IntentMovieInfo, rows)
	require.NoError(t, err)

	assert.Equal(t, "Movie: Pulp Fiction (1994)\n"+
		"Rating: 8.9\n"+
		"Certificate: R\n"+
		"Runtime: 2h 34m\n"+
		"Directors: Quentin Tarantino\n"+
		"Genres: Crime, Drama\n"+
		"Actors: John Travolta, Samuel L. Jackson, Uma Thurman", out)
}

func TestFormatResults_MovieInfoDropsNullCollectEntries(t *testing.T) {
	// OPTIONAL MATCH with no match yields collect() lists containing nil.
	rows := []map[string]any{{
		"movie":       "Obscure Film",
		"year":        int64(1970),
		"rating":      6.1,
		"certificate": "PG",
		"runtime":     "1h 30m",
		"directors":   []any{nil},
		"genres":      []any{"Drama"},
		"actors":      []any{nil},
	}}

	out, err := FormatResults(IntentMovieInfo, rows)
	require.NoError(t, err)
	assert.Contains(t, out, "Directors: \n")
	assert.Contains(t, out, "Genres: Drama\n")
}

func TestFormatResults_MissingFieldFails(t *testing.T) {
	rows := []map[string]any{
		{"movie": "No Year", "rating": 7.0},
	}

	_, err := FormatResults(IntentDirectorMovies, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")
}

func TestFormatResults_WrongTypeFails(t *testing.T) {
	rows := []map[string]any{
		{"movie": 42, "year": int64(2001), "rating": 7.0},
	}

	_, err := FormatResults(IntentActorMovies, rows)
	require.Error(t, err)
}

func TestFormatResults_UnknownIntent(t *testing.T) {
	_, err := FormatResults(IntentTag("genre_movies"), []map[string]any{{"x": 1}})
	require.Error(t, err)
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "8.8", formatRating(8.8))
	assert.Equal(t, "9", formatRating(9.0))
	assert.Equal(t, "7.25", formatRating(7.25))
}

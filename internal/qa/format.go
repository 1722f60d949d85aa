package qa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ybai789/moviegraph/internal/types"
)

// Formatter error codes
const (
	ErrCodeRowInvalid    types.ErrorCode = "QA_ROW_INVALID"
	ErrCodeIntentUnknown types.ErrorCode = "QA_INTENT_UNKNOWN"
)

// noResultsMessage is the fixed rendering of an empty deterministic result.
const noResultsMessage = "No results found."

// MovieSummary is one row of a movie-list result. Construction validates the
// row shape so a renamed query column fails loudly instead of printing blanks.
type MovieSummary struct {
	Name   string
	Year   int64
	Rating float64
}

// MovieDetail is the single row of a movie-info result.
type MovieDetail struct {
	Name        string
	Year        int64
	Rating      float64
	Certificate string
	Runtime     string
	Directors   []string
	Genres      []string
	Actors      []string
}

// FormatResults renders query rows for the given intent using its fixed
// template. Zero rows render as the fixed no-results message. A malformed
// row is an error: the orchestrator converts it to the fixed apology, which
// beats silently asserting wrong data.
func FormatResults(intent IntentTag, rows []map[string]any) (string, error) {
	if len(rows) == 0 {
		return noResultsMessage, nil
	}

	switch intent {
	case IntentDirectorMovies, IntentActorMovies:
		return formatMovieList(rows)
	case IntentMovieInfo:
		return formatMovieInfo(rows)
	default:
		return "", types.NewError(ErrCodeIntentUnknown, "no formatter for intent: "+string(intent))
	}
}

// formatMovieList renders one "<name> (<year>) - Rating: <rating>" line per
// row, preserving the row order (the query already sorts by rating).
func formatMovieList(rows []map[string]any) (string, error) {
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		summary, err := movieSummaryFromRow(row)
		if err != nil {
			return "", types.WrapError(ErrCodeRowInvalid, fmt.Sprintf("row %d", i), err)
		}
		lines = append(lines, fmt.Sprintf("%s (%d) - Rating: %s",
			summary.Name, summary.Year, formatRating(summary.Rating)))
	}
	return strings.Join(lines, "\n"), nil
}

// formatMovieInfo renders each row as a multi-line info block with
// comma-joined people and genre lists.
func formatMovieInfo(rows []map[string]any) (string, error) {
	blocks := make([]string, 0, len(rows))
	for i, row := range rows {
		detail, err := movieDetailFromRow(row)
		if err != nil {
			return "", types.WrapError(ErrCodeRowInvalid, fmt.Sprintf("row %d", i), err)
		}
		blocks = append(blocks, fmt.Sprintf(
			"Movie: %s (%d)\nRating: %s\nCertificate: %s\nRuntime: %s\nDirectors: %s\nGenres: %s\nActors: %s",
			detail.Name, detail.Year, formatRating(detail.Rating),
			detail.Certificate, detail.Runtime,
			strings.Join(detail.Directors, ", "),
			strings.Join(detail.Genres, ", "),
			strings.Join(detail.Actors, ", ")))
	}
	return strings.Join(blocks, "\n"), nil
}

func movieSummaryFromRow(row map[string]any) (MovieSummary, error) {
	name, err := stringField(row, "movie")
	if err != nil {
		return MovieSummary{}, err
	}
	year, err := intField(row, "year")
	if err != nil {
		return MovieSummary{}, err
	}
	rating, err := floatField(row, "rating")
	if err != nil {
		return MovieSummary{}, err
	}
	return MovieSummary{Name: name, Year: year, Rating: rating}, nil
}

func movieDetailFromRow(row map[string]any) (MovieDetail, error) {
	summary, err := movieSummaryFromRow(row)
	if err != nil {
		return MovieDetail{}, err
	}
	certificate, err := stringField(row, "certificate")
	if err != nil {
		return MovieDetail{}, err
	}
	runtime, err := stringField(row, "runtime")
	if err != nil {
		return MovieDetail{}, err
	}
	directors, err := listField(row, "directors")
	if err != nil {
		return MovieDetail{}, err
	}
	genres, err := listField(row, "genres")
	if err != nil {
		return MovieDetail{}, err
	}
	actors, err := listField(row, "actors")
	if err != nil {
		return MovieDetail{}, err
	}
	return MovieDetail{
		Name:        summary.Name,
		Year:        summary.Year,
		Rating:      summary.Rating,
		Certificate: certificate,
		Runtime:     runtime,
		Directors:   directors,
		Genres:      genres,
		Actors:      actors,
	}, nil
}

// formatRating uses the shortest float representation: "8.8", not "8.800000".
func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

func stringField(row map[string]any, key string) (string, error) {
	v, ok := row[key]
	if !ok {
		return "", types.NewError(ErrCodeRowInvalid, "missing field: "+key)
	}
	s, ok := v.(string)
	if !ok {
		return "", types.NewError(ErrCodeRowInvalid,
			fmt.Sprintf("field %s: expected string, got %T", key, v))
	}
	return s, nil
}

func intField(row map[string]any, key string) (int64, error) {
	v, ok := row[key]
	if !ok {
		return 0, types.NewError(ErrCodeRowInvalid, "missing field: "+key)
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, types.NewError(ErrCodeRowInvalid,
			fmt.Sprintf("field %s: expected integer, got %T", key, v))
	}
}

func floatField(row map[string]any, key string) (float64, error) {
	v, ok := row[key]
	if !ok {
		return 0, types.NewError(ErrCodeRowInvalid, "missing field: "+key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, types.NewError(ErrCodeRowInvalid,
			fmt.Sprintf("field %s: expected number, got %T", key, v))
	}
}

// listField accepts the []any the driver returns for collect() as well as
// []string from tests, dropping nulls that OPTIONAL MATCH can produce.
func listField(row map[string]any, key string) ([]string, error) {
	v, ok := row[key]
	if !ok {
		return nil, types.NewError(ErrCodeRowInvalid, "missing field: "+key)
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if item == nil {
				continue
			}
			s, ok := item.(string)
			if !ok {
				return nil, types.NewError(ErrCodeRowInvalid,
					fmt.Sprintf("field %s: expected string element, got %T", key, item))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, types.NewError(ErrCodeRowInvalid,
			fmt.Sprintf("field %s: expected list, got %T", key, v))
	}
}

// Package loader imports the IMDB top-movies CSV into the Neo4j graph.
// The import is idempotent: nodes are MERGEd on their natural keys and
// re-importing the same file never duplicates nodes or relationships.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ybai789/moviegraph/internal/graph"
	"github.com/ybai789/moviegraph/internal/types"
)

// schemaStatements are the constraints and indexes the QA queries rely on.
// All use IF NOT EXISTS so ensuring the schema is idempotent.
var schemaStatements = []string{
	"CREATE CONSTRAINT movie_id IF NOT EXISTS FOR (m:Movie) REQUIRE m.id IS UNIQUE",
	"CREATE CONSTRAINT person_name IF NOT EXISTS FOR (p:Person) REQUIRE p.name IS UNIQUE",
	"CREATE CONSTRAINT genre_name IF NOT EXISTS FOR (g:Genre) REQUIRE g.name IS UNIQUE",
	"CREATE INDEX movie_name IF NOT EXISTS FOR (m:Movie) ON (m.name)",
}

const mergeMovieQuery = `
MERGE (m:Movie {id: $rank})
SET m.name = $name,
    m.year = $year,
    m.rating = $rating,
    m.certificate = $certificate,
    m.run_time = $run_time,
    m.tagline = $tagline,
    m.budget = $budget,
    m.box_office = $box_office`

const mergeGenreQuery = `
MATCH (m:Movie {id: $movie_id})
MERGE (g:Genre {name: $genre})
MERGE (m)-[:BELONGS_TO]->(g)`

// Relationship types between Person and Movie. The relationship type is
// spliced into the query text, so it must come from this fixed set, never
// from input data.
const (
	RelDirected = "DIRECTED"
	RelWrote    = "WROTE"
	RelActedIn  = "ACTED_IN"
)

func mergePersonQuery(relType string) string {
	return fmt.Sprintf(`
MATCH (m:Movie {id: $movie_id})
MERGE (p:Person {name: $person})
MERGE (p)-[:%s]->(m)`, relType)
}

// requiredColumns are the CSV columns a row must provide. List columns
// (genre, casts, directors, writers) are optional; absent values load as
// empty relationship sets.
var requiredColumns = []string{"rank", "name", "year", "rating"}

// movieRow is one parsed CSV record.
type movieRow struct {
	Rank        int64
	Name        string
	Year        int64
	Rating      float64
	Certificate string
	RunTime     string
	Tagline     string
	Budget      string
	BoxOffice   string
	Genres      []string
	Directors   []string
	Writers     []string
	Casts       []string
}

// Summary reports the outcome of an import run.
type Summary struct {
	Processed int
	Failed    int
}

// Importer loads the movie CSV into the graph.
type Importer struct {
	client graph.Client
	logger *slog.Logger
}

// NewImporter creates an Importer writing through client.
func NewImporter(client graph.Client, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{client: client, logger: logger}
}

// EnsureSchema creates the constraints and indexes. Safe to run repeatedly.
func (i *Importer) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if err := i.client.Run(ctx, stmt, nil); err != nil {
			return types.WrapError(types.IMPORT_SCHEMA_FAILED, "failed to ensure schema: "+stmt, err)
		}
	}
	return nil
}

// Import reads the CSV at path and loads every row into the graph.
// A malformed row never aborts the batch: it is logged, counted as failed,
// and the import continues with the next row.
func (i *Importer) Import(ctx context.Context, path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, types.WrapError(types.IMPORT_OPEN_FAILED, "failed to open CSV file", err)
	}
	defer f.Close()

	return i.importFrom(ctx, f)
}

func (i *Importer) importFrom(ctx context.Context, r io.Reader) (Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Summary{}, types.WrapError(types.IMPORT_PARSE_FAILED, "failed to read CSV header", err)
	}

	columns, err := columnIndex(header)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			i.logger.Error("skipping unreadable CSV record", "line", line, "error", err)
			summary.Failed++
			continue
		}

		row, err := parseRow(columns, record)
		if err != nil {
			i.logger.Error("skipping malformed row", "line", line, "error", err)
			summary.Failed++
			continue
		}

		if err := i.importRow(ctx, row); err != nil {
			i.logger.Error("failed to import movie", "movie", row.Name, "error", err)
			summary.Failed++
			continue
		}

		i.logger.Info("imported movie", "movie", row.Name, "year", row.Year)
		summary.Processed++
	}

	return summary, nil
}

// importRow merges the movie node and all its relationships.
func (i *Importer) importRow(ctx context.Context, row movieRow) error {
	_, err := i.client.Write(ctx, mergeMovieQuery, map[string]any{
		"rank":        row.Rank,
		"name":        row.Name,
		"year":        row.Year,
		"rating":      row.Rating,
		"certificate": row.Certificate,
		"run_time":    row.RunTime,
		"tagline":     row.Tagline,
		"budget":      row.Budget,
		"box_office":  row.BoxOffice,
	})
	if err != nil {
		return err
	}

	for _, genre := range row.Genres {
		_, err := i.client.Write(ctx, mergeGenreQuery, map[string]any{
			"movie_id": row.Rank,
			"genre":    genre,
		})
		if err != nil {
			return err
		}
	}

	for relType, people := range map[string][]string{
		RelDirected: row.Directors,
		RelWrote:    row.Writers,
		RelActedIn:  row.Casts,
	} {
		query := mergePersonQuery(relType)
		for _, person := range people {
			_, err := i.client.Write(ctx, query, map[string]any{
				"movie_id": row.Rank,
				"person":   person,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func columnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, types.NewError(types.IMPORT_PARSE_FAILED, "CSV is missing required column: "+required)
		}
	}
	return columns, nil
}

func parseRow(columns map[string]int, record []string) (movieRow, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	rank, err := strconv.ParseInt(field("rank"), 10, 64)
	if err != nil {
		return movieRow{}, types.WrapError(types.IMPORT_PARSE_FAILED, "invalid rank", err)
	}

	name := field("name")
	if name == "" {
		return movieRow{}, types.NewError(types.IMPORT_PARSE_FAILED, "movie name is empty")
	}

	year, err := strconv.ParseInt(field("year"), 10, 64)
	if err != nil {
		return movieRow{}, types.WrapError(types.IMPORT_PARSE_FAILED, "invalid year", err)
	}

	rating, err := strconv.ParseFloat(field("rating"), 64)
	if err != nil {
		return movieRow{}, types.WrapError(types.IMPORT_PARSE_FAILED, "invalid rating", err)
	}

	return movieRow{
		Rank:        rank,
		Name:        name,
		Year:        year,
		Rating:      rating,
		Certificate: field("certificate"),
		RunTime:     field("run_time"),
		Tagline:     field("tagline"),
		Budget:      field("budget"),
		BoxOffice:   field("box_office"),
		Genres:      splitList(field("genre")),
		Directors:   splitList(field("directors")),
		Writers:     splitList(field("writers")),
		Casts:       splitList(field("casts")),
	}, nil
}

// splitList splits a comma-separated CSV cell into trimmed, non-empty names.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

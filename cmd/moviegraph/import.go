package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ybai789/moviegraph/internal/loader"
)

var skipSchema bool

var importCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Import the IMDB movie CSV into the graph",
	Long: `Import loads a top-movies CSV file into Neo4j.

Constraints and indexes are created first (idempotently), then every row
is merged into the graph: the Movie node plus its Genre, director, writer,
and cast relationships. Re-importing the same file is safe. Malformed rows
are logged and skipped without aborting the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&skipSchema, "skip-schema", false, "Skip constraint and index creation")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging)

	client, err := connectGraph(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	importer := loader.NewImporter(client, logger)

	if !skipSchema {
		if err := importer.EnsureSchema(ctx); err != nil {
			return err
		}
		cmd.Println("Schema constraints and indexes ensured")
	}

	summary, err := importer.Import(ctx, args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Import complete: %s imported, %s failed\n",
		color.GreenString("%d", summary.Processed),
		color.RedString("%d", summary.Failed))
	if summary.Failed > 0 {
		cmd.Println("Failed rows were logged and skipped; re-run after fixing the CSV to pick them up")
	}
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/ybai789/moviegraph/internal/graph"
	"github.com/ybai789/moviegraph/internal/qa"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer questions with the deterministic pipeline",
	Long: `Ask answers questions by matching them against known phrasings and
running pre-built Cypher templates. No model calls are made; answers are
deterministic and entity parameters are always bound, never interpolated.

With a question argument it answers once and exits. Without arguments it
starts an interactive loop; type 'exit' to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
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

	executor := graph.NewExecutor(client, logger, cfg.Graph.QueryTimeout)
	pipeline := qa.NewTemplatePipeline(executor, logger)

	if len(args) == 1 {
		cmd.Println(pipeline.Answer(ctx, args[0]))
		return nil
	}

	banner := []string{
		"Welcome to the Movie Knowledge Graph QA System!",
		"Type 'exit' to quit.",
	}
	return runREPL(cmd, banner, pipeline.Answer, nil)
}

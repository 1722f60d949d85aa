package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ybai789/moviegraph/internal/graph"
	"github.com/ybai789/moviegraph/internal/qa"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Answer questions with the generative pipeline",
	Long: `Chat answers free-form questions by having a model translate them into
Cypher. Generated queries are screened to be read-only before execution.

Requires a configured model provider and API key; chat refuses to start
without one.

Session commands:
  /history - show the questions and answers of this session
  /clear   - forget the session history
  /quit    - exit (same as 'exit')`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging)

	// Provider construction fails fast on a missing API key, before we
	// touch the database or print a banner.
	provider, err := newQAProvider(cfg)
	if err != nil {
		return err
	}

	client, err := connectGraph(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	executor := graph.NewExecutor(client, logger, cfg.Graph.QueryTimeout)
	pipeline := newGenerativePipeline(cfg, provider, executor, logger)
	session := qa.NewSession()

	answer := func(ctx context.Context, question string) string {
		a := pipeline.Answer(ctx, question)
		session.Append(question, a)
		return a
	}

	banner := []string{
		"Enhanced Movie Knowledge Graph QA System",
		"Type 'exit' to quit",
	}
	return runREPL(cmd, banner, answer, sessionCommand(session))
}

// sessionCommand handles the /history, /clear, and /quit commands.
func sessionCommand(session *qa.Session) commandFunc {
	return func(cmd *cobra.Command, input string) (bool, bool) {
		switch input {
		case "/quit":
			cmd.Println("Goodbye!")
			return true, true

		case "/history":
			turns := session.Turns()
			if len(turns) == 0 {
				cmd.Println("No questions asked yet.")
				return true, false
			}
			for i, turn := range turns {
				cmd.Printf("%d. Q: %s\n   A: %s\n", i+1, turn.Question, turn.Answer)
			}
			return true, false

		case "/clear":
			session.Clear()
			cmd.Println("Session history cleared.")
			return true, false

		default:
			cmd.PrintErrf("Unknown command: %s (available: /history, /clear, /quit)\n", input)
			return true, false
		}
	}
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ybai789/moviegraph/cmd/moviegraph/internal"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	configFile  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "moviegraph",
	Short: "Movie knowledge graph QA over Neo4j",
	Long: `Moviegraph answers natural-language questions about movies, directors,
actors, writers, and genres from a Neo4j knowledge graph.

Commands:
  import  load the IMDB movie CSV into the graph
  ask     deterministic question answering (pattern-matched Cypher templates)
  chat    generative question answering (model-synthesized Cypher)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verboseFlag)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default ~/.moviegraph/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose output")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("moviegraph", Version)
	},
}

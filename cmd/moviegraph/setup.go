package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ybai789/moviegraph/cmd/moviegraph/internal"
	"github.com/ybai789/moviegraph/internal/config"
	"github.com/ybai789/moviegraph/internal/graph"
	"github.com/ybai789/moviegraph/internal/llm"
	"github.com/ybai789/moviegraph/internal/llm/providers"
	"github.com/ybai789/moviegraph/internal/qa"
)

// loadRuntimeConfig loads the config file given by --config, falling back
// to the default location.
func loadRuntimeConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	loader := config.NewLoader(config.NewValidator())
	cfg, err := loader.LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if verboseFlag {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the application logger from the logging config.
// Logs go to stderr so REPL output on stdout stays clean.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// connectGraph builds and connects the Neo4j client from config.
// The caller owns the returned client and must Close it.
func connectGraph(ctx context.Context, cfg *config.Config) (graph.Client, error) {
	client, err := graph.NewNeo4jClient(graph.ClientConfig{
		URI:                     cfg.Graph.URI,
		Username:                cfg.Graph.Username,
		Password:                cfg.Graph.Password,
		Database:                cfg.Graph.Database,
		MaxConnectionPoolSize:   cfg.Graph.MaxConnectionPoolSize,
		ConnectionTimeout:       cfg.Graph.ConnectionTimeout,
		MaxTransactionRetryTime: cfg.Graph.MaxTransactionRetryTime,
	})
	if err != nil {
		return nil, err
	}

	if err := client.Connect(ctx); err != nil {
		return nil, internal.WrapError(internal.ExitGraphError, "failed to connect to Neo4j at "+cfg.Graph.URI, err)
	}
	return client, nil
}

// newQAProvider builds the generative model provider from config.
// A missing API key surfaces here, before any REPL starts.
func newQAProvider(cfg *config.Config) (llm.Provider, error) {
	provider, err := providers.NewProvider(llm.ProviderConfig{
		Type:    cfg.LLM.Provider,
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
	})
	if err != nil {
		return nil, internal.WrapError(internal.ExitConfigError, "failed to initialize model provider", err)
	}
	return provider, nil
}

// newGenerativePipeline wires the full generative QA pipeline.
func newGenerativePipeline(cfg *config.Config, provider llm.Provider, executor *graph.Executor, logger *slog.Logger) *qa.GenerativePipeline {
	extractor := qa.NewExtractor(provider, cfg.LLM.Model, cfg.LLM.Timeout, logger)
	synthesizer := qa.NewSynthesizer(provider, cfg.LLM.Model, cfg.LLM.Timeout, logger)
	composer := qa.NewComposer(provider, cfg.LLM.Model, cfg.LLM.Timeout, logger)
	return qa.NewGenerativePipeline(extractor, synthesizer, composer, executor, logger)
}

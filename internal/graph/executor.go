package graph

import (
	"context"
	"log/slog"
	"time"
)

// Executor wraps a Client with the fail-soft query contract: any execution
// failure (malformed query, connection error, timeout) is logged together with
// the offending query and surfaced to the caller as an empty result set.
// Callers can therefore always render *some* answer.
type Executor struct {
	client  Client
	logger  *slog.Logger
	timeout time.Duration
}

// NewExecutor creates an Executor around client. Every query runs under a
// timeout derived from queryTimeout; a timed-out query behaves exactly like
// a failed one.
func NewExecutor(client Client, logger *slog.Logger, queryTimeout time.Duration) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		client:  client,
		logger:  logger,
		timeout: queryTimeout,
	}
}

// Execute runs a read query with bound parameters and returns the result rows.
// Parameters are always passed as bound values, never interpolated into the
// query text. Never returns an error: failures yield an empty slice.
func (e *Executor) Execute(ctx context.Context, cypher string, params map[string]any) []map[string]any {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	result, err := e.client.Read(ctx, cypher, params)
	if err != nil {
		e.logger.Error("query execution failed",
			"query", cypher,
			"params", params,
			"error", err)
		return []map[string]any{}
	}
	return result.Rows
}

// ExecuteChecked runs a query only if it passes the read-only screen.
// Untrusted query text (e.g. model-generated Cypher) goes through here so
// that anything containing write or procedure clauses is rejected before it
// reaches the database.
func (e *Executor) ExecuteChecked(ctx context.Context, cypher string) []map[string]any {
	if err := CheckReadOnly(cypher); err != nil {
		e.logger.Warn("query blocked by read-only screen",
			"query", cypher,
			"error", err)
		return []map[string]any{}
	}
	return e.Execute(ctx, cypher, nil)
}

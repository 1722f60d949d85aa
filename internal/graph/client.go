package graph

import (
	"context"
	"time"

	"github.com/ybai789/moviegraph/internal/types"
)

// Client provides an interface for graph database operations.
// Implementations must be safe for concurrent use; every query runs in its
// own short-lived session released before the call returns.
type Client interface {
	// Connect establishes a connection to the graph database.
	Connect(ctx context.Context) error

	// Close releases all resources and closes the database connection.
	Close(ctx context.Context) error

	// Read executes a Cypher query in a read transaction with the given
	// bound parameters and returns the result set.
	Read(ctx context.Context, cypher string, params map[string]any) (Result, error)

	// Write executes a Cypher statement in a write transaction with the
	// given bound parameters.
	Write(ctx context.Context, cypher string, params map[string]any) (Result, error)

	// Run executes a statement in an auto-commit transaction. Required for
	// schema commands (constraints, indexes) that Neo4j rejects inside
	// managed transactions.
	Run(ctx context.Context, cypher string, params map[string]any) error
}

// Result represents the result of a Cypher query execution.
type Result struct {
	// Rows contains the result records as maps of column name to value,
	// in the order the database returned them.
	Rows []map[string]any

	// Columns contains the names of the columns in the result set.
	Columns []string

	// Summary contains metadata about the query execution.
	Summary Summary
}

// Summary provides metadata about query execution.
type Summary struct {
	ExecutionTime        time.Duration
	NodesCreated         int
	RelationshipsCreated int
	PropertiesSet        int
}

// ClientConfig contains configuration options for graph database clients.
type ClientConfig struct {
	// URI is the connection URI, e.g. "neo4j://host:7687" or "bolt+s://host:7687".
	// Encryption is controlled by the URI scheme.
	URI string

	// Username and Password authenticate against the database.
	Username string
	Password string

	// Database selects the database to connect to; empty uses the default.
	Database string

	// MaxConnectionPoolSize limits the number of pooled connections.
	MaxConnectionPoolSize int

	// ConnectionTimeout is the maximum time to wait for a connection.
	ConnectionTimeout time.Duration

	// MaxTransactionRetryTime is the maximum time to retry failed transactions.
	MaxTransactionRetryTime time.Duration
}

// Validate checks if the configuration is valid.
func (c ClientConfig) Validate() error {
	if c.URI == "" {
		return types.NewError(ErrCodeConnectionConfig, "URI cannot be empty")
	}
	if c.Username == "" {
		return types.NewError(ErrCodeConnectionConfig, "Username cannot be empty")
	}
	if c.Password == "" {
		return types.NewError(ErrCodeConnectionConfig, "Password cannot be empty")
	}
	if c.ConnectionTimeout <= 0 {
		return types.NewError(ErrCodeConnectionConfig, "ConnectionTimeout must be positive")
	}
	if c.MaxTransactionRetryTime <= 0 {
		return types.NewError(ErrCodeConnectionConfig, "MaxTransactionRetryTime must be positive")
	}
	return nil
}

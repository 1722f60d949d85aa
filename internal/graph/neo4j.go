package graph

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/ybai789/moviegraph/internal/types"
)

// Neo4jClient implements Client for Neo4j graph databases.
type Neo4jClient struct {
	config ClientConfig
	driver neo4j.DriverWithContext
}

// NewNeo4jClient creates a new Neo4j client with the given configuration.
// The client must be connected via Connect() before use.
func NewNeo4jClient(config ClientConfig) (*Neo4jClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Neo4jClient{config: config}, nil
}

// Connect establishes a connection to the Neo4j database.
// Uses exponential backoff for connection retries.
func (c *Neo4jClient) Connect(ctx context.Context) error {
	auth := neo4j.BasicAuth(c.config.Username, c.config.Password, "")

	driverConfig := func(config *neo4j.Config) {
		config.MaxConnectionPoolSize = c.config.MaxConnectionPoolSize
		config.ConnectionAcquisitionTimeout = c.config.ConnectionTimeout
		config.MaxTransactionRetryTime = c.config.MaxTransactionRetryTime
		// Encryption is controlled by the URI scheme (neo4j:// vs neo4j+s://).
	}

	var lastErr error
	maxRetries := 5
	baseDelay := 100 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		driver, err := neo4j.NewDriverWithContext(c.config.URI, auth, driverConfig)
		if err == nil {
			if err = driver.VerifyConnectivity(ctx); err == nil {
				c.driver = driver
				return nil
			}
		}
		lastErr = err

		if ctx.Err() != nil {
			return types.WrapError(ErrCodeConnectionFailed,
				"connection attempt cancelled", ctx.Err())
		}

		delay := baseDelay * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.config.ConnectionTimeout {
			delay = c.config.ConnectionTimeout
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return types.WrapError(ErrCodeConnectionFailed,
				"connection attempt cancelled", ctx.Err())
		}
	}

	return types.WrapError(ErrCodeConnectionFailed,
		fmt.Sprintf("failed to connect after %d attempts", maxRetries), lastErr)
}

// Close releases all resources and closes the database connection.
func (c *Neo4jClient) Close(ctx context.Context) error {
	if c.driver == nil {
		return nil
	}
	if err := c.driver.Close(ctx); err != nil {
		return types.WrapError(ErrCodeConnectionClosed, "failed to close driver", err)
	}
	c.driver = nil
	return nil
}

// Read executes a Cypher query in a read transaction.
// A fresh session is opened for the call and released on every exit path.
func (c *Neo4jClient) Read(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	if c.driver == nil {
		return Result{}, types.NewError(ErrCodeConnectionClosed, "driver not connected")
	}

	start := time.Now()
	session := c.newSession(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return collectResult(ctx, tx, cypher, params)
	})
	if err != nil {
		return Result{}, types.WrapError(ErrCodeQueryFailed, "query execution failed", err)
	}

	res := result.(Result)
	res.Summary.ExecutionTime = time.Since(start)
	return res, nil
}

// Write executes a Cypher statement in a write transaction.
func (c *Neo4jClient) Write(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	if c.driver == nil {
		return Result{}, types.NewError(ErrCodeConnectionClosed, "driver not connected")
	}

	start := time.Now()
	session := c.newSession(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return collectResult(ctx, tx, cypher, params)
	})
	if err != nil {
		return Result{}, types.WrapError(ErrCodeWriteFailed, "write execution failed", err)
	}

	res := result.(Result)
	res.Summary.ExecutionTime = time.Since(start)
	return res, nil
}

// Run executes a statement in an auto-commit transaction. Schema commands
// (CREATE CONSTRAINT, CREATE INDEX) must go through here: Neo4j rejects them
// inside managed transaction functions.
func (c *Neo4jClient) Run(ctx context.Context, cypher string, params map[string]any) error {
	if c.driver == nil {
		return types.NewError(ErrCodeConnectionClosed, "driver not connected")
	}

	session := c.newSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return types.WrapError(ErrCodeWriteFailed, "statement execution failed", err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return types.WrapError(ErrCodeWriteFailed, "statement consume failed", err)
	}
	return nil
}

func (c *Neo4jClient) newSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.config.Database,
	})
}

// collectResult runs cypher inside tx and converts the driver records.
func collectResult(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) (Result, error) {
	neoResult, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return Result{}, err
	}

	records, err := neoResult.Collect(ctx)
	if err != nil {
		return Result{}, err
	}

	summary, err := neoResult.Consume(ctx)
	if err != nil {
		return Result{}, err
	}

	return convertRecords(records, summary), nil
}

// convertRecords converts Neo4j records and summary to our Result format.
func convertRecords(records []*neo4j.Record, summary neo4j.ResultSummary) Result {
	result := Result{
		Rows:    make([]map[string]any, 0, len(records)),
		Columns: []string{},
	}

	if len(records) > 0 {
		result.Columns = records[0].Keys
	}

	for _, record := range records {
		row := make(map[string]any, len(record.Keys))
		for i, key := range record.Keys {
			row[key] = record.Values[i]
		}
		result.Rows = append(result.Rows, row)
	}

	if summary != nil && summary.Counters() != nil {
		counters := summary.Counters()
		result.Summary = Summary{
			NodesCreated:         counters.NodesCreated(),
			RelationshipsCreated: counters.RelationshipsCreated(),
			PropertiesSet:        counters.PropertiesSet(),
		}
	}

	return result
}

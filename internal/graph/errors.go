package graph

import "github.com/ybai789/moviegraph/internal/types"

// Graph database error codes
const (
	ErrCodeConnectionFailed types.ErrorCode = "GRAPH_CONNECTION_FAILED"
	ErrCodeConnectionClosed types.ErrorCode = "GRAPH_CONNECTION_CLOSED"
	ErrCodeConnectionConfig types.ErrorCode = "GRAPH_INVALID_CONFIG"

	ErrCodeQueryFailed  types.ErrorCode = "GRAPH_QUERY_FAILED"
	ErrCodeQueryBlocked types.ErrorCode = "GRAPH_QUERY_BLOCKED"
	ErrCodeWriteFailed  types.ErrorCode = "GRAPH_WRITE_FAILED"
)

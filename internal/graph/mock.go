package graph

import (
	"context"
	"sync"
)

// MockCall records a method invocation on the mock client.
type MockCall struct {
	Method string
	Cypher string
	Params map[string]any
}

// MockClient is an in-memory implementation of Client for testing.
// It serves configurable canned results and records every call for
// verification.
type MockClient struct {
	mu sync.Mutex

	connected bool
	calls     []MockCall

	// Configurable responses
	ReadResults  []Result
	ReadErr      error
	WriteErr     error
	RunErr       error
	ConnectErr   error

	readIndex int
}

// NewMockClient creates a new mock graph client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Connect", "", nil)
	if m.ConnectErr != nil {
		return m.ConnectErr
	}
	m.connected = true
	return nil
}

func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Close", "", nil)
	m.connected = false
	return nil
}

func (m *MockClient) Read(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Read", cypher, params)
	if m.ReadErr != nil {
		return Result{}, m.ReadErr
	}
	if len(m.ReadResults) == 0 {
		return Result{Rows: []map[string]any{}}, nil
	}
	result := m.ReadResults[m.readIndex%len(m.ReadResults)]
	m.readIndex++
	return result, nil
}

func (m *MockClient) Write(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Write", cypher, params)
	if m.WriteErr != nil {
		return Result{}, m.WriteErr
	}
	return Result{Rows: []map[string]any{}}, nil
}

func (m *MockClient) Run(ctx context.Context, cypher string, params map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Run", cypher, params)
	return m.RunErr
}

// Calls returns a copy of all recorded calls.
func (m *MockClient) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded calls for a single method.
func (m *MockClient) CallsTo(method string) []MockCall {
	var out []MockCall
	for _, call := range m.Calls() {
		if call.Method == method {
			out = append(out, call)
		}
	}
	return out
}

func (m *MockClient) record(method, cypher string, params map[string]any) {
	m.calls = append(m.calls, MockCall{Method: method, Cypher: cypher, Params: params})
}

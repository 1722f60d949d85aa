package providers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ybai789/moviegraph/internal/llm"
	"github.com/ybai789/moviegraph/internal/types"
)

// MockProvider implements Provider for testing. It replays configured
// responses in order (cycling when exhausted) and records every request.
type MockProvider struct {
	mu        sync.Mutex
	responses []string
	index     int
	requests  []llm.CompletionRequest

	// Err, when set, is returned from every Complete call.
	Err error
}

// NewMockProvider creates a mock provider with the given canned responses.
func NewMockProvider(responses ...string) *MockProvider {
	return &MockProvider{responses: responses}
}

// Name returns the provider name.
func (p *MockProvider) Name() string {
	return "mock"
}

// Complete replays the next canned response.
func (p *MockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = append(p.requests, req)

	if p.Err != nil {
		return nil, p.Err
	}
	if len(p.responses) == 0 {
		return nil, types.NewError(llm.ErrCompletionFailed, "mock provider has no responses configured")
	}

	response := p.responses[p.index%len(p.responses)]
	p.index++

	return &llm.CompletionResponse{
		ID:           uuid.New().String(),
		Model:        req.Model,
		Message:      llm.NewAssistantMessage(response),
		FinishReason: llm.FinishReasonStop,
	}, nil
}

// Requests returns a copy of all recorded requests.
func (p *MockProvider) Requests() []llm.CompletionRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]llm.CompletionRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

// LastRequest returns the most recent request, or a zero value if none.
func (p *MockProvider) LastRequest() llm.CompletionRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return llm.CompletionRequest{}
	}
	return p.requests[len(p.requests)-1]
}

package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned reply for MockProvider.
type MockResponse struct {
	Text string
	Err  error
}

// MockProvider is a deterministic Provider for tests and offline runs.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	fallback  *MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Complete returns the next canned response. Once the queue is empty it
// returns the fallback, or ErrProviderUnavailable when none is set.
func (m *MockProvider) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.fallback != nil:
		resp = *m.fallback
	default:
		return nil, &ErrProviderUnavailable{}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Text:       resp.Text,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// SetFallback makes text the reply for every call after the queue drains.
func (m *MockProvider) SetFallback(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = &MockResponse{Text: text}
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

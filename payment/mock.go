package payment

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockGateway simulates the hosted checkout for dev mode and tests. It
// remembers every session it mints so ValidateSession answers truthfully.
type MockGateway struct {
	mu       sync.Mutex
	sessions map[string]bool

	// FailCreate forces CreateSession to error, for exercising the
	// gateway-unreachable path.
	FailCreate bool
}

// NewMockGateway creates an empty mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{sessions: make(map[string]bool)}
}

func (g *MockGateway) CreateSession(_ context.Context, req SessionRequest) (string, error) {
	if g.FailCreate {
		return "", fmt.Errorf("mock gateway: session creation rejected")
	}
	if len(req.LineItems) == 0 {
		return "", fmt.Errorf("mock gateway: no line items")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("cs_mock_%d", time.Now().UnixNano())
	g.sessions[id] = true
	return fmt.Sprintf("https://checkout.example.test/pay/%s", id), nil
}

func (g *MockGateway) ValidateSession(_ context.Context, sessionID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessions[sessionID], nil
}

// Mint registers a session id as valid without going through
// CreateSession. Test helper.
func (g *MockGateway) Mint(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[sessionID] = true
}

package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockGateway simulates a payment provider. Charges succeed with
// probability SuccessRate after Delay; declined charges pick a rotating
// failure reason.
type MockGateway struct {
	SuccessRate    float64
	Delay          time.Duration
	FailureReasons []string

	mu      sync.Mutex
	rng     *rand.Rand
	counter int
}

// NewMockGateway creates a gateway with a 90% success rate and no delay
func NewMockGateway() *MockGateway {
	return &MockGateway{
		SuccessRate: 0.9,
		FailureReasons: []string{
			"card declined",
			"insufficient funds",
			"network timeout",
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithSeed replaces the random source, making outcomes deterministic
func (g *MockGateway) WithSeed(seed int64) *MockGateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rng = rand.New(rand.NewSource(seed))
	return g
}

// Name returns the gateway identifier
func (g *MockGateway) Name() string {
	return "mock"
}

// roll draws one outcome. A zero-value gateway gets a lazily seeded
// random source and a default decline reason.
func (g *MockGateway) roll() (float64, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	reason := "request rejected"
	if len(g.FailureReasons) > 0 {
		g.counter++
		reason = g.FailureReasons[g.counter%len(g.FailureReasons)]
	}
	return g.rng.Float64(), reason
}

// wait sleeps for Delay unless the context ends first
func (g *MockGateway) wait(ctx context.Context) error {
	if g.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(g.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Charge simulates processing a payment
func (g *MockGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	roll, reason := g.roll()
	if roll >= g.SuccessRate {
		return nil, fmt.Errorf("charge declined: %s", reason)
	}

	return &ChargeResponse{
		TransactionID: uuid.New().String(),
		Amount:        req.Amount,
		Currency:      req.Currency,
	}, nil
}

// Submit simulates delivering a job application to the hiring pipeline
func (g *MockGateway) Submit(ctx context.Context, req *ApplicationRequest) error {
	if err := g.wait(ctx); err != nil {
		return err
	}

	roll, reason := g.roll()
	if roll >= g.SuccessRate {
		return fmt.Errorf("submission rejected: %s", reason)
	}
	return nil
}

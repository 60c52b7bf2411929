// Package gateway provides the simulated payment provider. It stands in for a
// real acquiring integration: charges take a short network-like delay and a
// fixed fraction of them is declined, which exercises the retry path in the
// payment workflow without any external dependency.
package gateway

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/payment"
	"foodcourt/internal/core/ports"
)

// DefaultSuccessRate is the fraction of charges the simulator approves.
const DefaultSuccessRate = 0.9

// DefaultDelay approximates a provider round trip. Callers must never hold
// database row locks across a Charge call.
const DefaultDelay = 500 * time.Millisecond

// Simulator implements ports.PaymentGateway with configurable delay and
// approval odds. The draw function is injectable so tests can force either
// outcome deterministically.
type Simulator struct {
	successRate float64
	delay       time.Duration
	draw        func() float64
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSuccessRate overrides the fraction of approved charges.
func WithSuccessRate(rate float64) Option {
	return func(s *Simulator) {
		s.successRate = rate
	}
}

// WithDelay overrides the simulated provider round-trip time.
func WithDelay(delay time.Duration) Option {
	return func(s *Simulator) {
		s.delay = delay
	}
}

// WithDraw overrides the random draw used to decide each charge.
// A draw below the success rate approves the charge.
func WithDraw(draw func() float64) Option {
	return func(s *Simulator) {
		s.draw = draw
	}
}

// NewSimulator creates a payment gateway simulator with the default 90%
// approval rate and half-second delay.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		successRate: DefaultSuccessRate,
		delay:       DefaultDelay,
		draw:        rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Charge simulates collecting the amount via the given method. A declined
// charge returns Succeeded=false with a nil error; the error return is
// reserved for context cancellation during the simulated round trip.
func (s *Simulator) Charge(ctx context.Context, method payment.Method, amount kernel.Money, _ payment.Meta) (ports.ChargeResult, error) {
	if err := method.Validate(); err != nil {
		return ports.ChargeResult{}, err
	}
	if err := amount.Validate(); err != nil {
		return ports.ChargeResult{}, err
	}

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return ports.ChargeResult{}, ctx.Err()
	}

	raw := uuid.New()
	result := ports.ChargeResult{
		Succeeded: s.draw() < s.successRate,
		Reference: fmt.Sprintf("SIM-%X", raw[:6]),
	}
	return result, nil
}

package gateway_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/adapters/out/gateway"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/payment"
)

func TestSimulator_Charge_ApprovesBelowSuccessRate(t *testing.T) {
	sim := gateway.NewSimulator(
		gateway.WithDelay(0),
		gateway.WithDraw(func() float64 { return 0.5 }),
	)

	amount, err := kernel.NewMoneyFromString("940.00")
	require.NoError(t, err)

	result, err := sim.Charge(t.Context(), payment.MethodJazzCash, amount, payment.Meta{PhoneNumber: "03001234567"})

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Regexp(t, `^SIM-[0-9A-F]{12}$`, result.Reference)
}

func TestSimulator_Charge_DeclinesAboveSuccessRate(t *testing.T) {
	sim := gateway.NewSimulator(
		gateway.WithDelay(0),
		gateway.WithDraw(func() float64 { return 0.95 }),
	)

	amount, err := kernel.NewMoneyFromString("940.00")
	require.NoError(t, err)

	result, err := sim.Charge(t.Context(), payment.MethodCard, amount, payment.Meta{CardLastFour: "4242"})

	// A decline is a successful call, not an error
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.NotEmpty(t, result.Reference)
}

func TestSimulator_Charge_InvalidMethod(t *testing.T) {
	sim := gateway.NewSimulator(gateway.WithDelay(0))

	amount, err := kernel.NewMoneyFromString("100.00")
	require.NoError(t, err)

	_, err = sim.Charge(t.Context(), payment.MethodUnknown, amount, payment.Meta{})
	assert.Error(t, err)
}

func TestSimulator_Charge_ContextCancelled(t *testing.T) {
	sim := gateway.NewSimulator(gateway.WithDelay(time.Minute))

	amount, err := kernel.NewMoneyFromString("100.00")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = sim.Charge(ctx, payment.MethodCard, amount, payment.Meta{})
	assert.ErrorIs(t, err, context.Canceled)
}

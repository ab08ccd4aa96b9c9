package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/storefront/internal/payment"
)

func TestProcessorApprovesWithinLimit(t *testing.T) {
	ctx := context.Background()
	p := payment.NewProcessor(500)

	ok, err := p.Charge(ctx, 1, 499.99)
	require.NoError(t, err)
	assert.True(t, ok)

	charged, found := p.Charged(1)
	require.True(t, found)
	assert.Equal(t, 499.99, charged)
}

func TestProcessorDeclinesAboveLimit(t *testing.T) {
	ctx := context.Background()
	p := payment.NewProcessor(500)

	ok, err := p.Charge(ctx, 1, 500.01)
	require.NoError(t, err)
	assert.False(t, ok)

	_, found := p.Charged(1)
	assert.False(t, found)
}

func TestProcessorZeroLimitApprovesEverything(t *testing.T) {
	ctx := context.Background()
	p := payment.NewProcessor(0)

	ok, err := p.Charge(ctx, 1, 1_000_000)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProcessorRefund(t *testing.T) {
	ctx := context.Background()
	p := payment.NewProcessor(0)

	_, err := p.Charge(ctx, 1, 200)
	require.NoError(t, err)

	require.NoError(t, p.Refund(ctx, 1))
	_, found := p.Charged(1)
	assert.False(t, found)

	// Refunding again is a safe no-op.
	require.NoError(t, p.Refund(ctx, 1))
}

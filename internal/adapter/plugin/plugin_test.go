package plugin

import (
	"context"
	"testing"

	"custody-ledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reserveAddr = domain.MustParseAddress("0x00000000000000000000000000000000000000d0")
	yieldAddr   = domain.MustParseAddress("0x00000000000000000000000000000000000000d1")
	testAsset   = domain.MustParseAddress("0x00000000000000000000000000000000000000e0")
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	reserve := NewReservePlugin("reserve", reserveAddr, zerolog.Nop())
	yield := NewReservePlugin("yield", yieldAddr, zerolog.Nop())

	require.NoError(t, c.Register(reserve))
	require.NoError(t, c.Register(yield))

	got, ok := c.Get("reserve")
	require.True(t, ok)
	assert.Equal(t, reserveAddr, got.Address())

	_, ok = c.Get("unknown")
	assert.False(t, ok)

	assert.Equal(t, []string{"reserve", "yield"}, c.Names())

	err := c.Register(NewReservePlugin("reserve", yieldAddr, zerolog.Nop()))
	assert.Error(t, err, "duplicate names must be rejected")
}

func TestReservePlugin_TracksHoldings(t *testing.T) {
	ctx := context.Background()
	p := NewReservePlugin("reserve", reserveAddr, zerolog.Nop())

	require.NoError(t, p.AfterDeposition(ctx, testAsset, 100))
	require.NoError(t, p.AfterDeposition(ctx, testAsset, 50))
	assert.Equal(t, uint64(150), p.Holdings(testAsset))

	require.NoError(t, p.BeforeWithdrawal(ctx, testAsset, 120))
	assert.Equal(t, uint64(30), p.Holdings(testAsset))
}

func TestReservePlugin_RejectsOverRelease(t *testing.T) {
	ctx := context.Background()
	p := NewReservePlugin("reserve", reserveAddr, zerolog.Nop())

	require.NoError(t, p.AfterDeposition(ctx, testAsset, 10))
	err := p.BeforeWithdrawal(ctx, testAsset, 11)
	assert.Error(t, err)
	assert.Equal(t, uint64(10), p.Holdings(testAsset), "failed release must not mutate holdings")
}

func TestReservePlugin_Freeze(t *testing.T) {
	ctx := context.Background()
	p := NewReservePlugin("reserve", reserveAddr, zerolog.Nop())
	require.NoError(t, p.AfterDeposition(ctx, testAsset, 100))

	p.SetFrozen(true)
	assert.Error(t, p.BeforeWithdrawal(ctx, testAsset, 1))

	// Deposits still land while frozen.
	require.NoError(t, p.AfterDeposition(ctx, testAsset, 5))

	p.SetFrozen(false)
	require.NoError(t, p.BeforeWithdrawal(ctx, testAsset, 105))
	assert.Equal(t, uint64(0), p.Holdings(testAsset))
}

func TestReservePlugin_ZeroAmountHooks(t *testing.T) {
	ctx := context.Background()
	p := NewReservePlugin("reserve", reserveAddr, zerolog.Nop())

	require.NoError(t, p.AfterDeposition(ctx, testAsset, 0))
	require.NoError(t, p.BeforeWithdrawal(ctx, testAsset, 0))
}

package memory

import (
	"context"
	"testing"

	"custody-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	operator = domain.MustParseAddress("0x00000000000000000000000000000000000000ff")
	asset    = domain.MustParseAddress("0x00000000000000000000000000000000000000e0")
	alice    = domain.MustParseAddress("0x0000000000000000000000000000000000000001")
	bob      = domain.MustParseAddress("0x0000000000000000000000000000000000000002")
)

func TestSettlement_DirectTransfer(t *testing.T) {
	ctx := context.Background()
	s := NewSettlement(operator)
	s.Mint(asset, operator, 100)

	require.NoError(t, s.DirectTransfer(ctx, asset, alice, 40))
	assert.Equal(t, uint64(60), s.BalanceOf(asset, operator))
	assert.Equal(t, uint64(40), s.BalanceOf(asset, alice))

	err := s.DirectTransfer(ctx, asset, alice, 61)
	assert.Error(t, err, "overdraft must be rejected")
	assert.Equal(t, uint64(60), s.BalanceOf(asset, operator))
}

func TestSettlement_PullTransfer(t *testing.T) {
	ctx := context.Background()
	s := NewSettlement(operator)
	s.Mint(asset, alice, 100)
	s.Approve(asset, alice, 50)

	require.NoError(t, s.PullTransfer(ctx, asset, alice, bob, 30))
	assert.Equal(t, uint64(70), s.BalanceOf(asset, alice))
	assert.Equal(t, uint64(30), s.BalanceOf(asset, bob))
	assert.Equal(t, uint64(20), s.Allowance(asset, alice))

	err := s.PullTransfer(ctx, asset, alice, bob, 21)
	assert.Error(t, err, "pull beyond allowance must be rejected")
	assert.Equal(t, uint64(70), s.BalanceOf(asset, alice))
}

func TestSettlement_PullRequiresBalanceAndAllowance(t *testing.T) {
	ctx := context.Background()
	s := NewSettlement(operator)
	s.Mint(asset, alice, 10)
	s.Approve(asset, alice, 100)

	err := s.PullTransfer(ctx, asset, alice, bob, 50)
	assert.Error(t, err)
	assert.Equal(t, uint64(100), s.Allowance(asset, alice), "failed pull must not burn allowance")
}

func TestSettlement_AssetsAreIndependent(t *testing.T) {
	other := domain.MustParseAddress("0x00000000000000000000000000000000000000e1")
	s := NewSettlement(operator)
	s.Mint(asset, alice, 100)

	assert.Equal(t, uint64(100), s.BalanceOf(asset, alice))
	assert.Equal(t, uint64(0), s.BalanceOf(other, alice))
}

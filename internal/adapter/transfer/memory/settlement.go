// Package memory provides an in-process settlement backend. It models the
// minimum the ledger needs from an external transfer system: per-asset
// account balances and pull allowances granted to the ledger operator.
// Used for local development and integration tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"custody-ledger/internal/core/domain"
)

type assetKey struct {
	asset   domain.Address
	account domain.Address
}

// Settlement implements ports.TransferSystem against in-memory state.
// Safe for concurrent use.
type Settlement struct {
	operator domain.Address // account DirectTransfer debits

	mu         sync.Mutex
	balances   map[assetKey]uint64
	allowances map[assetKey]uint64 // owner -> amount the operator may pull
}

func NewSettlement(operator domain.Address) *Settlement {
	return &Settlement{
		operator:   operator,
		balances:   make(map[assetKey]uint64),
		allowances: make(map[assetKey]uint64),
	}
}

// Mint credits an account out of thin air. Test/dev seeding only.
func (s *Settlement) Mint(asset, account domain.Address, amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[assetKey{asset, account}] += amount
}

// Approve grants the ledger operator permission to pull up to amount from
// owner. Overwrites any previous allowance.
func (s *Settlement) Approve(asset, owner domain.Address, amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowances[assetKey{asset, owner}] = amount
}

// BalanceOf reports the account's settled balance for asset.
func (s *Settlement) BalanceOf(asset, account domain.Address) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[assetKey{asset, account}]
}

// Allowance reports how much the operator may still pull from owner.
func (s *Settlement) Allowance(asset, owner domain.Address) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allowances[assetKey{asset, owner}]
}

// DirectTransfer moves amount from the operator account to the given
// address.
func (s *Settlement) DirectTransfer(_ context.Context, asset, to domain.Address, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(asset, s.operator, to, amount)
}

// PullTransfer moves amount between third-party accounts, consuming the
// source's allowance.
func (s *Settlement) PullTransfer(_ context.Context, asset, from, to domain.Address, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ak := assetKey{asset, from}
	if s.allowances[ak] < amount {
		return fmt.Errorf("allowance %d below requested %d for %s", s.allowances[ak], amount, from)
	}
	if err := s.move(asset, from, to, amount); err != nil {
		return err
	}
	s.allowances[ak] -= amount
	return nil
}

func (s *Settlement) move(asset, from, to domain.Address, amount uint64) error {
	src := assetKey{asset, from}
	if s.balances[src] < amount {
		return fmt.Errorf("balance %d below requested %d for %s", s.balances[src], amount, from)
	}
	s.balances[src] -= amount
	s.balances[assetKey{asset, to}] += amount
	return nil
}

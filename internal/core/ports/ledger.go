package ports

import (
	"context"

	"custody-ledger/internal/core/domain"
)

// LedgerService is the custody ledger core: access control, per-asset
// deposited counters, plugin bindings, and the transfer gateway, as one
// object. Implementations are not safe for concurrent use — operations are
// strictly sequential and callers serialize them. Plugin hooks may reenter
// any of these methods from the same goroutine.
type LedgerService interface {
	// Owner returns the administrative owner address.
	Owner() domain.Address
	// Account returns the ledger's own custodial account in the external
	// transfer system.
	Account() domain.Address
	// IsUser reports whether addr is in the authorized-user set.
	IsUser(addr domain.Address) bool
	// Deposited returns the recorded deposited amount for asset.
	// Unreferenced assets read as zero.
	Deposited(asset domain.Address) uint64
	// ActivePlugin returns the plugin currently bound for asset, or nil
	// when the ledger itself is the custodian.
	ActivePlugin(asset domain.Address) Plugin

	// AddUser and RemoveUser manage the authorized-user set. Owner-only,
	// idempotent; a no-op change still succeeds and still emits a notice.
	AddUser(ctx context.Context, caller, user domain.Address) error
	RemoveUser(ctx context.Context, caller, user domain.Address) error

	// Deposit records amount for asset and pulls it from the caller's
	// address into the current custodial location. Authorized users only.
	Deposit(ctx context.Context, caller, asset domain.Address, amount uint64) error

	// Withdraw moves amount out of the current custodial location to the
	// given address and decrements the counter. Authorized users only.
	Withdraw(ctx context.Context, caller, asset, to domain.Address, amount uint64) error

	// SetPlugin rebinds the custody plugin for asset, migrating the full
	// recorded amount between the old and new custodial locations. A nil
	// plugin binds self-custody. Owner-only.
	SetPlugin(ctx context.Context, caller, asset domain.Address, plugin Plugin) error

	// ForceWithdraw drains amount from the given plugin's custodial address
	// to the given address without consulting the deposited counter or the
	// current binding. Owner-only recovery tool; it can desynchronize
	// bookkeeping from physical custody on purpose.
	ForceWithdraw(ctx context.Context, caller, asset domain.Address, plugin Plugin, to domain.Address, amount uint64) error

	// SetDeposited overwrites the recorded deposited amount for asset,
	// bypassing all transfer and plugin logic. Owner-only reconciliation
	// tool.
	SetDeposited(ctx context.Context, caller, asset domain.Address, amount uint64) error
}

package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. It owns the four pieces
// of ledger state — owner, authorized-user set, per-asset deposited counters,
// per-asset plugin bindings — and is the only code path into the external
// transfer system and plugin hooks.
//
// Operations are sequential by construction: there is no internal locking,
// and the struct must not be shared across goroutines without external
// serialization. Counter and binding mutations are always committed before
// any hook or transfer call, so a plugin reentering the ledger from a hook
// observes consistent state; failures undo the staged mutation by delta,
// which keeps successful reentrant operations intact.
type LedgerServiceImpl struct {
	owner     domain.Address
	account   domain.Address // the ledger's own custodial account
	users     map[domain.Address]bool
	deposited map[domain.Address]uint64
	plugins   map[domain.Address]ports.Plugin

	transfer ports.TransferSystem
	notifier ports.Notifier // nil disables notices
	log      zerolog.Logger
}

// NewLedgerService creates a ledger with the given owner and custodial
// account. The user set, counters, and bindings start empty.
func NewLedgerService(
	owner domain.Address,
	account domain.Address,
	transfer ports.TransferSystem,
	notifier ports.Notifier,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		owner:     owner,
		account:   account,
		users:     make(map[domain.Address]bool),
		deposited: make(map[domain.Address]uint64),
		plugins:   make(map[domain.Address]ports.Plugin),
		transfer:  transfer,
		notifier:  notifier,
		log:       log,
	}
}

// --- Queries ---

func (s *LedgerServiceImpl) Owner() domain.Address   { return s.owner }
func (s *LedgerServiceImpl) Account() domain.Address { return s.account }

func (s *LedgerServiceImpl) IsUser(addr domain.Address) bool {
	return s.users[addr]
}

func (s *LedgerServiceImpl) Deposited(asset domain.Address) uint64 {
	return s.deposited[asset]
}

func (s *LedgerServiceImpl) ActivePlugin(asset domain.Address) ports.Plugin {
	return s.plugins[asset]
}

// --- User management (owner-only, idempotent) ---

func (s *LedgerServiceImpl) AddUser(ctx context.Context, caller, user domain.Address) error {
	if caller != s.owner {
		return apperror.ErrUnauthorized()
	}

	s.users[user] = true

	s.log.Info().
		Stringer("caller", caller).
		Stringer("user", user).
		Msg("user authorized")
	s.notify(ctx, &domain.Notice{
		Caller:  caller,
		Action:  domain.NoticeActionUserAdded,
		Subject: &user,
	})
	return nil
}

func (s *LedgerServiceImpl) RemoveUser(ctx context.Context, caller, user domain.Address) error {
	if caller != s.owner {
		return apperror.ErrUnauthorized()
	}

	delete(s.users, user)

	s.log.Info().
		Stringer("caller", caller).
		Stringer("user", user).
		Msg("user deauthorized")
	s.notify(ctx, &domain.Notice{
		Caller:  caller,
		Action:  domain.NoticeActionUserRemoved,
		Subject: &user,
	})
	return nil
}

// --- Deposit / Withdraw (authorized users) ---

// Deposit increments the counter, pulls amount from the caller into the
// current custodial location, then fires the plugin's after-deposition hook.
// The counter is incremented before the external calls so the hook observes
// post-deposit accounting; any external failure rolls the increment back.
func (s *LedgerServiceImpl) Deposit(ctx context.Context, caller, asset domain.Address, amount uint64) error {
	if !s.users[caller] {
		return apperror.ErrUnauthorized()
	}
	if amount > math.MaxUint64-s.deposited[asset] {
		return apperror.ErrCounterOverflow()
	}

	plugin := s.plugins[asset]
	custodian := s.custodian(plugin)

	s.deposited[asset] += amount

	if err := s.moveAsset(ctx, asset, caller, custodian, amount); err != nil {
		s.deposited[asset] -= amount
		return err
	}

	if plugin != nil {
		if err := plugin.AfterDeposition(ctx, asset, amount); err != nil {
			// Funds already arrived; send them back before undoing the counter.
			s.compensate(ctx, asset, custodian, caller, amount)
			s.deposited[asset] -= amount
			return apperror.ErrPluginHook(err)
		}
	}

	s.log.Info().
		Stringer("caller", caller).
		Stringer("asset", asset).
		Uint64("amount", amount).
		Uint64("deposited", s.deposited[asset]).
		Msg("deposit recorded")
	s.notify(ctx, &domain.Notice{
		Caller: caller,
		Action: domain.NoticeActionDeposit,
		Asset:  &asset,
		Amount: &amount,
		From:   &caller,
		To:     &custodian,
	})
	return nil
}

// Withdraw decrements the counter, fires the plugin's before-withdrawal
// hook, then moves amount from the current custodial location to the given
// address. Any external failure restores the counter.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, caller, asset, to domain.Address, amount uint64) error {
	if !s.users[caller] {
		return apperror.ErrUnauthorized()
	}
	if s.deposited[asset] < amount {
		return apperror.ErrInsufficientBalance()
	}

	plugin := s.plugins[asset]
	custodian := s.custodian(plugin)

	s.deposited[asset] -= amount

	if plugin != nil {
		if err := plugin.BeforeWithdrawal(ctx, asset, amount); err != nil {
			s.deposited[asset] += amount
			return apperror.ErrPluginHook(err)
		}
	}

	if err := s.moveAsset(ctx, asset, custodian, to, amount); err != nil {
		s.deposited[asset] += amount
		return err
	}

	s.log.Info().
		Stringer("caller", caller).
		Stringer("asset", asset).
		Stringer("to", to).
		Uint64("amount", amount).
		Uint64("deposited", s.deposited[asset]).
		Msg("withdrawal completed")
	s.notify(ctx, &domain.Notice{
		Caller: caller,
		Action: domain.NoticeActionWithdraw,
		Asset:  &asset,
		Amount: &amount,
		From:   &custodian,
		To:     &to,
	})
	return nil
}

// --- Plugin management (owner-only) ---

// SetPlugin rebinds the custody plugin for asset and migrates the full
// recorded amount between custodial locations. Ordering is load-bearing:
// the binding is committed first so hooks that query the ledger see the new
// plugin; the old plugin is notified before funds leave it and the new one
// after funds arrive.
func (s *LedgerServiceImpl) SetPlugin(ctx context.Context, caller, asset domain.Address, plugin ports.Plugin) error {
	if caller != s.owner {
		return apperror.ErrUnauthorized()
	}

	prev := s.plugins[asset]
	amount := s.deposited[asset]
	src := s.custodian(prev)
	dst := s.custodian(plugin)

	s.setBinding(asset, plugin)

	if prev != nil {
		if err := prev.BeforeWithdrawal(ctx, asset, amount); err != nil {
			s.setBinding(asset, prev)
			return apperror.ErrPluginHook(err)
		}
	}

	if err := s.moveAsset(ctx, asset, src, dst, amount); err != nil {
		s.setBinding(asset, prev)
		return err
	}

	if plugin != nil {
		if err := plugin.AfterDeposition(ctx, asset, amount); err != nil {
			s.compensate(ctx, asset, dst, src, amount)
			s.setBinding(asset, prev)
			return apperror.ErrPluginHook(err)
		}
	}

	s.log.Info().
		Stringer("caller", caller).
		Stringer("asset", asset).
		Str("old_plugin", pluginName(prev)).
		Str("new_plugin", pluginName(plugin)).
		Uint64("migrated", amount).
		Msg("plugin rebound")
	details, _ := json.Marshal(map[string]string{
		"old_plugin": pluginName(prev),
		"new_plugin": pluginName(plugin),
	})
	s.notify(ctx, &domain.Notice{
		Caller:  caller,
		Action:  domain.NoticeActionPluginChanged,
		Asset:   &asset,
		Amount:  &amount,
		From:    &src,
		To:      &dst,
		Details: string(details),
	})
	return nil
}

// ForceWithdraw drains amount from the given plugin's custody to the given
// address. It deliberately ignores the deposited counter and the current
// binding: it exists to recover funds from a misbehaving or superseded
// plugin, and the owner reconciles bookkeeping afterward via SetDeposited.
func (s *LedgerServiceImpl) ForceWithdraw(ctx context.Context, caller, asset domain.Address, plugin ports.Plugin, to domain.Address, amount uint64) error {
	if caller != s.owner {
		return apperror.ErrUnauthorized()
	}
	if plugin == nil {
		return apperror.Validation("force-withdraw requires a plugin")
	}

	if err := plugin.BeforeWithdrawal(ctx, asset, amount); err != nil {
		return apperror.ErrPluginHook(err)
	}

	src := plugin.Address()
	if err := s.moveAsset(ctx, asset, src, to, amount); err != nil {
		return err
	}

	s.log.Warn().
		Stringer("caller", caller).
		Stringer("asset", asset).
		Str("plugin", plugin.Name()).
		Stringer("to", to).
		Uint64("amount", amount).
		Msg("force withdrawal executed")
	details, _ := json.Marshal(map[string]string{"plugin": plugin.Name()})
	s.notify(ctx, &domain.Notice{
		Caller:  caller,
		Action:  domain.NoticeActionForceWithdraw,
		Asset:   &asset,
		Amount:  &amount,
		From:    &src,
		To:      &to,
		Details: string(details),
	})
	return nil
}

// SetDeposited overwrites the recorded counter for asset without touching
// custody. Owner reconciliation tool.
func (s *LedgerServiceImpl) SetDeposited(ctx context.Context, caller, asset domain.Address, amount uint64) error {
	if caller != s.owner {
		return apperror.ErrUnauthorized()
	}

	previous := s.deposited[asset]
	s.deposited[asset] = amount

	s.log.Warn().
		Stringer("caller", caller).
		Stringer("asset", asset).
		Uint64("previous", previous).
		Uint64("amount", amount).
		Msg("deposited amount overridden")
	details, _ := json.Marshal(map[string]uint64{"previous": previous})
	s.notify(ctx, &domain.Notice{
		Caller:  caller,
		Action:  domain.NoticeActionBalanceOverride,
		Asset:   &asset,
		Amount:  &amount,
		Details: string(details),
	})
	return nil
}

// --- Internals ---

// custodian resolves the custodial account for a binding: the plugin's
// address, or the ledger's own account for the nil sentinel.
func (s *LedgerServiceImpl) custodian(plugin ports.Plugin) domain.Address {
	if plugin == nil {
		return s.account
	}
	return plugin.Address()
}

// moveAsset routes a fund movement through the external transfer system:
// a direct push when the ledger itself is the source, a pre-approved pull
// otherwise. Zero-amount and same-account moves are skipped.
func (s *LedgerServiceImpl) moveAsset(ctx context.Context, asset, from, to domain.Address, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}

	var err error
	if from == s.account {
		err = s.transfer.DirectTransfer(ctx, asset, to, amount)
	} else {
		err = s.transfer.PullTransfer(ctx, asset, from, to, amount)
	}
	if err != nil {
		return apperror.ErrTransferFailed(err)
	}
	return nil
}

// compensate reverses a completed fund movement after a later step failed.
// Best effort: if the reverse transfer also fails, custody and bookkeeping
// diverge and the owner must reconcile via ForceWithdraw/SetDeposited.
func (s *LedgerServiceImpl) compensate(ctx context.Context, asset, from, to domain.Address, amount uint64) {
	if err := s.moveAsset(ctx, asset, from, to, amount); err != nil {
		s.log.Error().
			Err(err).
			Stringer("asset", asset).
			Stringer("from", from).
			Stringer("to", to).
			Uint64("amount", amount).
			Msg("compensating transfer failed, manual reconciliation required")
	}
}

func (s *LedgerServiceImpl) setBinding(asset domain.Address, plugin ports.Plugin) {
	if plugin == nil {
		delete(s.plugins, asset)
		return
	}
	s.plugins[asset] = plugin
}

func (s *LedgerServiceImpl) notify(ctx context.Context, n *domain.Notice) {
	if s.notifier == nil {
		return
	}
	n.ID = uuid.New()
	n.CreatedAt = time.Now().UTC()
	s.notifier.Notify(ctx, n)
}

func pluginName(p ports.Plugin) string {
	if p == nil {
		return ""
	}
	return p.Name()
}

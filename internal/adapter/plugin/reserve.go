package plugin

import (
	"context"
	"fmt"
	"sync"

	"custody-ledger/internal/core/domain"

	"github.com/rs/zerolog"
)

// ReservePlugin is a custody plugin that mirrors the amounts it holds per
// asset and refuses to release more than it saw arrive. It also supports an
// administrative freeze that blocks all outflows, which makes it a useful
// counterparty for exercising the ledger's rollback paths.
type ReservePlugin struct {
	name    string
	address domain.Address
	log     zerolog.Logger

	mu       sync.Mutex
	holdings map[domain.Address]uint64
	frozen   bool
}

func NewReservePlugin(name string, address domain.Address, log zerolog.Logger) *ReservePlugin {
	return &ReservePlugin{
		name:     name,
		address:  address,
		log:      log,
		holdings: make(map[domain.Address]uint64),
	}
}

func (p *ReservePlugin) Name() string            { return p.name }
func (p *ReservePlugin) Address() domain.Address { return p.address }

// Holdings reports the amount the plugin believes it custodies for asset.
func (p *ReservePlugin) Holdings(asset domain.Address) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.holdings[asset]
}

// SetFrozen toggles the outflow freeze.
func (p *ReservePlugin) SetFrozen(frozen bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frozen = frozen
}

// AfterDeposition records the arrival.
func (p *ReservePlugin) AfterDeposition(_ context.Context, asset domain.Address, amount uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.holdings[asset] += amount
	p.log.Debug().
		Str("plugin", p.name).
		Stringer("asset", asset).
		Uint64("amount", amount).
		Uint64("holdings", p.holdings[asset]).
		Msg("custody absorbed deposit")
	return nil
}

// BeforeWithdrawal releases the amount from the mirror, rejecting outflows
// while frozen or beyond recorded holdings.
func (p *ReservePlugin) BeforeWithdrawal(_ context.Context, asset domain.Address, amount uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.frozen {
		return fmt.Errorf("plugin %s: outflows frozen", p.name)
	}
	if p.holdings[asset] < amount {
		return fmt.Errorf("plugin %s: holdings %d below requested %d", p.name, p.holdings[asset], amount)
	}
	p.holdings[asset] -= amount
	p.log.Debug().
		Str("plugin", p.name).
		Stringer("asset", asset).
		Uint64("amount", amount).
		Uint64("holdings", p.holdings[asset]).
		Msg("custody released withdrawal")
	return nil
}

package ports

import (
	"context"

	"custody-ledger/internal/core/domain"
)

// TransferSystem is the external system that actually moves value between
// accounts. The ledger treats any returned error as fatal for the enclosing
// operation.
type TransferSystem interface {
	// DirectTransfer pushes funds the ledger already possesses to the given
	// address. No prior approval is needed.
	DirectTransfer(ctx context.Context, asset, to domain.Address, amount uint64) error
	// PullTransfer moves funds between third-party accounts. The source must
	// have pre-authorized the ledger to move funds on its behalf.
	PullTransfer(ctx context.Context, asset, from, to domain.Address, amount uint64) error
}

// Plugin is a per-asset custody hook. While bound, the plugin's address
// physically holds the asset's full deposited amount; the ledger notifies it
// before funds leave its custody and after funds arrive. Hook implementations
// may call back into the ledger; they observe fully-committed state.
type Plugin interface {
	// Name is the catalog name the plugin was registered under.
	Name() string
	// Address is the custodial account funds sit at while this plugin is bound.
	Address() domain.Address
	// AfterDeposition is called once custody and accounting have absorbed amount.
	AfterDeposition(ctx context.Context, asset domain.Address, amount uint64) error
	// BeforeWithdrawal is called before amount is moved out of the plugin's custody.
	BeforeWithdrawal(ctx context.Context, asset domain.Address, amount uint64) error
}

// PluginCatalog resolves plugin names from the administrative API to
// registered plugin instances.
type PluginCatalog interface {
	Get(name string) (Plugin, bool)
	Names() []string
}

// Notifier receives the auditable notice emitted by every successful
// mutating ledger operation. Delivery is fire-and-forget: the ledger never
// fails an operation over a notification problem.
type Notifier interface {
	Notify(ctx context.Context, notice *domain.Notice)
}

// NoticePublisher publishes committed notices to an external stream for
// downstream reconciliation consumers.
type NoticePublisher interface {
	Publish(ctx context.Context, notice *domain.Notice) error
}

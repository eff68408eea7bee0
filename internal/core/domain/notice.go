package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoticeAction represents the type of audited ledger mutation.
type NoticeAction string

const (
	NoticeActionDeposit         NoticeAction = "DEPOSIT"
	NoticeActionWithdraw        NoticeAction = "WITHDRAW"
	NoticeActionUserAdded       NoticeAction = "USER_ADDED"
	NoticeActionUserRemoved     NoticeAction = "USER_REMOVED"
	NoticeActionPluginChanged   NoticeAction = "PLUGIN_CHANGED"
	NoticeActionForceWithdraw   NoticeAction = "FORCE_WITHDRAW"
	NoticeActionBalanceOverride NoticeAction = "BALANCE_OVERRIDE"
	NoticeActionCallerKeyIssued NoticeAction = "CALLER_KEY_ISSUED"
)

// Notice is the auditable record emitted for every successful mutating
// operation: who acted, on which asset, and the amounts/addresses involved.
// Optional fields are nil when the action does not involve them.
type Notice struct {
	ID        uuid.UUID    `json:"id"`
	Caller    Address      `json:"caller"`
	Action    NoticeAction `json:"action"`
	Asset     *Address     `json:"asset,omitempty"`
	Amount    *uint64      `json:"amount,omitempty"`
	From      *Address     `json:"from,omitempty"`
	To        *Address     `json:"to,omitempty"`
	Subject   *Address     `json:"subject,omitempty"` // user added/removed
	Details   string       `json:"details,omitempty"` // JSON string
	CreatedAt time.Time    `json:"created_at"`
}

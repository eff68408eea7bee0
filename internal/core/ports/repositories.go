package ports

import (
	"context"

	"custody-ledger/internal/core/domain"
)

// CallerKeyRepository defines persistence operations for API key records.
type CallerKeyRepository interface {
	Create(ctx context.Context, key *domain.CallerKey) error
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.CallerKey, error)
	GetByAddress(ctx context.Context, address domain.Address) (*domain.CallerKey, error)
	UpdateStatus(ctx context.Context, accessKey string, status domain.CallerKeyStatus) error
}

// NoticeRepository defines persistence for the audit notice trail.
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	List(ctx context.Context, params NoticeListParams) ([]domain.Notice, int64, error)
}

// NoticeListParams holds filter + pagination for listing notices.
type NoticeListParams struct {
	Asset    *domain.Address
	Action   *domain.NoticeAction
	Page     int
	PageSize int
}

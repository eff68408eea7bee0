package service

import (
	"context"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// NoticeServiceImpl fans committed notices out to a structured log line,
// the durable postgres trail, and an optional Kafka stream. Delivery is
// asynchronous: ledger operations never block on, or fail over, the audit
// path.
type NoticeServiceImpl struct {
	repo      ports.NoticeRepository
	publisher ports.NoticePublisher // nil disables streaming
	log       zerolog.Logger
	timeout   time.Duration
}

func NewNoticeService(repo ports.NoticeRepository, publisher ports.NoticePublisher, log zerolog.Logger) *NoticeServiceImpl {
	return &NoticeServiceImpl{
		repo:      repo,
		publisher: publisher,
		log:       log,
		timeout:   5 * time.Second,
	}
}

// Notify implements ports.Notifier. The notice is copied and delivered on a
// detached context so it outlives the request that produced it.
func (s *NoticeServiceImpl) Notify(_ context.Context, notice *domain.Notice) {
	n := *notice
	go s.deliver(&n)
}

func (s *NoticeServiceImpl) deliver(n *domain.Notice) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	evt := s.log.Info().
		Str("notice_id", n.ID.String()).
		Stringer("caller", n.Caller).
		Str("action", string(n.Action))
	if n.Asset != nil {
		evt = evt.Stringer("asset", n.Asset)
	}
	if n.Amount != nil {
		evt = evt.Uint64("amount", *n.Amount)
	}
	evt.Msg("ledger notice")

	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error().Err(err).Str("notice_id", n.ID.String()).Msg("failed to persist notice")
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, n); err != nil {
			s.log.Error().Err(err).Str("notice_id", n.ID.String()).Msg("failed to publish notice")
		}
	}
}

// List exposes the persisted trail to the read-only console.
func (s *NoticeServiceImpl) List(ctx context.Context, params ports.NoticeListParams) ([]domain.Notice, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	return s.repo.List(ctx, params)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testNotice() *domain.Notice {
	return &domain.Notice{
		ID:        uuid.New(),
		Caller:    userAddr,
		Action:    domain.NoticeActionDeposit,
		Asset:     &assetAddr,
		CreatedAt: time.Now().UTC(),
	}
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestNoticeServiceNotify(t *testing.T) {
	t.Run("persists and publishes asynchronously", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNoticeRepository(ctrl)
		pub := mocks.NewMockNoticePublisher(ctrl)
		svc := NewNoticeService(repo, pub, zerolog.Nop())

		n := testNotice()
		persisted := make(chan struct{})
		published := make(chan struct{})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got *domain.Notice) error {
				assert.Equal(t, n.ID, got.ID)
				close(persisted)
				return nil
			})
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got *domain.Notice) error {
				assert.Equal(t, n.ID, got.ID)
				close(published)
				return nil
			})

		svc.Notify(context.Background(), n)
		waitFor(t, persisted, "repo create")
		waitFor(t, published, "publish")
	})

	t.Run("persistence failure does not block publishing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNoticeRepository(ctrl)
		pub := mocks.NewMockNoticePublisher(ctrl)
		svc := NewNoticeService(repo, pub, zerolog.Nop())

		published := make(chan struct{})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Notice) error {
				close(published)
				return nil
			})

		svc.Notify(context.Background(), testNotice())
		waitFor(t, published, "publish")
	})

	t.Run("nil publisher is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNoticeRepository(ctrl)
		svc := NewNoticeService(repo, nil, zerolog.Nop())

		persisted := make(chan struct{})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Notice) error {
				close(persisted)
				return nil
			})

		svc.Notify(context.Background(), testNotice())
		waitFor(t, persisted, "repo create")
	})
}

func TestNoticeServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNoticeRepository(ctrl)
	svc := NewNoticeService(repo, nil, zerolog.Nop())

	t.Run("clamps pagination defaults", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any(), ports.NoticeListParams{Page: 1, PageSize: 20}).
			Return([]domain.Notice{}, int64(0), nil)

		_, _, err := svc.List(context.Background(), ports.NoticeListParams{Page: 0, PageSize: 500})
		require.NoError(t, err)
	})

	t.Run("passes filters through", func(t *testing.T) {
		action := domain.NoticeActionWithdraw
		params := ports.NoticeListParams{Asset: &assetAddr, Action: &action, Page: 3, PageSize: 50}
		repo.EXPECT().List(gomock.Any(), params).Return([]domain.Notice{*testNotice()}, int64(1), nil)

		items, total, err := svc.List(context.Background(), params)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(1), total)
	})
}

package service

import (
	"context"
	"errors"
	"testing"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports/mocks"
	"custody-ledger/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCallerKeyService_Issue_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	callerRepo := mocks.NewMockCallerKeyRepository(ctrl)
	encSvc := mocks.NewMockEncryptionService(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	svc := NewCallerKeyService(callerRepo, encSvc, notifier)

	ctx := context.Background()
	callerRepo.EXPECT().GetByAddress(ctx, userAddr).Return(nil, nil)
	encSvc.EXPECT().Encrypt(gomock.Any()).Return("enc_secret", nil)

	var created *domain.CallerKey
	callerRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, key *domain.CallerKey) error {
			created = key
			return nil
		})
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n *domain.Notice) {
		assert.Equal(t, domain.NoticeActionCallerKeyIssued, n.Action)
	})

	issued, err := svc.Issue(ctx, userAddr, "treasury-bot")
	require.NoError(t, err)
	assert.Equal(t, userAddr, issued.Address)
	assert.Len(t, issued.AccessKey, 64) // 32 bytes = 64 hex chars
	assert.Len(t, issued.SecretKey, 64)

	require.NotNil(t, created)
	assert.Equal(t, issued.AccessKey, created.AccessKey)
	assert.Equal(t, "enc_secret", created.SecretKeyEnc)
	assert.Equal(t, domain.CallerKeyStatusActive, created.Status)
	// Plaintext secret never reaches the repository.
	assert.NotEqual(t, issued.SecretKey, created.SecretKeyEnc)
}

func TestCallerKeyService_Issue_AddressAlreadyKeyed(t *testing.T) {
	ctrl := gomock.NewController(t)
	callerRepo := mocks.NewMockCallerKeyRepository(ctrl)
	svc := NewCallerKeyService(callerRepo, mocks.NewMockEncryptionService(ctrl), nil)

	ctx := context.Background()
	callerRepo.EXPECT().GetByAddress(ctx, userAddr).Return(activeCallerKey(), nil)

	_, err := svc.Issue(ctx, userAddr, "dup")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_003", appErr.Code)
}

func TestCallerKeyService_Issue_EncryptionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	callerRepo := mocks.NewMockCallerKeyRepository(ctrl)
	encSvc := mocks.NewMockEncryptionService(ctrl)
	svc := NewCallerKeyService(callerRepo, encSvc, nil)

	ctx := context.Background()
	callerRepo.EXPECT().GetByAddress(ctx, userAddr).Return(nil, nil)
	encSvc.EXPECT().Encrypt(gomock.Any()).Return("", errors.New("bad key"))

	_, err := svc.Issue(ctx, userAddr, "label")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_002", appErr.Code)
}

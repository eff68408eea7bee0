package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports/mocks"
	"custody-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockCallerKeyRepository,
	*mocks.MockEncryptionService,
	*mocks.MockTokenService,
) {
	ctrl := gomock.NewController(t)
	callerRepo := mocks.NewMockCallerKeyRepository(ctrl)
	encSvc := mocks.NewMockEncryptionService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(callerRepo, encSvc, tokenSvc)
	return svc, callerRepo, encSvc, tokenSvc
}

func activeCallerKey() *domain.CallerKey {
	now := time.Now().UTC()
	return &domain.CallerKey{
		ID:           uuid.New(),
		Address:      userAddr,
		Label:        "treasury-bot",
		AccessKey:    "ak_test",
		SecretKeyEnc: "enc_secret",
		Status:       domain.CallerKeyStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, callerRepo, encSvc, tokenSvc := setupAuthService(t)
	ctx := context.Background()
	key := activeCallerKey()

	callerRepo.EXPECT().GetByAccessKey(ctx, "ak_test").Return(key, nil)
	encSvc.EXPECT().Decrypt("enc_secret").Return("sk_plain", nil)
	expiry := time.Now().Add(time.Hour)
	tokenSvc.EXPECT().Generate(userAddr, "ak_test").Return("jwt_token", expiry, nil)

	token, exp, err := svc.Login(ctx, "ak_test", "sk_plain")
	require.NoError(t, err)
	assert.Equal(t, "jwt_token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_UnknownAccessKey(t *testing.T) {
	svc, callerRepo, _, _ := setupAuthService(t)
	ctx := context.Background()

	callerRepo.EXPECT().GetByAccessKey(ctx, "ak_missing").Return(nil, nil)

	_, _, err := svc.Login(ctx, "ak_missing", "whatever")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_WrongSecret(t *testing.T) {
	svc, callerRepo, encSvc, _ := setupAuthService(t)
	ctx := context.Background()

	callerRepo.EXPECT().GetByAccessKey(ctx, "ak_test").Return(activeCallerKey(), nil)
	encSvc.EXPECT().Decrypt("enc_secret").Return("sk_plain", nil)

	_, _, err := svc.Login(ctx, "ak_test", "sk_wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_SuspendedCaller(t *testing.T) {
	svc, callerRepo, encSvc, _ := setupAuthService(t)
	ctx := context.Background()
	key := activeCallerKey()
	key.Status = domain.CallerKeyStatusSuspended

	callerRepo.EXPECT().GetByAccessKey(ctx, "ak_test").Return(key, nil)
	encSvc.EXPECT().Decrypt("enc_secret").Return("sk_plain", nil)

	_, _, err := svc.Login(ctx, "ak_test", "sk_plain")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SEC_005", appErr.Code)
}

func TestAuthService_Login_RepoError(t *testing.T) {
	svc, callerRepo, _, _ := setupAuthService(t)
	ctx := context.Background()

	callerRepo.EXPECT().GetByAccessKey(ctx, "ak_test").Return(nil, errors.New("db down"))

	_, _, err := svc.Login(ctx, "ak_test", "sk_plain")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

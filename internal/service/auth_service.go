package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService. Console sessions authenticate
// with the same access/secret key pair used for HMAC request signing.
type AuthServiceImpl struct {
	callerRepo ports.CallerKeyRepository
	encSvc     ports.EncryptionService
	tokenSvc   ports.TokenService
}

func NewAuthService(
	callerRepo ports.CallerKeyRepository,
	encSvc ports.EncryptionService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		callerRepo: callerRepo,
		encSvc:     encSvc,
		tokenSvc:   tokenSvc,
	}
}

// Login validates a key pair and returns a JWT for the read-only console.
func (s *AuthServiceImpl) Login(ctx context.Context, accessKey, secretKey string) (string, time.Time, error) {
	key, err := s.callerRepo.GetByAccessKey(ctx, accessKey)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find caller key: %w", err))
	}
	if key == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	stored, err := s.encSvc.Decrypt(key.SecretKeyEnc)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("decrypt secret key: %w", err))
	}
	if !hmac.Equal([]byte(stored), []byte(secretKey)) {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !key.IsActive() {
		return "", time.Time{}, apperror.ErrCallerSuspended()
	}

	token, expiry, err := s.tokenSvc.Generate(key.Address, key.AccessKey)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

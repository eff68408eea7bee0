package service

import (
	"context"
	"fmt"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// CallerKeyServiceImpl provisions HMAC key pairs for on-ledger addresses.
type CallerKeyServiceImpl struct {
	callerRepo ports.CallerKeyRepository
	encSvc     ports.EncryptionService
	notifier   ports.Notifier // nil disables notices
}

func NewCallerKeyService(
	callerRepo ports.CallerKeyRepository,
	encSvc ports.EncryptionService,
	notifier ports.Notifier,
) *CallerKeyServiceImpl {
	return &CallerKeyServiceImpl{
		callerRepo: callerRepo,
		encSvc:     encSvc,
		notifier:   notifier,
	}
}

// Issue generates a key pair for the given address. One active key per
// address; the plaintext secret is returned exactly once.
func (s *CallerKeyServiceImpl) Issue(ctx context.Context, address domain.Address, label string) (*ports.IssuedCallerKey, error) {
	existing, err := s.callerRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check address: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAccessKeyExists()
	}

	accessKey, err := generateRandomHex(32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}
	secretKey, err := generateRandomHex(32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate secret key: %w", err))
	}

	secretKeyEnc, err := s.encSvc.Encrypt(secretKey)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(err)
	}

	now := time.Now().UTC()
	key := &domain.CallerKey{
		ID:           uuid.New(),
		Address:      address,
		Label:        label,
		AccessKey:    accessKey,
		SecretKeyEnc: secretKeyEnc,
		Status:       domain.CallerKeyStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.callerRepo.Create(ctx, key); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create caller key: %w", err))
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, &domain.Notice{
			ID:        uuid.New(),
			Caller:    address,
			Action:    domain.NoticeActionCallerKeyIssued,
			Subject:   &address,
			Details:   fmt.Sprintf(`{"label":%q}`, label),
			CreatedAt: now,
		})
	}

	return &ports.IssuedCallerKey{
		Address:   address,
		AccessKey: accessKey,
		SecretKey: secretKey,
	}, nil
}

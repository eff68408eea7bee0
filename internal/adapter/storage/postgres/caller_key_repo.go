package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// CallerKeyRepo implements ports.CallerKeyRepository.
type CallerKeyRepo struct {
	pool Pool
}

func NewCallerKeyRepo(pool Pool) *CallerKeyRepo {
	return &CallerKeyRepo{pool: pool}
}

// Create inserts a new caller key record.
func (r *CallerKeyRepo) Create(ctx context.Context, k *domain.CallerKey) error {
	query := `INSERT INTO caller_keys (id, address, label, access_key, secret_key_enc, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		k.ID, k.Address.Hex(), k.Label, k.AccessKey,
		k.SecretKeyEnc, k.Status, k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert caller key: %w", err)
	}
	return nil
}

// GetByAccessKey fetches a caller key by its public access key.
func (r *CallerKeyRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.CallerKey, error) {
	query := `SELECT id, address, label, access_key, secret_key_enc, status, created_at, updated_at
		FROM caller_keys WHERE access_key = $1`

	k, err := r.scanOne(r.pool.QueryRow(ctx, query, accessKey))
	if err != nil {
		return nil, fmt.Errorf("get caller key by access_key: %w", err)
	}
	return k, nil
}

// GetByAddress fetches a caller key by on-ledger address.
func (r *CallerKeyRepo) GetByAddress(ctx context.Context, address domain.Address) (*domain.CallerKey, error) {
	query := `SELECT id, address, label, access_key, secret_key_enc, status, created_at, updated_at
		FROM caller_keys WHERE address = $1`

	k, err := r.scanOne(r.pool.QueryRow(ctx, query, address.Hex()))
	if err != nil {
		return nil, fmt.Errorf("get caller key by address: %w", err)
	}
	return k, nil
}

// UpdateStatus flips a key between ACTIVE and SUSPENDED.
func (r *CallerKeyRepo) UpdateStatus(ctx context.Context, accessKey string, status domain.CallerKeyStatus) error {
	query := `UPDATE caller_keys SET status = $1, updated_at = NOW() WHERE access_key = $2`

	tag, err := r.pool.Exec(ctx, query, status, accessKey)
	if err != nil {
		return fmt.Errorf("update caller key status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("caller key not found: %s", accessKey)
	}
	return nil
}

func (r *CallerKeyRepo) scanOne(row pgx.Row) (*domain.CallerKey, error) {
	k := &domain.CallerKey{}
	var addr string
	err := row.Scan(
		&k.ID, &addr, &k.Label, &k.AccessKey,
		&k.SecretKeyEnc, &k.Status, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	k.Address, err = domain.ParseAddress(addr)
	if err != nil {
		return nil, fmt.Errorf("stored address invalid: %w", err)
	}
	return k, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// CallerKeyStatus represents the lifecycle state of an API key pair.
type CallerKeyStatus string

const (
	CallerKeyStatusActive    CallerKeyStatus = "ACTIVE"
	CallerKeyStatusSuspended CallerKeyStatus = "SUSPENDED"
)

// CallerKey binds an HTTP API credential to an on-ledger address. The key
// pair authenticates requests; whether the address may actually perform an
// operation is decided by the ledger's own access control.
type CallerKey struct {
	ID           uuid.UUID       `json:"id"`
	Address      Address         `json:"address"`
	Label        string          `json:"label"`
	AccessKey    string          `json:"access_key"`
	SecretKeyEnc string          `json:"-"` // AES-256-GCM encrypted, never exposed
	Status       CallerKeyStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsActive reports whether the key may authenticate requests.
func (k *CallerKey) IsActive() bool {
	return k.Status == CallerKeyStatusActive
}

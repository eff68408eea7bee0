package ports

import (
	"context"
	"time"

	"custody-ledger/internal/core/domain"
)

// EncryptionService handles AES-256-GCM encryption/decryption of caller
// secrets at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification of
// API requests.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// TokenService handles JWT token operations for the read-only console.
type TokenService interface {
	Generate(address domain.Address, accessKey string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Address   domain.Address
	AccessKey string
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, callerID string, nonce string, ttl time.Duration) (bool, error)
}

// NoticeService records committed notices: structured log, durable trail,
// and optional stream publishing.
type NoticeService interface {
	Notifier
	// List exposes the persisted notice trail to the console.
	List(ctx context.Context, params NoticeListParams) ([]domain.Notice, int64, error)
}

// AuthService authenticates console sessions.
type AuthService interface {
	// Login verifies an access key + secret key pair and returns a signed
	// token with its expiry.
	Login(ctx context.Context, accessKey, secretKey string) (string, time.Time, error)
}

// CallerKeyService provisions API key pairs for on-ledger addresses.
type CallerKeyService interface {
	Issue(ctx context.Context, address domain.Address, label string) (*IssuedCallerKey, error)
}

// IssuedCallerKey is the provisioning result; the secret is shown once.
type IssuedCallerKey struct {
	Address   domain.Address
	AccessKey string
	SecretKey string
}

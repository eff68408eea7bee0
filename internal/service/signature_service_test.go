package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()

	payload := svc.BuildCanonicalString("POST", "/api/v1/ledger/deposit", 1700000000, "nonce-123", `{"asset":"0x01","amount":100}`)
	sig := svc.Sign("sk_secret", payload)

	assert.Len(t, sig, 64) // sha256 hex
	assert.True(t, svc.Verify("sk_secret", payload, sig))
}

func TestHMACSignatureService_RejectsWrongKey(t *testing.T) {
	svc := NewHMACSignatureService()

	sig := svc.Sign("sk_secret", "payload")
	assert.False(t, svc.Verify("sk_other", "payload", sig))
}

func TestHMACSignatureService_RejectsTamperedPayload(t *testing.T) {
	svc := NewHMACSignatureService()

	sig := svc.Sign("sk_secret", "payload")
	assert.False(t, svc.Verify("sk_secret", "payload2", sig))
	assert.False(t, svc.Verify("sk_secret", "payload", sig+"00"))
}

func TestHMACSignatureService_CanonicalFormat(t *testing.T) {
	svc := NewHMACSignatureService()

	got := svc.BuildCanonicalString("GET", "/api/v1/console/notices", 1700000001, "n1", "")
	assert.Equal(t, "GET|/api/v1/console/notices|1700000001|n1|", got)
}

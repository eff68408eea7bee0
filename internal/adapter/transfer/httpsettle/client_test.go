package httpsettle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"custody-ledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	asset = domain.MustParseAddress("0x00000000000000000000000000000000000000e0")
	alice = domain.MustParseAddress("0x0000000000000000000000000000000000000001")
	bob   = domain.MustParseAddress("0x0000000000000000000000000000000000000002")
)

func TestClient_DirectTransfer(t *testing.T) {
	var got transferRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transfers/direct", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second, zerolog.Nop())
	require.NoError(t, c.DirectTransfer(context.Background(), asset, alice, 100))

	assert.Equal(t, asset.Hex(), got.Asset)
	assert.Empty(t, got.From)
	assert.Equal(t, alice.Hex(), got.To)
	assert.Equal(t, uint64(100), got.Amount)
}

func TestClient_PullTransfer(t *testing.T) {
	var got transferRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transfers/pull", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second, zerolog.Nop())
	require.NoError(t, c.PullTransfer(context.Background(), asset, alice, bob, 50))

	assert.Equal(t, alice.Hex(), got.From)
	assert.Equal(t, bob.Hex(), got.To)
}

func TestClient_RejectionWithReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(transferResponse{Status: "REJECTED", Reason: "insufficient allowance"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second, zerolog.Nop())
	err := c.PullTransfer(context.Background(), asset, alice, bob, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient allowance")
}

func TestClient_OpaqueServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second, zerolog.Nop())
	err := c.DirectTransfer(context.Background(), asset, alice, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_ConnectionRefused(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "test-key", time.Second, zerolog.Nop())
	err := c.DirectTransfer(context.Background(), asset, alice, 1)
	assert.Error(t, err)
}

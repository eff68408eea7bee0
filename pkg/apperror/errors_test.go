package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New("ACL_001", "Caller lacks the required role", http.StatusForbidden)
	assert.Equal(t, "[ACL_001] Caller lacks the required role", err.Error())
}

func TestAppError_ErrorWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap("TRF_001", "External asset transfer failed", http.StatusBadGateway, cause)
	assert.Equal(t, "[TRF_001] External asset transfer failed: connection refused", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("pull rejected")
	err := ErrTransferFailed(cause)
	assert.ErrorIs(t, err, cause)
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	wrapped := fmt.Errorf("handler: %w", ErrInsufficientBalance())
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
}

func TestErrorCatalog_Codes(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrUnauthorized(), "ACL_001", http.StatusForbidden},
		{ErrInsufficientBalance(), "LED_001", http.StatusUnprocessableEntity},
		{ErrUnknownPlugin("yield"), "LED_002", http.StatusNotFound},
		{ErrTransferFailed(errors.New("x")), "TRF_001", http.StatusBadGateway},
		{ErrPluginHook(errors.New("x")), "PLG_001", http.StatusBadGateway},
		{ErrInvalidAccessKey(), "SEC_001", http.StatusUnauthorized},
		{ErrInvalidSignature(), "SEC_002", http.StatusUnauthorized},
		{ErrTimestampExpired(), "SEC_003", http.StatusForbidden},
		{ErrNonceUsed(), "SEC_004", http.StatusForbidden},
		{ErrCallerSuspended(), "SEC_005", http.StatusForbidden},
		{ErrInvalidCredentials(), "AUTH_001", http.StatusUnauthorized},
		{ErrInvalidToken(), "AUTH_002", http.StatusUnauthorized},
		{ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{InternalError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
		{Validation("bad address"), "VAL_001", http.StatusBadRequest},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestErrUnknownPlugin_Message(t *testing.T) {
	err := ErrUnknownPlugin("reserve-v2")
	assert.Contains(t, err.Message, `"reserve-v2"`)
}

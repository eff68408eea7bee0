package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Access Control (ACL) ----

// ErrUnauthorized is returned when the caller lacks the role a ledger
// operation requires: owner for admin operations, authorized user for
// deposit/withdraw. The gated operation leaves no state change behind.
func ErrUnauthorized() *AppError {
	return New("ACL_001", "Caller lacks the required role", http.StatusForbidden)
}

// ---- Ledger Business Logic (LED) ----

func ErrInsufficientBalance() *AppError {
	return New("LED_001", "Withdrawal exceeds recorded deposited amount", http.StatusUnprocessableEntity)
}

func ErrUnknownPlugin(name string) *AppError {
	return New("LED_002", fmt.Sprintf("No plugin registered under %q", name), http.StatusNotFound)
}

// ErrCounterOverflow rejects a deposit that would wrap the uint64 counter.
func ErrCounterOverflow() *AppError {
	return New("LED_003", "Deposit would overflow the recorded deposited amount", http.StatusUnprocessableEntity)
}

// ---- Transfer Gateway (TRF / PLG) ----

// ErrTransferFailed wraps a rejection or fault reported by the external
// asset-transfer system. Always terminal for the enclosing operation.
func ErrTransferFailed(err error) *AppError {
	return Wrap("TRF_001", "External asset transfer failed", http.StatusBadGateway, err)
}

// ErrPluginHook wraps a failure returned by a plugin hook call. Terminal,
// same rollback semantics as a transfer failure.
func ErrPluginHook(err error) *AppError {
	return Wrap("PLG_001", "Plugin hook rejected the operation", http.StatusBadGateway, err)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidAccessKey() *AppError {
	return New("SEC_001", "Invalid access key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

func ErrCallerSuspended() *AppError {
	return New("SEC_005", "Caller key is suspended", http.StatusForbidden)
}

// ---- Console Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAccessKeyExists() *AppError {
	return New("AUTH_003", "Access key already exists", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

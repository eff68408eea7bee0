package handler

import (
	"sync"

	"custody-ledger/internal/adapter/http/dto"
	"custody-ledger/internal/adapter/http/middleware"
	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles the deposit/withdraw endpoints of the custody API.
// The ledger core is strictly sequential, so every call into it goes
// through the shared mutex.
type LedgerHandler struct {
	ledger ports.LedgerService
	mu     *sync.Mutex
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger ports.LedgerService, mu *sync.Mutex) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, mu: mu}
}

// callerAddress extracts the authenticated caller address set by the auth
// middleware.
func callerAddress(c *gin.Context) (domain.Address, bool) {
	v, ok := c.Get(middleware.CtxCallerAddress)
	if !ok {
		return domain.Address{}, false
	}
	addr, ok := v.(domain.Address)
	return addr, ok
}

// Deposit handles POST /api/v1/ledger/deposit.
func (h *LedgerHandler) Deposit(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	asset, err := domain.ParseAddress(req.Asset)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.mu.Lock()
	err = h.ledger.Deposit(c.Request.Context(), caller, asset, req.Amount)
	h.mu.Unlock()
	if err != nil {
		response.Error(c, err)
		return
	}

	h.mu.Lock()
	deposited := h.ledger.Deposited(asset)
	h.mu.Unlock()

	response.OK(c, dto.DepositedResponse{Asset: asset.Hex(), Deposited: deposited})
}

// Withdraw handles POST /api/v1/ledger/withdraw.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	asset, err := domain.ParseAddress(req.Asset)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	to, err := domain.ParseAddress(req.To)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.mu.Lock()
	err = h.ledger.Withdraw(c.Request.Context(), caller, asset, to, req.Amount)
	h.mu.Unlock()
	if err != nil {
		response.Error(c, err)
		return
	}

	h.mu.Lock()
	deposited := h.ledger.Deposited(asset)
	h.mu.Unlock()

	response.OK(c, dto.DepositedResponse{Asset: asset.Hex(), Deposited: deposited})
}

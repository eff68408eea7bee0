package handler

import (
	"sync"

	"custody-ledger/internal/adapter/http/dto"
	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles owner-only administration: the authorized-user set,
// plugin rebinding, forced withdrawals, counter overrides and API key
// provisioning. Ownership itself is enforced by the ledger core, not here.
type AdminHandler struct {
	ledger       ports.LedgerService
	catalog      ports.PluginCatalog
	callerKeySvc ports.CallerKeyService
	mu           *sync.Mutex
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledger ports.LedgerService, catalog ports.PluginCatalog, callerKeySvc ports.CallerKeyService, mu *sync.Mutex) *AdminHandler {
	return &AdminHandler{ledger: ledger, catalog: catalog, callerKeySvc: callerKeySvc, mu: mu}
}

// AddUser handles POST /api/v1/admin/users.
func (h *AdminHandler) AddUser(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	user, err := domain.ParseAddress(req.Address)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.mu.Lock()
	err = h.ledger.AddUser(c.Request.Context(), caller, user)
	h.mu.Unlock()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UserStatusResponse{Address: user.Hex(), Authorized: true})
}

// RemoveUser handles DELETE /api/v1/admin/users.
func (h *AdminHandler) RemoveUser(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	user, err := domain.ParseAddress(req.Address)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.mu.Lock()
	err = h.ledger.RemoveUser(c.Request.Context(), caller, user)
	h.mu.Unlock()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UserStatusResponse{Address: user.Hex(), Authorized: false})
}

// SetPlugin handles PUT /api/v1/admin/plugin. An empty plugin name binds
// self-custody; any other name must resolve through the catalog.
func (h *AdminHandler) SetPlugin(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetPluginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	asset, err := domain.ParseAddress(req.Asset)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var plugin ports.Plugin
	if req.Plugin != "" {
		p, found := h.catalog.Get(req.Plugin)
		if !found {
			response.Error(c, apperror.ErrUnknownPlugin(req.Plugin))
			return
		}
		plugin = p
	}

	h.mu.Lock()
	err = h.ledger.SetPlugin(c.Request.Context(), caller, asset, plugin)
	h.mu.Unlock()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPluginResponse(asset, plugin))
}

// ForceWithdraw handles POST /api/v1/admin/force-withdraw.
func (h *AdminHandler) ForceWithdraw(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ForceWithdrawRequest
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

	plugin, found := h.catalog.Get(req.Plugin)
	if !found {
		response.Error(c, apperror.ErrUnknownPlugin(req.Plugin))
		return
	}

	h.mu.Lock()
	err = h.ledger.ForceWithdraw(c.Request.Context(), caller, asset, plugin, to, req.Amount)
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

// SetDeposited handles PUT /api/v1/admin/deposited.
func (h *AdminHandler) SetDeposited(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetDepositedRequest
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
	err = h.ledger.SetDeposited(c.Request.Context(), caller, asset, req.Amount)
	h.mu.Unlock()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DepositedResponse{Asset: asset.Hex(), Deposited: req.Amount})
}

// IssueCallerKey handles POST /api/v1/admin/caller-keys. Only the ledger
// owner may provision key pairs.
func (h *AdminHandler) IssueCallerKey(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if caller != h.ledger.Owner() {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.IssueCallerKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	address, err := domain.ParseAddress(req.Address)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	issued, err := h.callerKeySvc.Issue(c.Request.Context(), address, req.Label)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.IssueCallerKeyResponse{
		Address:   issued.Address.Hex(),
		AccessKey: issued.AccessKey,
		SecretKey: issued.SecretKey,
	})
}

func toPluginResponse(asset domain.Address, plugin ports.Plugin) dto.PluginResponse {
	resp := dto.PluginResponse{Asset: asset.Hex()}
	if plugin != nil {
		name := plugin.Name()
		addr := plugin.Address().Hex()
		resp.Plugin = &name
		resp.Address = &addr
	}
	return resp
}

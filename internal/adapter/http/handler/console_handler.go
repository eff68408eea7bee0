package handler

import (
	"strconv"
	"sync"
	"time"

	"custody-ledger/internal/adapter/http/dto"
	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConsoleHandler serves the read-only console: ledger state queries and the
// persisted notice trail. State reads share the ledger mutex because the
// core's maps are not safe under concurrent mutation.
type ConsoleHandler struct {
	ledger    ports.LedgerService
	catalog   ports.PluginCatalog
	noticeSvc ports.NoticeService
	mu        *sync.Mutex
}

// NewConsoleHandler creates a new ConsoleHandler.
func NewConsoleHandler(ledger ports.LedgerService, catalog ports.PluginCatalog, noticeSvc ports.NoticeService, mu *sync.Mutex) *ConsoleHandler {
	return &ConsoleHandler{ledger: ledger, catalog: catalog, noticeSvc: noticeSvc, mu: mu}
}

// GetDeposited handles GET /api/v1/console/deposited/:asset.
func (h *ConsoleHandler) GetDeposited(c *gin.Context) {
	asset, err := domain.ParseAddress(c.Param("asset"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.mu.Lock()
	deposited := h.ledger.Deposited(asset)
	h.mu.Unlock()

	response.OK(c, dto.DepositedResponse{Asset: asset.Hex(), Deposited: deposited})
}

// GetPlugin handles GET /api/v1/console/plugin/:asset.
func (h *ConsoleHandler) GetPlugin(c *gin.Context) {
	asset, err := domain.ParseAddress(c.Param("asset"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.mu.Lock()
	plugin := h.ledger.ActivePlugin(asset)
	h.mu.Unlock()

	response.OK(c, toPluginResponse(asset, plugin))
}

// ListPlugins handles GET /api/v1/console/plugins.
func (h *ConsoleHandler) ListPlugins(c *gin.Context) {
	response.OK(c, dto.PluginListResponse{Plugins: h.catalog.Names()})
}

// GetUserStatus handles GET /api/v1/console/users/:address.
func (h *ConsoleHandler) GetUserStatus(c *gin.Context) {
	address, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.mu.Lock()
	authorized := h.ledger.IsUser(address)
	h.mu.Unlock()

	response.OK(c, dto.UserStatusResponse{Address: address.Hex(), Authorized: authorized})
}

// ListNotices handles GET /api/v1/console/notices with optional asset and
// action filters plus page/page_size pagination.
func (h *ConsoleHandler) ListNotices(c *gin.Context) {
	params := ports.NoticeListParams{
		Page:     atoiDefault(c.Query("page"), 1),
		PageSize: atoiDefault(c.Query("page_size"), 20),
	}

	if raw := c.Query("asset"); raw != "" {
		asset, err := domain.ParseAddress(raw)
		if err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		params.Asset = &asset
	}
	if raw := c.Query("action"); raw != "" {
		action := domain.NoticeAction(raw)
		params.Action = &action
	}

	notices, total, err := h.noticeSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		items = append(items, toNoticeResponse(&notices[i]))
	}

	response.OK(c, dto.NoticeListResponse{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

func toNoticeResponse(n *domain.Notice) dto.NoticeResponse {
	resp := dto.NoticeResponse{
		ID:        n.ID.String(),
		Caller:    n.Caller.Hex(),
		Action:    string(n.Action),
		Amount:    n.Amount,
		Details:   n.Details,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
	resp.Asset = hexPtr(n.Asset)
	resp.From = hexPtr(n.From)
	resp.To = hexPtr(n.To)
	resp.Subject = hexPtr(n.Subject)
	return resp
}

func hexPtr(addr *domain.Address) *string {
	if addr == nil {
		return nil
	}
	s := addr.Hex()
	return &s
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

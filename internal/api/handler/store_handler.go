package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

// StoreHandler 分店模組 HTTP 處理器
type StoreHandler struct {
	storeSvc service.StoreService
}

// NewStoreHandler 建立 StoreHandler
func NewStoreHandler(storeSvc service.StoreService) *StoreHandler {
	return &StoreHandler{storeSvc: storeSvc}
}

// ListStores 取得分店列表
// GET /api/v1/stores
func (h *StoreHandler) ListStores(c *gin.Context) {
	var req dto.StoreListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	stores, err := h.storeSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": stores})
}

// GetStore 取得分店詳情
// GET /api/v1/stores/:id
func (h *StoreHandler) GetStore(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "分店ID格式不正確")
		return
	}

	store, err := h.storeSvc.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.OK(c, store)
}

// CreateStore 建立分店
// POST /api/v1/stores
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	store, err := h.storeSvc.Create(c.Request.Context(), &req, OperatorID(c))
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.Created(c, store)
}

// UpdateStore 更新分店
// PUT /api/v1/stores/:id
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "分店ID格式不正確")
		return
	}

	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	store, err := h.storeSvc.Update(c.Request.Context(), uri.ID, &req, OperatorID(c))
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.OK(c, store)
}

// ImportHolidays 自 ICS 行事曆匯入公休日
// POST /api/v1/stores/:id/holidays/import
func (h *StoreHandler) ImportHolidays(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "分店ID格式不正確")
		return
	}

	var req dto.ImportHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	result, err := h.storeSvc.ImportHolidays(c.Request.Context(), uri.ID, &req, OperatorID(c))
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.OK(c, result)
}

// handleStoreError 統一處理分店模組業務錯誤
func (h *StoreHandler) handleStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "分店不存在")
	case errors.Is(err, service.ErrStoreExists):
		response.Conflict(c, 11002, "分店名稱已存在")
	case errors.Is(err, service.ErrStoreInactive):
		response.BadRequest(c, 11003, "分店已停用")
	default:
		response.InternalError(c)
	}
}

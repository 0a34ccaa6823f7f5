package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

// OrderingHandler 叫貨模組 HTTP 處理器
type OrderingHandler struct {
	orderingSvc service.OrderingService
}

// NewOrderingHandler 建立 OrderingHandler
func NewOrderingHandler(orderingSvc service.OrderingService) *OrderingHandler {
	return &OrderingHandler{orderingSvc: orderingSvc}
}

// ListItems 取得品項目錄
// GET /api/v1/ordering/items
func (h *OrderingHandler) ListItems(c *gin.Context) {
	var req dto.OrderingItemListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	items, err := h.orderingSvc.ListItems(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// GetItem 取得品項詳情
// GET /api/v1/ordering/items/:id
func (h *OrderingHandler) GetItem(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "品項ID格式不正確")
		return
	}

	item, err := h.orderingSvc.GetItem(c.Request.Context(), uri.ID)
	if err != nil {
		h.handleOrderingError(c, err)
		return
	}

	response.OK(c, item)
}

// CreateItem 建立品項
// POST /api/v1/ordering/items
func (h *OrderingHandler) CreateItem(c *gin.Context) {
	var req dto.CreateOrderingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	item, err := h.orderingSvc.CreateItem(c.Request.Context(), &req, OperatorID(c))
	if err != nil {
		h.handleOrderingError(c, err)
		return
	}

	response.Created(c, item)
}

// UpdateItem 更新品項
// PUT /api/v1/ordering/items/:id
func (h *OrderingHandler) UpdateItem(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "品項ID格式不正確")
		return
	}

	var req dto.UpdateOrderingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	item, err := h.orderingSvc.UpdateItem(c.Request.Context(), uri.ID, &req, OperatorID(c))
	if err != nil {
		h.handleOrderingError(c, err)
		return
	}

	response.OK(c, item)
}

// SubmitOrder 提交叫貨單
// POST /api/v1/ordering/orders
func (h *OrderingHandler) SubmitOrder(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	result, err := h.orderingSvc.SubmitOrder(c.Request.Context(), &req)
	if err != nil {
		h.handleOrderingError(c, err)
		return
	}

	response.Created(c, result)
}

// ListRecords 取得叫貨紀錄列表
// GET /api/v1/ordering/orders
func (h *OrderingHandler) ListRecords(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}
	employeeID := c.Query("employee_id")

	records, total, err := h.orderingSvc.ListRecords(c.Request.Context(), employeeID, &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, records, total, page.GetPage(), page.GetPageSize())
}

// handleOrderingError 統一處理叫貨模組業務錯誤
func (h *OrderingHandler) handleOrderingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		response.NotFound(c, 14001, "品項不存在")
	case errors.Is(err, service.ErrItemExists):
		response.Conflict(c, 14002, "同名啟用品項已存在")
	case errors.Is(err, service.ErrUnknownProduct):
		response.BadRequest(c, 14003, err.Error())
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "員工不存在")
	case errors.Is(err, service.ErrEmployeeInactive):
		response.BadRequest(c, 12002, "員工非在職狀態")
	default:
		response.InternalError(c)
	}
}

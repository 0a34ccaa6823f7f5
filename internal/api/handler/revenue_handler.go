package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/rules"
	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

// RevenueHandler 營收模組 HTTP 處理器
type RevenueHandler struct {
	revenueSvc service.RevenueService
}

// NewRevenueHandler 建立 RevenueHandler
func NewRevenueHandler(revenueSvc service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueSvc: revenueSvc}
}

// Submit 提交單日營收（含獎金試算）
// POST /api/v1/revenue/records
func (h *RevenueHandler) Submit(c *gin.Context) {
	var req dto.SubmitRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	result, err := h.revenueSvc.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleRevenueError(c, err)
		return
	}

	response.Created(c, result)
}

// ListRecords 取得營收紀錄列表
// GET /api/v1/revenue/records
func (h *RevenueHandler) ListRecords(c *gin.Context) {
	var req dto.RevenueListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	records, total, err := h.revenueSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, records, total, req.GetPage(), req.GetPageSize())
}

// MonthlySummary 取得分店月彙總
// GET /api/v1/revenue/summary?store_id=xxx&month=YYYY-MM
func (h *RevenueHandler) MonthlySummary(c *gin.Context) {
	storeID := c.Query("store_id")
	month := c.Query("month")
	if storeID == "" || len(month) != 7 {
		response.BadRequest(c, 10001, "store_id 與 month (YYYY-MM) 不能為空")
		return
	}

	summary, err := h.revenueSvc.MonthlySummary(c.Request.Context(), storeID, month)
	if err != nil {
		h.handleRevenueError(c, err)
		return
	}

	response.OK(c, summary)
}

// handleRevenueError 統一處理營收模組業務錯誤
func (h *RevenueHandler) handleRevenueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "分店不存在")
	case errors.Is(err, service.ErrStoreInactive):
		response.BadRequest(c, 11003, "分店已停用")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "員工不存在")
	case errors.Is(err, service.ErrEmployeeInactive):
		response.BadRequest(c, 12002, "員工非在職狀態")
	case errors.Is(err, rules.ErrUnknownBonusType):
		response.BadRequest(c, 15001, "未知的獎金類別")
	case pkgerrors.IsValidation(err):
		response.BadRequest(c, 15002, err.Error())
	default:
		response.InternalError(c)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

// SchedulingHandler 排班模組 HTTP 處理器
type SchedulingHandler struct {
	schedulingSvc service.SchedulingService
}

// NewSchedulingHandler 建立 SchedulingHandler
func NewSchedulingHandler(schedulingSvc service.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{schedulingSvc: schedulingSvc}
}

// OpenSession 開啟排班編輯工作階段
// POST /api/v1/scheduling/sessions
func (h *SchedulingHandler) OpenSession(c *gin.Context) {
	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	session, err := h.schedulingSvc.OpenSession(c.Request.Context(), &req)
	if err != nil {
		h.handleSchedulingError(c, err)
		return
	}

	response.Created(c, session)
}

// GetSession 取得工作階段狀態
// GET /api/v1/scheduling/sessions/:id
func (h *SchedulingHandler) GetSession(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "工作階段ID格式不正確")
		return
	}

	session, err := h.schedulingSvc.GetSession(c.Request.Context(), uri.ID)
	if err != nil {
		h.handleSchedulingError(c, err)
		return
	}

	response.OK(c, session)
}

// CloseSession 關閉工作階段
// DELETE /api/v1/scheduling/sessions/:id
func (h *SchedulingHandler) CloseSession(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "工作階段ID格式不正確")
		return
	}

	session, err := h.schedulingSvc.CloseSession(c.Request.Context(), uri.ID)
	if err != nil {
		h.handleSchedulingError(c, err)
		return
	}

	response.OK(c, session)
}

// Validate 預檢休假申請（不落庫）
// POST /api/v1/scheduling/validate
func (h *SchedulingHandler) Validate(c *gin.Context) {
	var req dto.ValidateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	result, err := h.schedulingSvc.Validate(c.Request.Context(), &req)
	if err != nil {
		h.handleSchedulingError(c, err)
		return
	}

	response.OK(c, result)
}

// Submit 提交休假申請
// POST /api/v1/scheduling/submit
func (h *SchedulingHandler) Submit(c *gin.Context) {
	var req dto.SubmitScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	result, err := h.schedulingSvc.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleSchedulingError(c, err)
		return
	}

	response.OK(c, result)
}

// ListAssignments 取得月份休假核配
// GET /api/v1/scheduling/assignments?month=YYYY-MM
func (h *SchedulingHandler) ListAssignments(c *gin.Context) {
	var req dto.MonthAssignmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	assignments, err := h.schedulingSvc.ListAssignments(c.Request.Context(), &req)
	if err != nil {
		h.handleSchedulingError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// handleSchedulingError 統一處理排班模組業務錯誤
func (h *SchedulingHandler) handleSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 16001, "排班工作階段不存在")
	case errors.Is(err, service.ErrSessionNotOpen):
		response.Conflict(c, 16002, "排班工作階段已關閉")
	case errors.Is(err, service.ErrSessionExpired):
		response.Conflict(c, 16003, "排班工作階段已逾時")
	case errors.Is(err, service.ErrSessionAlreadyOpen):
		response.Conflict(c, 16004, "該員工本月已有進行中的編輯工作階段")
	case errors.Is(err, service.ErrOutsideWindow):
		response.Conflict(c, 16005, "不在排班開放時段內")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "員工不存在")
	case errors.Is(err, service.ErrEmployeeInactive):
		response.BadRequest(c, 12002, "員工非在職狀態")
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "分店不存在")
	case pkgerrors.IsValidation(err):
		response.BadRequest(c, 16006, err.Error())
	default:
		response.InternalError(c)
	}
}

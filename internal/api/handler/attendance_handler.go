package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

// AttendanceHandler 打卡模組 HTTP 處理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 建立 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// CheckIn 員工打卡
// POST /api/v1/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	result, err := h.attendanceSvc.CheckIn(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.Created(c, result)
}

// ListRecords 取得打卡紀錄列表
// GET /api/v1/attendance/records
func (h *AttendanceHandler) ListRecords(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	records, total, err := h.attendanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, records, total, req.GetPage(), req.GetPageSize())
}

// handleAttendanceError 統一處理打卡模組業務錯誤
func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "員工不存在")
	case errors.Is(err, service.ErrEmployeeInactive):
		response.BadRequest(c, 12002, "員工非在職狀態")
	case pkgerrors.IsValidation(err):
		response.BadRequest(c, 13001, err.Error())
	default:
		response.InternalError(c)
	}
}

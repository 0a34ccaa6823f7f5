package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

// EmployeeHandler 員工模組 HTTP 處理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 建立 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// ListEmployees 取得員工列表
// GET /api/v1/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	employees, total, err := h.employeeSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, employees, total, req.GetPage(), req.GetPageSize())
}

// GetEmployee 取得員工詳情
// GET /api/v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "員工ID格式不正確")
		return
	}

	employee, err := h.employeeSvc.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, employee)
}

// CreateEmployee 建立員工
// POST /api/v1/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	employee, err := h.employeeSvc.Create(c.Request.Context(), &req, OperatorID(c))
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.Created(c, employee)
}

// UpdateEmployee 更新員工（升遷、調店、狀態變更）
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var uri dto.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "員工ID格式不正確")
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	employee, err := h.employeeSvc.Update(c.Request.Context(), uri.ID, &req, OperatorID(c))
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, employee)
}

// handleEmployeeError 統一處理員工模組業務錯誤
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "員工不存在")
	case errors.Is(err, service.ErrEmployeeInactive):
		response.BadRequest(c, 12002, "員工非在職狀態")
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "分店不存在")
	default:
		response.InternalError(c)
	}
}

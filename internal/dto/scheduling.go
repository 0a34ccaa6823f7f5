package dto

// ── 排班模組 DTO ──

// OpenSessionRequest 開啟排班編輯工作階段請求
type OpenSessionRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      string `json:"month"       binding:"required,len=7"` // YYYY-MM
}

// SubmitScheduleRequest 提交休假申請請求
type SubmitScheduleRequest struct {
	SessionID string   `json:"session_id" binding:"required,uuid"`
	Dates     []string `json:"dates"      binding:"required,min=1,dive,datetime=2006-01-02"`
}

// ValidateScheduleRequest 預檢休假申請請求（不落庫）
type ValidateScheduleRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Month      string   `json:"month"       binding:"required,len=7"`
	Dates      []string `json:"dates"       binding:"required,min=1,dive,datetime=2006-01-02"`
}

// SessionResponse 工作階段響應
type SessionResponse struct {
	SessionID  string `json:"session_id"`
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	OpenedAt   string `json:"opened_at"`
	ExpiresAt  string `json:"expires_at"`
	Status     string `json:"status"`
}

// ViolationResponse 單條配額違規
type ViolationResponse struct {
	Code    string `json:"code"`
	Date    string `json:"date,omitempty"`
	Message string `json:"message"`
}

// ValidationResponse 休假申請驗證結果
type ValidationResponse struct {
	Accepted   bool                `json:"accepted"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

// SubmitScheduleResponse 提交休假申請結果
type SubmitScheduleResponse struct {
	Accepted   bool                 `json:"accepted"`
	Violations []ViolationResponse  `json:"violations,omitempty"`
	Assigned   []AssignmentResponse `json:"assigned,omitempty"`
}

// AssignmentResponse 已核配休假日響應
type AssignmentResponse struct {
	AssignmentID string `json:"assignment_id"`
	EmployeeID   string `json:"employee_id"`
	StoreID      string `json:"store_id"`
	Date         string `json:"date"`
	Pool         string `json:"pool"`
}

// MonthAssignmentsRequest 月份核配查詢參數
type MonthAssignmentsRequest struct {
	Month      string `form:"month"       binding:"required,len=7"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	StoreID    string `form:"store_id"    binding:"omitempty,uuid"`
}

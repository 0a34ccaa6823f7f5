package dto

// ── 員工模組 DTO ──

// CreateEmployeeRequest 建立員工請求
type CreateEmployeeRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=50"`
	Position string `json:"position" binding:"required,oneof=正職 待命 兼職 副店長 店長 實習生"`
	StoreID  string `json:"store_id" binding:"required,uuid"`
}

// UpdateEmployeeRequest 更新員工請求（升遷、調店、狀態變更）
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2,max=50"`
	Position *string `json:"position" binding:"omitempty,oneof=正職 待命 兼職 副店長 店長 實習生"`
	StoreID  *string `json:"store_id" binding:"omitempty,uuid"`
	Status   *string `json:"status"   binding:"omitempty,oneof=在職 離職 留職停薪"`
}

// EmployeeListRequest 員工列表查詢參數
type EmployeeListRequest struct {
	StoreID string `form:"store_id" binding:"omitempty,uuid"`
	Status  string `form:"status"   binding:"omitempty,oneof=在職 離職 留職停薪"`
	PaginationRequest
}

// EmployeeResponse 員工資訊響應
type EmployeeResponse struct {
	EmployeeID string      `json:"employee_id"`
	Name       string      `json:"name"`
	Position   string      `json:"position"`
	Status     string      `json:"status"`
	Store      *StoreBrief `json:"store,omitempty"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

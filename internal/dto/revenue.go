package dto

// ── 營收模組 DTO ──

// IncomeLineRequest 單行收入
type IncomeLineRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=50"`
	Amount   float64 `json:"amount"   binding:"min=0"`
}

// SubmitRevenueRequest 提交營收請求
type SubmitRevenueRequest struct {
	StoreID    string              `json:"store_id"    binding:"required,uuid"`
	EmployeeID string              `json:"employee_id" binding:"required,uuid"`
	Date       string              `json:"date"        binding:"required,datetime=2006-01-02"`
	BonusType  string              `json:"bonus_type"  binding:"required,oneof=平日獎金 假日獎金"`
	Items      []IncomeLineRequest `json:"items"       binding:"required,min=1,dive"`
}

// RevenueListRequest 營收紀錄列表查詢參數
type RevenueListRequest struct {
	StoreID string `form:"store_id" binding:"omitempty,uuid"`
	Month   string `form:"month"    binding:"omitempty,len=7"`
	PaginationRequest
}

// SubmitRevenueResponse 提交營收結果（含獎金試算）
type SubmitRevenueResponse struct {
	RecordID    string `json:"record_id"`
	TotalIncome string `json:"total_income"`
	BonusAmount string `json:"bonus_amount"`
	IsQualified bool   `json:"is_qualified"`
}

// RevenueResponse 營收紀錄響應
type RevenueResponse struct {
	RecordID    string              `json:"record_id"`
	StoreID     string              `json:"store_id"`
	StoreName   string              `json:"store_name,omitempty"`
	EmployeeID  string              `json:"employee_id"`
	Date        string              `json:"date"`
	BonusType   string              `json:"bonus_type"`
	TotalIncome string              `json:"total_income"`
	BonusAmount string              `json:"bonus_amount"`
	IsQualified bool                `json:"is_qualified"`
	Items       []IncomeLineRequest `json:"items,omitempty"`
}

// MonthlySummaryResponse 分店月彙總響應
type MonthlySummaryResponse struct {
	StoreID       string `json:"store_id"`
	StoreName     string `json:"store_name"`
	Month         string `json:"month"`
	RecordCount   int    `json:"record_count"`
	QualifiedDays int    `json:"qualified_days"`
	TotalIncome   string `json:"total_income"`
	TotalBonus    string `json:"total_bonus"`
}

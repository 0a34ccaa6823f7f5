package dto

// ── 通用請求參數 ──

// IDURI 路徑參數中的 UUID
type IDURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// PaginationRequest 通用分頁參數
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 取得頁碼（含預設值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 取得每頁筆數（含預設值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 計算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// MonthQuery 月份查詢參數
type MonthQuery struct {
	Month string `form:"month" binding:"required,len=7"` // YYYY-MM
}

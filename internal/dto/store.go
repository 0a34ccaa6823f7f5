package dto

// ── 分店模組 DTO ──

// CreateStoreRequest 建立分店請求
type CreateStoreRequest struct {
	Name              string   `json:"name"               binding:"required,min=2,max=100"`
	Latitude          float64  `json:"latitude"           binding:"required,min=-90,max=90"`
	Longitude         float64  `json:"longitude"          binding:"required,min=-180,max=180"`
	RadiusMeters      float64  `json:"radius_meters"      binding:"required,gt=0"`
	OpenWindow        string   `json:"open_window"        binding:"omitempty,max=20"`
	RequiredHeadcount int      `json:"required_headcount" binding:"omitempty,min=1"`
	RestrictedDates   []string `json:"restricted_dates"   binding:"omitempty,dive,datetime=2006-01-02"`
	PublicHolidays    []string `json:"public_holidays"    binding:"omitempty,dive,datetime=2006-01-02"`
}

// UpdateStoreRequest 更新分店請求
type UpdateStoreRequest struct {
	Name              *string  `json:"name"               binding:"omitempty,min=2,max=100"`
	Latitude          *float64 `json:"latitude"           binding:"omitempty,min=-90,max=90"`
	Longitude         *float64 `json:"longitude"          binding:"omitempty,min=-180,max=180"`
	RadiusMeters      *float64 `json:"radius_meters"      binding:"omitempty,gt=0"`
	OpenWindow        *string  `json:"open_window"        binding:"omitempty,max=20"`
	RequiredHeadcount *int     `json:"required_headcount" binding:"omitempty,min=1"`
	RestrictedDates   []string `json:"restricted_dates"   binding:"omitempty,dive,datetime=2006-01-02"`
	PublicHolidays    []string `json:"public_holidays"    binding:"omitempty,dive,datetime=2006-01-02"`
	IsActive          *bool    `json:"is_active"`
}

// StoreListRequest 分店列表查詢參數
type StoreListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// ImportHolidaysRequest 自 ICS 行事曆匯入公休日請求
type ImportHolidaysRequest struct {
	ICS string `json:"ics" binding:"required"` // ICS 檔案全文
}

// ImportHolidaysResponse 公休日匯入結果
type ImportHolidaysResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"` // 已存在而略過的日期數
	Dates    []string `json:"dates"`
}

// StoreBrief 分店簡要資訊
type StoreBrief struct {
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
}

// StoreResponse 分店資訊響應
type StoreResponse struct {
	StoreID           string   `json:"store_id"`
	Name              string   `json:"name"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	RadiusMeters      float64  `json:"radius_meters"`
	OpenWindow        string   `json:"open_window"`
	RequiredHeadcount int      `json:"required_headcount"`
	RestrictedDates   []string `json:"restricted_dates,omitempty"`
	PublicHolidays    []string `json:"public_holidays,omitempty"`
	IsActive          bool     `json:"is_active"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

package dto

// ── 叫貨模組 DTO ──

// CreateOrderingItemRequest 建立品項請求
type CreateOrderingItemRequest struct {
	Product   string  `json:"product"    binding:"required,min=1,max=100"`
	Supplier  string  `json:"supplier"   binding:"required,min=1,max=100"`
	Unit      string  `json:"unit"       binding:"required,min=1,max=20"`
	UnitPrice float64 `json:"unit_price" binding:"omitempty,min=0"`
	Category  string  `json:"category"   binding:"required,min=1,max=50"`
}

// UpdateOrderingItemRequest 更新品項請求
type UpdateOrderingItemRequest struct {
	Supplier  *string  `json:"supplier"   binding:"omitempty,min=1,max=100"`
	Unit      *string  `json:"unit"       binding:"omitempty,min=1,max=20"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,min=0"`
	Category  *string  `json:"category"   binding:"omitempty,min=1,max=50"`
	IsActive  *bool    `json:"is_active"`
}

// OrderingItemListRequest 品項列表查詢參數
type OrderingItemListRequest struct {
	Category        string `form:"category" binding:"omitempty,max=50"`
	IncludeInactive bool   `form:"include_inactive"`
}

// SubmitOrderRequest 提交叫貨請求
type SubmitOrderRequest struct {
	EmployeeID string             `json:"employee_id" binding:"required,uuid"`
	Items      []OrderItemRequest `json:"items"       binding:"required,min=1,dive"`
}

// OrderItemRequest 叫貨單一品項
type OrderItemRequest struct {
	Product  string  `json:"product"  binding:"required,min=1,max=100"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit"     binding:"required,min=1,max=20"`
}

// OrderingItemResponse 品項響應
type OrderingItemResponse struct {
	ItemID    string `json:"item_id"`
	Product   string `json:"product"`
	Supplier  string `json:"supplier"`
	Unit      string `json:"unit"`
	UnitPrice string `json:"unit_price"`
	Category  string `json:"category"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AnomalyResponse 叫貨異常響應
type AnomalyResponse struct {
	Type          string  `json:"type"` // stale | frequent
	Product       string  `json:"product"`
	LastOrderedAt string  `json:"last_ordered_at"`
	LastQuantity  float64 `json:"last_quantity"`
	LastUnit      string  `json:"last_unit"`
	DaysSince     int     `json:"days_since"`
}

// SubmitOrderResponse 提交叫貨結果：異常只標記不擋單，紀錄照常落庫
type SubmitOrderResponse struct {
	RecordID  string            `json:"record_id"`
	OrderedAt string            `json:"ordered_at"`
	Anomalies []AnomalyResponse `json:"anomalies,omitempty"`
}

// OrderingRecordResponse 叫貨紀錄響應
type OrderingRecordResponse struct {
	RecordID     string             `json:"record_id"`
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name,omitempty"`
	OrderedAt    string             `json:"ordered_at"`
	Items        []OrderItemRequest `json:"items"`
}

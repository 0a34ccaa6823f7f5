package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderingItem 叫貨品項目錄 — 對應 ordering_items
// product 在啟用品項中唯一；停用透過 is_active 軟刪除
type OrderingItem struct {
	ItemID    string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"item_id"`
	Product   string          `gorm:"type:varchar(100);not null;index"               json:"product"`
	Supplier  string          `gorm:"type:varchar(100);not null"                     json:"supplier"`
	Unit      string          `gorm:"type:varchar(20);not null"                      json:"unit"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"          json:"unit_price"`
	Category  string          `gorm:"type:varchar(50);not null"                      json:"category"`
	IsActive  bool            `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

func (OrderingItem) TableName() string { return "ordering_items" }

// OrderingRecord 叫貨紀錄表 — 對應 ordering_records（只增不改）
type OrderingRecord struct {
	RecordID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	EmployeeID string    `gorm:"type:uuid;not null;index"                       json:"employee_id"`
	OrderedAt  time.Time `gorm:"not null;index"                                 json:"ordered_at"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 關聯
	Items    []OrderingRecordItem `gorm:"foreignKey:RecordID"                         json:"items,omitempty"`
	Employee *Employee            `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
}

func (OrderingRecord) TableName() string { return "ordering_records" }

// OrderingRecordItem 叫貨明細 — 對應 ordering_record_items
type OrderingRecordItem struct {
	RecordItemID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_item_id"`
	RecordID     string  `gorm:"type:uuid;not null;index"                       json:"record_id"`
	Product      string  `gorm:"type:varchar(100);not null;index"               json:"product"`
	Quantity     float64 `gorm:"not null"                                       json:"quantity"`
	Unit         string  `gorm:"type:varchar(20);not null"                      json:"unit"`
}

func (OrderingRecordItem) TableName() string { return "ordering_record_items" }

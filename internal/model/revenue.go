package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 獎金類別：平日與假日套用不同的門檻比較方式（嚴格大於 vs 含等於）
const (
	BonusTypeWeekday = "平日獎金"
	BonusTypeHoliday = "假日獎金"
)

// RevenueRecord 營收紀錄表 — 對應 revenue_records（只增不改）
// total_income / bonus_amount 為提交當下以設定計算出的衍生值，一併落庫供報表使用
// Date 為 DATE 欄位，驅動讀回當日零點的 time.Time；對外呈現用 DateKey
type RevenueRecord struct {
	RecordID    string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	StoreID     string          `gorm:"type:uuid;not null;index:idx_revenue_store_date,priority:1" json:"store_id"`
	EmployeeID  string          `gorm:"type:uuid;not null"                             json:"employee_id"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_revenue_store_date,priority:2" json:"date"`
	BonusType   string          `gorm:"type:varchar(20);not null"                      json:"bonus_type"`
	TotalIncome decimal.Decimal `gorm:"type:decimal(14,2);not null"                    json:"total_income"`
	BonusAmount decimal.Decimal `gorm:"type:decimal(14,2);not null"                    json:"bonus_amount"`
	IsQualified bool            `gorm:"not null"                                       json:"is_qualified"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 關聯
	Items []IncomeItem `gorm:"foreignKey:RecordID"                   json:"items,omitempty"`
	Store *Store       `gorm:"foreignKey:StoreID;references:StoreID" json:"store,omitempty"`
}

func (RevenueRecord) TableName() string { return "revenue_records" }

// DateKey 營收日期的 YYYY-MM-DD 表示
func (r RevenueRecord) DateKey() string { return r.Date.Format("2006-01-02") }

// IncomeItem 收入明細 — 對應 income_items
type IncomeItem struct {
	IncomeItemID string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"income_item_id"`
	RecordID     string          `gorm:"type:uuid;not null;index"                       json:"record_id"`
	Category     string          `gorm:"type:varchar(50);not null"                      json:"category"`
	Amount       decimal.Decimal `gorm:"type:decimal(14,2);not null"                    json:"amount"`
}

func (IncomeItem) TableName() string { return "income_items" }

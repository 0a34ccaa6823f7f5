package model

// OperationSettings 營運規則設定表 — 對應 operation_settings（單行強型別）
// 規則引擎唯讀；由總部透過設定 API 調整
type OperationSettings struct {
	Singleton bool `gorm:"primaryKey;default:true" json:"-"`

	// ── 排班休假配額 ──
	MaxVacationDaysPerMonth int      `gorm:"not null;default:8"  json:"max_vacation_days_per_month"`
	MaxDailyVacationTotal   int      `gorm:"not null;default:6"  json:"max_daily_vacation_total"`
	MaxWeekendVacationDays  int      `gorm:"not null;default:3"  json:"max_weekend_vacation_days"`
	MaxStoreVacationPerDay  int      `gorm:"not null;default:2"  json:"max_store_vacation_per_day"`
	MaxStoreStandbyPerDay   int      `gorm:"not null;default:1"  json:"max_store_standby_per_day"`
	MaxStorePartTimePerDay  int      `gorm:"not null;default:1"  json:"max_store_part_time_per_day"`
	WeekendDays             IntArray `gorm:"type:int[]"          json:"weekend_days"` // 0=週日 … 6=週六，預設 {5,6,0}

	// ── 排班開放視窗：前一個月的 open_day open_hour 起至 close_day close_hour 止 ──
	OpenDay              int `gorm:"not null;default:16" json:"open_day"`
	OpenHour             int `gorm:"not null;default:2"  json:"open_hour"`
	CloseDay             int `gorm:"not null;default:21" json:"close_day"`
	CloseHour            int `gorm:"not null;default:2"  json:"close_hour"`
	OperationTimeMinutes int `gorm:"not null;default:30" json:"operation_time_minutes"` // 工作階段閒置逾時

	// ── 叫貨異常門檻（天）──
	StaleDays    int `gorm:"not null;default:3" json:"stale_days"`
	FrequentDays int `gorm:"not null;default:2" json:"frequent_days"`

	// ── 獎金公式 ──
	// 平日獎金：total > threshold 才給；假日獎金：total >= threshold 即給（含等於）
	WeekdayBonusThreshold float64 `gorm:"type:decimal(14,2);not null;default:13000" json:"weekday_bonus_threshold"`
	WeekdayBonusRate      float64 `gorm:"type:decimal(6,4);not null;default:0.30"   json:"weekday_bonus_rate"`
	HolidayBonusThreshold float64 `gorm:"type:decimal(14,2);not null;default:0"     json:"holiday_bonus_threshold"`
	HolidayBonusRate      float64 `gorm:"type:decimal(6,4);not null;default:0.38"   json:"holiday_bonus_rate"`
	ServiceFees           FeeMap  `gorm:"type:jsonb"                                json:"service_fees"` // 類別→服務費率，未列出的類別費率為 0

	BaseModel
}

func (OperationSettings) TableName() string { return "operation_settings" }

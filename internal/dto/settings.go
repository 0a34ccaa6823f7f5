package dto

// ── 營運設定模組 DTO ──

// UpdateSettingsRequest 更新營運設定請求；皆為選填、只更新有帶的欄位
type UpdateSettingsRequest struct {
	MaxVacationDaysPerMonth *int  `json:"max_vacation_days_per_month" binding:"omitempty,min=0"`
	MaxDailyVacationTotal   *int  `json:"max_daily_vacation_total"    binding:"omitempty,min=0"`
	MaxWeekendVacationDays  *int  `json:"max_weekend_vacation_days"   binding:"omitempty,min=0"`
	MaxStoreVacationPerDay  *int  `json:"max_store_vacation_per_day"  binding:"omitempty,min=0"`
	MaxStoreStandbyPerDay   *int  `json:"max_store_standby_per_day"   binding:"omitempty,min=0"`
	MaxStorePartTimePerDay  *int  `json:"max_store_part_time_per_day" binding:"omitempty,min=0"`
	WeekendDays             []int `json:"weekend_days"                binding:"omitempty,dive,min=0,max=6"`

	OpenDay              *int `json:"open_day"               binding:"omitempty,min=1,max=28"`
	OpenHour             *int `json:"open_hour"              binding:"omitempty,min=0,max=23"`
	CloseDay             *int `json:"close_day"              binding:"omitempty,min=1,max=28"`
	CloseHour            *int `json:"close_hour"             binding:"omitempty,min=0,max=23"`
	OperationTimeMinutes *int `json:"operation_time_minutes" binding:"omitempty,min=1"`

	StaleDays    *int `json:"stale_days"    binding:"omitempty,min=1"`
	FrequentDays *int `json:"frequent_days" binding:"omitempty,min=1"`

	WeekdayBonusThreshold *float64           `json:"weekday_bonus_threshold" binding:"omitempty,min=0"`
	WeekdayBonusRate      *float64           `json:"weekday_bonus_rate"      binding:"omitempty,min=0,max=1"`
	HolidayBonusThreshold *float64           `json:"holiday_bonus_threshold" binding:"omitempty,min=0"`
	HolidayBonusRate      *float64           `json:"holiday_bonus_rate"      binding:"omitempty,min=0,max=1"`
	ServiceFees           map[string]float64 `json:"service_fees"            binding:"omitempty,dive,min=0,max=1"`
}

package model

// Store 分店表 — 對應 stores
// 地理圍欄：以 (latitude, longitude) 為圓心、radius_meters 為半徑的圓形範圍
type Store struct {
	StoreID           string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"store_id"`
	Name              string      `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Latitude          float64     `gorm:"not null"                                       json:"latitude"`
	Longitude         float64     `gorm:"not null"                                       json:"longitude"`
	RadiusMeters      float64     `gorm:"not null;default:100"                           json:"radius_meters"`
	OpenWindow        string      `gorm:"type:varchar(20);not null;default:'15:00-02:00'" json:"open_window"` // 營業時段，跨日以結束時間小於開始時間表示
	RequiredHeadcount int         `gorm:"not null;default:2"                             json:"required_headcount"`
	RestrictedDates   StringArray `gorm:"type:text[]"                                    json:"restricted_dates"` // 禁休日 YYYY-MM-DD
	PublicHolidays    StringArray `gorm:"type:text[]"                                    json:"public_holidays"`  // 公休日 YYYY-MM-DD，視為已配給的休假
	IsActive          bool        `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel
}

func (Store) TableName() string { return "stores" }

package model

import "time"

// AttendanceRecord 打卡紀錄表 — 對應 attendance_records（只增不改）
// resolved_store_id 為 NULL 表示打卡座標不在任何分店的地理圍欄內
type AttendanceRecord struct {
	RecordID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	EmployeeID        string    `gorm:"type:uuid;not null;index:idx_attendance_employee_time,priority:1" json:"employee_id"`
	CheckedInAt       time.Time `gorm:"not null;index:idx_attendance_employee_time,priority:2,sort:desc" json:"checked_in_at"`
	Latitude          float64   `gorm:"not null"                 json:"latitude"`
	Longitude         float64   `gorm:"not null"                 json:"longitude"`
	DeviceFingerprint string    `gorm:"type:varchar(128);not null" json:"device_fingerprint"`
	ResolvedStoreID   *string   `gorm:"type:uuid"                json:"resolved_store_id,omitempty"`
	DistanceMeters    *float64  `json:"distance_meters,omitempty"`
	DeviceAnomalous   bool      `gorm:"not null;default:false"   json:"device_anomalous"`
	CreatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// 關聯
	Employee      *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"    json:"employee,omitempty"`
	ResolvedStore *Store    `gorm:"foreignKey:ResolvedStoreID;references:StoreID"  json:"resolved_store,omitempty"`
}

func (AttendanceRecord) TableName() string { return "attendance_records" }

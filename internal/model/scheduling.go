package model

import "time"

// 排班工作階段狀態機：unopened → open → {closed | expired}
// expired 不靠背景計時器，由存取時的牆鐘比較推導（now >= expires_at 視為已過期）
const (
	SessionStatusOpen    = "open"
	SessionStatusClosed  = "closed"
	SessionStatusExpired = "expired"
)

// SchedulingSession 排班編輯工作階段 — 對應 scheduling_sessions
// 每位員工每月最多一個 open 工作階段
type SchedulingSession struct {
	SessionID  string    `gorm:"type:uuid;primaryKey"                   json:"session_id"`
	EmployeeID string    `gorm:"type:uuid;not null;index:idx_session_employee_month,priority:1" json:"employee_id"`
	Month      string    `gorm:"type:varchar(7);not null;index:idx_session_employee_month,priority:2" json:"month"` // YYYY-MM
	OpenedAt   time.Time `gorm:"not null"                               json:"opened_at"`
	ExpiresAt  time.Time `gorm:"not null"                               json:"expires_at"`
	Status     string    `gorm:"type:varchar(10);not null;default:'open'" json:"status"`
	VersionedModel
}

func (SchedulingSession) TableName() string { return "scheduling_sessions" }

// VacationAssignment 已核配的休假日 — 對應 vacation_assignments
// 配額驗證時讀取整個月份的核配快照
// Date 為 DATE 欄位，驅動讀回當日零點的 time.Time；以日為粒度比較時用 DateKey
type VacationAssignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	EmployeeID   string    `gorm:"type:uuid;not null;index"                       json:"employee_id"`
	StoreID      string    `gorm:"type:uuid;not null;index"                       json:"store_id"`
	Date         time.Time `gorm:"type:date;not null;index"                       json:"date"`
	Pool         string    `gorm:"type:varchar(10);not null;default:'正職'"         json:"pool"` // 正職 | 待命 | 兼職
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy    *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

func (VacationAssignment) TableName() string { return "vacation_assignments" }

// DateKey 核配日期的 YYYY-MM-DD 表示
func (a VacationAssignment) DateKey() string { return a.Date.Format("2006-01-02") }

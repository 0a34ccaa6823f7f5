package model

// 員工在職狀態
const (
	EmployeeStatusActive    = "在職"
	EmployeeStatusResigned  = "離職"
	EmployeeStatusSuspended = "留職停薪"
)

// 職位，同時決定排班休假的子池別
const (
	PositionFullTime  = "正職"
	PositionStandby   = "待命"
	PositionPartTime  = "兼職"
	PositionViceStore = "副店長"
	PositionManager   = "店長"
	PositionIntern    = "實習生"
)

// Employee 員工表 — 對應 employees
type Employee struct {
	EmployeeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	Name       string `gorm:"type:varchar(50);not null"                      json:"name"`
	Position   string `gorm:"type:varchar(20);not null;default:'實習生'"        json:"position"`
	StoreID    string `gorm:"type:uuid;not null;index"                       json:"store_id"`
	Status     string `gorm:"type:varchar(20);not null;default:'在職'"         json:"status"`
	VersionedModel

	// 關聯
	Store *Store `gorm:"foreignKey:StoreID;references:StoreID" json:"store,omitempty"`
}

func (Employee) TableName() string { return "employees" }

// SchedulingPool 回傳員工所屬的休假子池：待命與兼職各有獨立的每日分店上限
func (e *Employee) SchedulingPool() string {
	switch e.Position {
	case PositionStandby:
		return PositionStandby
	case PositionPartTime:
		return PositionPartTime
	default:
		return PositionFullTime
	}
}

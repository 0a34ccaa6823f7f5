package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Store          StoreRepository
	Employee       EmployeeRepository
	Attendance     AttendanceRepository
	OrderingItem   OrderingItemRepository
	OrderingRecord OrderingRecordRepository
	Revenue        RevenueRepository
	Session        SessionRepository
	Assignment     AssignmentRepository
	Settings       SettingsRepository
}

// NewRepository 建立 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Store:          NewStoreRepo(db),
		Employee:       NewEmployeeRepo(db),
		Attendance:     NewAttendanceRepo(db),
		OrderingItem:   NewOrderingItemRepo(db),
		OrderingRecord: NewOrderingRecordRepo(db),
		Revenue:        NewRevenueRepo(db),
		Session:        NewSessionRepo(db),
		Assignment:     NewAssignmentRepo(db),
		Settings:       NewSettingsRepo(db),
	}
}

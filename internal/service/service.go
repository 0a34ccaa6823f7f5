package service

import (
	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
	"github.com/chatscai10/employee-management-system-sub002/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Store      StoreService
	Employee   EmployeeService
	Attendance AttendanceService
	Ordering   OrderingService
	Revenue    RevenueService
	Scheduling SchedulingService
	Settings   SettingsService
	Export     ExportService
}

// NewService 建立 Service 聚合
// rdb 允許為 nil：排班模組此時降級為純資料庫檢查
func NewService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Store:      NewStoreService(repo, logger),
		Employee:   NewEmployeeService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Ordering:   NewOrderingService(repo, logger),
		Revenue:    NewRevenueService(repo, logger),
		Scheduling: NewSchedulingService(repo, rdb, logger),
		Settings:   NewSettingsService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}

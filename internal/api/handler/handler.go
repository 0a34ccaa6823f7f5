package handler

import "github.com/chatscai10/employee-management-system-sub002/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Store      *StoreHandler
	Employee   *EmployeeHandler
	Attendance *AttendanceHandler
	Ordering   *OrderingHandler
	Revenue    *RevenueHandler
	Scheduling *SchedulingHandler
	Settings   *SettingsHandler
	Export     *ExportHandler
}

// NewHandler 建立 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Store:      NewStoreHandler(svc.Store),
		Employee:   NewEmployeeHandler(svc.Employee),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Ordering:   NewOrderingHandler(svc.Ordering),
		Revenue:    NewRevenueHandler(svc.Revenue),
		Scheduling: NewSchedulingHandler(svc.Scheduling),
		Settings:   NewSettingsHandler(svc.Settings),
		Export:     NewExportHandler(svc.Export),
	}
}

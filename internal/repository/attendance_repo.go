package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// AttendanceRepository 打卡紀錄資料存取介面（只增不改）
type AttendanceRepository interface {
	Create(ctx context.Context, record *model.AttendanceRecord) error
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]model.AttendanceRecord, error)
	List(ctx context.Context, employeeID string, offset, limit int) ([]model.AttendanceRecord, int64, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListRecentByEmployee 該員工最近的打卡紀錄、由新到舊；裝置漂移檢查的基準資料
func (r *attendanceRepo) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("checked_in_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *attendanceRepo) List(ctx context.Context, employeeID string, offset, limit int) ([]model.AttendanceRecord, int64, error) {
	var records []model.AttendanceRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&model.AttendanceRecord{})
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Employee").Preload("ResolvedStore").
		Offset(offset).Limit(limit).
		Order("checked_in_at DESC").
		Find(&records).Error
	return records, total, err
}

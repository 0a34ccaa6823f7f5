package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
)

// EmployeeRepository 員工資料存取介面
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context, storeID, status string, offset, limit int) ([]model.Employee, int64, error)
	Update(ctx context.Context, employee *model.Employee) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Store").
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) List(ctx context.Context, storeID, status string, offset, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Employee{})
	if storeID != "" {
		db = db.Where("store_id = ?", storeID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Store").
		Offset(offset).Limit(limit).
		Order("created_at ASC").
		Find(&employees).Error
	return employees, total, err
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	oldVersion := employee.Version
	result := r.db.WithContext(ctx).
		Model(employee).
		Where("employee_id = ? AND version = ?", employee.EmployeeID, oldVersion).
		Updates(map[string]interface{}{
			"name":       employee.Name,
			"position":   employee.Position,
			"store_id":   employee.StoreID,
			"status":     employee.Status,
			"updated_by": employee.UpdatedBy,
			"version":    oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	employee.Version = oldVersion + 1
	return nil
}

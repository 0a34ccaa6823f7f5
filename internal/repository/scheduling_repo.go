package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
)

// SessionRepository 排班工作階段資料存取介面
type SessionRepository interface {
	Create(ctx context.Context, session *model.SchedulingSession) error
	GetByID(ctx context.Context, id string) (*model.SchedulingSession, error)
	GetOpenByEmployeeMonth(ctx context.Context, employeeID, month string) (*model.SchedulingSession, error)
	Update(ctx context.Context, session *model.SchedulingSession) error
}

// AssignmentRepository 休假核配資料存取介面
type AssignmentRepository interface {
	BatchCreate(ctx context.Context, assignments []model.VacationAssignment) error
	ListByMonth(ctx context.Context, month string) ([]model.VacationAssignment, error)
	ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]model.VacationAssignment, error)
	ListByStoreMonth(ctx context.Context, storeID, month string) ([]model.VacationAssignment, error)
}

// ── Session Repository 實作 ──

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.SchedulingSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.SchedulingSession, error) {
	var session model.SchedulingSession
	err := r.db.WithContext(ctx).
		Where("session_id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) GetOpenByEmployeeMonth(ctx context.Context, employeeID, month string) (*model.SchedulingSession, error) {
	var session model.SchedulingSession
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND month = ? AND status = ?", employeeID, month, model.SessionStatusOpen).
		Order("opened_at DESC").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *model.SchedulingSession) error {
	oldVersion := session.Version
	result := r.db.WithContext(ctx).
		Model(session).
		Where("session_id = ? AND version = ?", session.SessionID, oldVersion).
		Updates(map[string]interface{}{
			"expires_at": session.ExpiresAt,
			"status":     session.Status,
			"updated_by": session.UpdatedBy,
			"version":    oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	session.Version = oldVersion + 1
	return nil
}

// ── Assignment Repository 實作 ──

type assignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) BatchCreate(ctx context.Context, assignments []model.VacationAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}

// ListByMonth 目標月份的全體核配快照；配額驗證以此為基準
func (r *assignmentRepo) ListByMonth(ctx context.Context, month string) ([]model.VacationAssignment, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	var assignments []model.VacationAssignment
	err = r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]model.VacationAssignment, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	var assignments []model.VacationAssignment
	err = r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, from, to).
		Order("date ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListByStoreMonth(ctx context.Context, storeID, month string) ([]model.VacationAssignment, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	var assignments []model.VacationAssignment
	err = r.db.WithContext(ctx).
		Where("store_id = ? AND date >= ? AND date < ?", storeID, from, to).
		Order("date ASC").
		Find(&assignments).Error
	return assignments, err
}

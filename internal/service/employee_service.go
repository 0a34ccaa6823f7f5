package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
)

// ── 員工模組業務錯誤 ──

var (
	ErrEmployeeNotFound = errors.New("員工不存在")
	ErrEmployeeInactive = errors.New("員工非在職狀態")
)

// EmployeeService 員工業務介面
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 建立 EmployeeService 實例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error) {
	if _, err := s.repo.Store.GetByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		s.logger.Error("查詢分店失敗", zap.String("store_id", req.StoreID), zap.Error(err))
		return nil, err
	}

	employee := &model.Employee{
		Name:     req.Name,
		Position: req.Position,
		StoreID:  req.StoreID,
		Status:   model.EmployeeStatusActive,
	}
	employee.CreatedBy = &callerID
	employee.UpdatedBy = &callerID

	if err := s.repo.Employee.Create(ctx, employee); err != nil {
		s.logger.Error("建立員工失敗", zap.Error(err))
		return nil, err
	}

	return s.toEmployeeResponse(employee), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *employeeService) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查詢員工失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toEmployeeResponse(employee), nil
}

// ────────────────────── List ──────────────────────

func (s *employeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	employees, total, err := s.repo.Employee.List(ctx, req.StoreID, req.Status, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出員工失敗", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, *s.toEmployeeResponse(&employees[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查詢員工失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.StoreID != nil {
		if _, err := s.repo.Store.GetByID(ctx, *req.StoreID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStoreNotFound
			}
			return nil, err
		}
		employee.StoreID = *req.StoreID
		employee.Store = nil
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}

	employee.UpdatedBy = &callerID

	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		s.logger.Error("更新員工失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toEmployeeResponse(employee), nil
}

// ── 內部輔助方法 ──

func (s *employeeService) toEmployeeResponse(employee *model.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		EmployeeID: employee.EmployeeID,
		Name:       employee.Name,
		Position:   employee.Position,
		Status:     employee.Status,
		CreatedAt:  employee.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  employee.UpdatedAt.Format(time.RFC3339),
	}
	if employee.Store != nil {
		resp.Store = &dto.StoreBrief{StoreID: employee.Store.StoreID, Name: employee.Store.Name}
	}
	return resp
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
	"github.com/chatscai10/employee-management-system-sub002/internal/rules"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
)

// RevenueService 營收業務介面
type RevenueService interface {
	Submit(ctx context.Context, req *dto.SubmitRevenueRequest) (*dto.SubmitRevenueResponse, error)
	List(ctx context.Context, req *dto.RevenueListRequest) ([]dto.RevenueResponse, int64, error)
	MonthlySummary(ctx context.Context, storeID, month string) (*dto.MonthlySummaryResponse, error)
}

type revenueService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRevenueService 建立 RevenueService 實例
func NewRevenueService(repo *repository.Repository, logger *zap.Logger) RevenueService {
	return &revenueService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// Submit — 提交營收（含獎金試算）
// ═══════════════════════════════════════════════════════════
//
// 獎金依提交當下的設定計算後一併落庫；事後調整費率不回溯已提交的紀錄。

func (s *revenueService) Submit(ctx context.Context, req *dto.SubmitRevenueRequest) (*dto.SubmitRevenueResponse, error) {
	store, err := s.repo.Store.GetByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		s.logger.Error("查詢分店失敗", zap.String("id", req.StoreID), zap.Error(err))
		return nil, err
	}
	if !store.IsActive {
		return nil, ErrStoreInactive
	}
	employee, err := s.repo.Employee.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查詢員工失敗", zap.String("id", req.EmployeeID), zap.Error(err))
		return nil, err
	}
	if employee.Status != model.EmployeeStatusActive {
		return nil, ErrEmployeeInactive
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("查詢營運設定失敗", zap.Error(err))
		return nil, err
	}

	lines := make([]rules.IncomeLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, rules.IncomeLine{
			Category: it.Category,
			Amount:   decimal.NewFromFloat(it.Amount),
		})
	}

	bonus, err := rules.CalculateBonus(lines, req.BonusType, settings)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, pkgerrors.NewValidation("date", "日期格式必須為 YYYY-MM-DD")
	}

	record := &model.RevenueRecord{
		RecordID:    uuid.NewString(),
		StoreID:     store.StoreID,
		EmployeeID:  employee.EmployeeID,
		Date:        day,
		BonusType:   req.BonusType,
		TotalIncome: bonus.TotalIncome,
		BonusAmount: bonus.BonusAmount,
		IsQualified: bonus.IsQualified,
	}
	for _, it := range req.Items {
		record.Items = append(record.Items, model.IncomeItem{
			RecordID: record.RecordID,
			Category: it.Category,
			Amount:   decimal.NewFromFloat(it.Amount),
		})
	}

	if err := s.repo.Revenue.Create(ctx, record); err != nil {
		s.logger.Error("寫入營收紀錄失敗", zap.Error(err))
		return nil, err
	}

	return &dto.SubmitRevenueResponse{
		RecordID:    record.RecordID,
		TotalIncome: bonus.TotalIncome.StringFixed(2),
		BonusAmount: bonus.BonusAmount.StringFixed(2),
		IsQualified: bonus.IsQualified,
	}, nil
}

// ────────────────────── List ──────────────────────

func (s *revenueService) List(ctx context.Context, req *dto.RevenueListRequest) ([]dto.RevenueResponse, int64, error) {
	records, total, err := s.repo.Revenue.List(ctx, req.StoreID, req.Month, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出營收紀錄失敗", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.RevenueResponse, 0, len(records))
	for i := range records {
		result = append(result, *s.toRevenueResponse(&records[i]))
	}
	return result, total, nil
}

// ────────────────────── MonthlySummary ──────────────────────

func (s *revenueService) MonthlySummary(ctx context.Context, storeID, month string) (*dto.MonthlySummaryResponse, error) {
	store, err := s.repo.Store.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		s.logger.Error("查詢分店失敗", zap.String("id", storeID), zap.Error(err))
		return nil, err
	}

	records, err := s.repo.Revenue.ListByStoreMonth(ctx, storeID, month)
	if err != nil {
		s.logger.Error("查詢月營收失敗", zap.String("store_id", storeID), zap.String("month", month), zap.Error(err))
		return nil, err
	}

	totalIncome, totalBonus := decimal.Zero, decimal.Zero
	qualifiedDays := 0
	for i := range records {
		totalIncome = totalIncome.Add(records[i].TotalIncome)
		totalBonus = totalBonus.Add(records[i].BonusAmount)
		if records[i].IsQualified {
			qualifiedDays++
		}
	}

	return &dto.MonthlySummaryResponse{
		StoreID:       store.StoreID,
		StoreName:     store.Name,
		Month:         month,
		RecordCount:   len(records),
		QualifiedDays: qualifiedDays,
		TotalIncome:   totalIncome.StringFixed(2),
		TotalBonus:    totalBonus.StringFixed(2),
	}, nil
}

// ── 內部輔助方法 ──

func (s *revenueService) toRevenueResponse(r *model.RevenueRecord) *dto.RevenueResponse {
	resp := &dto.RevenueResponse{
		RecordID:    r.RecordID,
		StoreID:     r.StoreID,
		EmployeeID:  r.EmployeeID,
		Date:        r.DateKey(),
		BonusType:   r.BonusType,
		TotalIncome: r.TotalIncome.StringFixed(2),
		BonusAmount: r.BonusAmount.StringFixed(2),
		IsQualified: r.IsQualified,
	}
	if r.Store != nil {
		resp.StoreName = r.Store.Name
	}
	for _, it := range r.Items {
		amount, _ := it.Amount.Float64()
		resp.Items = append(resp.Items, dto.IncomeLineRequest{Category: it.Category, Amount: amount})
	}
	return resp
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
	"github.com/chatscai10/employee-management-system-sub002/internal/rules"
)

// ── 叫貨模組業務錯誤 ──

var (
	ErrItemNotFound   = errors.New("品項不存在")
	ErrItemExists     = errors.New("品項已存在")
	ErrUnknownProduct = errors.New("叫貨品項不在目錄中")
)

// OrderingService 叫貨業務介面
type OrderingService interface {
	CreateItem(ctx context.Context, req *dto.CreateOrderingItemRequest, callerID string) (*dto.OrderingItemResponse, error)
	GetItem(ctx context.Context, id string) (*dto.OrderingItemResponse, error)
	ListItems(ctx context.Context, req *dto.OrderingItemListRequest) ([]dto.OrderingItemResponse, error)
	UpdateItem(ctx context.Context, id string, req *dto.UpdateOrderingItemRequest, callerID string) (*dto.OrderingItemResponse, error)
	SubmitOrder(ctx context.Context, req *dto.SubmitOrderRequest) (*dto.SubmitOrderResponse, error)
	ListRecords(ctx context.Context, employeeID string, page *dto.PaginationRequest) ([]dto.OrderingRecordResponse, int64, error)
}

type orderingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOrderingService 建立 OrderingService 實例
func NewOrderingService(repo *repository.Repository, logger *zap.Logger) OrderingService {
	return &orderingService{repo: repo, logger: logger}
}

// ────────────────────── CreateItem ──────────────────────

func (s *orderingService) CreateItem(ctx context.Context, req *dto.CreateOrderingItemRequest, callerID string) (*dto.OrderingItemResponse, error) {
	if _, err := s.repo.OrderingItem.GetActiveByProduct(ctx, req.Product); err == nil {
		return nil, ErrItemExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查詢品項失敗", zap.String("product", req.Product), zap.Error(err))
		return nil, err
	}

	item := &model.OrderingItem{
		Product:   req.Product,
		Supplier:  req.Supplier,
		Unit:      req.Unit,
		UnitPrice: decimal.NewFromFloat(req.UnitPrice),
		Category:  req.Category,
		IsActive:  true,
	}
	item.CreatedBy = &callerID
	item.UpdatedBy = &callerID

	if err := s.repo.OrderingItem.Create(ctx, item); err != nil {
		s.logger.Error("建立品項失敗", zap.Error(err))
		return nil, err
	}

	return s.toItemResponse(item), nil
}

// ────────────────────── GetItem ──────────────────────

func (s *orderingService) GetItem(ctx context.Context, id string) (*dto.OrderingItemResponse, error) {
	item, err := s.repo.OrderingItem.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("查詢品項失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toItemResponse(item), nil
}

// ────────────────────── ListItems ──────────────────────

func (s *orderingService) ListItems(ctx context.Context, req *dto.OrderingItemListRequest) ([]dto.OrderingItemResponse, error) {
	items, err := s.repo.OrderingItem.List(ctx, req.Category, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出品項失敗", zap.Error(err))
		return nil, err
	}

	result := make([]dto.OrderingItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *s.toItemResponse(&items[i]))
	}
	return result, nil
}

// ────────────────────── UpdateItem ──────────────────────

func (s *orderingService) UpdateItem(ctx context.Context, id string, req *dto.UpdateOrderingItemRequest, callerID string) (*dto.OrderingItemResponse, error) {
	item, err := s.repo.OrderingItem.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("查詢品項失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.UnitPrice != nil {
		item.UnitPrice = decimal.NewFromFloat(*req.UnitPrice)
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	item.UpdatedBy = &callerID

	if err := s.repo.OrderingItem.Update(ctx, item); err != nil {
		s.logger.Error("更新品項失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toItemResponse(item), nil
}

// ═══════════════════════════════════════════════════════════
// SubmitOrder — 提交叫貨
// ═══════════════════════════════════════════════════════════
//
// 流程：
//  1. 員工必須在職
//  2. 每個品項都必須在啟用目錄中，否則整筆硬拒絕
//  3. 異常偵測（久未叫貨掃全目錄、過於頻繁只看本次品項）
//  4. 異常只標記不擋單，紀錄照常落庫

func (s *orderingService) SubmitOrder(ctx context.Context, req *dto.SubmitOrderRequest) (*dto.SubmitOrderResponse, error) {
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

	// 目錄校驗：引用不存在品項是資料不一致，整筆拒絕
	submitted := make([]rules.SubmittedItem, 0, len(req.Items))
	for _, it := range req.Items {
		if _, err := s.repo.OrderingItem.GetActiveByProduct(ctx, it.Product); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, it.Product)
			}
			s.logger.Error("查詢品項失敗", zap.String("product", it.Product), zap.Error(err))
			return nil, err
		}
		submitted = append(submitted, rules.SubmittedItem{
			Product:  it.Product,
			Quantity: it.Quantity,
			Unit:     it.Unit,
		})
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("查詢營運設定失敗", zap.Error(err))
		return nil, err
	}
	catalog, err := s.repo.OrderingItem.List(ctx, "", false)
	if err != nil {
		s.logger.Error("查詢品項目錄失敗", zap.Error(err))
		return nil, err
	}
	records, err := s.repo.OrderingRecord.ListAll(ctx)
	if err != nil {
		s.logger.Error("查詢叫貨歷史失敗", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	anomalies := rules.DetectOrderingAnomalies(
		submitted, catalog, records,
		settings.StaleDays, settings.FrequentDays, now)

	record := &model.OrderingRecord{
		RecordID:   uuid.NewString(),
		EmployeeID: employee.EmployeeID,
		OrderedAt:  now,
	}
	for _, it := range submitted {
		record.Items = append(record.Items, model.OrderingRecordItem{
			RecordID: record.RecordID,
			Product:  it.Product,
			Quantity: it.Quantity,
			Unit:     it.Unit,
		})
	}

	if err := s.repo.OrderingRecord.Create(ctx, record); err != nil {
		s.logger.Error("寫入叫貨紀錄失敗", zap.Error(err))
		return nil, err
	}

	if len(anomalies) > 0 {
		s.logger.Warn("叫貨異常",
			zap.String("employee_id", employee.EmployeeID),
			zap.Int("count", len(anomalies)))
	}

	resp := &dto.SubmitOrderResponse{
		RecordID:  record.RecordID,
		OrderedAt: now.Format(time.RFC3339),
	}
	for _, a := range anomalies {
		resp.Anomalies = append(resp.Anomalies, dto.AnomalyResponse{
			Type:          a.Type,
			Product:       a.Product,
			LastOrderedAt: a.LastOrderedAt.Format(time.RFC3339),
			LastQuantity:  a.LastQuantity,
			LastUnit:      a.LastUnit,
			DaysSince:     a.DaysSince,
		})
	}
	return resp, nil
}

// ────────────────────── ListRecords ──────────────────────

func (s *orderingService) ListRecords(ctx context.Context, employeeID string, page *dto.PaginationRequest) ([]dto.OrderingRecordResponse, int64, error) {
	records, total, err := s.repo.OrderingRecord.List(ctx, employeeID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出叫貨紀錄失敗", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.OrderingRecordResponse, 0, len(records))
	for i := range records {
		r := &records[i]
		resp := dto.OrderingRecordResponse{
			RecordID:   r.RecordID,
			EmployeeID: r.EmployeeID,
			OrderedAt:  r.OrderedAt.Format(time.RFC3339),
		}
		if r.Employee != nil {
			resp.EmployeeName = r.Employee.Name
		}
		for _, it := range r.Items {
			resp.Items = append(resp.Items, dto.OrderItemRequest{
				Product:  it.Product,
				Quantity: it.Quantity,
				Unit:     it.Unit,
			})
		}
		result = append(result, resp)
	}
	return result, total, nil
}

// ── 內部輔助方法 ──

func (s *orderingService) toItemResponse(item *model.OrderingItem) *dto.OrderingItemResponse {
	return &dto.OrderingItemResponse{
		ItemID:    item.ItemID,
		Product:   item.Product,
		Supplier:  item.Supplier,
		Unit:      item.Unit,
		UnitPrice: item.UnitPrice.StringFixed(2),
		Category:  item.Category,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}
}

package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
)

// ── 分店模組業務錯誤 ──

var (
	ErrStoreNotFound = errors.New("分店不存在")
	ErrStoreExists   = errors.New("分店名稱已存在")
	ErrStoreInactive = errors.New("分店已停用")
)

// StoreService 分店業務介面
type StoreService interface {
	Create(ctx context.Context, req *dto.CreateStoreRequest, callerID string) (*dto.StoreResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StoreResponse, error)
	List(ctx context.Context, req *dto.StoreListRequest) ([]dto.StoreResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStoreRequest, callerID string) (*dto.StoreResponse, error)
	ImportHolidays(ctx context.Context, id string, req *dto.ImportHolidaysRequest, callerID string) (*dto.ImportHolidaysResponse, error)
}

type storeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStoreService 建立 StoreService 實例
func NewStoreService(repo *repository.Repository, logger *zap.Logger) StoreService {
	return &storeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *storeService) Create(ctx context.Context, req *dto.CreateStoreRequest, callerID string) (*dto.StoreResponse, error) {
	if _, err := s.repo.Store.GetByName(ctx, req.Name); err == nil {
		return nil, ErrStoreExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查詢分店失敗", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	store := &model.Store{
		Name:              req.Name,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		RadiusMeters:      req.RadiusMeters,
		OpenWindow:        req.OpenWindow,
		RequiredHeadcount: req.RequiredHeadcount,
		RestrictedDates:   model.StringArray(req.RestrictedDates),
		PublicHolidays:    model.StringArray(req.PublicHolidays),
		IsActive:          true,
	}
	if store.OpenWindow == "" {
		store.OpenWindow = "15:00-02:00"
	}
	if store.RequiredHeadcount == 0 {
		store.RequiredHeadcount = 2
	}
	store.CreatedBy = &callerID
	store.UpdatedBy = &callerID

	if err := s.repo.Store.Create(ctx, store); err != nil {
		s.logger.Error("建立分店失敗", zap.Error(err))
		return nil, err
	}

	return s.toStoreResponse(store), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *storeService) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := s.getStore(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toStoreResponse(store), nil
}

// ────────────────────── List ──────────────────────

func (s *storeService) List(ctx context.Context, req *dto.StoreListRequest) ([]dto.StoreResponse, error) {
	stores, err := s.repo.Store.List(ctx, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出分店失敗", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		result = append(result, *s.toStoreResponse(&stores[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *storeService) Update(ctx context.Context, id string, req *dto.UpdateStoreRequest, callerID string) (*dto.StoreResponse, error) {
	store, err := s.getStore(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Latitude != nil {
		store.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		store.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		store.RadiusMeters = *req.RadiusMeters
	}
	if req.OpenWindow != nil {
		store.OpenWindow = *req.OpenWindow
	}
	if req.RequiredHeadcount != nil {
		store.RequiredHeadcount = *req.RequiredHeadcount
	}
	if req.RestrictedDates != nil {
		store.RestrictedDates = model.StringArray(req.RestrictedDates)
	}
	if req.PublicHolidays != nil {
		store.PublicHolidays = model.StringArray(req.PublicHolidays)
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	store.UpdatedBy = &callerID

	if err := s.repo.Store.Update(ctx, store); err != nil {
		s.logger.Error("更新分店失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toStoreResponse(store), nil
}

// ────────────────────── ImportHolidays ──────────────────────

// ImportHolidays 解析 ICS 行事曆內容，將全日事件日期併入分店公休日
// 已存在的日期略過；結果按日期排序後整批覆寫
func (s *storeService) ImportHolidays(ctx context.Context, id string, req *dto.ImportHolidaysRequest, callerID string) (*dto.ImportHolidaysResponse, error) {
	store, err := s.getStore(ctx, id)
	if err != nil {
		return nil, err
	}

	dates, err := parseHolidayICS(strings.NewReader(req.ICS))
	if err != nil {
		s.logger.Warn("ICS 解析失敗", zap.String("store_id", id), zap.Error(err))
		return nil, err
	}

	imported, skipped := 0, 0
	merged := append(model.StringArray{}, store.PublicHolidays...)
	for _, d := range dates {
		if merged.Contains(d) {
			skipped++
			continue
		}
		merged = append(merged, d)
		imported++
	}
	sort.Strings(merged)
	store.PublicHolidays = merged
	store.UpdatedBy = &callerID

	if err := s.repo.Store.Update(ctx, store); err != nil {
		s.logger.Error("匯入公休日失敗", zap.String("store_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("公休日匯入完成",
		zap.String("store_id", id),
		zap.Int("imported", imported),
		zap.Int("skipped", skipped))

	return &dto.ImportHolidaysResponse{
		Imported: imported,
		Skipped:  skipped,
		Dates:    dates,
	}, nil
}

// ── 內部輔助方法 ──

func (s *storeService) getStore(ctx context.Context, id string) (*model.Store, error) {
	store, err := s.repo.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		s.logger.Error("查詢分店失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return store, nil
}

func (s *storeService) toStoreResponse(store *model.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		StoreID:           store.StoreID,
		Name:              store.Name,
		Latitude:          store.Latitude,
		Longitude:         store.Longitude,
		RadiusMeters:      store.RadiusMeters,
		OpenWindow:        store.OpenWindow,
		RequiredHeadcount: store.RequiredHeadcount,
		RestrictedDates:   store.RestrictedDates,
		PublicHolidays:    store.PublicHolidays,
		IsActive:          store.IsActive,
		CreatedAt:         store.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         store.UpdatedAt.Format(time.RFC3339),
	}
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
)

// StoreRepository 分店資料存取介面
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id string) (*model.Store, error)
	GetByName(ctx context.Context, name string) (*model.Store, error)
	List(ctx context.Context, includeInactive bool) ([]model.Store, error)
	ListActive(ctx context.Context) ([]model.Store, error)
	Update(ctx context.Context, store *model.Store) error
}

type storeRepo struct {
	db *gorm.DB
}

func NewStoreRepo(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepo) GetByID(ctx context.Context, id string) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).
		Where("store_id = ?", id).
		First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) GetByName(ctx context.Context, name string) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) List(ctx context.Context, includeInactive bool) ([]model.Store, error) {
	var stores []model.Store
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("created_at ASC").Find(&stores).Error
	return stores, err
}

// ListActive 地理圍欄解析的分店快照；排序固定，圍欄重疊時結果才可重現
func (r *storeRepo) ListActive(ctx context.Context) ([]model.Store, error) {
	return r.List(ctx, false)
}

func (r *storeRepo) Update(ctx context.Context, store *model.Store) error {
	oldVersion := store.Version
	result := r.db.WithContext(ctx).
		Model(store).
		Where("store_id = ? AND version = ?", store.StoreID, oldVersion).
		Updates(map[string]interface{}{
			"name":               store.Name,
			"latitude":           store.Latitude,
			"longitude":          store.Longitude,
			"radius_meters":      store.RadiusMeters,
			"open_window":        store.OpenWindow,
			"required_headcount": store.RequiredHeadcount,
			"restricted_dates":   store.RestrictedDates,
			"public_holidays":    store.PublicHolidays,
			"is_active":          store.IsActive,
			"updated_by":         store.UpdatedBy,
			"version":            oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	store.Version = oldVersion + 1
	return nil
}

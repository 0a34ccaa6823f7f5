package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// OrderingItemRepository 叫貨品項目錄資料存取介面
type OrderingItemRepository interface {
	Create(ctx context.Context, item *model.OrderingItem) error
	GetByID(ctx context.Context, id string) (*model.OrderingItem, error)
	GetActiveByProduct(ctx context.Context, product string) (*model.OrderingItem, error)
	List(ctx context.Context, category string, includeInactive bool) ([]model.OrderingItem, error)
	Update(ctx context.Context, item *model.OrderingItem) error
}

// OrderingRecordRepository 叫貨紀錄資料存取介面（只增不改）
type OrderingRecordRepository interface {
	Create(ctx context.Context, record *model.OrderingRecord) error
	ListAll(ctx context.Context) ([]model.OrderingRecord, error)
	List(ctx context.Context, employeeID string, offset, limit int) ([]model.OrderingRecord, int64, error)
}

// ── OrderingItem Repository 實作 ──

type orderingItemRepo struct {
	db *gorm.DB
}

func NewOrderingItemRepo(db *gorm.DB) OrderingItemRepository {
	return &orderingItemRepo{db: db}
}

func (r *orderingItemRepo) Create(ctx context.Context, item *model.OrderingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderingItemRepo) GetByID(ctx context.Context, id string) (*model.OrderingItem, error) {
	var item model.OrderingItem
	err := r.db.WithContext(ctx).
		Where("item_id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderingItemRepo) GetActiveByProduct(ctx context.Context, product string) (*model.OrderingItem, error) {
	var item model.OrderingItem
	err := r.db.WithContext(ctx).
		Where("product = ? AND is_active = ?", product, true).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderingItemRepo) List(ctx context.Context, category string, includeInactive bool) ([]model.OrderingItem, error) {
	var items []model.OrderingItem
	db := r.db.WithContext(ctx)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("category ASC, product ASC").Find(&items).Error
	return items, err
}

func (r *orderingItemRepo) Update(ctx context.Context, item *model.OrderingItem) error {
	result := r.db.WithContext(ctx).
		Model(item).
		Where("item_id = ?", item.ItemID).
		Updates(map[string]interface{}{
			"supplier":   item.Supplier,
			"unit":       item.Unit,
			"unit_price": item.UnitPrice,
			"category":   item.Category,
			"is_active":  item.IsActive,
			"updated_by": item.UpdatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ── OrderingRecord Repository 實作 ──

type orderingRecordRepo struct {
	db *gorm.DB
}

func NewOrderingRecordRepo(db *gorm.DB) OrderingRecordRepository {
	return &orderingRecordRepo{db: db}
}

func (r *orderingRecordRepo) Create(ctx context.Context, record *model.OrderingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListAll 全體員工的完整叫貨歷史；異常偵測以此為基準
func (r *orderingRecordRepo) ListAll(ctx context.Context) ([]model.OrderingRecord, error) {
	var records []model.OrderingRecord
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("ordered_at DESC").
		Find(&records).Error
	return records, err
}

func (r *orderingRecordRepo) List(ctx context.Context, employeeID string, offset, limit int) ([]model.OrderingRecord, int64, error) {
	var records []model.OrderingRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&model.OrderingRecord{})
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Items").Preload("Employee").
		Offset(offset).Limit(limit).
		Order("ordered_at DESC").
		Find(&records).Error
	return records, total, err
}

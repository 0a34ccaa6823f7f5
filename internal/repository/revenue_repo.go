package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// RevenueRepository 營收紀錄資料存取介面（只增不改）
type RevenueRepository interface {
	Create(ctx context.Context, record *model.RevenueRecord) error
	GetByID(ctx context.Context, id string) (*model.RevenueRecord, error)
	ListByStoreMonth(ctx context.Context, storeID, month string) ([]model.RevenueRecord, error)
	List(ctx context.Context, storeID, month string, offset, limit int) ([]model.RevenueRecord, int64, error)
}

type revenueRepo struct {
	db *gorm.DB
}

func NewRevenueRepo(db *gorm.DB) RevenueRepository {
	return &revenueRepo{db: db}
}

// monthRange 月份字串轉 [當月首日, 次月首日) 半開區間
func monthRange(month string) (string, string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", err
	}
	return t.Format("2006-01-02"), t.AddDate(0, 1, 0).Format("2006-01-02"), nil
}

func (r *revenueRepo) Create(ctx context.Context, record *model.RevenueRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *revenueRepo) GetByID(ctx context.Context, id string) (*model.RevenueRecord, error) {
	var record model.RevenueRecord
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Store").
		Where("record_id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *revenueRepo) ListByStoreMonth(ctx context.Context, storeID, month string) ([]model.RevenueRecord, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	var records []model.RevenueRecord
	err = r.db.WithContext(ctx).
		Preload("Items").
		Where("store_id = ? AND date >= ? AND date < ?", storeID, from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *revenueRepo) List(ctx context.Context, storeID, month string, offset, limit int) ([]model.RevenueRecord, int64, error) {
	var records []model.RevenueRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&model.RevenueRecord{})
	if storeID != "" {
		db = db.Where("store_id = ?", storeID)
	}
	if month != "" {
		from, to, err := monthRange(month)
		if err != nil {
			return nil, 0, err
		}
		db = db.Where("date >= ? AND date < ?", from, to)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Items").Preload("Store").
		Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").
		Find(&records).Error
	return records, total, err
}

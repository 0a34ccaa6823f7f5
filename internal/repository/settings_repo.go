package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// SettingsRepository 營運設定資料存取介面（單行表）
type SettingsRepository interface {
	Get(ctx context.Context) (*model.OperationSettings, error)
	Save(ctx context.Context, settings *model.OperationSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context) (*model.OperationSettings, error) {
	var settings model.OperationSettings
	err := r.db.WithContext(ctx).
		Where("singleton = ?", true).
		First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Save(ctx context.Context, settings *model.OperationSettings) error {
	settings.Singleton = true
	return r.db.WithContext(ctx).Save(settings).Error
}

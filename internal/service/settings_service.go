package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
)

// ── 營運設定模組業務錯誤 ──

var (
	ErrSettingsNotFound = errors.New("營運設定不存在")
)

// SettingsService 營運設定業務介面
type SettingsService interface {
	Get(ctx context.Context) (*model.OperationSettings, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest, callerID string) (*model.OperationSettings, error)
}

type settingsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingsService 建立 SettingsService 實例
func NewSettingsService(repo *repository.Repository, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

func (s *settingsService) Get(ctx context.Context) (*model.OperationSettings, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("查詢營運設定失敗", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest, callerID string) (*model.OperationSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.MaxVacationDaysPerMonth != nil {
		settings.MaxVacationDaysPerMonth = *req.MaxVacationDaysPerMonth
	}
	if req.MaxDailyVacationTotal != nil {
		settings.MaxDailyVacationTotal = *req.MaxDailyVacationTotal
	}
	if req.MaxWeekendVacationDays != nil {
		settings.MaxWeekendVacationDays = *req.MaxWeekendVacationDays
	}
	if req.MaxStoreVacationPerDay != nil {
		settings.MaxStoreVacationPerDay = *req.MaxStoreVacationPerDay
	}
	if req.MaxStoreStandbyPerDay != nil {
		settings.MaxStoreStandbyPerDay = *req.MaxStoreStandbyPerDay
	}
	if req.MaxStorePartTimePerDay != nil {
		settings.MaxStorePartTimePerDay = *req.MaxStorePartTimePerDay
	}
	if req.WeekendDays != nil {
		settings.WeekendDays = model.IntArray(req.WeekendDays)
	}
	if req.OpenDay != nil {
		settings.OpenDay = *req.OpenDay
	}
	if req.OpenHour != nil {
		settings.OpenHour = *req.OpenHour
	}
	if req.CloseDay != nil {
		settings.CloseDay = *req.CloseDay
	}
	if req.CloseHour != nil {
		settings.CloseHour = *req.CloseHour
	}
	if req.OperationTimeMinutes != nil {
		settings.OperationTimeMinutes = *req.OperationTimeMinutes
	}
	if req.StaleDays != nil {
		settings.StaleDays = *req.StaleDays
	}
	if req.FrequentDays != nil {
		settings.FrequentDays = *req.FrequentDays
	}
	if req.WeekdayBonusThreshold != nil {
		settings.WeekdayBonusThreshold = *req.WeekdayBonusThreshold
	}
	if req.WeekdayBonusRate != nil {
		settings.WeekdayBonusRate = *req.WeekdayBonusRate
	}
	if req.HolidayBonusThreshold != nil {
		settings.HolidayBonusThreshold = *req.HolidayBonusThreshold
	}
	if req.HolidayBonusRate != nil {
		settings.HolidayBonusRate = *req.HolidayBonusRate
	}
	if req.ServiceFees != nil {
		settings.ServiceFees = model.FeeMap(req.ServiceFees)
	}

	settings.UpdatedBy = &callerID

	if err := s.repo.Settings.Save(ctx, settings); err != nil {
		s.logger.Error("更新營運設定失敗", zap.Error(err))
		return nil, err
	}

	return settings, nil
}

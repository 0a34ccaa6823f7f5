package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
)

func setupTestSettingsService() (SettingsService, *testMocks) {
	repo, mocks := newTestRepository()
	svc := NewSettingsService(repo, zap.NewNop())
	return svc, mocks
}

func TestSettingsService_Get(t *testing.T) {
	svc, _ := setupTestSettingsService()

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get 應成功: %v", err)
	}
	if settings.MaxVacationDaysPerMonth != 8 {
		t.Errorf("期望每月休假上限 8，實際=%d", settings.MaxVacationDaysPerMonth)
	}
}

func TestSettingsService_Update_PartialMerge(t *testing.T) {
	svc, mocks := setupTestSettingsService()

	staleDays := 5
	fees := map[string]float64{"熊貓": 0.33}
	result, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{
		StaleDays:   &staleDays,
		ServiceFees: fees,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Update 應成功: %v", err)
	}
	if result.StaleDays != 5 {
		t.Errorf("期望 StaleDays=5，實際=%d", result.StaleDays)
	}
	// 未帶欄位沿用原值
	if result.FrequentDays != 2 {
		t.Errorf("FrequentDays 不應變動，實際=%d", result.FrequentDays)
	}
	if mocks.settings.settings.ServiceFees["熊貓"] != 0.33 {
		t.Errorf("期望熊貓服務費 0.33，實際=%v", mocks.settings.settings.ServiceFees["熊貓"])
	}
}

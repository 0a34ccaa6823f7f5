package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// ── 測試輔助 ──

func setupTestStoreService() (StoreService, *testMocks) {
	repo, mocks := newTestRepository()
	svc := NewStoreService(repo, zap.NewNop())
	return svc, mocks
}

// ── Create 測試 ──

func TestStoreService_Create_Success(t *testing.T) {
	svc, mocks := setupTestStoreService()

	result, err := svc.Create(context.Background(), &dto.CreateStoreRequest{
		Name:         "桃園龍安店",
		Latitude:     24.9880,
		Longitude:    121.3120,
		RadiusMeters: 100,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Create 應成功: %v", err)
	}
	if result.OpenWindow != "15:00-02:00" {
		t.Errorf("期望預設營業時段 15:00-02:00，實際=%s", result.OpenWindow)
	}
	if result.RequiredHeadcount != 2 {
		t.Errorf("期望預設每日需求人數 2，實際=%d", result.RequiredHeadcount)
	}
	if !result.IsActive {
		t.Error("新分店應為啟用狀態")
	}
	if len(mocks.store.stores) != 1 {
		t.Errorf("期望落庫 1 間分店，實際=%d", len(mocks.store.stores))
	}
}

func TestStoreService_Create_DuplicateName(t *testing.T) {
	svc, mocks := setupTestStoreService()
	store, _ := seedStoreAndEmployee(mocks)

	_, err := svc.Create(context.Background(), &dto.CreateStoreRequest{
		Name:         store.Name,
		Latitude:     24.9880,
		Longitude:    121.3120,
		RadiusMeters: 100,
	}, "admin-001")
	if !errors.Is(err, ErrStoreExists) {
		t.Errorf("期望 ErrStoreExists，實際: %v", err)
	}
}

// ── Update 測試 ──

func TestStoreService_Update_PartialFields(t *testing.T) {
	svc, mocks := setupTestStoreService()
	store, _ := seedStoreAndEmployee(mocks)

	radius := 150.0
	inactive := false
	result, err := svc.Update(context.Background(), store.StoreID, &dto.UpdateStoreRequest{
		RadiusMeters: &radius,
		IsActive:     &inactive,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Update 應成功: %v", err)
	}
	if result.RadiusMeters != 150 {
		t.Errorf("期望圍欄半徑 150，實際=%v", result.RadiusMeters)
	}
	if result.IsActive {
		t.Error("期望分店已停用")
	}
	// 未帶欄位不動
	if result.Name != store.Name {
		t.Errorf("分店名不應變動，實際=%s", result.Name)
	}
}

func TestStoreService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestStoreService()

	name := "改名"
	_, err := svc.Update(context.Background(), "nonexistent", &dto.UpdateStoreRequest{Name: &name}, "admin-001")
	if !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("期望 ErrStoreNotFound，實際: %v", err)
	}
}

// ── ImportHolidays 測試 ──

const testHolidayICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Test//Holiday//ZH\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:holiday-0101@test\r\n" +
	"DTSTART;VALUE=DATE:20250101\r\n" +
	"SUMMARY:元旦\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:holiday-0228@test\r\n" +
	"DTSTART;VALUE=DATE:20250228\r\n" +
	"SUMMARY:和平紀念日\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:holiday-0404@test\r\n" +
	"DTSTART;VALUE=DATE:20250404\r\n" +
	"SUMMARY:兒童節\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestStoreService_ImportHolidays(t *testing.T) {
	svc, mocks := setupTestStoreService()
	store, _ := seedStoreAndEmployee(mocks)
	// 既有公休日：匯入時應略過
	store.PublicHolidays = model.StringArray{"2025-02-28"}

	result, err := svc.ImportHolidays(context.Background(), store.StoreID,
		&dto.ImportHolidaysRequest{ICS: testHolidayICS}, "admin-001")
	if err != nil {
		t.Fatalf("ImportHolidays 應成功: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("期望匯入 2 筆，實際=%d", result.Imported)
	}
	if result.Skipped != 1 {
		t.Errorf("期望略過 1 筆，實際=%d", result.Skipped)
	}

	updated := mocks.store.stores[store.StoreID]
	if len(updated.PublicHolidays) != 3 {
		t.Fatalf("期望合併後 3 筆公休日，實際=%d", len(updated.PublicHolidays))
	}
	// 合併後按日期排序
	expected := []string{"2025-01-01", "2025-02-28", "2025-04-04"}
	for i, d := range expected {
		if updated.PublicHolidays[i] != d {
			t.Errorf("第 %d 筆期望 %s，實際=%s", i, d, updated.PublicHolidays[i])
		}
	}
}

func TestStoreService_ImportHolidays_InvalidICS(t *testing.T) {
	svc, mocks := setupTestStoreService()
	store, _ := seedStoreAndEmployee(mocks)

	_, err := svc.ImportHolidays(context.Background(), store.StoreID,
		&dto.ImportHolidaysRequest{ICS: "這不是 ICS 內容"}, "admin-001")
	if err == nil {
		t.Error("無效 ICS 應回傳錯誤")
	}
}

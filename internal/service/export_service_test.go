package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// ── 測試輔助 ──

func setupTestExportService() (ExportService, *testMocks) {
	repo, mocks := newTestRepository()
	svc := NewExportService(repo, zap.NewNop())
	return svc, mocks
}

// ── ExportMonthlyRevenue 測試 ──

func TestExportService_ExportMonthlyRevenue(t *testing.T) {
	svc, mocks := setupTestExportService()
	store, _ := seedStoreAndEmployee(mocks)

	mocks.revenue.records = append(mocks.revenue.records,
		model.RevenueRecord{
			RecordID: "rev-1", StoreID: store.StoreID, Date: testDate("2025-07-01"),
			BonusType:   model.BonusTypeWeekday,
			TotalIncome: decimal.NewFromInt(15000), BonusAmount: decimal.NewFromInt(4500),
			IsQualified: true,
		},
		model.RevenueRecord{
			RecordID: "rev-2", StoreID: store.StoreID, Date: testDate("2025-07-02"),
			BonusType:   model.BonusTypeWeekday,
			TotalIncome: decimal.NewFromInt(6500), BonusAmount: decimal.Zero,
			IsQualified: false,
		},
	)

	buf, filename, err := svc.ExportMonthlyRevenue(context.Background(), store.StoreID, "2025-07")
	if err != nil {
		t.Fatalf("ExportMonthlyRevenue 應成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("期望非空的 Excel 內容")
	}
	// xlsx 本質是 zip，開頭固定 PK
	if !strings.HasPrefix(buf.String(), "PK") {
		t.Error("期望 xlsx (zip) 格式內容")
	}
	if filename != "中壢忠孝店_2025-07_營收月報.xlsx" {
		t.Errorf("檔名不符，實際=%s", filename)
	}

	// 日期欄以 YYYY-MM-DD 呈現
	wb, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("讀回 Excel 失敗: %v", err)
	}
	defer wb.Close()
	cell, err := wb.GetCellValue("營收月報", "A3")
	if err != nil {
		t.Fatalf("讀取儲存格失敗: %v", err)
	}
	if cell != "2025-07-01" {
		t.Errorf("期望日期欄 2025-07-01，實際=%s", cell)
	}
}

func TestExportService_ExportMonthlyRevenue_NoRecords(t *testing.T) {
	svc, mocks := setupTestExportService()
	store, _ := seedStoreAndEmployee(mocks)

	_, _, err := svc.ExportMonthlyRevenue(context.Background(), store.StoreID, "2025-07")
	if !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("期望 ErrExportNoRecords，實際: %v", err)
	}
}

func TestExportService_ExportMonthlyRevenue_StoreNotFound(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportMonthlyRevenue(context.Background(), "nonexistent", "2025-07")
	if !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("期望 ErrStoreNotFound，實際: %v", err)
	}
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
)

// ── 匯出模組業務錯誤 ──

var (
	ErrExportNoRecords = errors.New("該月份無營收紀錄")
)

// ExportService 匯出業務介面
//
// 設計說明：
//   - 營收月報匯出為 Excel (.xlsx)：逐日紀錄 + 月合計
//   - 匯出以 bytes.Buffer 回傳，由 Handler 層設定 HTTP 響應標頭後寫入 Response
type ExportService interface {
	// ExportMonthlyRevenue 匯出分店營收月報
	ExportMonthlyRevenue(ctx context.Context, storeID, month string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 建立 ExportService 實例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportMonthlyRevenue — 匯出營收月報
// ═══════════════════════════════════════════════════════════
//
// 輸出格式：
//   - 標題列：分店名 — 月份 營收月報
//   - 表頭：日期 | 獎金類別 | 總收入 | 獎金 | 達標
//   - 末列：月合計
//
// 回傳值：buf（Excel 內容）, filename（建議檔名）, error

func (s *exportService) ExportMonthlyRevenue(ctx context.Context, storeID, month string) (*bytes.Buffer, string, error) {
	store, err := s.repo.Store.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrStoreNotFound
		}
		s.logger.Error("查詢分店失敗", zap.String("id", storeID), zap.Error(err))
		return nil, "", err
	}

	records, err := s.repo.Revenue.ListByStoreMonth(ctx, storeID, month)
	if err != nil {
		s.logger.Error("查詢月營收失敗", zap.String("store_id", storeID), zap.String("month", month), zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "營收月報"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 8)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 標題列
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — %s 營收月報", store.Name, month))
	f.MergeCell(sheetName, "A1", "E1")

	// 表頭
	headers := []string{"日期", "獎金類別", "總收入", "獎金", "達標"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 逐日紀錄
	totalIncome, totalBonus := decimal.Zero, decimal.Zero
	row := 3
	for i := range records {
		r := &records[i]
		qualified := "否"
		if r.IsQualified {
			qualified = "是"
		}
		income, _ := r.TotalIncome.Float64()
		bonus, _ := r.BonusAmount.Float64()

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.DateKey())
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.BonusType)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), income)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), bonus)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), qualified)

		totalIncome = totalIncome.Add(r.TotalIncome)
		totalBonus = totalBonus.Add(r.BonusAmount)
		row++
	}

	// 月合計
	sumIncome, _ := totalIncome.Float64()
	sumBonus, _ := totalBonus.Float64()
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "月合計")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), sumIncome)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), sumBonus)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("產生 Excel 失敗", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s_營收月報.xlsx", store.Name, month)
	return buf, filename, nil
}

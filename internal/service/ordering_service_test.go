package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// ── 測試輔助 ──

func setupTestOrderingService() (OrderingService, *testMocks) {
	repo, mocks := newTestRepository()
	svc := NewOrderingService(repo, zap.NewNop())
	return svc, mocks
}

func seedCatalogItem(mocks *testMocks, product, unit string, active bool) {
	item := &model.OrderingItem{
		ItemID:   "item-" + product,
		Product:  product,
		Supplier: "大成食品",
		Unit:     unit,
		Category: "肉品",
		IsActive: active,
	}
	mocks.orderingItem.items[item.ItemID] = item
	mocks.orderingItem.order = append(mocks.orderingItem.order, item.ItemID)
}

func seedOrderRecord(mocks *testMocks, product string, qty float64, unit string, orderedAt time.Time) {
	mocks.orderingRecord.records = append(mocks.orderingRecord.records, model.OrderingRecord{
		RecordID:   "rec-" + product + orderedAt.Format("0102"),
		EmployeeID: "emp-other",
		OrderedAt:  orderedAt,
		Items:      []model.OrderingRecordItem{{Product: product, Quantity: qty, Unit: unit}},
	})
}

// ── SubmitOrder 測試 ──

func TestOrderingService_SubmitOrder_Success(t *testing.T) {
	svc, mocks := setupTestOrderingService()
	_, employee := seedStoreAndEmployee(mocks)
	seedCatalogItem(mocks, "雞排", "份", true)

	result, err := svc.SubmitOrder(context.Background(), &dto.SubmitOrderRequest{
		EmployeeID: employee.EmployeeID,
		Items:      []dto.OrderItemRequest{{Product: "雞排", Quantity: 20, Unit: "份"}},
	})
	if err != nil {
		t.Fatalf("SubmitOrder 應成功: %v", err)
	}
	if len(result.Anomalies) != 0 {
		t.Errorf("無歷史時不應有異常，實際=%+v", result.Anomalies)
	}
	if len(mocks.orderingRecord.records) != 1 {
		t.Fatalf("期望落庫 1 筆叫貨紀錄，實際=%d", len(mocks.orderingRecord.records))
	}
	if len(mocks.orderingRecord.records[0].Items) != 1 {
		t.Errorf("期望 1 條明細，實際=%d", len(mocks.orderingRecord.records[0].Items))
	}
}

func TestOrderingService_SubmitOrder_UnknownProduct(t *testing.T) {
	svc, mocks := setupTestOrderingService()
	_, employee := seedStoreAndEmployee(mocks)
	seedCatalogItem(mocks, "雞排", "份", true)

	// 引用目錄外品項是資料不一致，整筆硬拒絕、不落庫
	_, err := svc.SubmitOrder(context.Background(), &dto.SubmitOrderRequest{
		EmployeeID: employee.EmployeeID,
		Items: []dto.OrderItemRequest{
			{Product: "雞排", Quantity: 20, Unit: "份"},
			{Product: "不存在的品項", Quantity: 1, Unit: "箱"},
		},
	})
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("期望 ErrUnknownProduct，實際: %v", err)
	}
	if len(mocks.orderingRecord.records) != 0 {
		t.Error("硬拒絕不應落庫")
	}
}

func TestOrderingService_SubmitOrder_StaleAnomaly(t *testing.T) {
	svc, mocks := setupTestOrderingService()
	_, employee := seedStoreAndEmployee(mocks)
	seedCatalogItem(mocks, "雞排", "份", true)
	seedCatalogItem(mocks, "珍珠", "包", true)

	// 雞排 4 天前才被叫過：提交無關品項時也要發久未叫貨異常
	seedOrderRecord(mocks, "雞排", 20, "份", time.Now().AddDate(0, 0, -4))

	result, err := svc.SubmitOrder(context.Background(), &dto.SubmitOrderRequest{
		EmployeeID: employee.EmployeeID,
		Items:      []dto.OrderItemRequest{{Product: "珍珠", Quantity: 3, Unit: "包"}},
	})
	if err != nil {
		t.Fatalf("SubmitOrder 應成功: %v", err)
	}
	found := false
	for _, a := range result.Anomalies {
		if a.Type == "stale" && a.Product == "雞排" {
			found = true
			if a.DaysSince != 4 {
				t.Errorf("期望 DaysSince=4，實際=%d", a.DaysSince)
			}
		}
	}
	if !found {
		t.Errorf("期望雞排久未叫貨異常，實際=%+v", result.Anomalies)
	}
	// 異常只標記不擋單
	if len(mocks.orderingRecord.records) != 2 {
		t.Errorf("異常仍應落庫，實際=%d 筆", len(mocks.orderingRecord.records))
	}
}

func TestOrderingService_SubmitOrder_FrequentAnomaly(t *testing.T) {
	svc, mocks := setupTestOrderingService()
	_, employee := seedStoreAndEmployee(mocks)
	seedCatalogItem(mocks, "雞排", "份", true)

	// 昨天才叫過（任何員工）、今天又提交同品項
	seedOrderRecord(mocks, "雞排", 15, "份", time.Now().AddDate(0, 0, -1))

	result, err := svc.SubmitOrder(context.Background(), &dto.SubmitOrderRequest{
		EmployeeID: employee.EmployeeID,
		Items:      []dto.OrderItemRequest{{Product: "雞排", Quantity: 10, Unit: "份"}},
	})
	if err != nil {
		t.Fatalf("SubmitOrder 應成功: %v", err)
	}
	foundFrequent, foundStale := false, false
	for _, a := range result.Anomalies {
		if a.Type == "frequent" && a.Product == "雞排" {
			foundFrequent = true
		}
		if a.Type == "stale" && a.Product == "雞排" {
			foundStale = true
		}
	}
	if !foundFrequent {
		t.Errorf("期望過於頻繁異常，實際=%+v", result.Anomalies)
	}
	if foundStale {
		t.Error("未滿 3 天不應發久未叫貨異常")
	}
}

func TestOrderingService_SubmitOrder_EmployeeInactive(t *testing.T) {
	svc, mocks := setupTestOrderingService()
	_, employee := seedStoreAndEmployee(mocks)
	employee.Status = model.EmployeeStatusSuspended
	seedCatalogItem(mocks, "雞排", "份", true)

	_, err := svc.SubmitOrder(context.Background(), &dto.SubmitOrderRequest{
		EmployeeID: employee.EmployeeID,
		Items:      []dto.OrderItemRequest{{Product: "雞排", Quantity: 20, Unit: "份"}},
	})
	if !errors.Is(err, ErrEmployeeInactive) {
		t.Errorf("期望 ErrEmployeeInactive，實際: %v", err)
	}
}

// ── 品項目錄測試 ──

func TestOrderingService_CreateItem_Duplicate(t *testing.T) {
	svc, mocks := setupTestOrderingService()
	seedCatalogItem(mocks, "雞排", "份", true)

	_, err := svc.CreateItem(context.Background(), &dto.CreateOrderingItemRequest{
		Product:  "雞排",
		Supplier: "大成食品",
		Unit:     "份",
		Category: "肉品",
	}, "admin-001")
	if !errors.Is(err, ErrItemExists) {
		t.Errorf("期望 ErrItemExists，實際: %v", err)
	}
}

func TestOrderingService_CreateItem_ReuseInactiveProduct(t *testing.T) {
	svc, mocks := setupTestOrderingService()
	seedCatalogItem(mocks, "雞排", "份", false)

	// product 只在啟用品項中唯一：停用後可重建同名品項
	result, err := svc.CreateItem(context.Background(), &dto.CreateOrderingItemRequest{
		Product:  "雞排",
		Supplier: "卜蜂食品",
		Unit:     "份",
		Category: "肉品",
	}, "admin-001")
	if err != nil {
		t.Fatalf("CreateItem 應成功: %v", err)
	}
	if !result.IsActive {
		t.Error("新品項應為啟用狀態")
	}
}

func TestOrderingService_UpdateItem_Deactivate(t *testing.T) {
	svc, mocks := setupTestOrderingService()
	seedCatalogItem(mocks, "雞排", "份", true)

	inactive := false
	result, err := svc.UpdateItem(context.Background(), "item-雞排",
		&dto.UpdateOrderingItemRequest{IsActive: &inactive}, "admin-001")
	if err != nil {
		t.Fatalf("UpdateItem 應成功: %v", err)
	}
	if result.IsActive {
		t.Error("期望品項已停用")
	}
}

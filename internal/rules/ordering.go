package rules

import (
	"time"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// 叫貨異常類別
const (
	AnomalyStale    = "stale"    // 全目錄品項太久沒人叫貨
	AnomalyFrequent = "frequent" // 本次提交品項叫貨過於頻繁
)

// Anomaly 叫貨異常（結構化結果，格式化留給呈現層）
type Anomaly struct {
	Type          string    `json:"type"`
	Product       string    `json:"product"`
	LastOrderedAt time.Time `json:"last_ordered_at"`
	LastQuantity  float64   `json:"last_quantity"`
	LastUnit      string    `json:"last_unit"`
	DaysSince     int       `json:"days_since"`
}

// SubmittedItem 本次叫貨提交的單一品項
type SubmittedItem struct {
	Product  string
	Quantity float64
	Unit     string
}

// lastOrderIndex 依品項建立「最近一筆叫貨明細」索引，避免每個品項各掃一次全量歷史
type lastOrderEntry struct {
	orderedAt time.Time
	quantity  float64
	unit      string
}

func buildLastOrderIndex(records []model.OrderingRecord) map[string]lastOrderEntry {
	index := make(map[string]lastOrderEntry)
	for i := range records {
		rec := &records[i]
		for _, it := range rec.Items {
			prev, ok := index[it.Product]
			if !ok || rec.OrderedAt.After(prev.orderedAt) {
				index[it.Product] = lastOrderEntry{
					orderedAt: rec.OrderedAt,
					quantity:  it.Quantity,
					unit:      it.Unit,
				}
			}
		}
	}
	return index
}

// daysSince 以 24 小時為一天的整數天數差
func daysSince(t, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}

// DetectOrderingAnomalies 叫貨異常偵測
//
// 兩條規則彼此獨立，都以「全體員工」的叫貨歷史為基準：
//  1. 久未叫貨：掃描整個啟用目錄，任一品項最近一筆叫貨距今 >= staleDays 天
//     即發異常；從未被叫過的品項不發。每次提交都會掃全目錄。
//  2. 過於頻繁：只看本次提交的品項，該品項最近 frequentDays 天內已有任何
//     人叫過即發異常。
//
// 目錄全掃 vs 僅本次提交是刻意的不對稱，勿統一。
func DetectOrderingAnomalies(
	submitted []SubmittedItem,
	catalog []model.OrderingItem,
	records []model.OrderingRecord,
	staleDays, frequentDays int,
	now time.Time,
) []Anomaly {
	index := buildLastOrderIndex(records)
	anomalies := make([]Anomaly, 0)

	for i := range catalog {
		item := &catalog[i]
		if !item.IsActive {
			continue
		}
		last, ok := index[item.Product]
		if !ok {
			continue
		}
		if days := daysSince(last.orderedAt, now); days >= staleDays {
			anomalies = append(anomalies, Anomaly{
				Type:          AnomalyStale,
				Product:       item.Product,
				LastOrderedAt: last.orderedAt,
				LastQuantity:  last.quantity,
				LastUnit:      last.unit,
				DaysSince:     days,
			})
		}
	}

	for _, sub := range submitted {
		last, ok := index[sub.Product]
		if !ok {
			continue
		}
		if days := daysSince(last.orderedAt, now); days < frequentDays {
			anomalies = append(anomalies, Anomaly{
				Type:          AnomalyFrequent,
				Product:       sub.Product,
				LastOrderedAt: last.orderedAt,
				LastQuantity:  last.quantity,
				LastUnit:      last.unit,
				DaysSince:     days,
			})
		}
	}

	return anomalies
}

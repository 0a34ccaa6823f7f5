package rules

import (
	"math"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
)

// 地球半徑（公尺），haversine 公式用
const earthRadiusMeters = 6371e3

// StoreMatch 地理圍欄解析結果
type StoreMatch struct {
	Store          *model.Store
	DistanceMeters float64
}

// HaversineMeters 計算兩座標間的大圓距離（公尺）
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := lat1 * math.Pi / 180
	φ2 := lat2 * math.Pi / 180
	Δφ := (lat2 - lat1) * math.Pi / 180
	Δλ := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// ResolveStore 將 GPS 座標解析為最先符合地理圍欄的分店
//
// 依輸入順序回傳第一家距離 <= radius_meters 的分店；重疊圍欄不取最近者，
// 距離一併回傳供呼叫端自行重排。無符合分店時回傳 (nil, nil)。
func ResolveStore(lat, lon float64, stores []model.Store) (*StoreMatch, error) {
	if lat < -90 || lat > 90 {
		return nil, pkgerrors.NewValidation("latitude", "緯度必須介於 -90 與 90 之間")
	}
	if lon < -180 || lon > 180 {
		return nil, pkgerrors.NewValidation("longitude", "經度必須介於 -180 與 180 之間")
	}

	for i := range stores {
		st := &stores[i]
		dist := HaversineMeters(lat, lon, st.Latitude, st.Longitude)
		if dist <= st.RadiusMeters {
			return &StoreMatch{Store: st, DistanceMeters: dist}, nil
		}
	}
	return nil, nil
}

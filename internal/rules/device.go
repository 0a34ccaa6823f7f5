package rules

import (
	"time"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
)

// DeviceCheckResult 裝置指紋漂移檢查結果
type DeviceCheckResult struct {
	IsAnomalous         bool
	PreviousFingerprint string
	PreviousAt          *time.Time
}

// CheckDeviceDrift 單步裝置指紋漂移檢查
//
// history 為該員工打卡紀錄、由新到舊排序，且 index 0 為本次打卡本身；
// 比較基準為 index 1（上一次打卡）。不足兩筆時視為冷啟動、一律信任。
// 這不是完整的信任分數：員工換機後改回舊機，下一次打卡仍會再被標記一次。
func CheckDeviceDrift(currentFingerprint string, history []model.AttendanceRecord) DeviceCheckResult {
	if len(history) < 2 {
		return DeviceCheckResult{}
	}

	prev := history[1]
	if prev.DeviceFingerprint == currentFingerprint {
		return DeviceCheckResult{}
	}

	at := prev.CheckedInAt
	return DeviceCheckResult{
		IsAnomalous:         true,
		PreviousFingerprint: prev.DeviceFingerprint,
		PreviousAt:          &at,
	}
}

package dto

// ── 打卡模組 DTO ──

// CheckInRequest 打卡請求
type CheckInRequest struct {
	EmployeeID        string  `json:"employee_id"        binding:"required,uuid"`
	Latitude          float64 `json:"latitude"           binding:"required,min=-90,max=90"`
	Longitude         float64 `json:"longitude"          binding:"required,min=-180,max=180"`
	DeviceFingerprint string  `json:"device_fingerprint" binding:"required,min=8,max=128"`
}

// AttendanceListRequest 打卡紀錄列表查詢參數
type AttendanceListRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	PaginationRequest
}

// CheckInResponse 打卡結果響應
// 座標不在任何圍欄內時 store 為空、in_fence 為 false，紀錄仍照常落庫
type CheckInResponse struct {
	RecordID       string      `json:"record_id"`
	CheckedInAt    string      `json:"checked_in_at"`
	InFence        bool        `json:"in_fence"`
	Store          *StoreBrief `json:"store,omitempty"`
	DistanceMeters *float64    `json:"distance_meters,omitempty"`
	Device         DeviceCheck `json:"device"`
}

// DeviceCheck 裝置指紋檢查結果
type DeviceCheck struct {
	IsAnomalous         bool   `json:"is_anomalous"`
	PreviousFingerprint string `json:"previous_fingerprint,omitempty"`
	PreviousAt          string `json:"previous_at,omitempty"`
}

// AttendanceResponse 打卡紀錄響應
type AttendanceResponse struct {
	RecordID        string      `json:"record_id"`
	EmployeeID      string      `json:"employee_id"`
	EmployeeName    string      `json:"employee_name,omitempty"`
	CheckedInAt     string      `json:"checked_in_at"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	Store           *StoreBrief `json:"store,omitempty"`
	DistanceMeters  *float64    `json:"distance_meters,omitempty"`
	DeviceAnomalous bool        `json:"device_anomalous"`
}

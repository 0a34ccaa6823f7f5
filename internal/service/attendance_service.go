package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
	"github.com/chatscai10/employee-management-system-sub002/internal/rules"
)

// AttendanceService 打卡業務介面
type AttendanceService interface {
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.CheckInResponse, error)
	List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 建立 AttendanceService 實例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// CheckIn — GPS 打卡
// ═══════════════════════════════════════════════════════════
//
// 流程：
//  1. 員工必須在職
//  2. 地理圍欄解析：座標落在哪家分店的圍欄內（取輸入順序第一家）
//  3. 裝置指紋漂移檢查：與上一次打卡的指紋比對
//  4. 不在圍欄內或裝置異常都只標記、不擋打卡，紀錄照常落庫

func (s *attendanceService) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.CheckInResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查詢員工失敗", zap.String("id", req.EmployeeID), zap.Error(err))
		return nil, err
	}
	if employee.Status != model.EmployeeStatusActive {
		return nil, ErrEmployeeInactive
	}

	// 地理圍欄解析
	stores, err := s.repo.Store.ListActive(ctx)
	if err != nil {
		s.logger.Error("查詢分店清單失敗", zap.Error(err))
		return nil, err
	}
	match, err := rules.ResolveStore(req.Latitude, req.Longitude, stores)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &model.AttendanceRecord{
		RecordID:          uuid.NewString(),
		EmployeeID:        employee.EmployeeID,
		CheckedInAt:       now,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		DeviceFingerprint: req.DeviceFingerprint,
	}
	if match != nil {
		record.ResolvedStoreID = &match.Store.StoreID
		record.DistanceMeters = &match.DistanceMeters
	}

	// 裝置漂移檢查：比較基準為含本次打卡在內、由新到舊的第二筆
	prior, err := s.repo.Attendance.ListRecentByEmployee(ctx, employee.EmployeeID, 2)
	if err != nil {
		s.logger.Error("查詢打卡歷史失敗", zap.String("employee_id", employee.EmployeeID), zap.Error(err))
		return nil, err
	}
	history := append([]model.AttendanceRecord{*record}, prior...)
	deviceCheck := rules.CheckDeviceDrift(req.DeviceFingerprint, history)
	record.DeviceAnomalous = deviceCheck.IsAnomalous

	if err := s.repo.Attendance.Create(ctx, record); err != nil {
		s.logger.Error("寫入打卡紀錄失敗", zap.Error(err))
		return nil, err
	}

	if deviceCheck.IsAnomalous {
		s.logger.Warn("偵測到裝置指紋漂移",
			zap.String("employee_id", employee.EmployeeID),
			zap.String("previous_fingerprint", deviceCheck.PreviousFingerprint))
	}

	resp := &dto.CheckInResponse{
		RecordID:    record.RecordID,
		CheckedInAt: now.Format(time.RFC3339),
		InFence:     match != nil,
		Device: dto.DeviceCheck{
			IsAnomalous:         deviceCheck.IsAnomalous,
			PreviousFingerprint: deviceCheck.PreviousFingerprint,
		},
	}
	if match != nil {
		resp.Store = &dto.StoreBrief{StoreID: match.Store.StoreID, Name: match.Store.Name}
		resp.DistanceMeters = &match.DistanceMeters
	}
	if deviceCheck.PreviousAt != nil {
		resp.Device.PreviousAt = deviceCheck.PreviousAt.Format(time.RFC3339)
	}
	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error) {
	records, total, err := s.repo.Attendance.List(ctx, req.EmployeeID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出打卡紀錄失敗", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		r := &records[i]
		resp := dto.AttendanceResponse{
			RecordID:        r.RecordID,
			EmployeeID:      r.EmployeeID,
			CheckedInAt:     r.CheckedInAt.Format(time.RFC3339),
			Latitude:        r.Latitude,
			Longitude:       r.Longitude,
			DistanceMeters:  r.DistanceMeters,
			DeviceAnomalous: r.DeviceAnomalous,
		}
		if r.Employee != nil {
			resp.EmployeeName = r.Employee.Name
		}
		if r.ResolvedStore != nil {
			resp.Store = &dto.StoreBrief{StoreID: r.ResolvedStore.StoreID, Name: r.ResolvedStore.Name}
		}
		result = append(result, resp)
	}
	return result, total, nil
}

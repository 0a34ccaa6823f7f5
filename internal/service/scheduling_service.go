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
	"github.com/chatscai10/employee-management-system-sub002/pkg/redis"
)

// ── 排班模組業務錯誤 ──

var (
	ErrSessionNotFound    = errors.New("排班工作階段不存在")
	ErrSessionNotOpen     = errors.New("排班工作階段已關閉")
	ErrSessionExpired     = errors.New("排班工作階段已逾時")
	ErrSessionAlreadyOpen = errors.New("該員工本月已有進行中的編輯工作階段")
	ErrOutsideWindow      = errors.New("不在排班開放時段內")
)

// 配額鎖參數：鎖住 (分店, 月份) 的檢查與寫入，消除 check-then-act 競態
const (
	quotaLockTTL     = 10 * time.Second
	quotaLockWaitFor = 3 * time.Second
)

// SchedulingService 排班業務介面
type SchedulingService interface {
	OpenSession(ctx context.Context, req *dto.OpenSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, id string) (*dto.SessionResponse, error)
	CloseSession(ctx context.Context, id string) (*dto.SessionResponse, error)
	Validate(ctx context.Context, req *dto.ValidateScheduleRequest) (*dto.ValidationResponse, error)
	Submit(ctx context.Context, req *dto.SubmitScheduleRequest) (*dto.SubmitScheduleResponse, error)
	ListAssignments(ctx context.Context, req *dto.MonthAssignmentsRequest) ([]dto.AssignmentResponse, error)
}

type schedulingService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewSchedulingService 建立 SchedulingService 實例
// rdb 為 nil 時不使用分散式鎖，僅靠資料庫樂觀鎖與唯一性檢查
func NewSchedulingService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) SchedulingService {
	return &schedulingService{repo: repo, rdb: rdb, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// OpenSession — 開啟編輯工作階段
// ═══════════════════════════════════════════════════════════
//
// 規則：
//  1. 必須在該月份的排班開放視窗內（前一個月 open_day open_hour 起）
//  2. 同一員工同一月份最多一個 open 工作階段
//  3. 逾時工作階段在此一併標記 expired（存取時牆鐘比較，不靠背景計時器）

func (s *schedulingService) OpenSession(ctx context.Context, req *dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	employee, err := s.getActiveEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("查詢營運設定失敗", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	inWindow, err := rules.WithinSchedulingWindow(req.Month, now, settings)
	if err != nil {
		return nil, err
	}
	if !inWindow {
		return nil, ErrOutsideWindow
	}

	ttl := time.Duration(settings.OperationTimeMinutes) * time.Minute

	// 分散式鎖擋掉同員工的並發開啟；Redis 不可用時僅靠下方資料庫檢查
	if s.rdb != nil {
		acquired, err := s.rdb.AcquireSessionLock(ctx, employee.EmployeeID, req.Month, ttl)
		if err != nil {
			s.logger.Warn("取得工作階段鎖失敗，降級為資料庫檢查", zap.Error(err))
		} else if !acquired {
			return nil, ErrSessionAlreadyOpen
		}
	}

	existing, err := s.repo.Session.GetOpenByEmployeeMonth(ctx, employee.EmployeeID, req.Month)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查詢工作階段失敗", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		if rules.EffectiveSessionStatus(existing, now) == model.SessionStatusOpen {
			return nil, ErrSessionAlreadyOpen
		}
		existing.Status = model.SessionStatusExpired
		if err := s.repo.Session.Update(ctx, existing); err != nil {
			s.logger.Error("標記逾時工作階段失敗", zap.String("session_id", existing.SessionID), zap.Error(err))
			return nil, err
		}
	}

	session := &model.SchedulingSession{
		SessionID:  uuid.NewString(),
		EmployeeID: employee.EmployeeID,
		Month:      req.Month,
		OpenedAt:   now,
		ExpiresAt:  now.Add(ttl),
		Status:     model.SessionStatusOpen,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("建立工作階段失敗", zap.Error(err))
		return nil, err
	}

	s.logger.Info("排班工作階段開啟",
		zap.String("session_id", session.SessionID),
		zap.String("employee_id", employee.EmployeeID),
		zap.String("month", req.Month))

	return s.toSessionResponse(session, now), nil
}

// ────────────────────── GetSession ──────────────────────

func (s *schedulingService) GetSession(ctx context.Context, id string) (*dto.SessionResponse, error) {
	session, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toSessionResponse(session, time.Now()), nil
}

// ────────────────────── CloseSession ──────────────────────

func (s *schedulingService) CloseSession(ctx context.Context, id string) (*dto.SessionResponse, error) {
	session, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch rules.EffectiveSessionStatus(session, now) {
	case model.SessionStatusOpen:
		session.Status = model.SessionStatusClosed
	case model.SessionStatusExpired:
		session.Status = model.SessionStatusExpired
	default:
		return s.toSessionResponse(session, now), nil
	}

	if err := s.repo.Session.Update(ctx, session); err != nil {
		s.logger.Error("關閉工作階段失敗", zap.String("session_id", id), zap.Error(err))
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.ReleaseSessionLock(ctx, session.EmployeeID, session.Month); err != nil {
			s.logger.Warn("釋放工作階段鎖失敗", zap.String("session_id", id), zap.Error(err))
		}
	}

	return s.toSessionResponse(session, now), nil
}

// ────────────────────── Validate ──────────────────────

// Validate 預檢休假申請，不落庫、不需要工作階段
func (s *schedulingService) Validate(ctx context.Context, req *dto.ValidateScheduleRequest) (*dto.ValidationResponse, error) {
	employee, err := s.getActiveEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	result, err := s.validateQuota(ctx, employee, req.Month, req.Dates)
	if err != nil {
		return nil, err
	}
	return &dto.ValidationResponse{
		Accepted:   result.Accepted,
		Violations: toViolationResponses(result.Violations),
	}, nil
}

// ═══════════════════════════════════════════════════════════
// Submit — 提交休假申請
// ═══════════════════════════════════════════════════════════
//
// 流程：
//  1. 工作階段必須有效（open 且未逾時；逾時在此標記 expired）
//  2. 以 (分店, 月份) 配額鎖序列化檢查與寫入
//  3. 五項配額檢查全過才核配；任一違規則全數回報、不落庫
//  4. 提交成功視為活動，順延工作階段逾時時間

func (s *schedulingService) Submit(ctx context.Context, req *dto.SubmitScheduleRequest) (*dto.SubmitScheduleResponse, error) {
	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch rules.EffectiveSessionStatus(session, now) {
	case model.SessionStatusClosed:
		return nil, ErrSessionNotOpen
	case model.SessionStatusExpired:
		if session.Status == model.SessionStatusOpen {
			session.Status = model.SessionStatusExpired
			if err := s.repo.Session.Update(ctx, session); err != nil {
				s.logger.Error("標記逾時工作階段失敗", zap.String("session_id", session.SessionID), zap.Error(err))
			}
		}
		return nil, ErrSessionExpired
	}

	employee, err := s.getActiveEmployee(ctx, session.EmployeeID)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("查詢營運設定失敗", zap.Error(err))
		return nil, err
	}

	var resp *dto.SubmitScheduleResponse
	err = s.withQuotaLock(ctx, employee.StoreID, session.Month, func() error {
		result, err := s.validateQuota(ctx, employee, session.Month, req.Dates)
		if err != nil {
			return err
		}

		resp = &dto.SubmitScheduleResponse{
			Accepted:   result.Accepted,
			Violations: toViolationResponses(result.Violations),
		}
		if !result.Accepted {
			return nil
		}

		assignments := make([]model.VacationAssignment, 0, len(req.Dates))
		for _, d := range req.Dates {
			day, err := time.Parse("2006-01-02", d)
			if err != nil {
				return err
			}
			assignments = append(assignments, model.VacationAssignment{
				AssignmentID: uuid.NewString(),
				EmployeeID:   employee.EmployeeID,
				StoreID:      employee.StoreID,
				Date:         day,
				Pool:         employee.SchedulingPool(),
				CreatedBy:    &employee.EmployeeID,
			})
		}
		if err := s.repo.Assignment.BatchCreate(ctx, assignments); err != nil {
			s.logger.Error("寫入休假核配失敗", zap.Error(err))
			return err
		}

		for _, a := range assignments {
			resp.Assigned = append(resp.Assigned, dto.AssignmentResponse{
				AssignmentID: a.AssignmentID,
				EmployeeID:   a.EmployeeID,
				StoreID:      a.StoreID,
				Date:         a.DateKey(),
				Pool:         a.Pool,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 提交成功視為活動，順延逾時時間
	session.ExpiresAt = now.Add(time.Duration(settings.OperationTimeMinutes) * time.Minute)
	if err := s.repo.Session.Update(ctx, session); err != nil {
		s.logger.Warn("順延工作階段逾時失敗", zap.String("session_id", session.SessionID), zap.Error(err))
	}

	return resp, nil
}

// ────────────────────── ListAssignments ──────────────────────

func (s *schedulingService) ListAssignments(ctx context.Context, req *dto.MonthAssignmentsRequest) ([]dto.AssignmentResponse, error) {
	var (
		assignments []model.VacationAssignment
		err         error
	)
	switch {
	case req.EmployeeID != "":
		assignments, err = s.repo.Assignment.ListByEmployeeMonth(ctx, req.EmployeeID, req.Month)
	case req.StoreID != "":
		assignments, err = s.repo.Assignment.ListByStoreMonth(ctx, req.StoreID, req.Month)
	default:
		assignments, err = s.repo.Assignment.ListByMonth(ctx, req.Month)
	}
	if err != nil {
		s.logger.Error("列出休假核配失敗", zap.String("month", req.Month), zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, dto.AssignmentResponse{
			AssignmentID: a.AssignmentID,
			EmployeeID:   a.EmployeeID,
			StoreID:      a.StoreID,
			Date:         a.DateKey(),
			Pool:         a.Pool,
		})
	}
	return result, nil
}

// ── 內部輔助方法 ──

func (s *schedulingService) getActiveEmployee(ctx context.Context, id string) (*model.Employee, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查詢員工失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if employee.Status != model.EmployeeStatusActive {
		return nil, ErrEmployeeInactive
	}
	return employee, nil
}

func (s *schedulingService) getSession(ctx context.Context, id string) (*model.SchedulingSession, error) {
	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("查詢工作階段失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return session, nil
}

// validateQuota 載入快照並執行五項配額檢查
func (s *schedulingService) validateQuota(ctx context.Context, employee *model.Employee, month string, dates []string) (rules.ValidationResult, error) {
	store, err := s.repo.Store.GetByID(ctx, employee.StoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rules.ValidationResult{}, ErrStoreNotFound
		}
		s.logger.Error("查詢分店失敗", zap.String("id", employee.StoreID), zap.Error(err))
		return rules.ValidationResult{}, err
	}

	existing, err := s.repo.Assignment.ListByMonth(ctx, month)
	if err != nil {
		s.logger.Error("查詢月核配快照失敗", zap.String("month", month), zap.Error(err))
		return rules.ValidationResult{}, err
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("查詢營運設定失敗", zap.Error(err))
		return rules.ValidationResult{}, err
	}

	return rules.ValidateSchedulingRequest(rules.SchedulingRequest{
		EmployeeID: employee.EmployeeID,
		StoreID:    employee.StoreID,
		Pool:       employee.SchedulingPool(),
		Month:      month,
		Dates:      dates,
	}, existing, store, settings)
}

func (s *schedulingService) withQuotaLock(ctx context.Context, storeID, month string, fn func() error) error {
	if s.rdb == nil {
		return fn()
	}
	return s.rdb.WithQuotaLock(ctx, storeID, month, quotaLockTTL, quotaLockWaitFor, fn)
}

func (s *schedulingService) toSessionResponse(session *model.SchedulingSession, now time.Time) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionID:  session.SessionID,
		EmployeeID: session.EmployeeID,
		Month:      session.Month,
		OpenedAt:   session.OpenedAt.Format(time.RFC3339),
		ExpiresAt:  session.ExpiresAt.Format(time.RFC3339),
		Status:     rules.EffectiveSessionStatus(session, now),
	}
}

func toViolationResponses(violations []rules.Violation) []dto.ViolationResponse {
	if len(violations) == 0 {
		return nil
	}
	result := make([]dto.ViolationResponse, 0, len(violations))
	for _, v := range violations {
		result = append(result, dto.ViolationResponse{Code: v.Code, Date: v.Date, Message: v.Message})
	}
	return result
}

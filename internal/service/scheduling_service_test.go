package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/internal/dto"
	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	"github.com/chatscai10/employee-management-system-sub002/internal/rules"
)

// ── 測試輔助 ──

func setupTestSchedulingService() (SchedulingService, *testMocks) {
	repo, mocks := newTestRepository()
	// 測試不接 Redis：降級為純資料庫檢查
	svc := NewSchedulingService(repo, nil, zap.NewNop())

	// 視窗涵蓋整個當月，任何時間點執行測試都在視窗內
	mocks.settings.settings.OpenDay = 1
	mocks.settings.settings.OpenHour = 0
	mocks.settings.settings.CloseDay = 31
	mocks.settings.settings.CloseHour = 23

	return svc, mocks
}

// nextMonth 下個月的 YYYY-MM（排班目標月份，其編輯視窗落在本月）
func nextMonth() string {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, 1, 0).Format("2006-01")
}

func monthDate(month string, day int) string {
	return fmt.Sprintf("%s-%02d", month, day)
}

func seedOpenSession(mocks *testMocks, employeeID, month string, expiresAt time.Time) *model.SchedulingSession {
	session := &model.SchedulingSession{
		SessionID:  "sess-001",
		EmployeeID: employeeID,
		Month:      month,
		OpenedAt:   time.Now().Add(-time.Minute),
		ExpiresAt:  expiresAt,
		Status:     model.SessionStatusOpen,
	}
	mocks.session.sessions[session.SessionID] = session
	return session
}

// ── OpenSession 測試 ──

func TestSchedulingService_OpenSession_Success(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)

	result, err := svc.OpenSession(context.Background(), &dto.OpenSessionRequest{
		EmployeeID: employee.EmployeeID,
		Month:      nextMonth(),
	})
	if err != nil {
		t.Fatalf("OpenSession 應成功: %v", err)
	}
	if result.Status != model.SessionStatusOpen {
		t.Errorf("期望狀態 open，實際=%s", result.Status)
	}
	if len(mocks.session.sessions) != 1 {
		t.Errorf("期望建立 1 個工作階段，實際=%d", len(mocks.session.sessions))
	}
}

func TestSchedulingService_OpenSession_AlreadyOpen(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	seedOpenSession(mocks, employee.EmployeeID, month, time.Now().Add(20*time.Minute))

	_, err := svc.OpenSession(context.Background(), &dto.OpenSessionRequest{
		EmployeeID: employee.EmployeeID,
		Month:      month,
	})
	if !errors.Is(err, ErrSessionAlreadyOpen) {
		t.Errorf("期望 ErrSessionAlreadyOpen，實際: %v", err)
	}
}

func TestSchedulingService_OpenSession_ExpiredSessionReplaced(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	// 逾時但尚未標記的工作階段：開啟時以牆鐘判定並標記 expired
	old := seedOpenSession(mocks, employee.EmployeeID, month, time.Now().Add(-time.Minute))

	result, err := svc.OpenSession(context.Background(), &dto.OpenSessionRequest{
		EmployeeID: employee.EmployeeID,
		Month:      month,
	})
	if err != nil {
		t.Fatalf("逾時工作階段不應阻擋新開啟: %v", err)
	}
	if result.SessionID == old.SessionID {
		t.Error("期望建立新工作階段")
	}
	if mocks.session.sessions[old.SessionID].Status != model.SessionStatusExpired {
		t.Errorf("舊工作階段應標記 expired，實際=%s", mocks.session.sessions[old.SessionID].Status)
	}
}

func TestSchedulingService_OpenSession_OutsideWindow(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	// 空視窗：開放與截止同一時刻
	mocks.settings.settings.OpenDay = 1
	mocks.settings.settings.OpenHour = 0
	mocks.settings.settings.CloseDay = 1
	mocks.settings.settings.CloseHour = 0

	_, err := svc.OpenSession(context.Background(), &dto.OpenSessionRequest{
		EmployeeID: employee.EmployeeID,
		Month:      nextMonth(),
	})
	if !errors.Is(err, ErrOutsideWindow) {
		t.Errorf("期望 ErrOutsideWindow，實際: %v", err)
	}
}

// ── Submit 測試 ──

func TestSchedulingService_Submit_Accepted(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	session := seedOpenSession(mocks, employee.EmployeeID, month, time.Now().Add(20*time.Minute))

	result, err := svc.Submit(context.Background(), &dto.SubmitScheduleRequest{
		SessionID: session.SessionID,
		Dates:     []string{monthDate(month, 2), monthDate(month, 3)},
	})
	if err != nil {
		t.Fatalf("Submit 應成功: %v", err)
	}
	if !result.Accepted {
		t.Fatalf("期望接受，違規=%+v", result.Violations)
	}
	if len(result.Assigned) != 2 {
		t.Errorf("期望核配 2 天，實際=%d", len(result.Assigned))
	}
	if len(mocks.assignment.assignments) != 2 {
		t.Errorf("期望落庫 2 筆核配，實際=%d", len(mocks.assignment.assignments))
	}
	if mocks.assignment.assignments[0].Pool != model.PositionFullTime {
		t.Errorf("正職員工應落入正職池，實際=%s", mocks.assignment.assignments[0].Pool)
	}
}

func TestSchedulingService_Submit_MonthlyCapViolation(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	session := seedOpenSession(mocks, employee.EmployeeID, month, time.Now().Add(20*time.Minute))

	// 已核配 8 天：第 9 天必拒
	for day := 1; day <= 8; day++ {
		mocks.assignment.assignments = append(mocks.assignment.assignments, model.VacationAssignment{
			AssignmentID: fmt.Sprintf("va-%02d", day),
			EmployeeID:   employee.EmployeeID,
			StoreID:      employee.StoreID,
			Date:         testDate(monthDate(month, day)),
			Pool:         model.PositionFullTime,
		})
	}

	result, err := svc.Submit(context.Background(), &dto.SubmitScheduleRequest{
		SessionID: session.SessionID,
		Dates:     []string{monthDate(month, 15)},
	})
	if err != nil {
		t.Fatalf("Submit 應成功回傳違規: %v", err)
	}
	if result.Accepted {
		t.Fatal("期望拒絕")
	}
	found := false
	for _, v := range result.Violations {
		if v.Code == rules.ViolationMonthlyCap {
			found = true
		}
	}
	if !found {
		t.Errorf("期望月配額違規，實際=%+v", result.Violations)
	}
	// 違規不落庫
	if len(mocks.assignment.assignments) != 8 {
		t.Errorf("違規不應新增核配，實際=%d", len(mocks.assignment.assignments))
	}
}

func TestSchedulingService_Submit_DailyCapCountsStoredAssignments(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	session := seedOpenSession(mocks, employee.EmployeeID, month, time.Now().Add(20*time.Minute))
	mocks.settings.settings.MaxDailyVacationTotal = 1

	// 其他員工已核配同一天：落庫後讀回的日期必須計入單日總量
	mocks.assignment.assignments = append(mocks.assignment.assignments, model.VacationAssignment{
		AssignmentID: "va-other",
		EmployeeID:   "emp-other",
		StoreID:      "store-other",
		Date:         testDate(monthDate(month, 2)),
		Pool:         model.PositionFullTime,
	})

	result, err := svc.Submit(context.Background(), &dto.SubmitScheduleRequest{
		SessionID: session.SessionID,
		Dates:     []string{monthDate(month, 2)},
	})
	if err != nil {
		t.Fatalf("Submit 應成功回傳違規: %v", err)
	}
	if result.Accepted {
		t.Fatal("單日上限 1 且已有核配，期望拒絕")
	}
	found := false
	for _, v := range result.Violations {
		if v.Code == rules.ViolationDailyCap {
			found = true
		}
	}
	if !found {
		t.Errorf("期望單日總量違規，實際=%+v", result.Violations)
	}
}

func TestSchedulingService_Submit_ExpiredSession(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	session := seedOpenSession(mocks, employee.EmployeeID, month, time.Now().Add(-time.Minute))

	_, err := svc.Submit(context.Background(), &dto.SubmitScheduleRequest{
		SessionID: session.SessionID,
		Dates:     []string{monthDate(month, 2)},
	})
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("期望 ErrSessionExpired，實際: %v", err)
	}
	if mocks.session.sessions[session.SessionID].Status != model.SessionStatusExpired {
		t.Error("逾時工作階段應被標記 expired")
	}
}

func TestSchedulingService_Submit_ClosedSession(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	session := seedOpenSession(mocks, employee.EmployeeID, month, time.Now().Add(20*time.Minute))
	session.Status = model.SessionStatusClosed

	_, err := svc.Submit(context.Background(), &dto.SubmitScheduleRequest{
		SessionID: session.SessionID,
		Dates:     []string{monthDate(month, 2)},
	})
	if !errors.Is(err, ErrSessionNotOpen) {
		t.Errorf("期望 ErrSessionNotOpen，實際: %v", err)
	}
}

// ── Validate 測試 ──

func TestSchedulingService_Validate_NoPersist(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	store, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	store.RestrictedDates = model.StringArray{monthDate(month, 2)}

	result, err := svc.Validate(context.Background(), &dto.ValidateScheduleRequest{
		EmployeeID: employee.EmployeeID,
		Month:      month,
		Dates:      []string{monthDate(month, 2)},
	})
	if err != nil {
		t.Fatalf("Validate 應成功: %v", err)
	}
	if result.Accepted {
		t.Error("禁休日應拒絕")
	}
	if len(mocks.assignment.assignments) != 0 {
		t.Error("預檢不應落庫")
	}
}

// ── CloseSession 測試 ──

func TestSchedulingService_CloseSession(t *testing.T) {
	svc, mocks := setupTestSchedulingService()
	_, employee := seedStoreAndEmployee(mocks)
	month := nextMonth()
	session := seedOpenSession(mocks, employee.EmployeeID, month, time.Now().Add(20*time.Minute))

	result, err := svc.CloseSession(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("CloseSession 應成功: %v", err)
	}
	if result.Status != model.SessionStatusClosed {
		t.Errorf("期望狀態 closed，實際=%s", result.Status)
	}
}

package rules

import (
	"fmt"
	"time"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	pkgerrors "github.com/chatscai10/employee-management-system-sub002/pkg/errors"
)

// 配額違規代碼
const (
	ViolationMonthlyCap     = "monthly_cap"      // 員工當月休假總數超過上限
	ViolationDailyCap       = "daily_cap"        // 單日全體休假人數超過上限
	ViolationWeekendCap     = "weekend_cap"      // 週末休假天數超過上限
	ViolationStoreDailyCap  = "store_daily_cap"  // 同分店同日同池休假人數超過上限
	ViolationRestrictedDate = "restricted_date"  // 分店禁休日
	ViolationPublicHoliday  = "public_holiday"   // 公休日已配給、不可重複申請
	ViolationDuplicateDate  = "duplicate_date"   // 與既有核配重複
)

// Violation 單條配額違規；Date 為空表示違規屬於整月層級
type Violation struct {
	Code    string `json:"code"`
	Date    string `json:"date,omitempty"`
	Message string `json:"message"`
}

// ValidationResult 排班申請驗證結果；違規全數收集、不提前中斷
type ValidationResult struct {
	Accepted   bool        `json:"accepted"`
	Violations []Violation `json:"violations"`
}

// SchedulingRequest 一次排班休假申請
type SchedulingRequest struct {
	EmployeeID string
	StoreID    string
	Pool       string // 正職 | 待命 | 兼職
	Month      string // YYYY-MM
	Dates      []string
}

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// storePoolCap 各子池的同分店每日上限
func storePoolCap(pool string, settings *model.OperationSettings) int {
	switch pool {
	case model.PositionStandby:
		return settings.MaxStoreStandbyPerDay
	case model.PositionPartTime:
		return settings.MaxStorePartTimePerDay
	default:
		return settings.MaxStoreVacationPerDay
	}
}

func isWeekend(d time.Time, weekendDays model.IntArray) bool {
	wd := int(d.Weekday())
	for _, w := range weekendDays {
		if wd == w {
			return true
		}
	}
	return false
}

// holidaysInMonth 分店公休日中屬於指定月份者
func holidaysInMonth(store *model.Store, month string) []string {
	out := make([]string, 0)
	for _, h := range store.PublicHolidays {
		if len(h) >= 7 && h[:7] == month {
			out = append(out, h)
		}
	}
	return out
}

// ValidateSchedulingRequest 排班休假申請的五項配額檢查
//
// existing 為目標月份的全體既有核配快照（含其他員工、其他分店）。
// 五項檢查依序全部執行、違規全數收集；零違規才接受。
// 分店公休日視為已配給的休假：計入員工月配額、但不可重複申請。
func ValidateSchedulingRequest(
	req SchedulingRequest,
	existing []model.VacationAssignment,
	store *model.Store,
	settings *model.OperationSettings,
) (ValidationResult, error) {
	if len(req.Dates) == 0 {
		return ValidationResult{}, pkgerrors.NewValidation("dates", "申請日期不得為空")
	}
	if _, err := time.Parse(monthLayout, req.Month); err != nil {
		return ValidationResult{}, pkgerrors.NewValidation("month", "月份格式必須為 YYYY-MM")
	}

	parsed := make([]time.Time, 0, len(req.Dates))
	seen := make(map[string]bool, len(req.Dates))
	for _, d := range req.Dates {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			return ValidationResult{}, pkgerrors.NewValidation("dates", fmt.Sprintf("日期格式錯誤：%s", d))
		}
		if d[:7] != req.Month {
			return ValidationResult{}, pkgerrors.NewValidation("dates", fmt.Sprintf("日期 %s 不在月份 %s 內", d, req.Month))
		}
		if seen[d] {
			return ValidationResult{}, pkgerrors.NewValidation("dates", fmt.Sprintf("日期 %s 重複提交", d))
		}
		seen[d] = true
		parsed = append(parsed, t)
	}

	violations := make([]Violation, 0)

	// 既有核配的各維度計數
	employeeDates := make(map[string]bool)      // 該員工已核配的日期
	dailyTotal := make(map[string]int)          // 日期 → 全體休假人數
	storePoolDaily := make(map[string]int)      // 日期 → 同分店同池休假人數
	employeeWeekendCount := 0
	for i := range existing {
		a := &existing[i]
		day := a.DateKey()
		dailyTotal[day]++
		if a.StoreID == req.StoreID && a.Pool == req.Pool {
			storePoolDaily[day]++
		}
		if a.EmployeeID == req.EmployeeID {
			employeeDates[day] = true
			if isWeekend(a.Date, settings.WeekendDays) {
				employeeWeekendCount++
			}
		}
	}
	holidays := holidaysInMonth(store, req.Month)

	// 1. 員工月配額：既有核配 + 公休日 + 本次申請
	monthlyCount := len(employeeDates) + len(holidays) + len(req.Dates)
	if monthlyCount > settings.MaxVacationDaysPerMonth {
		violations = append(violations, Violation{
			Code: ViolationMonthlyCap,
			Message: fmt.Sprintf("當月休假共 %d 天，超過上限 %d 天",
				monthlyCount, settings.MaxVacationDaysPerMonth),
		})
	}

	poolCap := storePoolCap(req.Pool, settings)
	requestedWeekend := 0
	for i, d := range req.Dates {
		t := parsed[i]

		// 2. 單日全體上限
		if dailyTotal[d]+1 > settings.MaxDailyVacationTotal {
			violations = append(violations, Violation{
				Code: ViolationDailyCap,
				Date: d,
				Message: fmt.Sprintf("%s 全體休假已達 %d 人，超過單日上限 %d 人",
					d, dailyTotal[d]+1, settings.MaxDailyVacationTotal),
			})
		}

		// 3. 週末上限（既有 + 本次）
		if isWeekend(t, settings.WeekendDays) {
			requestedWeekend++
		}

		// 4. 同分店同日同池上限
		if storePoolDaily[d]+1 > poolCap {
			violations = append(violations, Violation{
				Code: ViolationStoreDailyCap,
				Date: d,
				Message: fmt.Sprintf("%s 同分店（%s 池）休假已達 %d 人，超過上限 %d 人",
					d, req.Pool, storePoolDaily[d]+1, poolCap),
			})
		}

		// 5. 禁休日與公休日
		if store.RestrictedDates.Contains(d) {
			violations = append(violations, Violation{
				Code:    ViolationRestrictedDate,
				Date:    d,
				Message: fmt.Sprintf("%s 為分店禁休日", d),
			})
		}
		if store.PublicHolidays.Contains(d) {
			violations = append(violations, Violation{
				Code:    ViolationPublicHoliday,
				Date:    d,
				Message: fmt.Sprintf("%s 為分店公休日，已視為休假、不可重複申請", d),
			})
		}
		if employeeDates[d] {
			violations = append(violations, Violation{
				Code:    ViolationDuplicateDate,
				Date:    d,
				Message: fmt.Sprintf("%s 已有核配休假", d),
			})
		}
	}

	if employeeWeekendCount+requestedWeekend > settings.MaxWeekendVacationDays {
		violations = append(violations, Violation{
			Code: ViolationWeekendCap,
			Message: fmt.Sprintf("當月週末休假共 %d 天，超過上限 %d 天",
				employeeWeekendCount+requestedWeekend, settings.MaxWeekendVacationDays),
		})
	}

	return ValidationResult{
		Accepted:   len(violations) == 0,
		Violations: violations,
	}, nil
}

// SchedulingWindow 指定月份的排班編輯視窗：落在目標月份的前一個月，
// 自 open_day open_hour 起至 close_day close_hour 止
func SchedulingWindow(month string, settings *model.OperationSettings, loc *time.Location) (opensAt, closesAt time.Time, err error) {
	target, err := time.ParseInLocation(monthLayout, month, loc)
	if err != nil {
		return time.Time{}, time.Time{}, pkgerrors.NewValidation("month", "月份格式必須為 YYYY-MM")
	}
	prev := target.AddDate(0, -1, 0)
	opensAt = time.Date(prev.Year(), prev.Month(), settings.OpenDay, settings.OpenHour, 0, 0, 0, loc)
	closesAt = time.Date(prev.Year(), prev.Month(), settings.CloseDay, settings.CloseHour, 0, 0, 0, loc)
	return opensAt, closesAt, nil
}

// WithinSchedulingWindow 目前時刻是否在指定月份的編輯視窗內
func WithinSchedulingWindow(month string, now time.Time, settings *model.OperationSettings) (bool, error) {
	opensAt, closesAt, err := SchedulingWindow(month, settings, now.Location())
	if err != nil {
		return false, err
	}
	return !now.Before(opensAt) && now.Before(closesAt), nil
}

// EffectiveSessionStatus 以牆鐘推導工作階段的有效狀態：
// open 但 now >= expires_at 視為 expired。不依賴背景計時器。
func EffectiveSessionStatus(s *model.SchedulingSession, now time.Time) string {
	if s.Status == model.SessionStatusOpen && !now.Before(s.ExpiresAt) {
		return model.SessionStatusExpired
	}
	return s.Status
}

package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/chatscai10/employee-management-system-sub002/internal/model"
	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
)

// testDate YYYY-MM-DD 轉當日零點 UTC，與 DATE 欄位讀回的形狀一致
func testDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ── Mock StoreRepository ──

type mockStoreRepo struct {
	stores map[string]*model.Store
	order  []string // 保持插入順序，圍欄解析依此順序
}

func newMockStoreRepo() *mockStoreRepo {
	return &mockStoreRepo{stores: make(map[string]*model.Store)}
}

func (m *mockStoreRepo) Create(_ context.Context, store *model.Store) error {
	if store.StoreID == "" {
		store.StoreID = "store-" + store.Name
	}
	m.stores[store.StoreID] = store
	m.order = append(m.order, store.StoreID)
	return nil
}

func (m *mockStoreRepo) GetByID(_ context.Context, id string) (*model.Store, error) {
	if s, ok := m.stores[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStoreRepo) GetByName(_ context.Context, name string) (*model.Store, error) {
	for _, s := range m.stores {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStoreRepo) List(_ context.Context, includeInactive bool) ([]model.Store, error) {
	var result []model.Store
	for _, id := range m.order {
		s := m.stores[id]
		if !includeInactive && !s.IsActive {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStoreRepo) ListActive(ctx context.Context) ([]model.Store, error) {
	return m.List(ctx, false)
}

func (m *mockStoreRepo) Update(_ context.Context, store *model.Store) error {
	if _, ok := m.stores[store.StoreID]; !ok {
		return gorm.ErrRecordNotFound
	}
	store.Version++
	m.stores[store.StoreID] = store
	return nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = "emp-" + employee.Name
	}
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context, storeID, status string, offset, limit int) ([]model.Employee, int64, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if storeID != "" && e.StoreID != storeID {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	if _, ok := m.employees[employee.EmployeeID]; !ok {
		return gorm.ErrRecordNotFound
	}
	employee.Version++
	m.employees[employee.EmployeeID] = employee
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records []model.AttendanceRecord
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	m.records = append(m.records, *record)
	return nil
}

func (m *mockAttendanceRepo) ListRecentByEmployee(_ context.Context, employeeID string, limit int) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.EmployeeID == employeeID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CheckedInAt.After(result[j].CheckedInAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockAttendanceRepo) List(_ context.Context, employeeID string, offset, limit int) ([]model.AttendanceRecord, int64, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if employeeID != "" && r.EmployeeID != employeeID {
			continue
		}
		result = append(result, r)
	}
	return result, int64(len(result)), nil
}

// ── Mock OrderingItemRepository ──

type mockOrderingItemRepo struct {
	items map[string]*model.OrderingItem
	order []string
}

func newMockOrderingItemRepo() *mockOrderingItemRepo {
	return &mockOrderingItemRepo{items: make(map[string]*model.OrderingItem)}
}

func (m *mockOrderingItemRepo) Create(_ context.Context, item *model.OrderingItem) error {
	if item.ItemID == "" {
		item.ItemID = "item-" + item.Product
	}
	m.items[item.ItemID] = item
	m.order = append(m.order, item.ItemID)
	return nil
}

func (m *mockOrderingItemRepo) GetByID(_ context.Context, id string) (*model.OrderingItem, error) {
	if it, ok := m.items[id]; ok {
		return it, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderingItemRepo) GetActiveByProduct(_ context.Context, product string) (*model.OrderingItem, error) {
	for _, it := range m.items {
		if it.Product == product && it.IsActive {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderingItemRepo) List(_ context.Context, category string, includeInactive bool) ([]model.OrderingItem, error) {
	var result []model.OrderingItem
	for _, id := range m.order {
		it := m.items[id]
		if category != "" && it.Category != category {
			continue
		}
		if !includeInactive && !it.IsActive {
			continue
		}
		result = append(result, *it)
	}
	return result, nil
}

func (m *mockOrderingItemRepo) Update(_ context.Context, item *model.OrderingItem) error {
	if _, ok := m.items[item.ItemID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[item.ItemID] = item
	return nil
}

// ── Mock OrderingRecordRepository ──

type mockOrderingRecordRepo struct {
	records []model.OrderingRecord
}

func newMockOrderingRecordRepo() *mockOrderingRecordRepo {
	return &mockOrderingRecordRepo{}
}

func (m *mockOrderingRecordRepo) Create(_ context.Context, record *model.OrderingRecord) error {
	m.records = append(m.records, *record)
	return nil
}

func (m *mockOrderingRecordRepo) ListAll(_ context.Context) ([]model.OrderingRecord, error) {
	result := make([]model.OrderingRecord, len(m.records))
	copy(result, m.records)
	return result, nil
}

func (m *mockOrderingRecordRepo) List(_ context.Context, employeeID string, offset, limit int) ([]model.OrderingRecord, int64, error) {
	var result []model.OrderingRecord
	for _, r := range m.records {
		if employeeID != "" && r.EmployeeID != employeeID {
			continue
		}
		result = append(result, r)
	}
	return result, int64(len(result)), nil
}

// ── Mock RevenueRepository ──

type mockRevenueRepo struct {
	records []model.RevenueRecord
}

func newMockRevenueRepo() *mockRevenueRepo {
	return &mockRevenueRepo{}
}

func (m *mockRevenueRepo) Create(_ context.Context, record *model.RevenueRecord) error {
	m.records = append(m.records, *record)
	return nil
}

func (m *mockRevenueRepo) GetByID(_ context.Context, id string) (*model.RevenueRecord, error) {
	for i := range m.records {
		if m.records[i].RecordID == id {
			return &m.records[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRevenueRepo) ListByStoreMonth(_ context.Context, storeID, month string) ([]model.RevenueRecord, error) {
	var result []model.RevenueRecord
	for _, r := range m.records {
		if r.StoreID == storeID && strings.HasPrefix(r.DateKey(), month) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockRevenueRepo) List(_ context.Context, storeID, month string, offset, limit int) ([]model.RevenueRecord, int64, error) {
	var result []model.RevenueRecord
	for _, r := range m.records {
		if storeID != "" && r.StoreID != storeID {
			continue
		}
		if month != "" && !strings.HasPrefix(r.DateKey(), month) {
			continue
		}
		result = append(result, r)
	}
	return result, int64(len(result)), nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct {
	sessions map[string]*model.SchedulingSession
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*model.SchedulingSession)}
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.SchedulingSession) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (*model.SchedulingSession, error) {
	if s, ok := m.sessions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) GetOpenByEmployeeMonth(_ context.Context, employeeID, month string) (*model.SchedulingSession, error) {
	for _, s := range m.sessions {
		if s.EmployeeID == employeeID && s.Month == month && s.Status == model.SessionStatusOpen {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) Update(_ context.Context, session *model.SchedulingSession) error {
	if _, ok := m.sessions[session.SessionID]; !ok {
		return gorm.ErrRecordNotFound
	}
	session.Version++
	cp := *session
	m.sessions[session.SessionID] = &cp
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments []model.VacationAssignment
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{}
}

func (m *mockAssignmentRepo) BatchCreate(_ context.Context, assignments []model.VacationAssignment) error {
	m.assignments = append(m.assignments, assignments...)
	return nil
}

func (m *mockAssignmentRepo) ListByMonth(_ context.Context, month string) ([]model.VacationAssignment, error) {
	var result []model.VacationAssignment
	for _, a := range m.assignments {
		if strings.HasPrefix(a.DateKey(), month) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListByEmployeeMonth(_ context.Context, employeeID, month string) ([]model.VacationAssignment, error) {
	var result []model.VacationAssignment
	for _, a := range m.assignments {
		if a.EmployeeID == employeeID && strings.HasPrefix(a.DateKey(), month) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListByStoreMonth(_ context.Context, storeID, month string) ([]model.VacationAssignment, error) {
	var result []model.VacationAssignment
	for _, a := range m.assignments {
		if a.StoreID == storeID && strings.HasPrefix(a.DateKey(), month) {
			result = append(result, a)
		}
	}
	return result, nil
}

// ── Mock SettingsRepository ──

type mockSettingsRepo struct {
	settings *model.OperationSettings
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{settings: defaultTestSettings()}
}

func (m *mockSettingsRepo) Get(_ context.Context) (*model.OperationSettings, error) {
	if m.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m.settings
	return &cp, nil
}

func (m *mockSettingsRepo) Save(_ context.Context, settings *model.OperationSettings) error {
	cp := *settings
	m.settings = &cp
	return nil
}

// ── 測試輔助 ──

// defaultTestSettings 與遷移種子資料一致的預設營運設定
func defaultTestSettings() *model.OperationSettings {
	return &model.OperationSettings{
		Singleton:               true,
		MaxVacationDaysPerMonth: 8,
		MaxDailyVacationTotal:   6,
		MaxWeekendVacationDays:  3,
		MaxStoreVacationPerDay:  2,
		MaxStoreStandbyPerDay:   1,
		MaxStorePartTimePerDay:  1,
		WeekendDays:             model.IntArray{5, 6, 0},
		OpenDay:                 16,
		OpenHour:                2,
		CloseDay:                21,
		CloseHour:               2,
		OperationTimeMinutes:    30,
		StaleDays:               3,
		FrequentDays:            2,
		WeekdayBonusThreshold:   13000,
		WeekdayBonusRate:        0.30,
		HolidayBonusThreshold:   0,
		HolidayBonusRate:        0.38,
		ServiceFees:             model.FeeMap{"熊貓": 0.35, "UberEats": 0.35},
	}
}

// testMocks 各 mock repo 的直接入口，便於測試中預置資料
type testMocks struct {
	store          *mockStoreRepo
	employee       *mockEmployeeRepo
	attendance     *mockAttendanceRepo
	orderingItem   *mockOrderingItemRepo
	orderingRecord *mockOrderingRecordRepo
	revenue        *mockRevenueRepo
	session        *mockSessionRepo
	assignment     *mockAssignmentRepo
	settings       *mockSettingsRepo
}

func newTestRepository() (*repository.Repository, *testMocks) {
	mocks := &testMocks{
		store:          newMockStoreRepo(),
		employee:       newMockEmployeeRepo(),
		attendance:     newMockAttendanceRepo(),
		orderingItem:   newMockOrderingItemRepo(),
		orderingRecord: newMockOrderingRecordRepo(),
		revenue:        newMockRevenueRepo(),
		session:        newMockSessionRepo(),
		assignment:     newMockAssignmentRepo(),
		settings:       newMockSettingsRepo(),
	}
	repo := &repository.Repository{
		Store:          mocks.store,
		Employee:       mocks.employee,
		Attendance:     mocks.attendance,
		OrderingItem:   mocks.orderingItem,
		OrderingRecord: mocks.orderingRecord,
		Revenue:        mocks.revenue,
		Session:        mocks.session,
		Assignment:     mocks.assignment,
		Settings:       mocks.settings,
	}
	return repo, mocks
}

// seedStoreAndEmployee 預置一家分店與一名在職正職員工
func seedStoreAndEmployee(mocks *testMocks) (*model.Store, *model.Employee) {
	store := &model.Store{
		StoreID:      "store-001",
		Name:         "中壢忠孝店",
		Latitude:     24.9748,
		Longitude:    121.2557,
		RadiusMeters: 100,
		IsActive:     true,
	}
	mocks.store.stores[store.StoreID] = store
	mocks.store.order = append(mocks.store.order, store.StoreID)

	employee := &model.Employee{
		EmployeeID: "emp-001",
		Name:       "王小明",
		Position:   model.PositionFullTime,
		StoreID:    store.StoreID,
		Status:     model.EmployeeStatusActive,
	}
	mocks.employee.employees[employee.EmployeeID] = employee

	return store, employee
}

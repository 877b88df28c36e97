package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/motorph/payroll-backend-go/internal/domain/attendance"
	"github.com/motorph/payroll-backend-go/internal/domain/employee"
	"github.com/motorph/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}
func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) CreateIgnore(ctx context.Context, emp employee.Employee) (bool, error) {
	return true, nil
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, id string) ([]attendance.Attendance, error) {
	return f.records, nil
}
func (f *fakeAttendanceRepo) ListByEmployeeBetween(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) error {
	f.records = append(f.records, att)
	return nil
}

type fakeReleaseRepo struct {
	flags map[string]bool
}

func releaseKey(id string, year, month int) string {
	return id + "/" + time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakeReleaseRepo) GetReleaseStatus(ctx context.Context, id string, year, month int) (bool, error) {
	return f.flags[releaseKey(id, year, month)], nil
}
func (f *fakeReleaseRepo) ToggleRelease(ctx context.Context, id string, year, month int) error {
	key := releaseKey(id, year, month)
	if _, ok := f.flags[key]; !ok {
		f.flags[key] = true
		return nil
	}
	f.flags[key] = !f.flags[key]
	return nil
}

func fp(v float64) *float64 { return &v }

func newTestService(records []attendance.Attendance) (payroll.PayrollService, *fakeReleaseRepo) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"10001": {
			EmployeeID: "10001",
			LastName:   "Garcia",
			FirstName:  "Manuel",
			HourlyRate: decimal.RequireFromString("500"),
		},
	}}
	relRepo := &fakeReleaseRepo{flags: map[string]bool{}}
	svc := NewPayrollService(empRepo, &fakeAttendanceRepo{records: records}, relRepo)
	return svc, relRepo
}

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestGetSummary_WeeklyGrouping(t *testing.T) {
	ctx := context.Background()

	// Two 06:00-15:00 shifts (8h after lunch) in week 1 and week 2.
	svc, _ := newTestService([]attendance.Attendance{
		{EmployeeID: "10001", Date: day(3), LogIn: fp(0.25), LogOut: fp(0.625)},
		{EmployeeID: "10001", Date: day(10), LogIn: fp(0.25), LogOut: fp(0.625)},
	})

	summary, err := svc.GetSummary(ctx, "10001", 2024, 6)
	require.NoError(t, err)

	require.Len(t, summary.Weeks, 2)
	assert.Equal(t, 1, summary.Weeks[0].Week)
	assert.Equal(t, 2, summary.Weeks[1].Week)

	for _, w := range summary.Weeks {
		assert.True(t, w.Hours.Equal(decimal.RequireFromString("8")), "hours = %s", w.Hours)
		assert.True(t, w.Gross.Equal(decimal.RequireFromString("4000")), "gross = %s", w.Gross)
		// Deductions on 4000: SSS 180 + PhilHealth 300 + Pag-IBIG 80, no tax.
		assert.True(t, w.Net.Equal(decimal.RequireFromString("3440")), "net = %s", w.Net)
	}

	assert.True(t, summary.TotalHours.Equal(decimal.RequireFromString("16")))
	assert.True(t, summary.MonthlyGross.Equal(decimal.RequireFromString("8000")))
	assert.False(t, summary.IsReleased)
}

func TestGetSummary_MonthlyNetIsNotSumOfWeeklyNets(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService([]attendance.Attendance{
		{EmployeeID: "10001", Date: day(3), LogIn: fp(0.25), LogOut: fp(0.625)},
		{EmployeeID: "10001", Date: day(10), LogIn: fp(0.25), LogOut: fp(0.625)},
	})

	summary, err := svc.GetSummary(ctx, "10001", 2024, 6)
	require.NoError(t, err)

	weeklyNetSum := decimal.Zero
	for _, w := range summary.Weeks {
		weeklyNetSum = weeklyNetSum.Add(w.Net)
	}

	// Monthly deductions on 8000: SSS 360 + PhilHealth 300 + Pag-IBIG
	// capped at 100 = 760, so net 7240. The weekly nets sum to 6880:
	// the brackets are non-linear across the weekly split.
	assert.True(t, summary.MonthlyNet.Equal(decimal.RequireFromString("7240")), "monthly net = %s", summary.MonthlyNet)
	assert.True(t, weeklyNetSum.Equal(decimal.RequireFromString("6880")), "weekly net sum = %s", weeklyNetSum)
	assert.False(t, summary.MonthlyNet.Equal(weeklyNetSum))
}

func TestGetSummary_OnlyOccupiedWeeksPresent(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService([]attendance.Attendance{
		{EmployeeID: "10001", Date: day(2), LogIn: fp(0.25), LogOut: fp(0.625)},
		{EmployeeID: "10001", Date: day(5), LogIn: fp(0.25), LogOut: fp(0.625)},
	})

	summary, err := svc.GetSummary(ctx, "10001", 2024, 6)
	require.NoError(t, err)

	require.Len(t, summary.Weeks, 1)
	assert.Equal(t, 1, summary.Weeks[0].Week)
	assert.True(t, summary.Weeks[0].Hours.Equal(decimal.RequireFromString("16")))
}

func TestGetSummary_MissingClockEventContributesNothing(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService([]attendance.Attendance{
		{EmployeeID: "10001", Date: day(3), LogIn: fp(0.25), LogOut: nil},
	})

	summary, err := svc.GetSummary(ctx, "10001", 2024, 6)
	require.NoError(t, err)

	// The week appears (a row occurred in it) but carries no hours.
	require.Len(t, summary.Weeks, 1)
	assert.True(t, summary.Weeks[0].Hours.IsZero())
	assert.True(t, summary.Weeks[0].Gross.IsZero())
	assert.True(t, summary.TotalHours.IsZero())
	assert.True(t, summary.MonthlyGross.IsZero())
}

func TestGetSummary_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.GetSummary(context.Background(), "99999", 2024, 6)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetSummary_InvalidPeriod(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.GetSummary(context.Background(), "10001", 2024, 13)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = svc.GetSummary(context.Background(), "10001", 1850, 6)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestToggleRelease_SequentialTogglesReturnToOriginal(t *testing.T) {
	ctx := context.Background()
	svc, relRepo := newTestService(nil)

	require.NoError(t, svc.ToggleRelease(ctx, "10001", 2024, 6))
	released, err := relRepo.GetReleaseStatus(ctx, "10001", 2024, 6)
	require.NoError(t, err)
	assert.True(t, released, "first toggle creates the flag as released")

	require.NoError(t, svc.ToggleRelease(ctx, "10001", 2024, 6))
	released, err = relRepo.GetReleaseStatus(ctx, "10001", 2024, 6)
	require.NoError(t, err)
	assert.False(t, released, "second toggle returns to the original state")
}

func TestToggleRelease_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(nil)
	err := svc.ToggleRelease(context.Background(), "99999", 2024, 6)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestWeekOfMonth(t *testing.T) {
	cases := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {28, 4}, {29, 5}, {31, 5},
	}
	for _, c := range cases {
		if got := weekOfMonth(c.day); got != c.want {
			t.Errorf("weekOfMonth(%d) = %d, want %d", c.day, got, c.want)
		}
	}
}

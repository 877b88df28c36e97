package payroll

import (
	"context"
	"sort"
	"time"

	"github.com/motorph/payroll-backend-go/internal/domain/attendance"
	"github.com/motorph/payroll-backend-go/internal/domain/employee"
	"github.com/motorph/payroll-backend-go/internal/domain/payroll"
	"github.com/motorph/payroll-backend-go/internal/pkg/clock"
	"github.com/motorph/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	releaseRepo    payroll.ReleaseStatusRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	releaseRepo payroll.ReleaseStatusRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		releaseRepo:    releaseRepo,
	}
}

// weekOfMonth groups days 1-7 into week 1, 8-14 into week 2 and so on.
// Deliberately day-of-month based, not ISO weeks: boundaries follow the
// 1st of the month and the last week may be short.
func weekOfMonth(day int) int {
	return (day + 6) / 7
}

// aggregateWeeks folds attendance rows into week buckets. A bucket
// exists for every week that has at least one row; rows with a missing
// clock event contribute zero hours but still open their bucket.
// Accumulation is unrounded; callers round at the boundary.
func aggregateWeeks(records []attendance.Attendance, hourlyRate decimal.Decimal) []payroll.WeekBucket {
	buckets := make(map[int]*payroll.WeekBucket)

	for _, rec := range records {
		week := weekOfMonth(rec.Date.Day())
		bucket, ok := buckets[week]
		if !ok {
			bucket = &payroll.WeekBucket{Week: week, Gross: decimal.Zero}
			buckets[week] = bucket
		}

		if rec.LogIn == nil || rec.LogOut == nil {
			continue
		}

		hours := clock.ShiftHours(rec.LogIn, rec.LogOut)
		bucket.Hours += hours
		bucket.Gross = bucket.Gross.Add(hourlyRate.Mul(decimal.NewFromFloat(hours)))
	}

	result := make([]payroll.WeekBucket, 0, len(buckets))
	for _, b := range buckets {
		ded := CalculateDeductions(b.Gross)
		b.Net = b.Gross.Sub(ded.Total)
		result = append(result, *b)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Week < result[j].Week })

	return result
}

// GetSummary implements payroll.PayrollService. The summary is computed
// fresh per request; nothing but the release flag is read back from
// storage state.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, employeeID string, year, month int) (payroll.PayrollSummaryResponse, error) {
	if !validator.IsValidYear(year) || !validator.IsValidMonth(month) {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1) // last calendar day, leap years included

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	weeks := aggregateWeeks(records, emp.HourlyRate)

	totalHours := 0.0
	monthlyGross := decimal.Zero
	weekResponses := make([]payroll.WeekPayResponse, 0, len(weeks))
	for _, w := range weeks {
		totalHours += w.Hours
		monthlyGross = monthlyGross.Add(w.Gross)
		weekResponses = append(weekResponses, payroll.WeekPayResponse{
			Week:  w.Week,
			Hours: decimal.NewFromFloat(w.Hours).Round(2),
			Gross: w.Gross.Round(2),
			Net:   w.Net.Round(2),
		})
	}

	// Monthly net comes from the monthly gross, not the weekly nets:
	// the brackets are non-linear, so the two do not agree.
	monthlyDeductions := CalculateDeductions(monthlyGross)
	monthlyNet := monthlyGross.Sub(monthlyDeductions.Total)

	released, err := s.releaseRepo.GetReleaseStatus(ctx, employeeID, year, month)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	return payroll.PayrollSummaryResponse{
		Weeks:             weekResponses,
		TotalHours:        decimal.NewFromFloat(totalHours).Round(2),
		MonthlyGross:      monthlyGross.Round(2),
		MonthlyNet:        monthlyNet.Round(2),
		MonthlyDeductions: monthlyDeductions.ToResponse(),
		IsReleased:        released,
	}, nil
}

// ToggleRelease implements payroll.PayrollService.
func (s *PayrollServiceImpl) ToggleRelease(ctx context.Context, employeeID string, year, month int) error {
	if !validator.IsValidYear(year) || !validator.IsValidMonth(month) {
		return payroll.ErrInvalidPeriod
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}

	return s.releaseRepo.ToggleRelease(ctx, employeeID, year, month)
}

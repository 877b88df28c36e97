package attendance

import (
	"context"
	"math"

	"github.com/motorph/payroll-backend-go/internal/domain/attendance"
	"github.com/motorph/payroll-backend-go/internal/domain/employee"
	"github.com/motorph/payroll-backend-go/internal/pkg/clock"
	"github.com/motorph/payroll-backend-go/internal/pkg/validator"
)

// AttendanceService serves the attendance-record view: raw clock rows
// with derived hours, for one employee.
type AttendanceService interface {
	ListByEmployee(ctx context.Context, employeeID string) (attendance.ListAttendanceResponse, error)
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ListByEmployee implements AttendanceService. Hours are derived on
// every read, never stored.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) (attendance.ListAttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceRecordResponse, 0, len(records))
	for _, rec := range records {
		hours := clock.DisplayHours(clock.ShiftHours(rec.LogIn, rec.LogOut))
		responses = append(responses, attendance.AttendanceRecordResponse{
			Date:        validator.FormatDate(rec.Date),
			LogIn:       clock.FractionToClock(rec.LogIn),
			LogOut:      clock.FractionToClock(rec.LogOut),
			HoursWorked: math.Round(hours*100) / 100,
		})
	}

	return attendance.ListAttendanceResponse{Records: responses}, nil
}

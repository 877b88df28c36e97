package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for time-clock rows.
type AttendanceRepository interface {
	// ListByEmployee retrieves every row for an employee, oldest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListByEmployeeBetween retrieves rows in [from, to], ordered by date
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// Upsert inserts or replaces the row for (employee, date).
	// Runs inside the ambient transaction when one is on the context.
	Upsert(ctx context.Context, att Attendance) error
}

package attendance

import "time"

// Attendance is one time-clock row: at most one per (employee, date).
// LogIn/LogOut are Excel-style fractional-day values (0.0 = midnight,
// 0.5 = noon); nil means no clock event was recorded.
type Attendance struct {
	ID         int64
	EmployeeID string
	Date       time.Time
	LogIn      *float64
	LogOut     *float64
}

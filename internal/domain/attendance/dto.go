package attendance

// AttendanceRecordResponse is one row of the attendance view: clock
// values rendered as HH:MM, worked hours derived (floored at zero for
// display) and rounded to 2 decimals.
type AttendanceRecordResponse struct {
	Date        string  `json:"date"` // MM/DD/YYYY
	LogIn       string  `json:"log_in,omitempty"`
	LogOut      string  `json:"log_out,omitempty"`
	HoursWorked float64 `json:"hours_worked"`
}

type ListAttendanceResponse struct {
	Records []AttendanceRecordResponse `json:"records"`
}

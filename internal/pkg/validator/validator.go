package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// DateLayout is the MM/DD/YYYY convention the spreadsheet exports and the
// UI boundary use for calendar dates.
const DateLayout = "01/02/2006"

// ParseDate parses an MM/DD/YYYY date string.
func ParseDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// FormatDate renders a date in the MM/DD/YYYY boundary convention.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidYear bounds payroll years to the range the tool supports.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= 2100
}

// IsValidMonth checks a 1-based calendar month.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsValidDayFraction checks an Excel-style serial time fraction.
func IsValidDayFraction(v float64) bool {
	return v >= 0 && v < 1
}

// Employee ids in the MotorPH exports are plain numbers ("10001").
var employeeIDRegex = regexp.MustCompile(`^[0-9]{1,10}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

package payroll

import "github.com/shopspring/decimal"

// DeductionBreakdown is the per-period statutory withholding set.
// Each amount is rounded to 2 decimal places independently; Total is the
// rounded value of the unrounded sum, so it may drift from the sum of
// the rounded parts by a centavo.
type DeductionBreakdown struct {
	SSS            decimal.Decimal
	PhilHealth     decimal.Decimal
	PagIbig        decimal.Decimal
	WithholdingTax decimal.Decimal
	Total          decimal.Decimal
}

// WeekBucket accumulates one day-of-month week (days 1-7, 8-14, ...)
// within a payroll computation. Transient; never persisted.
type WeekBucket struct {
	Week  int
	Hours float64
	Gross decimal.Decimal
	Net   decimal.Decimal
}

// ReleaseStatus marks an employee-month payroll as disbursed.
// Keyed by (employee, year, month); toggled, never recreated.
type ReleaseStatus struct {
	EmployeeID string
	Year       int
	Month      int
	Released   bool
}

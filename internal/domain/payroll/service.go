package payroll

import "context"

// PayrollService computes payroll summaries and manages release flags.
type PayrollService interface {
	// GetSummary computes the weekly/monthly payroll for one employee-month
	GetSummary(ctx context.Context, employeeID string, year, month int) (PayrollSummaryResponse, error)

	// ToggleRelease flips the release flag; the caller re-queries the summary
	ToggleRelease(ctx context.Context, employeeID string, year, month int) error
}

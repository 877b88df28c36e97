package payroll

import "context"

// ReleaseStatusRepository persists the payroll release flag.
type ReleaseStatusRepository interface {
	// GetReleaseStatus returns the persisted flag, false when no row exists
	GetReleaseStatus(ctx context.Context, employeeID string, year, month int) (bool, error)

	// ToggleRelease flips the flag for the key, creating it as released
	// when absent. Single atomic upsert, no read-then-write round trip.
	ToggleRelease(ctx context.Context, employeeID string, year, month int) error
}

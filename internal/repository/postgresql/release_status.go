package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/motorph/payroll-backend-go/internal/domain/payroll"
	"github.com/motorph/payroll-backend-go/internal/pkg/database"
)

type releaseStatusRepositoryImpl struct {
	db *database.DB
}

func NewReleaseStatusRepository(db *database.DB) payroll.ReleaseStatusRepository {
	return &releaseStatusRepositoryImpl{db: db}
}

// GetReleaseStatus implements payroll.ReleaseStatusRepository.
func (r *releaseStatusRepositoryImpl) GetReleaseStatus(ctx context.Context, employeeID string, year, month int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT released FROM payroll_status
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	var released bool
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(&released)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to get release status: %w", err)
	}

	return released, nil
}

// ToggleRelease implements payroll.ReleaseStatusRepository. The flip is
// a single conditional upsert so concurrent toggles cannot interleave a
// read with a stale write.
func (r *releaseStatusRepositoryImpl) ToggleRelease(ctx context.Context, employeeID string, year, month int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_status (employee_id, year, month, released)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (employee_id, year, month)
		DO UPDATE SET released = NOT payroll_status.released
	`

	if _, err := q.Exec(ctx, query, employeeID, year, month); err != nil {
		return fmt.Errorf("failed to toggle release status: %w", err)
	}

	return nil
}

package importer

import (
	"context"
	"io"
)

// ImportService ingests spreadsheet exports into the store. Both imports
// are best-effort: committed batches survive a later failure, bad rows
// are skipped and counted.
type ImportService interface {
	// ImportEmployees reads an employee master-data sheet
	ImportEmployees(ctx context.Context, file io.Reader, filename string) (ImportResult, error)

	// ImportAttendance reads a time-clock export sheet
	ImportAttendance(ctx context.Context, file io.Reader, filename string) (ImportResult, error)
}

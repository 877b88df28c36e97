package storage

import (
	"context"
	"io"
)

// FileStorage archives files handed to the import endpoints so a payroll
// run can always be traced back to the spreadsheet that produced it.
type FileStorage interface {
	// Upload stores a file and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error
}

package importer

// ImportResult reports a finished spreadsheet import. Row-level failures
// are counted, not surfaced individually; Success is false only when the
// whole operation could not start (unreadable file, no sheet).
type ImportResult struct {
	Success bool   `json:"success"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
	Error   string `json:"error,omitempty"`
}

package importer

import "errors"

var (
	ErrNoFile  = errors.New("no file provided")
	ErrNoSheet = errors.New("no sheet found in the file")
	ErrBadFile = errors.New("file could not be read as a spreadsheet")
)

package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/motorph/payroll-backend-go/internal/domain/importer"
	"github.com/motorph/payroll-backend-go/internal/handler/http/response"
)

// maxImportSize caps the multipart upload at 20 MB.
const maxImportSize = 20 << 20

type ImportHandler interface {
	ImportEmployees(w http.ResponseWriter, r *http.Request)
	ImportAttendance(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService importer.ImportService
}

func NewImportHandler(svc importer.ImportService) ImportHandler {
	return &importHandlerImpl{importService: svc}
}

func (h *importHandlerImpl) run(
	w http.ResponseWriter,
	r *http.Request,
	do func(ctx context.Context, file io.Reader, filename string) (importer.ImportResult, error),
) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		response.HandleError(w, importer.ErrNoFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.HandleError(w, importer.ErrNoFile)
		return
	}
	defer file.Close()

	result, err := do(r.Context(), file, header.Filename)
	if err != nil {
		slog.Error("Import failed", "file", header.Filename, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ImportEmployees implements ImportHandler
func (h *importHandlerImpl) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.importService.ImportEmployees)
}

// ImportAttendance implements ImportHandler
func (h *importHandlerImpl) ImportAttendance(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.importService.ImportAttendance)
}

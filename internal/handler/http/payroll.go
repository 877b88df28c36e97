package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/motorph/payroll-backend-go/internal/domain/payroll"
	"github.com/motorph/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	ToggleRelease(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(svc payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: svc}
}

func periodParams(r *http.Request) (string, int, int, bool) {
	id := chi.URLParam(r, "id")
	year, errY := strconv.Atoi(r.URL.Query().Get("year"))
	month, errM := strconv.Atoi(r.URL.Query().Get("month"))
	if id == "" || errY != nil || errM != nil {
		return "", 0, 0, false
	}
	return id, year, month, true
}

// GetSummary implements PayrollHandler
func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Employee ID, year and month are required", nil)
		return
	}

	summary, err := h.payrollService.GetSummary(r.Context(), id, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ToggleRelease implements PayrollHandler
func (h *payrollHandlerImpl) ToggleRelease(w http.ResponseWriter, r *http.Request) {
	id, year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Employee ID, year and month are required", nil)
		return
	}

	if err := h.payrollService.ToggleRelease(r.Context(), id, year, month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Release flag toggled", nil)
}

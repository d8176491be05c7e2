package payroll

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-engine/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	StartRun(ctx context.Context, dto CreateRunDTO) (*Run, error)
	GetRun(ctx context.Context, runID int64) (*Run, error)
	ListRuns(ctx context.Context, limit, offset int) ([]*Run, error)
	ListPayslipsForRun(ctx context.Context, runID int64) ([]*payrollDatamodel.Payslip, error)
	ListPayslipsForEmployee(ctx context.Context, employeeID int64, year int) ([]*payrollDatamodel.Payslip, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	var dto CreateRunDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	run, err := h.Service.StartRun(r.Context(), dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, run)
}

func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := h.Service.GetRun(r.Context(), runID)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, run)
}

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	runs, err := h.Service.ListRuns(r.Context(), limit, offset)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, RunsResponse{Runs: runs, Total: len(runs)})
}

func (h *Handler) ListRunPayslips(w http.ResponseWriter, r *http.Request) {
	runID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	payslips, err := h.Service.ListPayslipsForRun(r.Context(), runID)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, toPayslipsResponse(payslips))
}

func (h *Handler) ListEmployeePayslips(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	year := 0
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}

	payslips, err := h.Service.ListPayslipsForEmployee(r.Context(), employeeID, year)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, toPayslipsResponse(payslips))
}

func toPayslipsResponse(payslips []*payrollDatamodel.Payslip) PayslipsResponse {
	responses := make([]PayslipResponse, 0, len(payslips))
	for _, slip := range payslips {
		responses = append(responses, PayslipToResponse(slip))
	}
	return PayslipsResponse{Payslips: responses, Total: len(responses)}
}

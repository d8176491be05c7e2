package employee

import (
	"net/http"
	"strconv"

	"github.com/frahmantamala/payroll-engine/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListActive(departmentID *int64, limit, offset int) ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
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

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	var departmentID *int64
	if v := r.URL.Query().Get("department_id"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid department_id")
			return
		}
		departmentID = &parsed
	}

	employees, err := h.Service.ListActive(departmentID, limit, offset)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, emp.ToResponse())
	}

	h.WriteJSON(w, http.StatusOK, EmployeesResponse{
		Employees: responses,
		Total:     len(responses),
	})
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	emp, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp.ToResponse())
}

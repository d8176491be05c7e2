package compensation

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/payroll-engine/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Resolve(ctx context.Context, employeeID int64, asOf time.Time) (*CompensationRecord, error)
	ListForEmployee(ctx context.Context, employeeID int64) ([]*CompensationRecord, error)
	Create(ctx context.Context, employeeID int64, dto CreateCompensationDTO) (*CompensationRecord, error)
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

func (h *Handler) ListCompensation(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	records, err := h.Service.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, CompensationsResponse{Compensations: records})
}

func (h *Handler) CreateCompensation(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var dto CreateCompensationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Create(r.Context(), employeeID, dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

package bankexport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/frahmantamala/payroll-engine/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Generate(ctx context.Context, runID int64, exportType string) (*ExportFile, error)
	ListBatches(ctx context.Context, runID int64) ([]*Batch, error)
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

// GenerateExport streams the export file back with batch metadata headers.
func (h *Handler) GenerateExport(w http.ResponseWriter, r *http.Request) {
	runID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	exportType := r.URL.Query().Get("format")
	if exportType == "" {
		exportType = ExportTypeACH
	}

	file, err := h.Service.Generate(r.Context(), runID, exportType)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Batch.FileName))
	w.Header().Set("X-Export-Batch-ID", file.Batch.ExternalID)
	w.Header().Set("X-Export-Total-Transactions", strconv.Itoa(file.Batch.TotalTransactions))
	w.Header().Set("X-Export-Total-Amount-Cents", strconv.FormatInt(file.Batch.TotalAmountCents, 10))
	w.Header().Set("X-Export-Skipped", strconv.Itoa(file.Batch.SkippedCount))
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(file.Data); err != nil {
		h.Logger.Error("failed to write export file", "error", err)
	}
}

func (h *Handler) ListExports(w http.ResponseWriter, r *http.Request) {
	runID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	batches, err := h.Service.ListBatches(r.Context(), runID)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"batches": batches,
		"total":   len(batches),
	})
}

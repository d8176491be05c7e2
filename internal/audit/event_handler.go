package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/payroll-engine/internal/core/events"
)

// EventHandler writes an audit trail entry for every payroll lifecycle
// event published on the bus.
type EventHandler struct {
	logger *slog.Logger
}

func NewEventHandler(logger *slog.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) HandleRunCompleted(ctx context.Context, event events.Event) error {
	runEvent, ok := event.(*events.PayrollRunCompletedEvent)
	if !ok {
		h.logger.Error("invalid event type for run completed handler", "event_type", event.EventType())
		return fmt.Errorf("expected PayrollRunCompletedEvent, got %T", event)
	}

	h.logger.Info("audit: payroll run completed",
		"run_id", runEvent.RunID,
		"run_number", runEvent.RunNumber,
		"total_employees", runEvent.TotalEmployees,
		"total_net_cents", runEvent.TotalNetCents,
		"skipped_count", runEvent.SkippedCount,
		"event_id", runEvent.EventID())

	return nil
}

func (h *EventHandler) HandleRunFailed(ctx context.Context, event events.Event) error {
	runEvent, ok := event.(*events.PayrollRunFailedEvent)
	if !ok {
		h.logger.Error("invalid event type for run failed handler", "event_type", event.EventType())
		return fmt.Errorf("expected PayrollRunFailedEvent, got %T", event)
	}

	h.logger.Warn("audit: payroll run failed",
		"run_id", runEvent.RunID,
		"run_number", runEvent.RunNumber,
		"failure_reason", runEvent.FailureReason,
		"event_id", runEvent.EventID())

	return nil
}

func (h *EventHandler) HandleExportGenerated(ctx context.Context, event events.Event) error {
	exportEvent, ok := event.(*events.BankExportGeneratedEvent)
	if !ok {
		h.logger.Error("invalid event type for export generated handler", "event_type", event.EventType())
		return fmt.Errorf("expected BankExportGeneratedEvent, got %T", event)
	}

	h.logger.Info("audit: bank export generated",
		"batch_id", exportEvent.BatchID,
		"run_id", exportEvent.RunID,
		"export_type", exportEvent.ExportType,
		"file_name", exportEvent.FileName,
		"total_amount_cents", exportEvent.TotalAmountCents,
		"total_transactions", exportEvent.TotalTransactions,
		"event_id", exportEvent.EventID())

	return nil
}

func (h *EventHandler) RegisterEventHandlers(eventBus *events.EventBus) {
	eventBus.Subscribe(events.EventTypePayrollRunCompleted, h.HandleRunCompleted)
	eventBus.Subscribe(events.EventTypePayrollRunFailed, h.HandleRunFailed)
	eventBus.Subscribe(events.EventTypeBankExportGenerated, h.HandleExportGenerated)

	h.logger.Info("audit event handlers registered",
		"handlers", []string{
			events.EventTypePayrollRunCompleted,
			events.EventTypePayrollRunFailed,
			events.EventTypeBankExportGenerated,
		})
}

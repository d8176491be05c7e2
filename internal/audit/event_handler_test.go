package audit_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/payroll-engine/internal/audit"
	"github.com/frahmantamala/payroll-engine/internal/core/events"
)

func TestAuditEventHandler(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Audit Event Handler Suite")
}

var _ = Describe("EventHandler", func() {
	var (
		handler *audit.EventHandler
		logger  *slog.Logger
		ctx     context.Context
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = audit.NewEventHandler(logger)
		ctx = context.Background()
	})

	Describe("handling lifecycle events", func() {
		It("should accept a run completed event", func() {
			event := events.NewPayrollRunCompletedEvent(1, "2026-08-A", 3, 1010250, 0)
			Expect(handler.HandleRunCompleted(ctx, event)).To(Succeed())
		})

		It("should accept a run failed event", func() {
			event := events.NewPayrollRunFailedEvent(1, "2026-08-A", "disk full")
			Expect(handler.HandleRunFailed(ctx, event)).To(Succeed())
		})

		It("should accept an export generated event", func() {
			event := events.NewBankExportGeneratedEvent(1, 1, "ach", "payroll_2026-08-A_ach.txt", 619900, 2)
			Expect(handler.HandleExportGenerated(ctx, event)).To(Succeed())
		})

		It("should reject an event of the wrong concrete type", func() {
			failed := events.NewPayrollRunFailedEvent(1, "2026-08-A", "disk full")
			Expect(handler.HandleRunCompleted(ctx, failed)).To(HaveOccurred())
			completed := events.NewPayrollRunCompletedEvent(1, "2026-08-A", 3, 1010250, 0)
			Expect(handler.HandleRunFailed(ctx, completed)).To(HaveOccurred())
		})
	})

	Describe("RegisterEventHandlers", func() {
		It("should receive events published on the bus", func() {
			bus := events.NewEventBus(logger)
			handler.RegisterEventHandlers(bus)

			event := events.NewPayrollRunCompletedEvent(1, "2026-08-A", 3, 1010250, 0)
			Expect(bus.PublishSync(ctx, event)).To(Succeed())

			// A bare BaseEvent under a registered type reaches the handler
			// and is rejected there, proving the subscription is live.
			impostor := events.BaseEvent{
				ID:        "not-a-run-event",
				Type:      events.EventTypePayrollRunCompleted,
				Timestamp: time.Now(),
			}
			Expect(bus.PublishSync(ctx, impostor)).ToNot(Succeed())
		})
	})
})

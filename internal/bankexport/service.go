package bankexport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	errors "github.com/frahmantamala/payroll-engine/internal"
	"github.com/frahmantamala/payroll-engine/internal/compensation"
	bankexportDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/bankexport"
	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-engine/internal/core/events"
	"github.com/frahmantamala/payroll-engine/internal/payroll"
	"github.com/google/uuid"
)

type RepositoryAPI interface {
	Create(batch *bankexportDatamodel.BankExportBatch) error
	ListForRun(runID int64) ([]*bankexportDatamodel.BankExportBatch, error)
}

type RunReaderAPI interface {
	GetRun(ctx context.Context, runID int64) (*payroll.Run, error)
	ListPayslipsForRun(ctx context.Context, runID int64) ([]*payrollDatamodel.Payslip, error)
}

type CompensationResolverAPI interface {
	Resolve(ctx context.Context, employeeID int64, asOf time.Time) (*compensation.CompensationRecord, error)
}

type Service struct {
	repo          RepositoryAPI
	runs          RunReaderAPI
	compensations CompensationResolverAPI
	eventBus      *events.EventBus
	identity      FileIdentity
	logger        *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	runs RunReaderAPI,
	compensations CompensationResolverAPI,
	eventBus *events.EventBus,
	identity FileIdentity,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		runs:          runs,
		compensations: compensations,
		eventBus:      eventBus,
		identity:      identity,
		logger:        logger,
	}
}

// Generate produces a bank export file for a completed run. Payslips whose
// employee lacks routing data are excluded and reported as skipped. The
// resulting batch must reconcile exactly with the included net pay sum;
// a mismatch halts generation with nothing persisted.
func (s *Service) Generate(ctx context.Context, runID int64, exportType string) (*ExportFile, error) {
	exportType = strings.ToLower(exportType)
	if !IsValidExportType(exportType) {
		return nil, errors.NewValidationError("export format must be ach or csv", errors.ErrCodeInvalidExportFormat)
	}

	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != payroll.RunStatusCompleted {
		return nil, errors.NewConflictError("payroll run is not completed", errors.ErrCodeRunNotCompleted)
	}

	payslips, err := s.runs.ListPayslipsForRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	transactions, skipped, err := s.collectTransactions(ctx, run, payslips)
	if err != nil {
		return nil, err
	}

	var expectedTotal int64
	for _, tx := range transactions {
		expectedTotal += tx.AmountCents
	}

	exportDate := time.Now()
	var data []byte
	var generatedCount int
	var generatedTotal int64
	var contentType string

	switch exportType {
	case ExportTypeACH:
		result := generateACH(s.identity, transactions, exportDate)
		data = result.Data
		generatedCount = result.TotalTransactions
		generatedTotal = result.TotalAmountCents
		contentType = "text/plain"
	case ExportTypeCSV:
		result, genErr := generateCSV(transactions)
		if genErr != nil {
			return nil, errors.NewInternalError("failed to generate csv export", genErr)
		}
		data = result.Data
		generatedCount = result.TotalTransactions
		generatedTotal = result.TotalAmountCents
		contentType = "text/csv"
	}

	// The generator's own count and sum must match the independently summed
	// payslip totals. A mismatch is never exported.
	if generatedTotal != expectedTotal || generatedCount != len(transactions) {
		s.logger.Error("export reconciliation mismatch",
			"run_id", runID,
			"expected_total", expectedTotal,
			"generated_total", generatedTotal,
			"expected_count", len(transactions),
			"generated_count", generatedCount)
		return nil, errors.NewInvariantError("export totals do not reconcile with payslips", errors.ErrCodeExportReconciliation)
	}

	fileName := fmt.Sprintf("payroll_%s_%s_%s.%s",
		run.RunNumber, exportType, exportDate.Format("20060102T150405"), fileExtension(exportType))

	batch := &bankexportDatamodel.BankExportBatch{
		ExternalID:        uuid.New().String(),
		PayrollRunID:      runID,
		ExportType:        exportType,
		FileName:          fileName,
		TotalAmountCents:  generatedTotal,
		TotalTransactions: generatedCount,
		SkippedCount:      len(skipped),
		ExportDate:        exportDate,
		Status:            BatchStatusGenerated,
	}
	if err := s.repo.Create(batch); err != nil {
		return nil, errors.NewPersistenceError("failed to persist export batch", err)
	}

	s.logger.Info("bank export generated",
		"run_id", runID,
		"export_type", exportType,
		"file_name", fileName,
		"total_transactions", generatedCount,
		"total_amount_cents", generatedTotal,
		"skipped", len(skipped))

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewBankExportGeneratedEvent(
			batch.ID, runID, exportType, fileName, generatedTotal, generatedCount))
	}

	return &ExportFile{
		Batch:       BatchFromDataModel(batch),
		Skipped:     skipped,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (s *Service) collectTransactions(ctx context.Context, run *payroll.Run, payslips []*payrollDatamodel.Payslip) ([]Transaction, []SkippedPayslip, error) {
	var transactions []Transaction
	var skipped []SkippedPayslip

	for _, slip := range payslips {
		comp, err := s.compensations.Resolve(ctx, slip.EmployeeID, run.PayDate)
		if err != nil {
			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeNoCompensation {
				skipped = append(skipped, SkippedPayslip{
					EmployeeID: slip.EmployeeID,
					Reason:     "no compensation record",
				})
				continue
			}
			return nil, nil, err
		}

		if !comp.HasBankData() {
			skipped = append(skipped, SkippedPayslip{
				EmployeeID: slip.EmployeeID,
				Reason:     "missing bank account or routing number",
			})
			continue
		}

		transactions = append(transactions, Transaction{
			EmployeeID:    slip.EmployeeID,
			ReceiverName:  slip.EmployeeName,
			RoutingNumber: *comp.BankRoutingNumber,
			AccountNumber: *comp.BankAccountNumber,
			AmountCents:   slip.NetPayCents,
			PayDate:       slip.PayDate,
		})
	}

	return transactions, skipped, nil
}

func (s *Service) ListBatches(ctx context.Context, runID int64) ([]*Batch, error) {
	if _, err := s.runs.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	dataBatches, err := s.repo.ListForRun(runID)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to list export batches", err)
	}

	batches := make([]*Batch, 0, len(dataBatches))
	for _, dataBatch := range dataBatches {
		batches = append(batches, BatchFromDataModel(dataBatch))
	}
	return batches, nil
}

func fileExtension(exportType string) string {
	if exportType == ExportTypeCSV {
		return "csv"
	}
	return "txt"
}

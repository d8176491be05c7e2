package bankexport_test

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/payroll-engine/internal"
	"github.com/frahmantamala/payroll-engine/internal/bankexport"
	"github.com/frahmantamala/payroll-engine/internal/compensation"
	bankexportDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/bankexport"
	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-engine/internal/payroll"
)

func TestBankExportService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "BankExport Service Suite")
}

// Mock batch repository for testing
type mockBatchRepository struct {
	batches     []*bankexportDatamodel.BankExportBatch
	nextID      int64
	createError error
}

func newMockBatchRepository() *mockBatchRepository {
	return &mockBatchRepository{nextID: 1}
}

func (m *mockBatchRepository) Create(batch *bankexportDatamodel.BankExportBatch) error {
	if m.createError != nil {
		return m.createError
	}
	batch.ID = m.nextID
	m.nextID++
	m.batches = append(m.batches, batch)
	return nil
}

func (m *mockBatchRepository) ListForRun(runID int64) ([]*bankexportDatamodel.BankExportBatch, error) {
	var batches []*bankexportDatamodel.BankExportBatch
	for _, batch := range m.batches {
		if batch.PayrollRunID == runID {
			batches = append(batches, batch)
		}
	}
	return batches, nil
}

// Mock run reader for testing
type mockRunReader struct {
	runs     map[int64]*payroll.Run
	payslips map[int64][]*payrollDatamodel.Payslip
}

func newMockRunReader() *mockRunReader {
	return &mockRunReader{
		runs:     make(map[int64]*payroll.Run),
		payslips: make(map[int64][]*payrollDatamodel.Payslip),
	}
}

func (m *mockRunReader) GetRun(ctx context.Context, runID int64) (*payroll.Run, error) {
	run, exists := m.runs[runID]
	if !exists {
		return nil, apperrors.NewNotFoundError("payroll run not found", apperrors.ErrCodeRunNotFound)
	}
	return run, nil
}

func (m *mockRunReader) ListPayslipsForRun(ctx context.Context, runID int64) ([]*payrollDatamodel.Payslip, error) {
	return m.payslips[runID], nil
}

// Mock compensation resolver for testing
type mockResolver struct {
	records map[int64]*compensation.CompensationRecord
}

func newMockResolver() *mockResolver {
	return &mockResolver{records: make(map[int64]*compensation.CompensationRecord)}
}

func (m *mockResolver) Resolve(ctx context.Context, employeeID int64, asOf time.Time) (*compensation.CompensationRecord, error) {
	record, exists := m.records[employeeID]
	if !exists {
		return nil, apperrors.NewNotFoundError("no compensation record in effect", apperrors.ErrCodeNoCompensation)
	}
	return record, nil
}

func strPtr(s string) *string { return &s }

var _ = Describe("BankExportService", func() {
	var (
		service  *bankexport.Service
		repo     *mockBatchRepository
		runs     *mockRunReader
		resolver *mockResolver
		ctx      context.Context
	)

	payDate := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		repo = newMockBatchRepository()
		runs = newMockRunReader()
		resolver = newMockResolver()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		identity := bankexport.FileIdentity{
			OriginName:         "PAYROLL ENGINE",
			OriginRouting:      "0210000210",
			DestinationName:    "FIRST NATIONAL BANK",
			DestinationRouting: "0210000210",
		}
		service = bankexport.NewService(repo, runs, resolver, nil, identity, logger)
		ctx = context.Background()

		runs.runs[1] = &payroll.Run{
			ID:        1,
			RunNumber: "2026-08-A",
			PayDate:   payDate,
			Status:    payroll.RunStatusCompleted,
		}
		runs.payslips[1] = []*payrollDatamodel.Payslip{
			{PayrollRunID: 1, EmployeeID: 1, EmployeeName: "Alice Johnson", NetPayCents: 336750, PayDate: payDate},
			{PayrollRunID: 1, EmployeeID: 2, EmployeeName: "Bob Smith", NetPayCents: 283150, PayDate: payDate},
		}

		resolver.records[1] = &compensation.CompensationRecord{
			EmployeeID:        1,
			BankAccountNumber: strPtr("000123456789"),
			BankRoutingNumber: strPtr("021000021"),
		}
		resolver.records[2] = &compensation.CompensationRecord{
			EmployeeID:        2,
			BankAccountNumber: strPtr("000987654321"),
			BankRoutingNumber: strPtr("021000021"),
		}
	})

	Describe("Generate", func() {
		Context("when every employee has bank data", func() {
			It("should include one transaction per payslip", func() {
				file, err := service.Generate(ctx, 1, bankexport.ExportTypeACH)

				Expect(err).ToNot(HaveOccurred())
				Expect(file.Batch.TotalTransactions).To(Equal(2))
				Expect(file.Batch.TotalAmountCents).To(Equal(int64(619900)))
				Expect(file.Batch.SkippedCount).To(BeZero())
				Expect(file.Skipped).To(BeEmpty())
			})

			It("should persist the batch with a stable external id", func() {
				file, err := service.Generate(ctx, 1, bankexport.ExportTypeACH)

				Expect(err).ToNot(HaveOccurred())
				Expect(repo.batches).To(HaveLen(1))
				Expect(repo.batches[0].ExternalID).To(Equal(file.Batch.ExternalID))
				Expect(file.Batch.ExternalID).ToNot(BeEmpty())
				Expect(file.Batch.Status).To(Equal(bankexport.BatchStatusGenerated))
			})

			It("should name the file after the run number and format", func() {
				file, err := service.Generate(ctx, 1, bankexport.ExportTypeACH)

				Expect(err).ToNot(HaveOccurred())
				Expect(file.Batch.FileName).To(HavePrefix("payroll_2026-08-A_ach_"))
				Expect(file.Batch.FileName).To(HaveSuffix(".txt"))
			})
		})

		Context("when an employee lacks bank data", func() {
			BeforeEach(func() {
				resolver.records[2] = &compensation.CompensationRecord{EmployeeID: 2}
			})

			It("should export the rest and report the skip", func() {
				file, err := service.Generate(ctx, 1, bankexport.ExportTypeACH)

				Expect(err).ToNot(HaveOccurred())
				Expect(file.Batch.TotalTransactions).To(Equal(1))
				Expect(file.Batch.TotalAmountCents).To(Equal(int64(336750)))
				Expect(file.Batch.SkippedCount).To(Equal(1))
				Expect(file.Skipped).To(HaveLen(1))
				Expect(file.Skipped[0].EmployeeID).To(Equal(int64(2)))
				Expect(file.Skipped[0].Reason).To(ContainSubstring("missing bank account"))
			})

			It("should keep the trailer consistent with the included transactions", func() {
				file, err := service.Generate(ctx, 1, bankexport.ExportTypeACH)
				Expect(err).ToNot(HaveOccurred())

				lines := strings.Split(strings.TrimRight(string(file.Data), "\n"), "\n")
				trailer := lines[len(lines)-1]
				Expect(trailer[1:7]).To(Equal("000001"))
				Expect(trailer[7:19]).To(Equal("000000336750"))
			})
		})

		Context("when an employee has no compensation record at all", func() {
			BeforeEach(func() {
				delete(resolver.records, 2)
			})

			It("should skip that payslip with a reason", func() {
				file, err := service.Generate(ctx, 1, bankexport.ExportTypeCSV)

				Expect(err).ToNot(HaveOccurred())
				Expect(file.Batch.TotalTransactions).To(Equal(1))
				Expect(file.Skipped[0].Reason).To(Equal("no compensation record"))
			})
		})

		Context("with the csv format", func() {
			It("should produce a csv file with decimal net pay", func() {
				file, err := service.Generate(ctx, 1, bankexport.ExportTypeCSV)

				Expect(err).ToNot(HaveOccurred())
				Expect(file.ContentType).To(Equal("text/csv"))
				Expect(file.Batch.FileName).To(HaveSuffix(".csv"))

				content := string(file.Data)
				Expect(content).To(ContainSubstring("employee_name,routing_number,account_number,net_pay,pay_date"))
				Expect(content).To(ContainSubstring("Alice Johnson,021000021,000123456789,3367.50,2026-09-05"))
			})
		})

		Context("when the run is not completed", func() {
			It("should refuse with a conflict", func() {
				runs.runs[1].Status = payroll.RunStatusProcessing

				_, err := service.Generate(ctx, 1, bankexport.ExportTypeACH)
				Expect(err).To(HaveOccurred())
				appErr, ok := apperrors.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(apperrors.ErrCodeRunNotCompleted))
				Expect(repo.batches).To(BeEmpty())
			})
		})

		Context("when the run does not exist", func() {
			It("should return not found", func() {
				_, err := service.Generate(ctx, 99, bankexport.ExportTypeACH)
				Expect(err).To(HaveOccurred())
				appErr, ok := apperrors.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(apperrors.ErrCodeRunNotFound))
			})
		})

		Context("with an unknown format", func() {
			It("should reject before touching the run", func() {
				_, err := service.Generate(ctx, 1, "xml")
				Expect(err).To(HaveOccurred())
				appErr, ok := apperrors.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(apperrors.ErrCodeInvalidExportFormat))
			})

			It("should accept format names case-insensitively", func() {
				_, err := service.Generate(ctx, 1, "ACH")
				Expect(err).ToNot(HaveOccurred())
			})
		})
	})

	Describe("ListBatches", func() {
		It("should list batches for an existing run", func() {
			_, err := service.Generate(ctx, 1, bankexport.ExportTypeACH)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Generate(ctx, 1, bankexport.ExportTypeCSV)
			Expect(err).ToNot(HaveOccurred())

			batches, err := service.ListBatches(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(batches).To(HaveLen(2))
		})

		It("should return not found for an unknown run", func() {
			_, err := service.ListBatches(ctx, 99)
			Expect(err).To(HaveOccurred())
		})
	})
})

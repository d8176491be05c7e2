package bankexport

import (
	"time"

	bankexportDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/bankexport"
)

const (
	ExportTypeACH = "ach"
	ExportTypeCSV = "csv"
)

const (
	BatchStatusGenerated = "generated"
)

// Transaction is one disbursement line included in an export file.
type Transaction struct {
	EmployeeID    int64
	ReceiverName  string
	RoutingNumber string
	AccountNumber string
	AmountCents   int64
	PayDate       time.Time
}

// SkippedPayslip records a payslip excluded from an export because its
// employee has no usable bank data.
type SkippedPayslip struct {
	EmployeeID int64  `json:"employee_id"`
	Reason     string `json:"reason"`
}

type Batch struct {
	ID                int64     `json:"id"`
	ExternalID        string    `json:"external_id"`
	PayrollRunID      int64     `json:"payroll_run_id"`
	ExportType        string    `json:"export_type"`
	FileName          string    `json:"file_name"`
	TotalAmountCents  int64     `json:"total_amount_cents"`
	TotalTransactions int       `json:"total_transactions"`
	SkippedCount      int       `json:"skipped_count"`
	ExportDate        time.Time `json:"export_date"`
	Status            string    `json:"status"`
}

// ExportFile is the generated artifact: file bytes plus batch metadata and
// the per-payslip skip report.
type ExportFile struct {
	Batch       *Batch           `json:"batch"`
	Skipped     []SkippedPayslip `json:"skipped,omitempty"`
	ContentType string           `json:"-"`
	Data        []byte           `json:"-"`
}

func IsValidExportType(exportType string) bool {
	return exportType == ExportTypeACH || exportType == ExportTypeCSV
}

func BatchFromDataModel(b *bankexportDatamodel.BankExportBatch) *Batch {
	return &Batch{
		ID:                b.ID,
		ExternalID:        b.ExternalID,
		PayrollRunID:      b.PayrollRunID,
		ExportType:        b.ExportType,
		FileName:          b.FileName,
		TotalAmountCents:  b.TotalAmountCents,
		TotalTransactions: b.TotalTransactions,
		SkippedCount:      b.SkippedCount,
		ExportDate:        b.ExportDate,
		Status:            b.Status,
	}
}

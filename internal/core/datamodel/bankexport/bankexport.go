package bankexport

import "time"

type BankExportBatch struct {
	ID                int64     `gorm:"primaryKey"`
	ExternalID        string    `gorm:"column:external_id;uniqueIndex;not null"`
	PayrollRunID      int64     `gorm:"column:payroll_run_id;not null;index"`
	ExportType        string    `gorm:"column:export_type;not null"`
	FileName          string    `gorm:"column:file_name;not null"`
	TotalAmountCents  int64     `gorm:"column:total_amount_cents;not null"`
	TotalTransactions int       `gorm:"column:total_transactions;not null"`
	SkippedCount      int       `gorm:"column:skipped_count;default:0"`
	ExportDate        time.Time `gorm:"column:export_date;not null"`
	Status            string    `gorm:"column:status;default:generated"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}

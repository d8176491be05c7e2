package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePayrollRunCompleted = "payroll.run.completed"
	EventTypePayrollRunFailed    = "payroll.run.failed"
	EventTypeBankExportGenerated = "bankexport.generated"
)

type PayrollRunCompletedEvent struct {
	BaseEvent
	RunID          int64  `json:"run_id"`
	RunNumber      string `json:"run_number"`
	TotalEmployees int    `json:"total_employees"`
	TotalNetCents  int64  `json:"total_net_cents"`
	SkippedCount   int    `json:"skipped_count"`
}

func NewPayrollRunCompletedEvent(runID int64, runNumber string, totalEmployees int, totalNetCents int64, skippedCount int) *PayrollRunCompletedEvent {
	return &PayrollRunCompletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePayrollRunCompleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"run_id":          runID,
				"run_number":      runNumber,
				"total_employees": totalEmployees,
				"total_net_cents": totalNetCents,
				"skipped_count":   skippedCount,
			},
		},
		RunID:          runID,
		RunNumber:      runNumber,
		TotalEmployees: totalEmployees,
		TotalNetCents:  totalNetCents,
		SkippedCount:   skippedCount,
	}
}

type PayrollRunFailedEvent struct {
	BaseEvent
	RunID         int64  `json:"run_id"`
	RunNumber     string `json:"run_number"`
	FailureReason string `json:"failure_reason"`
}

func NewPayrollRunFailedEvent(runID int64, runNumber, failureReason string) *PayrollRunFailedEvent {
	return &PayrollRunFailedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePayrollRunFailed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"run_id":         runID,
				"run_number":     runNumber,
				"failure_reason": failureReason,
			},
		},
		RunID:         runID,
		RunNumber:     runNumber,
		FailureReason: failureReason,
	}
}

type BankExportGeneratedEvent struct {
	BaseEvent
	BatchID           int64  `json:"batch_id"`
	RunID             int64  `json:"run_id"`
	ExportType        string `json:"export_type"`
	FileName          string `json:"file_name"`
	TotalAmountCents  int64  `json:"total_amount_cents"`
	TotalTransactions int    `json:"total_transactions"`
}

func NewBankExportGeneratedEvent(batchID, runID int64, exportType, fileName string, totalAmountCents int64, totalTransactions int) *BankExportGeneratedEvent {
	return &BankExportGeneratedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeBankExportGenerated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"batch_id":           batchID,
				"run_id":             runID,
				"export_type":        exportType,
				"file_name":          fileName,
				"total_amount_cents": totalAmountCents,
				"total_transactions": totalTransactions,
			},
		},
		BatchID:           batchID,
		RunID:             runID,
		ExportType:        exportType,
		FileName:          fileName,
		TotalAmountCents:  totalAmountCents,
		TotalTransactions: totalTransactions,
	}
}

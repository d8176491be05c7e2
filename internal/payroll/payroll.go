package payroll

import (
	"time"

	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
)

const (
	RunStatusDraft      = "draft"
	RunStatusProcessing = "processing"
	RunStatusCompleted  = "completed"
	RunStatusFailed     = "failed"
)

// CanTransition encodes the run state machine. Terminal states are final;
// a run is never reopened.
func CanTransition(from, to string) bool {
	switch from {
	case RunStatusDraft:
		return to == RunStatusProcessing
	case RunStatusProcessing:
		return to == RunStatusCompleted || to == RunStatusFailed
	default:
		return false
	}
}

func IsTerminalStatus(status string) bool {
	return status == RunStatusCompleted || status == RunStatusFailed
}

// SkipReason values recorded for employees that produce no payslip.
const (
	SkipReasonNoCompensation   = "no_compensation"
	SkipReasonCalculationError = "calculation_error"
)

// EmployeeSkip records why an employee produced no payslip during a run.
type EmployeeSkip struct {
	EmployeeID int64  `json:"employee_id"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
}

// RunWarning flags a payslip that was written but needs review, such as a
// negative net pay.
type RunWarning struct {
	EmployeeID int64  `json:"employee_id"`
	Message    string `json:"message"`
}

type Run struct {
	ID                   int64          `json:"id"`
	RunNumber            string         `json:"run_number"`
	PayPeriodStart       time.Time      `json:"pay_period_start"`
	PayPeriodEnd         time.Time      `json:"pay_period_end"`
	PayDate              time.Time      `json:"pay_date"`
	Status               string         `json:"status"`
	TotalEmployees       int            `json:"total_employees"`
	TotalGrossCents      int64          `json:"total_gross_cents"`
	TotalDeductionsCents int64          `json:"total_deductions_cents"`
	TotalNetCents        int64          `json:"total_net_cents"`
	FailureReason        *string        `json:"failure_reason,omitempty"`
	ProcessedAt          *time.Time     `json:"processed_at,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	Skips                []EmployeeSkip `json:"skips,omitempty"`
	Warnings             []RunWarning   `json:"warnings,omitempty"`
}

// RunTotals is the aggregate written once, atomically, on the terminal
// transition to completed.
type RunTotals struct {
	TotalEmployees       int
	TotalGrossCents      int64
	TotalDeductionsCents int64
	TotalNetCents        int64
}

func RunFromDataModel(r *payrollDatamodel.PayrollRun) *Run {
	return &Run{
		ID:                   r.ID,
		RunNumber:            r.RunNumber,
		PayPeriodStart:       r.PayPeriodStart,
		PayPeriodEnd:         r.PayPeriodEnd,
		PayDate:              r.PayDate,
		Status:               r.Status,
		TotalEmployees:       r.TotalEmployees,
		TotalGrossCents:      r.TotalGrossCents,
		TotalDeductionsCents: r.TotalDeductionsCents,
		TotalNetCents:        r.TotalNetCents,
		FailureReason:        r.FailureReason,
		ProcessedAt:          r.ProcessedAt,
		CreatedAt:            r.CreatedAt,
	}
}

package payroll

import "time"

type PayrollRun struct {
	ID                   int64      `gorm:"primaryKey"`
	RunNumber            string     `gorm:"column:run_number;uniqueIndex;not null"`
	PayPeriodStart       time.Time  `gorm:"column:pay_period_start;type:date;not null"`
	PayPeriodEnd         time.Time  `gorm:"column:pay_period_end;type:date;not null"`
	PayDate              time.Time  `gorm:"column:pay_date;type:date;not null"`
	Status               string     `gorm:"column:status;default:draft"`
	TotalEmployees       int        `gorm:"column:total_employees;default:0"`
	TotalGrossCents      int64      `gorm:"column:total_gross_cents;default:0"`
	TotalDeductionsCents int64      `gorm:"column:total_deductions_cents;default:0"`
	TotalNetCents        int64      `gorm:"column:total_net_cents;default:0"`
	FailureReason        *string    `gorm:"column:failure_reason"`
	ProcessedAt          *time.Time `gorm:"column:processed_at"`
	CreatedAt            time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// Payslip is append-only. Employee name and email are snapshots taken at
// calculation time and must not change if the employee record changes later.
type Payslip struct {
	ID             int64     `gorm:"primaryKey"`
	PayrollRunID   int64     `gorm:"column:payroll_run_id;not null;uniqueIndex:idx_payslip_run_employee"`
	EmployeeID     int64     `gorm:"column:employee_id;not null;uniqueIndex:idx_payslip_run_employee;index"`
	EmployeeName   string    `gorm:"column:employee_name;not null"`
	EmployeeEmail  string    `gorm:"column:employee_email;not null"`
	PayPeriodStart time.Time `gorm:"column:pay_period_start;type:date;not null"`
	PayPeriodEnd   time.Time `gorm:"column:pay_period_end;type:date;not null"`
	PayDate        time.Time `gorm:"column:pay_date;type:date;not null;index"`

	BasePayCents       int64 `gorm:"column:base_pay_cents;not null"`
	OvertimeCents      int64 `gorm:"column:overtime_cents;default:0"`
	BonusCents         int64 `gorm:"column:bonus_cents;default:0"`
	CommissionCents    int64 `gorm:"column:commission_cents;default:0"`
	AllowancesCents    int64 `gorm:"column:allowances_cents;default:0"`
	OtherEarningsCents int64 `gorm:"column:other_earnings_cents;default:0"`
	GrossPayCents      int64 `gorm:"column:gross_pay_cents;not null"`

	FederalTaxCents      int64 `gorm:"column:federal_tax_cents;default:0"`
	StateTaxCents        int64 `gorm:"column:state_tax_cents;default:0"`
	SocialSecurityCents  int64 `gorm:"column:social_security_cents;default:0"`
	MedicareCents        int64 `gorm:"column:medicare_cents;default:0"`
	HealthInsuranceCents int64 `gorm:"column:health_insurance_cents;default:0"`
	RetirementCents      int64 `gorm:"column:retirement_cents;default:0"`
	OtherDeductionsCents int64 `gorm:"column:other_deductions_cents;default:0"`
	TotalDeductionsCents int64 `gorm:"column:total_deductions_cents;not null"`
	NetPayCents          int64 `gorm:"column:net_pay_cents;not null"`

	YTDGrossCents      int64 `gorm:"column:ytd_gross_cents;not null"`
	YTDDeductionsCents int64 `gorm:"column:ytd_deductions_cents;not null"`
	YTDNetCents        int64 `gorm:"column:ytd_net_cents;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

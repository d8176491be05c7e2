package payroll

import (
	"time"

	errors "github.com/frahmantamala/payroll-engine/internal"
	"github.com/frahmantamala/payroll-engine/internal/core/common/validation"
	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
)

type CreateRunDTO struct {
	RunNumber      string    `json:"run_number"`
	PayPeriodStart time.Time `json:"pay_period_start"`
	PayPeriodEnd   time.Time `json:"pay_period_end"`
	PayDate        time.Time `json:"pay_date"`
	DepartmentID   *int64    `json:"department_id,omitempty"`
}

func (dto CreateRunDTO) Validate() *errors.AppError {
	if err := validation.ValidateRunNumber(dto.RunNumber); err != nil {
		return err
	}
	return validation.ValidateRunDates(dto.PayPeriodStart, dto.PayPeriodEnd, dto.PayDate)
}

type RunsResponse struct {
	Runs  []*Run `json:"runs"`
	Total int    `json:"total"`
}

type PayslipResponse struct {
	ID             int64     `json:"id"`
	PayrollRunID   int64     `json:"payroll_run_id"`
	EmployeeID     int64     `json:"employee_id"`
	EmployeeName   string    `json:"employee_name"`
	EmployeeEmail  string    `json:"employee_email"`
	PayPeriodStart time.Time `json:"pay_period_start"`
	PayPeriodEnd   time.Time `json:"pay_period_end"`
	PayDate        time.Time `json:"pay_date"`

	BasePayCents       int64 `json:"base_pay_cents"`
	OvertimeCents      int64 `json:"overtime_cents"`
	BonusCents         int64 `json:"bonus_cents"`
	CommissionCents    int64 `json:"commission_cents"`
	AllowancesCents    int64 `json:"allowances_cents"`
	OtherEarningsCents int64 `json:"other_earnings_cents"`
	GrossPayCents      int64 `json:"gross_pay_cents"`

	FederalTaxCents      int64 `json:"federal_tax_cents"`
	StateTaxCents        int64 `json:"state_tax_cents"`
	SocialSecurityCents  int64 `json:"social_security_cents"`
	MedicareCents        int64 `json:"medicare_cents"`
	HealthInsuranceCents int64 `json:"health_insurance_cents"`
	RetirementCents      int64 `json:"retirement_cents"`
	OtherDeductionsCents int64 `json:"other_deductions_cents"`
	TotalDeductionsCents int64 `json:"total_deductions_cents"`
	NetPayCents          int64 `json:"net_pay_cents"`

	YTDGrossCents      int64 `json:"ytd_gross_cents"`
	YTDDeductionsCents int64 `json:"ytd_deductions_cents"`
	YTDNetCents        int64 `json:"ytd_net_cents"`
}

type PayslipsResponse struct {
	Payslips []PayslipResponse `json:"payslips"`
	Total    int               `json:"total"`
}

func PayslipToResponse(p *payrollDatamodel.Payslip) PayslipResponse {
	return PayslipResponse{
		ID:             p.ID,
		PayrollRunID:   p.PayrollRunID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   p.EmployeeName,
		EmployeeEmail:  p.EmployeeEmail,
		PayPeriodStart: p.PayPeriodStart,
		PayPeriodEnd:   p.PayPeriodEnd,
		PayDate:        p.PayDate,

		BasePayCents:       p.BasePayCents,
		OvertimeCents:      p.OvertimeCents,
		BonusCents:         p.BonusCents,
		CommissionCents:    p.CommissionCents,
		AllowancesCents:    p.AllowancesCents,
		OtherEarningsCents: p.OtherEarningsCents,
		GrossPayCents:      p.GrossPayCents,

		FederalTaxCents:      p.FederalTaxCents,
		StateTaxCents:        p.StateTaxCents,
		SocialSecurityCents:  p.SocialSecurityCents,
		MedicareCents:        p.MedicareCents,
		HealthInsuranceCents: p.HealthInsuranceCents,
		RetirementCents:      p.RetirementCents,
		OtherDeductionsCents: p.OtherDeductionsCents,
		TotalDeductionsCents: p.TotalDeductionsCents,
		NetPayCents:          p.NetPayCents,

		YTDGrossCents:      p.YTDGrossCents,
		YTDDeductionsCents: p.YTDDeductionsCents,
		YTDNetCents:        p.YTDNetCents,
	}
}

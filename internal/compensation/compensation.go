package compensation

import (
	"time"

	compensationDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/compensation"
)

// CompensationRecord is the domain view of one effective-dated compensation
// configuration. All amounts are integer cents, percentages plain percent.
type CompensationRecord struct {
	ID                   int64     `json:"id"`
	EmployeeID           int64     `json:"employee_id"`
	EffectiveDate        time.Time `json:"effective_date"`
	BasePayCents         int64     `json:"base_pay_cents"`
	HourlyRateCents      int64     `json:"hourly_rate_cents"`
	OvertimeRateCents    int64     `json:"overtime_rate_cents"`
	FederalTaxPct        float64   `json:"federal_tax_pct"`
	StateTaxPct          float64   `json:"state_tax_pct"`
	SocialSecurityPct    float64   `json:"social_security_pct"`
	MedicarePct          float64   `json:"medicare_pct"`
	HealthInsuranceCents int64     `json:"health_insurance_cents"`
	RetirementPct        float64   `json:"retirement_pct"`
	BankAccountNumber    *string   `json:"bank_account_number,omitempty"`
	BankRoutingNumber    *string   `json:"bank_routing_number,omitempty"`
	BankName             *string   `json:"bank_name,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// HasBankData reports whether the record carries enough routing information
// for a bank export transaction.
func (c *CompensationRecord) HasBankData() bool {
	return c.BankAccountNumber != nil && *c.BankAccountNumber != "" &&
		c.BankRoutingNumber != nil && *c.BankRoutingNumber != ""
}

func FromDataModel(c *compensationDatamodel.CompensationRecord) *CompensationRecord {
	return &CompensationRecord{
		ID:                   c.ID,
		EmployeeID:           c.EmployeeID,
		EffectiveDate:        c.EffectiveDate,
		BasePayCents:         c.BasePayCents,
		HourlyRateCents:      c.HourlyRateCents,
		OvertimeRateCents:    c.OvertimeRateCents,
		FederalTaxPct:        c.FederalTaxPct,
		StateTaxPct:          c.StateTaxPct,
		SocialSecurityPct:    c.SocialSecurityPct,
		MedicarePct:          c.MedicarePct,
		HealthInsuranceCents: c.HealthInsuranceCents,
		RetirementPct:        c.RetirementPct,
		BankAccountNumber:    c.BankAccountNumber,
		BankRoutingNumber:    c.BankRoutingNumber,
		BankName:             c.BankName,
		CreatedAt:            c.CreatedAt,
	}
}

func ToDataModel(c *CompensationRecord) *compensationDatamodel.CompensationRecord {
	return &compensationDatamodel.CompensationRecord{
		ID:                   c.ID,
		EmployeeID:           c.EmployeeID,
		EffectiveDate:        c.EffectiveDate,
		BasePayCents:         c.BasePayCents,
		HourlyRateCents:      c.HourlyRateCents,
		OvertimeRateCents:    c.OvertimeRateCents,
		FederalTaxPct:        c.FederalTaxPct,
		StateTaxPct:          c.StateTaxPct,
		SocialSecurityPct:    c.SocialSecurityPct,
		MedicarePct:          c.MedicarePct,
		HealthInsuranceCents: c.HealthInsuranceCents,
		RetirementPct:        c.RetirementPct,
		BankAccountNumber:    c.BankAccountNumber,
		BankRoutingNumber:    c.BankRoutingNumber,
		BankName:             c.BankName,
		CreatedAt:            c.CreatedAt,
	}
}

package compensation

import (
	"time"

	errors "github.com/frahmantamala/payroll-engine/internal"
	"github.com/frahmantamala/payroll-engine/internal/core/common/validation"
)

type CreateCompensationDTO struct {
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
}

func (dto CreateCompensationDTO) Validate() *errors.AppError {
	if dto.EffectiveDate.IsZero() {
		return errors.NewValidationFieldError("effective_date", "effective_date is required", errors.ErrCodeInvalidDate)
	}
	if err := validation.ValidateBasePay(dto.BasePayCents); err != nil {
		return err
	}
	percents := map[string]float64{
		"federal_tax_pct":     dto.FederalTaxPct,
		"state_tax_pct":       dto.StateTaxPct,
		"social_security_pct": dto.SocialSecurityPct,
		"medicare_pct":        dto.MedicarePct,
		"retirement_pct":      dto.RetirementPct,
	}
	for field, pct := range percents {
		if err := validation.ValidateDeductionPercent(field, pct); err != nil {
			return err
		}
	}
	for field, amount := range map[string]int64{
		"health_insurance_cents": dto.HealthInsuranceCents,
		"hourly_rate_cents":      dto.HourlyRateCents,
		"overtime_rate_cents":    dto.OvertimeRateCents,
	} {
		if err := validation.ValidateFlatDeduction(field, amount); err != nil {
			return err
		}
	}
	return nil
}

type CompensationsResponse struct {
	Compensations []*CompensationRecord `json:"compensations"`
}

package payroll

import (
	"fmt"
	"math"
)

// CalculationInput carries everything the calculator needs. All monetary
// fields are integer cents; percentages are plain percent (6.2 means 6.2%).
type CalculationInput struct {
	BasePayCents       int64
	HoursWorked        float64
	HourlyRateCents    int64
	OvertimeHours      float64
	OvertimeRateCents  int64
	BonusCents         int64
	CommissionCents    int64
	AllowancesCents    int64
	OtherEarningsCents int64

	FederalTaxPct        float64
	StateTaxPct          float64
	SocialSecurityPct    float64
	MedicarePct          float64
	HealthInsuranceCents int64
	RetirementPct        float64
	OtherDeductionsCents int64
}

type PayCalculation struct {
	GrossPayCents int64

	FederalTaxCents      int64
	StateTaxCents        int64
	SocialSecurityCents  int64
	MedicareCents        int64
	HealthInsuranceCents int64
	RetirementCents      int64
	OtherDeductionsCents int64
	TotalDeductionsCents int64

	NetPayCents int64

	Warnings []string
}

// percentToBasisPoints converts a percent value to integer basis points,
// rounding half up. 6.2 percent becomes 620 bps. Doing the float conversion
// exactly once keeps every later step in integer arithmetic.
func percentToBasisPoints(pct float64) int64 {
	return int64(math.Floor(pct*100 + 0.5))
}

// applyBasisPoints computes amount * bps / 10000 with half-up rounding in
// pure integer arithmetic.
func applyBasisPoints(amountCents, bps int64) int64 {
	if amountCents <= 0 || bps <= 0 {
		return 0
	}
	return (amountCents*bps + 5000) / 10000
}

// roundHalfUpCents rounds a fractional cent amount half up.
func roundHalfUpCents(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// Calculate converts compensation inputs to a gross-to-net breakdown.
// Each percentage deduction is rounded independently so every line item is
// auditable on its own; the total is the exact sum of the rounded parts.
// Pure function: no I/O, identical inputs always yield identical output.
func Calculate(input CalculationInput) PayCalculation {
	gross := input.BasePayCents
	gross += roundHalfUpCents(input.HoursWorked * float64(input.HourlyRateCents))
	gross += roundHalfUpCents(input.OvertimeHours * float64(input.OvertimeRateCents))
	gross += input.BonusCents
	gross += input.CommissionCents
	gross += input.AllowancesCents
	gross += input.OtherEarningsCents

	calc := PayCalculation{
		GrossPayCents:        gross,
		FederalTaxCents:      applyBasisPoints(gross, percentToBasisPoints(input.FederalTaxPct)),
		StateTaxCents:        applyBasisPoints(gross, percentToBasisPoints(input.StateTaxPct)),
		SocialSecurityCents:  applyBasisPoints(gross, percentToBasisPoints(input.SocialSecurityPct)),
		MedicareCents:        applyBasisPoints(gross, percentToBasisPoints(input.MedicarePct)),
		HealthInsuranceCents: input.HealthInsuranceCents,
		RetirementCents:      applyBasisPoints(gross, percentToBasisPoints(input.RetirementPct)),
		OtherDeductionsCents: input.OtherDeductionsCents,
	}

	calc.TotalDeductionsCents = calc.FederalTaxCents +
		calc.StateTaxCents +
		calc.SocialSecurityCents +
		calc.MedicareCents +
		calc.HealthInsuranceCents +
		calc.RetirementCents +
		calc.OtherDeductionsCents

	calc.NetPayCents = calc.GrossPayCents - calc.TotalDeductionsCents

	// Negative net pay completes the calculation and is surfaced for review,
	// never clamped.
	if calc.NetPayCents < 0 {
		calc.Warnings = append(calc.Warnings,
			fmt.Sprintf("net pay is negative: %d cents", calc.NetPayCents))
	}

	return calc
}

// ValidatePercentages checks every percentage input is within [0,100] and
// flat deductions are non-negative. A violation is a per-employee
// calculation error, not a run failure.
func (input CalculationInput) ValidatePercentages() error {
	percents := []struct {
		name string
		pct  float64
	}{
		{"federal_tax_pct", input.FederalTaxPct},
		{"state_tax_pct", input.StateTaxPct},
		{"social_security_pct", input.SocialSecurityPct},
		{"medicare_pct", input.MedicarePct},
		{"retirement_pct", input.RetirementPct},
	}
	for _, p := range percents {
		if p.pct < 0 || p.pct > 100 {
			return fmt.Errorf("%s out of range: %v", p.name, p.pct)
		}
	}
	if input.HealthInsuranceCents < 0 {
		return fmt.Errorf("health_insurance_cents must not be negative: %d", input.HealthInsuranceCents)
	}
	if input.OtherDeductionsCents < 0 {
		return fmt.Errorf("other_deductions_cents must not be negative: %d", input.OtherDeductionsCents)
	}
	return nil
}

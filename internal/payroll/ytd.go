package payroll

import (
	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
)

type YTDTotals struct {
	GrossCents      int64
	DeductionsCents int64
	NetCents        int64
}

// AccumulateYTD sums gross, deductions and net over the employee's prior
// payslips for the calendar year, then adds the new calculation. Sums are
// commutative so prior payslips may arrive in any order; with no prior
// payslips the YTD equals the new calculation alone.
func AccumulateYTD(prior []*payrollDatamodel.Payslip, calc PayCalculation) YTDTotals {
	totals := YTDTotals{
		GrossCents:      calc.GrossPayCents,
		DeductionsCents: calc.TotalDeductionsCents,
		NetCents:        calc.NetPayCents,
	}

	for _, slip := range prior {
		totals.GrossCents += slip.GrossPayCents
		totals.DeductionsCents += slip.TotalDeductionsCents
		totals.NetCents += slip.NetPayCents
	}

	return totals
}

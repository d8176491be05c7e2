package payroll_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-engine/internal/payroll"
)

var _ = Describe("AccumulateYTD", func() {
	var calc payroll.PayCalculation

	BeforeEach(func() {
		calc = payroll.PayCalculation{
			GrossPayCents:        500000,
			TotalDeductionsCents: 163250,
			NetPayCents:          336750,
		}
	})

	Context("with no prior payslips", func() {
		It("should equal the new calculation alone", func() {
			totals := payroll.AccumulateYTD(nil, calc)

			Expect(totals.GrossCents).To(Equal(int64(500000)))
			Expect(totals.DeductionsCents).To(Equal(int64(163250)))
			Expect(totals.NetCents).To(Equal(int64(336750)))
		})
	})

	Context("with two prior months of identical pay", func() {
		var prior []*payrollDatamodel.Payslip

		BeforeEach(func() {
			prior = []*payrollDatamodel.Payslip{
				{GrossPayCents: 500000, TotalDeductionsCents: 163250, NetPayCents: 336750},
				{GrossPayCents: 500000, TotalDeductionsCents: 163250, NetPayCents: 336750},
			}
		})

		It("should sum prior payslips plus the new calculation", func() {
			totals := payroll.AccumulateYTD(prior, calc)

			Expect(totals.GrossCents).To(Equal(int64(1500000)))
			Expect(totals.DeductionsCents).To(Equal(int64(489750)))
			Expect(totals.NetCents).To(Equal(int64(1010250)))
		})

		It("should not depend on the order of prior payslips", func() {
			forward := payroll.AccumulateYTD(prior, calc)
			reversed := payroll.AccumulateYTD([]*payrollDatamodel.Payslip{prior[1], prior[0]}, calc)

			Expect(reversed).To(Equal(forward))
		})
	})

	Context("with mixed prior amounts", func() {
		It("should accumulate each component independently", func() {
			prior := []*payrollDatamodel.Payslip{
				{GrossPayCents: 100000, TotalDeductionsCents: 20000, NetPayCents: 80000},
				{GrossPayCents: 250000, TotalDeductionsCents: 75000, NetPayCents: 175000},
			}

			totals := payroll.AccumulateYTD(prior, calc)

			Expect(totals.GrossCents).To(Equal(int64(850000)))
			Expect(totals.DeductionsCents).To(Equal(int64(258250)))
			Expect(totals.NetCents).To(Equal(int64(591750)))
		})
	})
})

package payroll_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/payroll-engine/internal/payroll"
)

var _ = Describe("Calculate", func() {
	Context("with a salaried employee and standard deductions", func() {
		var input payroll.CalculationInput

		BeforeEach(func() {
			input = payroll.CalculationInput{
				BasePayCents:         500000,
				FederalTaxPct:        15.0,
				StateTaxPct:          5.0,
				SocialSecurityPct:    6.2,
				MedicarePct:          1.45,
				HealthInsuranceCents: 10000,
				RetirementPct:        3.0,
			}
		})

		It("should round each percentage deduction independently", func() {
			calc := payroll.Calculate(input)

			Expect(calc.GrossPayCents).To(Equal(int64(500000)))
			Expect(calc.FederalTaxCents).To(Equal(int64(75000)))
			Expect(calc.StateTaxCents).To(Equal(int64(25000)))
			Expect(calc.SocialSecurityCents).To(Equal(int64(31000)))
			Expect(calc.MedicareCents).To(Equal(int64(7250)))
			Expect(calc.HealthInsuranceCents).To(Equal(int64(10000)))
			Expect(calc.RetirementCents).To(Equal(int64(15000)))
			Expect(calc.TotalDeductionsCents).To(Equal(int64(163250)))
			Expect(calc.NetPayCents).To(Equal(int64(336750)))
			Expect(calc.Warnings).To(BeEmpty())
		})

		It("should produce identical output for identical input", func() {
			first := payroll.Calculate(input)
			for i := 0; i < 100; i++ {
				Expect(payroll.Calculate(input)).To(Equal(first))
			}
		})

		It("should keep net pay equal to gross minus total deductions", func() {
			calc := payroll.Calculate(input)
			Expect(calc.NetPayCents).To(Equal(calc.GrossPayCents - calc.TotalDeductionsCents))
		})
	})

	Context("with hourly earnings", func() {
		It("should add hourly and overtime pay to gross", func() {
			calc := payroll.Calculate(payroll.CalculationInput{
				HoursWorked:       80,
				HourlyRateCents:   2500,
				OvertimeHours:     10,
				OvertimeRateCents: 3750,
			})

			Expect(calc.GrossPayCents).To(Equal(int64(80*2500 + 10*3750)))
			Expect(calc.NetPayCents).To(Equal(calc.GrossPayCents))
		})

		It("should round fractional cent earnings half up", func() {
			calc := payroll.Calculate(payroll.CalculationInput{
				HoursWorked:     0.5,
				HourlyRateCents: 1333,
			})

			// 0.5 * 1333 = 666.5, rounds to 667
			Expect(calc.GrossPayCents).To(Equal(int64(667)))
		})
	})

	Context("with flat earnings components", func() {
		It("should sum bonus, commission, allowances and other earnings", func() {
			calc := payroll.Calculate(payroll.CalculationInput{
				BasePayCents:       100000,
				BonusCents:         20000,
				CommissionCents:    5000,
				AllowancesCents:    3000,
				OtherEarningsCents: 2000,
			})

			Expect(calc.GrossPayCents).To(Equal(int64(130000)))
		})
	})

	Context("when deductions exceed gross pay", func() {
		It("should surface negative net pay with a warning and never clamp", func() {
			calc := payroll.Calculate(payroll.CalculationInput{
				BasePayCents:         10000,
				HealthInsuranceCents: 25000,
			})

			Expect(calc.NetPayCents).To(Equal(int64(-15000)))
			Expect(calc.TotalDeductionsCents).To(Equal(int64(25000)))
			Expect(calc.Warnings).To(HaveLen(1))
			Expect(calc.Warnings[0]).To(ContainSubstring("net pay is negative"))
		})
	})

	Context("with zero gross pay", func() {
		It("should compute all percentage deductions as zero", func() {
			calc := payroll.Calculate(payroll.CalculationInput{
				FederalTaxPct:     15.0,
				SocialSecurityPct: 6.2,
			})

			Expect(calc.GrossPayCents).To(BeZero())
			Expect(calc.FederalTaxCents).To(BeZero())
			Expect(calc.SocialSecurityCents).To(BeZero())
			Expect(calc.NetPayCents).To(BeZero())
		})
	})

	Context("with rounding at the half-cent boundary", func() {
		It("should round half up on percentage deductions", func() {
			// 10001 * 0.5% = 50.005 cents, bps math: (10001*50+5000)/10000 = 50
			calc := payroll.Calculate(payroll.CalculationInput{
				BasePayCents:  10001,
				FederalTaxPct: 0.5,
			})
			Expect(calc.FederalTaxCents).To(Equal(int64(50)))

			// 10100 * 0.5% = 50.5 cents rounds up to 51
			calc = payroll.Calculate(payroll.CalculationInput{
				BasePayCents:  10100,
				FederalTaxPct: 0.5,
			})
			Expect(calc.FederalTaxCents).To(Equal(int64(51)))
		})
	})
})

var _ = Describe("ValidatePercentages", func() {
	It("should accept boundary values 0 and 100", func() {
		input := payroll.CalculationInput{
			FederalTaxPct: 100,
			StateTaxPct:   0,
		}
		Expect(input.ValidatePercentages()).To(Succeed())
	})

	It("should reject a percentage above 100", func() {
		input := payroll.CalculationInput{FederalTaxPct: 100.1}
		err := input.ValidatePercentages()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("federal_tax_pct"))
	})

	It("should reject a negative percentage", func() {
		input := payroll.CalculationInput{RetirementPct: -1}
		err := input.ValidatePercentages()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("retirement_pct"))
	})

	It("should reject negative flat deductions", func() {
		input := payroll.CalculationInput{HealthInsuranceCents: -100}
		Expect(input.ValidatePercentages()).To(HaveOccurred())

		input = payroll.CalculationInput{OtherDeductionsCents: -1}
		Expect(input.ValidatePercentages()).To(HaveOccurred())
	})
})

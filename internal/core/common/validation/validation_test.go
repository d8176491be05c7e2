package validation_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/frahmantamala/payroll-engine/internal"
	"github.com/frahmantamala/payroll-engine/internal/core/common/validation"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

var _ = Describe("ValidateBasePay", func() {
	It("should accept a positive amount", func() {
		Expect(validation.ValidateBasePay(500000)).To(BeNil())
	})

	It("should reject zero", func() {
		err := validation.ValidateBasePay(0)
		Expect(err).ToNot(BeNil())
		Expect(err.Code).To(Equal(errors.ErrCodeValidationFailed))
	})

	It("should reject a negative amount", func() {
		Expect(validation.ValidateBasePay(-100)).ToNot(BeNil())
	})
})

var _ = Describe("ValidateDeductionPercent", func() {
	It("should accept the boundaries", func() {
		Expect(validation.ValidateDeductionPercent("federal_tax_pct", 0)).To(BeNil())
		Expect(validation.ValidateDeductionPercent("federal_tax_pct", 100)).To(BeNil())
		Expect(validation.ValidateDeductionPercent("medicare_pct", 1.45)).To(BeNil())
	})

	It("should reject values outside [0,100]", func() {
		Expect(validation.ValidateDeductionPercent("federal_tax_pct", -0.1)).ToNot(BeNil())
		Expect(validation.ValidateDeductionPercent("federal_tax_pct", 100.1)).ToNot(BeNil())
	})
})

var _ = Describe("ValidateFlatDeduction", func() {
	It("should accept zero and positive amounts", func() {
		Expect(validation.ValidateFlatDeduction("health_insurance_cents", 0)).To(BeNil())
		Expect(validation.ValidateFlatDeduction("health_insurance_cents", 10000)).To(BeNil())
	})

	It("should reject negative amounts", func() {
		err := validation.ValidateFlatDeduction("health_insurance_cents", -1)
		Expect(err).ToNot(BeNil())
		Expect(err.Code).To(Equal(errors.ErrCodeInvalidAmount))
		Expect(err.Message).To(ContainSubstring("health_insurance_cents"))
	})
})

var _ = Describe("ValidateRunNumber", func() {
	It("should accept a typical run number", func() {
		Expect(validation.ValidateRunNumber("2026-08-A")).To(BeNil())
	})

	It("should reject an empty run number", func() {
		Expect(validation.ValidateRunNumber("")).ToNot(BeNil())
	})

	It("should reject a run number over 50 characters", func() {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'x'
		}
		Expect(validation.ValidateRunNumber(string(long))).ToNot(BeNil())
	})
})

var _ = Describe("ValidateRunDates", func() {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	payDate := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	It("should accept ordered dates", func() {
		Expect(validation.ValidateRunDates(start, end, payDate)).To(BeNil())
	})

	It("should accept a pay date equal to the period end", func() {
		Expect(validation.ValidateRunDates(start, end, end)).To(BeNil())
	})

	It("should reject an end before the start", func() {
		err := validation.ValidateRunDates(end, start, payDate)
		Expect(err).ToNot(BeNil())
		Expect(err.Code).To(Equal(errors.ErrCodeInvalidRunDates))
	})

	It("should reject a pay date before the period end", func() {
		err := validation.ValidateRunDates(start, end, start)
		Expect(err).ToNot(BeNil())
		Expect(err.Code).To(Equal(errors.ErrCodeInvalidRunDates))
	})

	It("should reject missing dates", func() {
		Expect(validation.ValidateRunDates(time.Time{}, end, payDate)).ToNot(BeNil())
	})
})

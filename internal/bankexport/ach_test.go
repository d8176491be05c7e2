package bankexport

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var testIdentity = FileIdentity{
	OriginName:         "PAYROLL ENGINE",
	OriginRouting:      "0210000210",
	DestinationName:    "FIRST NATIONAL BANK",
	DestinationRouting: "0210000210",
}

var _ = Describe("generateACH", func() {
	var (
		transactions []Transaction
		exportDate   time.Time
	)

	BeforeEach(func() {
		exportDate = time.Date(2026, 9, 5, 14, 30, 0, 0, time.UTC)
		transactions = []Transaction{
			{
				EmployeeID:    1,
				ReceiverName:  "Alice Johnson",
				RoutingNumber: "021000021",
				AccountNumber: "000123456789",
				AmountCents:   336750,
			},
			{
				EmployeeID:    2,
				ReceiverName:  "Bob Smith",
				RoutingNumber: "021000021",
				AccountNumber: "000987654321",
				AmountCents:   283150,
			},
		}
	})

	It("should emit one header, one detail per transaction and one trailer", func() {
		result := generateACH(testIdentity, transactions, exportDate)

		lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(HavePrefix("1"))
		Expect(lines[1]).To(HavePrefix("6"))
		Expect(lines[2]).To(HavePrefix("6"))
		Expect(lines[3]).To(HavePrefix("8"))
	})

	It("should pad every record to exactly 94 characters", func() {
		result := generateACH(testIdentity, transactions, exportDate)

		lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
		for _, line := range lines {
			Expect(line).To(HaveLen(94))
		}
	})

	It("should lay detail fields out at fixed offsets", func() {
		result := generateACH(testIdentity, transactions[:1], exportDate)

		lines := strings.Split(string(result.Data), "\n")
		detail := lines[1]
		Expect(detail[0:1]).To(Equal("6"))
		Expect(detail[1:10]).To(Equal("021000021"))
		Expect(detail[10:27]).To(Equal("000123456789     "))
		Expect(detail[27:37]).To(Equal("0000336750"))
		Expect(detail[37:59]).To(Equal("Alice Johnson         "))
	})

	It("should stamp the export date and identities into the header", func() {
		result := generateACH(testIdentity, nil, exportDate)

		header := strings.Split(string(result.Data), "\n")[0]
		Expect(header[0:1]).To(Equal("1"))
		Expect(header[1:11]).To(Equal("0210000210"))
		Expect(header[11:21]).To(Equal("0210000210"))
		Expect(header[21:27]).To(Equal("260905"))
		Expect(header[27:31]).To(Equal("1430"))
		Expect(header[31:54]).To(Equal("FIRST NATIONAL BANK    "))
		Expect(header[54:77]).To(Equal("PAYROLL ENGINE         "))
	})

	It("should carry the detail count and amount sum in the trailer", func() {
		result := generateACH(testIdentity, transactions, exportDate)

		lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
		trailer := lines[len(lines)-1]
		Expect(trailer[0:1]).To(Equal("8"))
		Expect(trailer[1:7]).To(Equal("000002"))
		Expect(trailer[7:19]).To(Equal("000000619900"))

		Expect(result.TotalTransactions).To(Equal(2))
		Expect(result.TotalAmountCents).To(Equal(int64(619900)))
	})

	It("should truncate names longer than the field width", func() {
		long := transactions[:1]
		long[0].ReceiverName = "An Extremely Long Employee Name That Exceeds The Field"

		result := generateACH(testIdentity, long, exportDate)

		detail := strings.Split(string(result.Data), "\n")[1]
		Expect(detail).To(HaveLen(94))
		Expect(detail[37:59]).To(Equal("An Extremely Long Empl"))
	})
})

var _ = Describe("generateCSV", func() {
	It("should render net pay with exactly two decimal places", func() {
		result, err := generateCSV([]Transaction{
			{
				ReceiverName:  "Alice Johnson",
				RoutingNumber: "021000021",
				AccountNumber: "000123456789",
				AmountCents:   336750,
				PayDate:       time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			},
		})
		Expect(err).ToNot(HaveOccurred())

		lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
		Expect(lines).To(HaveLen(2))
		Expect(lines[0]).To(Equal("employee_name,routing_number,account_number,net_pay,pay_date"))
		Expect(lines[1]).To(Equal("Alice Johnson,021000021,000123456789,3367.50,2026-09-05"))
	})

	It("should sum amounts across all rows", func() {
		result, err := generateCSV([]Transaction{
			{AmountCents: 100, PayDate: time.Now()},
			{AmountCents: 250, PayDate: time.Now()},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(result.TotalTransactions).To(Equal(2))
		Expect(result.TotalAmountCents).To(Equal(int64(350)))
	})
})

var _ = Describe("centsToDecimal", func() {
	It("should format whole and fractional amounts", func() {
		Expect(centsToDecimal(336750)).To(Equal("3367.50"))
		Expect(centsToDecimal(5)).To(Equal("0.05"))
		Expect(centsToDecimal(0)).To(Equal("0.00"))
	})

	It("should keep the sign in front of the whole part", func() {
		Expect(centsToDecimal(-15000)).To(Equal("-150.00"))
		Expect(centsToDecimal(-5)).To(Equal("-0.05"))
	})
})

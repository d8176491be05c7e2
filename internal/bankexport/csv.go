package bankexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

type csvResult struct {
	Data              []byte
	TotalTransactions int
	TotalAmountCents  int64
}

// centsToDecimal renders integer cents as a decimal string with exactly two
// fraction digits, e.g. 336750 -> "3367.50".
func centsToDecimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func generateCSV(transactions []Transaction) (csvResult, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"employee_name", "routing_number", "account_number", "net_pay", "pay_date"}); err != nil {
		return csvResult{}, err
	}

	var total int64
	for _, tx := range transactions {
		record := []string{
			tx.ReceiverName,
			tx.RoutingNumber,
			tx.AccountNumber,
			centsToDecimal(tx.AmountCents),
			tx.PayDate.Format("2006-01-02"),
		}
		if err := writer.Write(record); err != nil {
			return csvResult{}, err
		}
		total += tx.AmountCents
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return csvResult{}, err
	}

	return csvResult{
		Data:              buf.Bytes(),
		TotalTransactions: len(transactions),
		TotalAmountCents:  total,
	}, nil
}

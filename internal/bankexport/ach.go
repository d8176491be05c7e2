package bankexport

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// The ACH-style layout writes 94 character fixed-width records: one file
// header, one detail record per transaction, one trailer carrying the
// detail count and amount sum so the receiving system can self-verify.
const achRecordLength = 94

const (
	achRecordTypeHeader  = "1"
	achRecordTypeDetail  = "6"
	achRecordTypeTrailer = "8"
)

// FileIdentity carries the origin and destination fields stamped into the
// header record.
type FileIdentity struct {
	OriginName         string
	OriginRouting      string
	DestinationName    string
	DestinationRouting string
}

type achResult struct {
	Data              []byte
	TotalTransactions int
	TotalAmountCents  int64
}

func padRight(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeftZero(s string, width int) string {
	if len(s) > width {
		return s[len(s)-width:]
	}
	return strings.Repeat("0", width-len(s)) + s
}

func achPadRecord(record string) string {
	return padRight(record, achRecordLength) + "\n"
}

func achHeaderRecord(identity FileIdentity, exportDate time.Time) string {
	var b strings.Builder
	b.WriteString(achRecordTypeHeader)
	b.WriteString(padLeftZero(identity.DestinationRouting, 10))
	b.WriteString(padLeftZero(identity.OriginRouting, 10))
	b.WriteString(exportDate.Format("060102"))
	b.WriteString(exportDate.Format("1504"))
	b.WriteString(padRight(identity.DestinationName, 23))
	b.WriteString(padRight(identity.OriginName, 23))
	return achPadRecord(b.String())
}

func achDetailRecord(tx Transaction) string {
	var b strings.Builder
	b.WriteString(achRecordTypeDetail)
	b.WriteString(padLeftZero(tx.RoutingNumber, 9))
	b.WriteString(padRight(tx.AccountNumber, 17))
	b.WriteString(padLeftZero(fmt.Sprintf("%d", tx.AmountCents), 10))
	b.WriteString(padRight(tx.ReceiverName, 22))
	return achPadRecord(b.String())
}

func achTrailerRecord(count int, totalCents int64) string {
	var b strings.Builder
	b.WriteString(achRecordTypeTrailer)
	b.WriteString(padLeftZero(fmt.Sprintf("%d", count), 6))
	b.WriteString(padLeftZero(fmt.Sprintf("%d", totalCents), 12))
	return achPadRecord(b.String())
}

func generateACH(identity FileIdentity, transactions []Transaction, exportDate time.Time) achResult {
	var buf bytes.Buffer
	buf.WriteString(achHeaderRecord(identity, exportDate))

	var total int64
	for _, tx := range transactions {
		buf.WriteString(achDetailRecord(tx))
		total += tx.AmountCents
	}

	buf.WriteString(achTrailerRecord(len(transactions), total))

	return achResult{
		Data:              buf.Bytes(),
		TotalTransactions: len(transactions),
		TotalAmountCents:  total,
	}
}

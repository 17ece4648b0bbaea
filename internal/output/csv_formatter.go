package output

import (
	"bytes"
	"encoding/csv"

	"github.com/xacc/usamount/internal/domain"
)

// CSVFormatter writes one row per conversion in input order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Line", "Record", "Field", "Input", "Amount", "Display", "Shares", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, conv := range report.Conversions {
		amt := ""
		if !conv.Malformed() {
			amt = conv.Amount.String()
		}
		row := []string{
			intToString(conv.Line),
			intToString(conv.Record),
			conv.Field,
			conv.Input,
			amt,
			conv.Display,
			boolToString(conv.Shares),
			conv.Err,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

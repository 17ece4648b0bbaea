package output

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/xacc/usamount/internal/domain"
	"github.com/xacc/usamount/pkg/amount"
)

// FormatCurrency formats a decimal with the given symbol and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(d decimal.Decimal, symbol string) string {
	return amount.Printer{Symbol: symbol}.FormatDecimal(d, amount.Symbol)
}

// FormatShares formats a share quantity with 3 decimals and the "shrs" suffix.
func FormatShares(d decimal.Decimal) string {
	return amount.Printer{}.FormatDecimal(d, amount.Shares|amount.Symbol)
}

// formatValues prints one display string per line, malformed entries as empty lines.
func formatValues(r *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, c := range r.Conversions {
		if !c.Malformed() {
			buf.WriteString(c.Display)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

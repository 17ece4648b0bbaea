package amount

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ToDecimal converts v to a decimal at the precision Printer uses for f,
// so the decimal and the display string always agree. Sums of many amounts
// should be taken over these decimals rather than the float64 values.
func ToDecimal(v float64, f Flags) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", v, ErrMalformedAmount)
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', f.Places(), 64))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", v, err)
	}
	return d, nil
}

// FormatDecimal renders a decimal with the same layout as Printer.Format.
func (p Printer) FormatDecimal(d decimal.Decimal, f Flags) string {
	v, _ := d.Round(int32(f.Places())).Float64()
	return p.Format(v, f)
}

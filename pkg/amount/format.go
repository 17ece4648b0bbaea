package amount

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// Flags selects how a value is printed.
type Flags uint8

const (
	// Shares prints a share quantity (3 decimals) instead of currency (2 decimals).
	Shares Flags = 1 << iota
	// Symbol prints the currency symbol, or the "shrs" suffix in share mode.
	Symbol
)

// NewFlags builds Flags from the two display switches.
func NewFlags(shares, includeSymbol bool) Flags {
	var f Flags
	if shares {
		f |= Shares
	}
	if includeSymbol {
		f |= Symbol
	}
	return f
}

// Places returns the number of fractional digits printed in this mode.
func (f Flags) Places() int {
	if f&Shares != 0 {
		return 3
	}
	return 2
}

func (f Flags) String() string {
	var parts []string
	if f&Shares != 0 {
		parts = append(parts, "shares")
	} else {
		parts = append(parts, "currency")
	}
	if f&Symbol != 0 {
		parts = append(parts, "symbol")
	}
	return strings.Join(parts, "|")
}

const sharesSuffix = " shrs"

// Printer renders amounts for display. The zero value prints currency
// without a symbol even when Symbol is set.
type Printer struct {
	Symbol string // currency symbol, e.g. "$"
}

// Format renders v according to f.
//
// Share quantities print as "1.500", or " 1.500 shrs" / "-1.500 shrs" with
// Symbol set so that positive and negative values line up in columns.
// Currency prints as "1234.50", or "$ 1234.50" / "-$ 1234.50" with Symbol set.
func (p Printer) Format(v float64, f Flags) string {
	neg := v < 0
	num := strconv.FormatFloat(math.Abs(v), 'f', f.Places(), 64)

	var b strings.Builder
	b.Grow(len(num) + len(p.Symbol) + len(sharesSuffix) + 2)
	if f&Shares != 0 {
		switch {
		case neg:
			b.WriteByte(minusSign)
		case f&Symbol != 0:
			b.WriteByte(' ')
		}
		b.WriteString(num)
		if f&Symbol != 0 {
			b.WriteString(sharesSuffix)
		}
		return b.String()
	}

	if neg {
		b.WriteByte(minusSign)
	}
	if f&Symbol != 0 {
		b.WriteString(p.Symbol)
		b.WriteByte(' ')
	}
	b.WriteString(num)
	return b.String()
}

var (
	defaultMu     sync.RWMutex
	defaultSymbol = "$"
)

// SetDefaultSymbol sets the currency symbol used by Format.
func SetDefaultSymbol(sym string) {
	defaultMu.Lock()
	defaultSymbol = sym
	defaultMu.Unlock()
}

// DefaultSymbol returns the currency symbol used by Format.
func DefaultSymbol() string {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSymbol
}

// DefaultPrinter returns a Printer for the configured default symbol.
func DefaultPrinter() Printer {
	return Printer{Symbol: DefaultSymbol()}
}

// Format renders v with the default symbol. It is safe for concurrent use.
func Format(v float64, shares, includeSymbol bool) string {
	return DefaultPrinter().Format(v, NewFlags(shares, includeSymbol))
}

package domain

import (
	"github.com/shopspring/decimal"
)

// Conversion is the result of parsing and re-printing one amount field.
type Conversion struct {
	Line    int             `json:"line"`
	Record  int             `json:"record,omitempty"` // QIF record number, 1-based
	Field   string          `json:"field,omitempty"`  // QIF field code, empty for plain lines
	Input   string          `json:"input"`
	Value   float64         `json:"value"`
	Amount  decimal.Decimal `json:"amount"` // Value at display precision
	Display string          `json:"display"`
	Shares  bool            `json:"shares,omitempty"`
	Err     string          `json:"error,omitempty"`
}

// Malformed reports whether the input was rejected.
func (c Conversion) Malformed() bool { return c.Err != "" }

// Report collects the conversions of one input source.
type Report struct {
	Source      string          `json:"source"`
	Symbol      string          `json:"symbol"`
	Conversions []Conversion    `json:"conversions"`
	Records     int             `json:"records,omitempty"`
	Malformed   int             `json:"malformed"`
	Total       decimal.Decimal `json:"total"`       // sum of tallied currency amounts
	ShareTotal  decimal.Decimal `json:"share_total"` // sum of tallied share quantities
}

// NewReport returns an empty report for source.
func NewReport(source, symbol string) *Report {
	return &Report{
		Source:     source,
		Symbol:     symbol,
		Total:      decimal.Zero,
		ShareTotal: decimal.Zero,
	}
}

// Add appends c. When tally is set and c is well formed, its amount is added
// to the matching total.
func (r *Report) Add(c Conversion, tally bool) {
	r.Conversions = append(r.Conversions, c)
	if c.Malformed() {
		r.Malformed++
		return
	}
	if !tally {
		return
	}
	if c.Shares {
		r.ShareTotal = r.ShareTotal.Add(c.Amount)
	} else {
		r.Total = r.Total.Add(c.Amount)
	}
}

// Count returns the number of conversions.
func (r *Report) Count() int { return len(r.Conversions) }

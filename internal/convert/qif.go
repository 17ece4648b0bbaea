package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xacc/usamount/internal/domain"
	"github.com/xacc/usamount/pkg/amount"
)

// qifField describes a QIF field that carries an amount.
type qifField struct {
	shares bool // quantity of shares rather than currency
	price  bool // per-share price, printed at share precision without a symbol
	tally  bool // counted in the report totals
}

// qifAmountFields lists the QIF field codes holding amounts. U repeats T
// and split amounts ($) add up to T, so only T and Q are tallied.
var qifAmountFields = map[byte]qifField{
	'T': {tally: true},
	'U': {},
	'$': {},
	'Q': {shares: true, tally: true},
	'I': {price: true},
	'O': {},
}

// qifTransactionTypes lists the !Type: sections whose records are
// transactions. Account lists, categories, classes, memorized transactions
// and options reuse the same field codes for other data.
var qifTransactionTypes = map[string]bool{
	"bank":    true,
	"cash":    true,
	"ccard":   true,
	"invst":   true,
	"oth a":   true,
	"oth l":   true,
	"invoice": true,
}

// qifTransactionSection reports whether the records under header hold
// transactions.
func qifTransactionSection(header string) bool {
	header = strings.TrimSpace(strings.TrimPrefix(header, "!"))
	name, ok := strings.CutPrefix(strings.ToLower(header), "type:")
	if !ok {
		return false
	}
	return qifTransactionTypes[strings.TrimSpace(name)]
}

// ImportQIF extracts and converts the amount fields of a Quicken
// interchange file. Each line starts with a field code; "^" ends a record
// and "!" lines start a section. Only records in transaction sections are
// read; a file without any header is read as transactions.
func (e *Engine) ImportQIF(ctx context.Context, source string, r io.Reader) (*domain.Report, error) {
	report := domain.NewReport(source, e.printer.Symbol)
	sc := bufio.NewScanner(r)
	line := 0
	record := 1
	open := false
	inTransactions := true
	closeRecord := func() {
		if open {
			report.Records++
			record++
			open = false
		}
	}
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		line++
		text := strings.TrimLeft(sc.Text(), " \t")
		if text == "" {
			continue
		}
		code := text[0]
		switch code {
		case '!':
			if open {
				e.logger.Warnf("line %d: record is not terminated by ^ before %s", line, text)
				closeRecord()
			}
			inTransactions = qifTransactionSection(text)
			e.logger.Debugf("line %d: section %s (transactions: %t)", line, text, inTransactions)
			continue
		case '^':
			closeRecord()
			continue
		}
		if !inTransactions {
			continue
		}
		open = true
		field, ok := qifAmountFields[code]
		if !ok {
			continue
		}
		flags := e.flags &^ amount.Shares
		switch {
		case field.shares:
			flags |= amount.Shares
		case field.price:
			flags = flags&^amount.Symbol | amount.Shares
		}
		c := e.ConvertOne(line, text[1:], flags)
		c.Shares = field.shares
		c.Record = record
		c.Field = string(code)
		report.Add(c, field.tally)
	}
	if err := sc.Err(); err != nil {
		return report, fmt.Errorf("reading %s: %w", source, err)
	}
	if open {
		e.logger.Warnf("%s: last record is not terminated by ^", source)
		report.Records++
	}
	e.logger.Infof("%s: %d records, %d amounts, %d malformed", source, report.Records, report.Count(), report.Malformed)
	return report, nil
}

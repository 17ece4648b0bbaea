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

// Engine parses amount fields and re-prints them for display.
type Engine struct {
	printer amount.Printer
	flags   amount.Flags
	strict  bool
	logger  Logger
}

// NewEngine creates an engine for the given configuration.
func NewEngine(cfg domain.Configuration) *Engine {
	return &Engine{
		printer: cfg.Printer(),
		flags:   cfg.Flags(),
		strict:  cfg.Strict,
		logger:  NopLogger{},
	}
}

// SetLogger sets the logger used for conversion diagnostics.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.logger = l
}

// Flags returns the display flags used for plain amount lines.
func (e *Engine) Flags() amount.Flags { return e.flags }

// Parse parses s permissively, or strictly when the engine is strict.
func (e *Engine) Parse(s string) (float64, error) {
	if e.strict {
		return amount.ParseUSStrict(s)
	}
	return amount.ParseUS(s), nil
}

// ConvertOne parses input and formats it with flags.
func (e *Engine) ConvertOne(line int, input string, flags amount.Flags) domain.Conversion {
	c := domain.Conversion{
		Line:   line,
		Input:  input,
		Shares: flags&amount.Shares != 0,
	}
	v, err := e.Parse(input)
	if err != nil {
		e.logger.Warnf("line %d: %v", line, err)
		c.Err = err.Error()
		return c
	}
	d, err := amount.ToDecimal(v, flags)
	if err != nil {
		e.logger.Warnf("line %d: %v", line, err)
		c.Err = err.Error()
		return c
	}
	c.Value = v
	c.Amount = d
	c.Display = e.printer.Format(v, flags)
	e.logger.Debugf("line %d: %q -> %s", line, input, c.Display)
	return c
}

// Convert reads one amount per line from r. Blank lines are skipped.
func (e *Engine) Convert(ctx context.Context, source string, r io.Reader) (*domain.Report, error) {
	report := domain.NewReport(source, e.printer.Symbol)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		report.Add(e.ConvertOne(line, text, e.flags), true)
	}
	if err := sc.Err(); err != nil {
		return report, fmt.Errorf("reading %s: %w", source, err)
	}
	e.logger.Infof("%s: converted %d amounts, %d malformed", source, report.Count(), report.Malformed)
	return report, nil
}

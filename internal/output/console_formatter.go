package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/xacc/usamount/internal/domain"
)

// ConsoleFormatter renders conversions as an aligned table followed by totals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "AMOUNTS: %s\n", report.Source)
	fmt.Fprintln(&buf, "================================")

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "LINE\tFIELD\tINPUT\tAMOUNT\t")
	for _, conv := range report.Conversions {
		display := conv.Display
		if conv.Malformed() {
			display = "ERROR: " + conv.Err
		}
		fmt.Fprintf(tw, "%d\t%s\t%q\t%s\t\n", conv.Line, conv.Field, conv.Input, display)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Amounts: %d  Malformed: %d", report.Count(), report.Malformed)
	if report.Records > 0 {
		fmt.Fprintf(&buf, "  Records: %d", report.Records)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total: %s\n", FormatCurrency(report.Total, report.Symbol))
	if !report.ShareTotal.IsZero() {
		fmt.Fprintf(&buf, "Shares: %s\n", FormatShares(report.ShareTotal))
	}
	return buf.Bytes(), nil
}

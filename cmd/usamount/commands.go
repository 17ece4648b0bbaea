package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xacc/usamount/internal/config"
	"github.com/xacc/usamount/internal/domain"
	"github.com/xacc/usamount/internal/output"
	"github.com/xacc/usamount/pkg/amount"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [amount...]",
		Short: "Print the numeric value of U.S. style amounts",
		Long: `Print the numeric value of each amount argument, or of each line read
from stdin when no arguments are given. Use -- before negative amounts.`,
		Example: "  usamount parse 1,234.56\n  usamount parse -- -1,234.56",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := a.engine()
			out := cmd.OutOrStdout()
			emit := func(s string) error {
				v, err := e.Parse(s)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strconv.FormatFloat(v, 'f', -1, 64))
				return nil
			}
			if len(args) > 0 {
				for _, s := range args {
					if err := emit(s); err != nil {
						return err
					}
				}
				return nil
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if err := emit(sc.Text()); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	var shares, plain bool
	cmd := &cobra.Command{
		Use:     "format <value>...",
		Short:   "Format numeric values for display",
		Example: "  usamount format 1234.5\n  usamount format --shares -- -1.5",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("shares") {
				shares = a.cfg.Shares
			}
			includeSymbol := a.cfg.IncludeSymbol
			if cmd.Flags().Changed("plain") {
				includeSymbol = !plain
			}
			for _, s := range args {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("value %q: %w", s, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), amount.Format(v, shares, includeSymbol))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&shares, "shares", false, "format as a share quantity")
	cmd.Flags().BoolVar(&plain, "plain", false, "omit the currency symbol or shrs suffix")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var qif bool
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a file of amounts, one per line, and print a report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				r      io.Reader = cmd.InOrStdin()
				source           = "stdin"
			)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r, source = f, args[0]
			}

			e := a.engine()
			var (
				report *domain.Report
				err    error
			)
			if qif {
				report, err = e.ImportQIF(cmd.Context(), source, r)
			} else {
				report, err = e.Convert(cmd.Context(), source, r)
			}
			if err != nil {
				return err
			}
			if err := output.Render(cmd.OutOrStdout(), a.cfg.OutputFormat, report); err != nil {
				return err
			}
			if a.cfg.Strict && report.Malformed > 0 {
				return fmt.Errorf("%s: %d of %d amounts are malformed", source, report.Malformed, report.Count())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&qif, "qif", false, "read a Quicken interchange file")
	return cmd
}

func newBaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "base <value> <base>",
		Short:   "Print an unsigned integer in another base (2 to 36)",
		Example: "  usamount base 255 16",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			base, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("base %q: %w", args[1], err)
			}
			s, err := amount.FormatBase(v, base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init <file>",
		Short: "Write an example configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(example, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	})
	return cmd
}

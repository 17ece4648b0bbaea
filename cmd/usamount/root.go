package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xacc/usamount/internal/config"
	"github.com/xacc/usamount/internal/convert"
	"github.com/xacc/usamount/internal/domain"
	"github.com/xacc/usamount/pkg/amount"
)

// app carries the global flags and the state built from them.
type app struct {
	configFile string
	strict     bool
	format     string
	logLevel   string
	symbol     string

	cfg domain.Configuration
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "usamount",
		Short:         "Parse and format U.S. style monetary amounts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "YAML configuration file")
	pf.BoolVar(&a.strict, "strict", false, "reject malformed amounts instead of reading them as zero")
	pf.StringVarP(&a.format, "format", "f", "", "report format (console, csv, json, values)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.symbol, "symbol", "", "currency symbol")

	root.AddCommand(
		newParseCmd(a),
		newFormatCmd(a),
		newConvertCmd(a),
		newBaseCmd(),
		newConfigCmd(a),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	parser := config.NewInputParser()
	cfg := domain.DefaultConfiguration()
	if a.configFile != "" {
		loaded, err := parser.LoadFromFile(a.configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if flags.Changed("format") {
		cfg.OutputFormat = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("symbol") {
		cfg.CurrencySymbol = a.symbol
	}
	if err := parser.ValidateConfiguration(&cfg); err != nil {
		return err
	}

	log, err := convert.NewLogrusLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	amount.SetDefaultSymbol(cfg.CurrencySymbol)
	a.cfg = cfg
	a.log = log
	a.log.Debugf("configuration: %+v", cfg)
	return nil
}

func (a *app) engine() *convert.Engine {
	e := convert.NewEngine(a.cfg)
	e.SetLogger(a.log)
	return e
}

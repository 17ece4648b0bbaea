package domain

import "github.com/xacc/usamount/pkg/amount"

// Configuration holds the settings shared by every usamount command.
type Configuration struct {
	CurrencySymbol string `yaml:"currency_symbol" json:"currency_symbol"`
	Strict         bool   `yaml:"strict" json:"strict"`
	Shares         bool   `yaml:"shares" json:"shares"`
	IncludeSymbol  bool   `yaml:"include_symbol" json:"include_symbol"`
	LogLevel       string `yaml:"log_level" json:"log_level"`
	OutputFormat   string `yaml:"output_format" json:"output_format"`
}

// DefaultConfiguration returns the settings used when no file is given.
func DefaultConfiguration() Configuration {
	return Configuration{
		CurrencySymbol: "$",
		IncludeSymbol:  true,
		LogLevel:       "info",
		OutputFormat:   "console",
	}
}

// Flags returns the display flags selected by the configuration.
func (c Configuration) Flags() amount.Flags {
	return amount.NewFlags(c.Shares, c.IncludeSymbol)
}

// Printer returns a printer for the configured currency symbol.
func (c Configuration) Printer() amount.Printer {
	return amount.Printer{Symbol: c.CurrencySymbol}
}

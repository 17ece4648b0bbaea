package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xacc/usamount/internal/domain"
	"github.com/xacc/usamount/internal/output"
	"github.com/xacc/usamount/pkg/amount"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { amount.SetDefaultSymbol("$") })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCmd(t *testing.T) {
	out, _, err := run(t, "", "parse", "1,234.56", "1234", "abc.de", "12.1234567")
	require.NoError(t, err)
	assert.Equal(t, "1234.56\n1234\n0\n12\n", out)

	out, _, err = run(t, "", "parse", "--", "-1,234.56")
	require.NoError(t, err)
	assert.Equal(t, "-1234.56\n", out)
}

func TestParseCmd_Stdin(t *testing.T) {
	out, _, err := run(t, "12.3\r\nabc.de\n", "parse")
	require.NoError(t, err)
	assert.Equal(t, "12.3\n0\n", out)
}

func TestParseCmd_Strict(t *testing.T) {
	_, _, err := run(t, "", "--strict", "parse", "abc.de")
	require.Error(t, err)
	assert.True(t, errors.Is(err, amount.ErrMalformedAmount))
}

func TestFormatCmd(t *testing.T) {
	out, _, err := run(t, "", "format", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "$ 1234.50\n", out)

	out, _, err = run(t, "", "format", "--shares", "--", "1.5", "-1.5")
	require.NoError(t, err)
	assert.Equal(t, " 1.500 shrs\n-1.500 shrs\n", out)

	out, _, err = run(t, "", "format", "--plain", "--", "-1234.5")
	require.NoError(t, err)
	assert.Equal(t, "-1234.50\n", out)

	out, _, err = run(t, "", "--symbol", "EUR", "format", "3")
	require.NoError(t, err)
	assert.Equal(t, "EUR 3.00\n", out)

	_, _, err = run(t, "", "format", "twelve")
	assert.Error(t, err)
}

func TestConvertCmd_Stdin(t *testing.T) {
	out, _, err := run(t, "1,234.56\n-34.56\n", "--format", "json", "convert")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "stdin", report.Source)
	assert.Len(t, report.Conversions, 2)
	assert.Equal(t, "1200", report.Total.String())
}

func TestConvertCmd_QIFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.qif")
	require.NoError(t, os.WriteFile(path, []byte("!Type:Bank\nT-1,234.56\n^\nT2,500.00\n^\n"), 0644))

	out, _, err := run(t, "", "convert", "--qif", path)
	require.NoError(t, err)
	assert.Contains(t, out, "AMOUNTS: "+path)
	assert.Contains(t, out, "-$ 1234.56")
	assert.Contains(t, out, "Records: 2")
	assert.Contains(t, out, "Total: $ 1265.44")
}

func TestConvertCmd_StrictFailsAfterReport(t *testing.T) {
	out, _, err := run(t, "10\nabc\n", "--strict", "--format", "csv", "convert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 amounts are malformed")
	assert.Contains(t, out, "Line,Record,Field,Input,Amount,Display,Shares,Error")
}

func TestConvertCmd_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "convert", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestBaseCmd(t *testing.T) {
	out, _, err := run(t, "", "base", "255", "16")
	require.NoError(t, err)
	assert.Equal(t, "FF\n", out)

	_, _, err = run(t, "", "base", "255", "37")
	assert.True(t, errors.Is(err, amount.ErrInvalidBase))
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usamount.yaml")
	out, _, err := run(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	out, _, err = run(t, "", "--config", path, "--symbol", "EUR", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "strict: true")
	assert.Contains(t, out, "currency_symbol: EUR")
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, _, err := run(t, "", "--format", "pdf", "parse", "1")
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
}

func TestRoot_DebugLogging(t *testing.T) {
	_, logs, err := run(t, "1\n", "--log-level", "debug", "convert")
	require.NoError(t, err)
	assert.Contains(t, logs, "level=debug")
	assert.Contains(t, logs, "converted 1 amounts")
}

package amount

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestParseUS(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"empty", "", 0},
		{"integer", "1234", 1234},
		{"grouped", "1,234.56", 1234.56},
		{"negative grouped", "-1,234.56", -1234.56},
		{"millions", "1,234,567.89", 1234567.89},
		{"one decimal", "12.3", 12.3},
		{"six decimals", "12.000001", 12.000001},
		{"seven decimals dropped", "12.1234567", 12},
		{"trailing point", "12.", 12},
		{"leading point", ".5", 0.5},
		{"three decimals", "0.125", 0.125},
		{"garbage", "abc.de", 0},
		{"letters only", "abc", 0},
		{"crlf", "42.10\r\n", 42.1},
		{"lf then more", "7\n8", 7},
		{"cr before lf", "7\r9\n8", 7},
		{"unit suffix", "12.50 USD", 12.5},
		{"leading whitespace", "  99", 99},
		{"minus after text", "USD -5.25", -5.25},
		{"minus resets window", "100-5", -5},
		{"minus inside fraction", "12.-5", -5},
		{"double minus", "--5", 5},
		{"plus sign", "+7", 7},
		{"dollar sign", "$12.34", 0.34},
		{"short group", "1,2345", 3345},
		{"group then garbage", "x,500", 500},
		{"fraction with letter counts its length", "12.5x", 12.05},
		{"space before fraction digits", "12. 5", 12},
		{"only minus", "-", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseUS(tt.in), eps)
		})
	}
}

func TestParseUS_Sign(t *testing.T) {
	assert.True(t, math.Signbit(ParseUS("-0")))
	assert.False(t, math.Signbit(ParseUS("0")))
	assert.Less(t, ParseUS("-0.01"), 0.0)
}

func TestParseUSPtr(t *testing.T) {
	assert.Equal(t, 0.0, ParseUSPtr(nil))
	s := "2,000"
	assert.Equal(t, 2000.0, ParseUSPtr(&s))
}

func TestParseUS_DoesNotModifyInput(t *testing.T) {
	in := "-1,234.56\n"
	_ = ParseUS(in)
	assert.Equal(t, "-1,234.56\n", in)
}

func TestParseUSStrict(t *testing.T) {
	t.Run("accepts", func(t *testing.T) {
		tests := []struct {
			in   string
			want float64
		}{
			{"", 0},
			{"   ", 0},
			{"0", 0},
			{"1234", 1234},
			{"1,234.56", 1234.56},
			{"-1,234.56", -1234.56},
			{"12,345,678", 12345678},
			{" 12.000001 ", 12.000001},
			{".5", 0.5},
			{"-.75", -0.75},
			{"42.10\r\n", 42.1},
		}
		for _, tt := range tests {
			got, err := ParseUSStrict(tt.in)
			require.NoError(t, err, "input %q", tt.in)
			assert.InDelta(t, tt.want, got, eps, "input %q", tt.in)
			assert.InDelta(t, ParseUS(tt.in), got, eps, "strict and permissive disagree on %q", tt.in)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		for _, in := range []string{
			"abc.de",
			"abc",
			"-",
			"12.",
			"12.1234567",
			"1,2345",
			"12,34",
			",123",
			"100-5",
			"--5",
			"+7",
			"$12.34",
			"12.50 USD",
			"1.2.3",
			"1 234",
		} {
			_, err := ParseUSStrict(in)
			assert.Error(t, err, "input %q", in)
			assert.True(t, errors.Is(err, ErrMalformedAmount), "input %q: %v", in, err)
		}
	})
}

func TestFractionScale(t *testing.T) {
	for n, want := range map[int]float64{1: 0.1, 2: 0.01, 3: 0.001, 4: 0.0001, 5: 0.00001, 6: 0.000001} {
		got, ok := fractionScale(n)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	for _, n := range []int{-1, 0, 7, 20} {
		_, ok := fractionScale(n)
		assert.False(t, ok, "n=%d", n)
	}
}

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"123", 123},
		{"  42abc", 42},
		{"\t-17", -17},
		{"+8", 8},
		{"abc", 0},
		{"- 5", 0},
		{"007", 7},
		{"99999999999999999999", math.MaxInt64},
		{"-99999999999999999999", math.MinInt64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, atoi(tt.in), "atoi(%q)", tt.in)
	}
}

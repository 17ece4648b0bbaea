package amount

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Tokens of the U.S. monetary grammar.
const (
	minusSign = '-'
	kSep      = ',' // thousands separator
	decSep    = '.' // decimal point
)

// ErrMalformedAmount is returned by ParseUSStrict for input outside the U.S. grammar.
var ErrMalformedAmount = errors.New("malformed amount")

// fractionScales maps a fraction length n to 10^-n.
var fractionScales = [...]float64{0.1, 0.01, 0.001, 0.0001, 0.00001, 0.000001}

// fractionScale returns the factor for a fraction of n digits.
// Only 1 to 6 digits are supported.
func fractionScale(n int) (float64, bool) {
	if n < 1 || n > len(fractionScales) {
		return 0, false
	}
	return fractionScales[n-1], true
}

// ParseUS parses a U.S. style monetary string (DDD,DDD,DDD.CC).
//
// Anything after the first line ending is ignored. A minus sign anywhere
// makes the result negative and the text before it is discarded. Text after
// the fraction is cut at the first space, so "12.50 USD" parses as 12.5.
// Fractions must be 1 to 6 characters long; longer fractions are dropped.
// Non-numeric fragments count as zero, so ParseUS never fails.
func ParseUS(s string) float64 {
	s = cutLineEnd(s)

	neg := false
	if i := strings.IndexByte(s, minusSign); i >= 0 {
		neg = true
		s = s[i+1:]
	}

	var v float64
	for i := strings.IndexByte(s, kSep); i >= 0; i = strings.IndexByte(s, kSep) {
		v *= 1000
		v += 1000 * float64(atoi(s[:i]))
		s = s[i+1:]
	}

	if i := strings.IndexByte(s, decSep); i >= 0 {
		v += float64(atoi(s[:i]))
		if frac := s[i+1:]; frac != "" {
			if j := strings.IndexByte(frac, ' '); j >= 0 {
				frac = frac[:j]
			}
			if scale, ok := fractionScale(len(frac)); ok {
				v += scale * float64(atoi(frac))
			}
		}
	} else {
		v += float64(atoi(s))
	}

	if neg {
		v = -v
	}
	return v
}

// ParseUSPtr is ParseUS for optional fields; a nil string parses as zero.
func ParseUSPtr(s *string) float64 {
	if s == nil {
		return 0
	}
	return ParseUS(*s)
}

var strictUS = regexp.MustCompile(`^-?(?:\d{1,3}(?:,\d{3})+|\d*)(?:\.\d{1,6})?$`)

// ParseUSStrict is like ParseUS but rejects input that ParseUS would only
// accept by guessing. The minus sign must lead, comma groups must hold three
// digits and a fraction must have 1 to 6 digits. Surrounding whitespace and
// anything after a line ending are ignored; blank input parses as zero.
func ParseUSStrict(s string) (float64, error) {
	t := strings.TrimSpace(cutLineEnd(s))
	if t == "" {
		return 0, nil
	}
	if !strictUS.MatchString(t) || !strings.ContainsAny(t, "0123456789") {
		return 0, fmt.Errorf("parsing %q: %w", s, ErrMalformedAmount)
	}
	return ParseUS(t), nil
}

// cutLineEnd drops everything from the first CR, then from the first LF.
func cutLineEnd(s string) string {
	if i := strings.IndexByte(s, '\r'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// atoi converts the leading integer of s the way C atoi does: leading
// whitespace and one sign are skipped, conversion stops at the first
// non-digit and a string without digits is 0. Out of range values
// saturate.
func atoi(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var n int64
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		d := int64(s[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			if neg {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

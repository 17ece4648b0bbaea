package amount

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBase is returned by FormatBase for bases outside 2..36.
var ErrInvalidBase = errors.New("invalid base")

// FormatBase renders val in the given base using upper-case letters for
// digits above 9. It is the inverse of strconv.ParseUint.
func FormatBase(val uint64, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", fmt.Errorf("base %d: %w", base, ErrInvalidBase)
	}
	return strings.ToUpper(strconv.FormatUint(val, base)), nil
}

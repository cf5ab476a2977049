package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDecimal parses a user-entered decimal number. Surrounding whitespace is
// ignored; hex notation, NaN and infinities are rejected.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, fmt.Errorf("parse decimal: empty value")
	}
	if digits := strings.TrimLeft(s, "+-"); strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("parse decimal: %q is not a decimal number", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse decimal: %q is not a finite number", s)
	}
	return v, nil
}

// Fixed formats v with exactly digits decimals.
func Fixed(v float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

package relation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in integer cents. Storing cents instead of dollars
// keeps group sums exact and makes rounding a one-time parse decision.
type Money int64

// ParseMoney parses decimal text such as "1234.56" into cents. Input with
// more than two fraction digits is rounded half-up at the cent.
func ParseMoney(s string) (Money, error) {
	v, err := parseFixed(s, 2)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money(v), nil
}

// String renders cents as a plain decimal with two fraction digits.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Impact is an assignment impact score in tenths on the 0-10 scale,
// so valid values are 0..100.
type Impact int64

// MaxImpact is the upper bound of the impact scale, in tenths.
const MaxImpact Impact = 100

// ParseImpact parses decimal text such as "9.5" into tenths. Input with
// more than one fraction digit is rounded half-up at the tenth.
func ParseImpact(s string) (Impact, error) {
	v, err := parseFixed(s, 1)
	if err != nil {
		return 0, fmt.Errorf("invalid impact score %q: %w", s, err)
	}
	return Impact(v), nil
}

// InRange reports whether i is within the 0-10 scale.
func (i Impact) InRange() bool {
	return i >= 0 && i <= MaxImpact
}

// String renders tenths as a decimal with one fraction digit.
func (i Impact) String() string {
	sign := ""
	v := int64(i)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

var (
	errEmptyNumber     = errors.New("empty number")
	errMalformedNumber = errors.New("malformed number")
)

// parseFixed parses signed decimal text into an integer scaled by
// 10^fracDigits, rounding half-up on the first dropped digit.
//
// Half-up needs only the first dropped digit: the remainder is at least
// half of one unit in the last kept place exactly when that digit is >= 5.
func parseFixed(s string, fracDigits int) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyNumber
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, errMalformedNumber
	}
	if intPart == "" {
		intPart = "0"
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, errMalformedNumber
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, errMalformedNumber
	}

	scaled := whole
	for i := 0; i < fracDigits; i++ {
		var digit int64
		if i < len(fracPart) {
			digit = int64(fracPart[i] - '0')
		}
		scaled = scaled*10 + digit
	}
	if len(fracPart) > fracDigits && fracPart[fracDigits] >= '5' {
		scaled++
	}

	if neg {
		scaled = -scaled
	}
	return scaled, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

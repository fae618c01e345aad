package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid decimal amount")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Money is an exact currency amount held as integer cents. Amounts cross the
// API boundary as decimal strings with two fractional digits, never as
// binary floats.
type Money struct {
	cents int64
}

func New(cents int64) Money {
	return Money{cents: cents}
}

// Parse accepts decimal strings such as "100", "99.5" or "300.00".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	neg := strings.HasPrefix(s, "-")
	whole, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")

	// Only bare digits on either side of the dot: ParseInt alone would let an
	// embedded sign through ("10.-5", "+5.00") and mis-value the amount.
	if !isDigits(whole) || len(frac) > 2 || (frac != "" && !isDigits(frac)) {
		return Money{}, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	cents := int64(0)
	if frac != "" {
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Money{}, ErrInvalidAmount
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Money{cents: total}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MustParse is for literals in tests and seed data.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsNegative() bool { return m.cents < 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulNights multiplies a nightly rate by a night count.
func (m Money) MulNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

// String renders the amount as a decimal with exactly two fractional digits.
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

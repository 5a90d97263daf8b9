package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Money is an amount in cents. Prices on the site never carry more than two
// decimals, so comparisons in cents are exact.
type Money int64

// ErrInvalidMoney is returned when a rendered amount cannot be parsed
var ErrInvalidMoney = errors.New("invalid money amount")

// ParseMoney parses a rendered amount such as "$10.99", "10.99" or "116.9"
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrInvalidMoney
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if negative {
		s = strings.TrimPrefix(s, "$")
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	switch {
	case whole == "" && (negative || !hasFrac):
		return 0, errors.Wrapf(ErrInvalidMoney, "%q", s)
	case !isDigits(whole):
		return 0, errors.Wrapf(ErrInvalidMoney, "%q", s)
	case hasFrac && (len(frac) == 0 || len(frac) > 2 || !isDigits(frac)):
		return 0, errors.Wrapf(ErrInvalidMoney, "%q", s)
	}
	if whole == "" {
		whole = "0"
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidMoney, "%q", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidMoney, "%q", s)
	}

	m := Money(units*100 + cents)
	if negative {
		m = -m
	}
	return m, nil
}

// isDigits reports whether s holds only ASCII digits; strconv would also
// accept a sign
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Times returns the amount multiplied by a quantity
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// String formats the amount the way prices are shown, e.g. "$10.99"
func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s$%d.%02d", sign, m/100, m%100)
}

// Plain formats the amount without currency symbol or trailing zeros, the way
// the cart total is rendered, e.g. "116.9" or "42"
func (m Money) Plain() string {
	return strconv.FormatFloat(float64(m)/100, 'f', -1, 64)
}

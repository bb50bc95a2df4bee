// Package core holds the domain types and the pure calculators: the
// transaction aggregator and the goal progress engine.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a user-entered amount string to whole currency
// units. The currency carries no sub-units, so a fractional part is only
// accepted when it is all zeros ("2500", "2500.00"). Thousands separators
// are stripped. Negative, zero and malformed inputs are rejected.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", "")
	intPart := s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		frac := s[i+1:]
		if frac == "" || strings.TrimLeft(frac, "0") != "" {
			return 0, ErrInvalidAmount
		}
	}
	if intPart == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Add returns m plus other. Money is a value type; no mutation.
func (m Money) Add(other Money) Money {
	return Money{Units: m.Units + other.Units}
}

// Sub returns m minus other. The result may be negative (e.g. balance).
func (m Money) Sub(other Money) Money {
	return Money{Units: m.Units - other.Units}
}

// Float returns the amount as a float64 for chart rendering and pacing
// math. Keep comparisons and totals in Units.
func (m Money) Float() float64 {
	return float64(m.Units)
}

// MarshalJSON encodes Money as a bare number of units.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.Units, 10)), nil
}

// UnmarshalJSON accepts a bare number of units.
func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return ErrInvalidAmount
	}
	m.Units = v
	return nil
}

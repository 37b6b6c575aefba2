package normalize

import (
	"strings"

	"github.com/shopspring/decimal"

	"talentsync/internal/domain"
)

// Decimal parses an amount written with either a decimal comma or a
// decimal point. When both separators appear the rightmost one is the
// decimal mark and the other groups thousands, so "2.500,75" and
// "2,500.75" both read as 2500.75. A lone comma is a decimal comma
// ("1234,50" is 1234.50); repeated occurrences of a single separator are
// thousands groups ("1.234.567").
func Decimal(field, raw string) (decimal.Decimal, error) {
	v, err := Required(field, raw)
	if err != nil {
		return decimal.Zero, err
	}

	s := canonicalNumber(v)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &domain.InvalidNumberError{Field: field, Value: raw}
	}
	if d.IsNegative() {
		return decimal.Zero, &domain.InvalidNumberError{Field: field, Value: raw, Reason: "must not be negative"}
	}
	return d, nil
}

func canonicalNumber(v string) string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '$', '\'':
			return -1
		}
		return r
	}, v)

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return strings.ReplaceAll(s, ",", "")
		}
		return strings.Replace(s, ",", ".", 1)
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			return strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}

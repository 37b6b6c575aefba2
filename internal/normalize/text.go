// Package normalize turns raw spreadsheet cell text into typed employee
// field values. Every function is pure and reports failures as domain
// errors carrying the offending text.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"talentsync/internal/domain"
)

// Required trims raw and fails when nothing is left.
func Required(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", &domain.MissingFieldError{Field: field}
	}
	return v, nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func emailValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Email is Required plus an address syntax check.
func Email(field, raw string) (string, error) {
	v, err := Required(field, raw)
	if err != nil {
		return "", err
	}
	if err := emailValidator().Var(v, "email"); err != nil {
		return "", &domain.InvalidEmailError{Field: field, Value: raw}
	}
	return v, nil
}

// Key folds s for alias matching: accents removed, lower-cased, and every
// character that is not a letter or digit dropped. "Soporte Técnico",
// "soporte tecnico" and "SOPORTE_TECNICO" all fold to "soportetecnico".
func Key(s string) string {
	folded := StripAccents(s)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// StripAccents removes combining marks, so "Logística" becomes "Logistica".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

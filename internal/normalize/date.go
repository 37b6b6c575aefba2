package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"

	"talentsync/internal/domain"
)

// dateLayouts are tried in order. Four-digit-year numeric dates are read
// day-first. The shapes excelize renders its built-in date formats in are
// read the way excelize writes them: mm-dd-yy (14), d-mmm-yy (15),
// d-mmm (16), mmm-yy (17) and m/d/yy h:mm (22).
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"02/01/2006 15:04:05",
	"2/1/2006 15:04",
	"01-02-06",
	"1-2-06",
	"1/2/06 15:04",
	"02/01/06",
	"2/1/06",
	"02 Jan 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"2-Jan-06",
	"2-Jan",
	"Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// spanishMonths rewrites Spanish month names to the English abbreviations
// time.Parse understands. Longer names come first so "septiembre" is not
// consumed as "sep".
var spanishMonths = strings.NewReplacer(
	"septiembre", "Sep",
	"setiembre", "Sep",
	"noviembre", "Nov",
	"diciembre", "Dec",
	"octubre", "Oct",
	"febrero", "Feb",
	"agosto", "Aug",
	"enero", "Jan",
	"marzo", "Mar",
	"abril", "Apr",
	"mayo", "May",
	"junio", "Jun",
	"julio", "Jul",
	"ene", "Jan",
	"abr", "Apr",
	"ago", "Aug",
	"dic", "Dec",
	"set", "Sep",
)

// Date parses a calendar date from display text and returns it at UTC
// midnight. Bare numbers are read as Excel serial dates. Text without a
// year (d-mmm) is taken to be in the current year.
func Date(field, raw string) (time.Time, error) {
	v, err := Required(field, raw)
	if err != nil {
		return time.Time{}, err
	}

	if t, ok := parseDate(v); ok {
		year := t.Year()
		if year == 0 {
			year = time.Now().Year()
		}
		return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, &domain.InvalidDateError{Field: field, Value: raw}
}

func parseDate(s string) (time.Time, bool) {
	if t, ok := parseLayouts(s); ok {
		return t, true
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, true
		}
	}

	spanish := localizeMonths(s)
	if spanish != s {
		if t, ok := parseLayouts(spanish); ok {
			return t, true
		}
	}

	// Free-form text such as RFC 1123 or "March 4th, 2024"; ambiguous
	// numeric dates stay day-first.
	for _, candidate := range []string{s, spanish} {
		if t, err := dateparse.ParseIn(candidate, time.UTC, dateparse.PreferMonthFirst(false)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseLayouts(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// localizeMonths handles "15 de enero de 2024", "15-ene-2024" and similar.
func localizeMonths(s string) string {
	lower := strings.ToLower(StripAccents(s))
	lower = strings.ReplaceAll(lower, " de ", " ")
	lower = strings.ReplaceAll(lower, " del ", " ")
	return spanishMonths.Replace(lower)
}

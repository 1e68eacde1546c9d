// Package parse converts the free-form date and amount strings found in bank
// exports into canonical values. Both parsers are tolerant: a value that
// cannot be understood degrades (raw passthrough for dates, absent for
// amounts) instead of failing the row.
package parse

import (
	"strings"
	"time"
)

// isoDate is the canonical output layout.
const isoDate = "2006-01-02"

// dateLayouts are tried in order; the first that parses wins. Day-first
// layouts lead because the primary inputs are French exports. The
// non-padded forms accept both "05/03/2024" and "5/3/2024".
var dateLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"2-1-2006",
	"2.1.2006",
	"2 1 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006/1/2",
}

// isoFallbacks are generic ISO-8601 shapes tried as a last resort on the
// time-of-day-truncated value.
var isoFallbacks = []string{
	isoDate,
	"20060102",
}

// Date converts a raw date string to ISO-8601 (YYYY-MM-DD). Blank input
// yields the empty string. When no known layout matches, any trailing
// time-of-day component (first space or 'T' onward) is cut and the layouts
// are retried, then a generic ISO parse. If everything fails the raw string
// is returned unchanged: a non-ISO shape downstream flags the value without
// fabricating a date.
func Date(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	if iso, ok := tryLayouts(value, dateLayouts); ok {
		return iso
	}

	cleaned := value
	if i := strings.IndexAny(value, " T"); i >= 0 {
		cleaned = value[:i]
	}
	if cleaned != value {
		if iso, ok := tryLayouts(cleaned, dateLayouts); ok {
			return iso
		}
	}
	if iso, ok := tryLayouts(cleaned, isoFallbacks); ok {
		return iso
	}
	return raw
}

func tryLayouts(value string, layouts []string) (string, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(isoDate), true
		}
	}
	return "", false
}

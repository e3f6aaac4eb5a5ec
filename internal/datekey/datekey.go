// Package datekey reconciles the date strings that show up in the
// availability spreadsheet (ISO, slash-separated, or spelled out) into a
// single YYYY-MM-DD key so the query side and the row side always compare
// the same thing.
package datekey

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	dmyPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
)

// Fallback layouts for dates the sheet occasionally emits spelled out or
// with slashes in ISO order.
var layouts = []string{
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// Normalize maps an arbitrary date string to YYYY-MM-DD. It never fails:
// when nothing parses, the trimmed input comes back unchanged so equality
// comparisons degrade to string comparisons instead of erroring.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// An embedded ISO date wins outright, even inside a longer string.
	if m := isoPattern.FindString(s); m != "" {
		return m
	}

	if key, ok := normalizeSlashDate(s); ok {
		return key
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return s
}

// normalizeSlashDate handles D/M/YYYY and M/D/YYYY with slash or hyphen
// separators. A component above 12 must be the day; when both fit a month
// the sheet's locale is day-first, so that wins.
func normalizeSlashDate(s string) (string, bool) {
	m := dmyPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	day, month := first, second
	if first <= 12 && second > 12 {
		day, month = second, first
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}

	// Reject impossible calendar dates like 31/02 instead of rolling over.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

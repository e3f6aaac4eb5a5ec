package sheetcsv

import (
	"strings"
)

// Row is one parsed spreadsheet line. Header lookups are case-insensitive;
// values are kept as raw strings, interpretation belongs to the caller.
type Row struct {
	headers []string
	values  map[string]string
}

// Get returns the value for a column, matching the header case-insensitively.
// Missing columns yield the empty string.
func (r Row) Get(key string) string {
	return r.values[strings.ToLower(key)]
}

// Has reports whether the column exists at all, even if its value is blank.
func (r Row) Has(key string) bool {
	_, ok := r.values[strings.ToLower(key)]
	return ok
}

// Headers returns the column names in their original order and casing.
func (r Row) Headers() []string {
	return r.headers
}

// Parse turns raw CSV text into rows. The first non-blank line is the header
// row. Fewer than two non-blank lines means there is no data at all.
func Parse(csvText string) []Row {
	var lines []string
	for _, line := range strings.Split(csvText, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return nil
	}

	headers := parseLine(lines[0])

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := parseLine(line)

		row := Row{
			headers: headers,
			values:  make(map[string]string, len(headers)),
		}
		for i, header := range headers {
			var value string
			if i < len(values) {
				value = values[i]
			}
			row.values[strings.ToLower(header)] = value
		}

		rows = append(rows, row)
	}

	return rows
}

// parseLine splits one CSV line, honoring double-quoted fields with embedded
// commas and unescaping doubled quotes. Fields are trimmed of surrounding
// whitespace, matching what the spreadsheet export produces.
func parseLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]

		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	values = append(values, strings.TrimSpace(current.String()))

	return values
}

// ToCSV serializes tabular values with every cell quoted and inner quotes
// doubled, the same framing the Sheets API conversion path emits.
func ToCSV(values [][]string) string {
	if len(values) == 0 {
		return ""
	}

	var b strings.Builder
	for i, row := range values {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}

	return b.String()
}

// Package availability answers "what can I book on this date for this many
// people" from parsed spreadsheet rows. Two sheet generations are in the
// wild: the legacy one with a free-seat count per area, and the current one
// with a yes/no column per table. Schema detection is explicit so callers
// can tell which kind of answer they got.
package availability

import (
	"strconv"
	"strings"

	"github.com/kasikocoffeeatery/adminKasiko/internal/catalog"
	"github.com/kasikocoffeeatery/adminKasiko/internal/datekey"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheetcsv"
)

// DateColumn is the date header both sheet generations share.
const DateColumn = "Tanggal"

var areaColumns = []struct {
	area   catalog.Area
	column string
}{
	{catalog.AreaIndoor, "Tersedia Indoor"},
	{catalog.AreaOutdoor, "Tersedia Outdoor"},
	{catalog.AreaSemiOutdoor, "Tersedia Semi Outdoor"},
}

// Values a per-table cell may hold to mean "bookable". Anything else,
// including blank and "Tidak tersedia", means it is not.
var truthyTokens = map[string]bool{
	"tersedia":  true,
	"available": true,
	"ya":        true,
	"yes":       true,
	"1":         true,
	"true":      true,
}

// Schema is the tagged result of sheet detection. Resolve returns area
// names for the legacy schema and table ids for the per-table schema.
type Schema interface {
	Name() string
	Resolve(row sheetcsv.Row, partySize int) []string
}

// AreaCountSchema is the legacy layout: one numeric free-seat column per
// seating area.
type AreaCountSchema struct{}

func (AreaCountSchema) Name() string { return "area-count" }

func (AreaCountSchema) Resolve(row sheetcsv.Row, partySize int) []string {
	var available []string
	seen := make(map[catalog.Area]bool)

	for _, ac := range areaColumns {
		raw := strings.TrimSpace(row.Get(ac.column))
		if raw == "" {
			continue
		}

		// Cells sometimes carry units or stray text; keep digits and a
		// leading minus, discard the rest.
		count, err := strconv.Atoi(stripNonNumeric(raw))
		if err != nil {
			continue
		}

		if count >= partySize && !seen[ac.area] {
			available = append(available, string(ac.area))
			seen[ac.area] = true
		}
	}

	return available
}

// PerTableSchema is the current layout: one column per table, named by its
// area-prefixed label ("Semi Outdoor B1"), holding a truthy token when the
// table is open.
type PerTableSchema struct {
	Tables []catalog.Table
}

func (PerTableSchema) Name() string { return "per-table" }

func (s PerTableSchema) Resolve(row sheetcsv.Row, partySize int) []string {
	var available []string

	for _, table := range s.Tables {
		cell := row.Get(catalog.PlaceLabel(table.ID))
		if truthyTokens[strings.ToLower(strings.TrimSpace(cell))] {
			available = append(available, table.ID)
		}
	}

	return available
}

// DetectSchema picks the schema for a row by column presence: any of the
// recognized area-count columns makes it the legacy schema.
func DetectSchema(row sheetcsv.Row) Schema {
	for _, ac := range areaColumns {
		if row.Has(ac.column) {
			return AreaCountSchema{}
		}
	}

	return PerTableSchema{Tables: catalog.Tables()}
}

// Resolve finds the row whose date matches the query date (both sides
// normalized) and resolves it. A date missing from the sheet is not an
// error, just an empty answer; schema is nil in that case.
func Resolve(rows []sheetcsv.Row, date string, partySize int) ([]string, Schema) {
	want := datekey.Normalize(date)
	if want == "" {
		return nil, nil
	}

	for _, row := range rows {
		value := row.Get(DateColumn)
		if value == "" {
			continue
		}

		if datekey.Normalize(value) == want {
			schema := DetectSchema(row)
			return schema.Resolve(row, partySize), schema
		}
	}

	return nil, nil
}

// FilterByCapacity keeps the table ids whose occupancy range fits the
// party. Ids without a catalog entry are dropped: nothing outside the
// catalog may ever be offered.
func FilterByCapacity(ids []string, partySize int) []string {
	var fits []string
	for _, id := range ids {
		table, ok := catalog.ByID(id)
		if !ok {
			continue
		}
		if partySize >= table.MinCapacity && partySize <= table.MaxCapacity {
			fits = append(fits, id)
		}
	}
	return fits
}

// ApplyGroupPolicy withholds the last open table of a lockout group: when
// every other member is unavailable, the survivor is removed too.
func ApplyGroupPolicy(ids []string, policies []catalog.GroupPolicy) []string {
	if len(ids) == 0 || len(policies) == 0 {
		return ids
	}

	open := make(map[string]bool, len(ids))
	for _, id := range ids {
		open[id] = true
	}

	withheld := make(map[string]bool)
	for _, policy := range policies {
		for _, id := range policy.Tables {
			if !open[id] {
				continue
			}

			closedOthers := 0
			for _, other := range policy.Tables {
				if other != id && !open[other] {
					closedOthers++
				}
			}

			if closedOthers == len(policy.Tables)-1 {
				withheld[id] = true
			}
		}
	}

	if len(withheld) == 0 {
		return ids
	}

	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if !withheld[id] {
			kept = append(kept, id)
		}
	}
	return kept
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

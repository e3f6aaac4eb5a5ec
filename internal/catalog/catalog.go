// Package catalog is the static seating reference: every bookable table,
// its zone, and its occupancy range. The catalog is fixed at process start;
// availability only ever says which of these entries are open.
package catalog

import "strings"

type Area string

const (
	AreaIndoor      Area = "Indoor"
	AreaSemiOutdoor Area = "Semi Outdoor"
	AreaOutdoor     Area = "Outdoor"
)

// Areas in the canonical result order used by the area-count schema.
var Areas = []Area{AreaIndoor, AreaOutdoor, AreaSemiOutdoor}

// Size is a layout hint for the seating map, not a capacity.
type Size string

const (
	SizeSM   Size = "sm"
	SizeMD   Size = "md"
	SizeLG   Size = "lg"
	SizeXL   Size = "xl"
	SizeFull Size = "full"
)

type Table struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Area        Area   `json:"area"`
	MinCapacity int    `json:"min_capacity"`
	MaxCapacity int    `json:"max_capacity"`
	Size        Size   `json:"size"`
}

type Zone struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Tables []Table `json:"tables"`
}

// Zones mirrors the restaurant floor plan. Order matters: per-table
// availability results follow this iteration order.
var Zones = []Zone{
	{
		ID:    "indoor",
		Label: "Indoor",
		Tables: []Table{
			{ID: "A1", Label: "A1", Area: AreaIndoor, MinCapacity: 10, MaxCapacity: 15, Size: SizeMD},
			{ID: "A2", Label: "A2", Area: AreaIndoor, MinCapacity: 10, MaxCapacity: 15, Size: SizeMD},
			{ID: "A3", Label: "A3", Area: AreaIndoor, MinCapacity: 4, MaxCapacity: 7, Size: SizeMD},
		},
	},
	{
		ID:    "semi-outdoor-kanan",
		Label: "Semi Outdoor: Kanan",
		Tables: []Table{
			{ID: "B1", Label: "B1", Area: AreaSemiOutdoor, MinCapacity: 4, MaxCapacity: 4, Size: SizeMD},
			{ID: "B2", Label: "B2", Area: AreaSemiOutdoor, MinCapacity: 4, MaxCapacity: 4, Size: SizeMD},
			{ID: "B3", Label: "B3", Area: AreaSemiOutdoor, MinCapacity: 5, MaxCapacity: 8, Size: SizeMD},
		},
	},
	{
		ID:    "semi-outdoor-kiri",
		Label: "Semi Outdoor: Kiri",
		Tables: []Table{
			{ID: "E1", Label: "E1", Area: AreaSemiOutdoor, MinCapacity: 4, MaxCapacity: 4, Size: SizeSM},
			{ID: "E2", Label: "E2", Area: AreaSemiOutdoor, MinCapacity: 4, MaxCapacity: 4, Size: SizeSM},
			{ID: "E3", Label: "E3", Area: AreaSemiOutdoor, MinCapacity: 5, MaxCapacity: 8, Size: SizeMD},
		},
	},
	{
		ID:     "semi-outdoor-tengah",
		Label:  "Semi Outdoor: Tengah",
		Tables: []Table{{ID: "D1", Label: "D1", Area: AreaSemiOutdoor, MinCapacity: 15, MaxCapacity: 23, Size: SizeXL}},
	},
	{
		ID:     "semi-outdoor-belakang",
		Label:  "Semi Outdoor: Belakang",
		Tables: []Table{{ID: "C1", Label: "C1", Area: AreaSemiOutdoor, MinCapacity: 28, MaxCapacity: 45, Size: SizeFull}},
	},
	{
		ID:    "atas-1",
		Label: "Atas 1",
		Tables: []Table{
			{ID: "F1", Label: "F1", Area: AreaOutdoor, MinCapacity: 4, MaxCapacity: 4, Size: SizeSM},
			{ID: "F2", Label: "F2", Area: AreaOutdoor, MinCapacity: 4, MaxCapacity: 4, Size: SizeSM},
			{ID: "F3", Label: "F3", Area: AreaOutdoor, MinCapacity: 4, MaxCapacity: 4, Size: SizeSM},
			{ID: "F4", Label: "F4", Area: AreaOutdoor, MinCapacity: 5, MaxCapacity: 8, Size: SizeMD},
			{ID: "F5", Label: "F5", Area: AreaOutdoor, MinCapacity: 5, MaxCapacity: 8, Size: SizeMD},
		},
	},
	{
		ID:    "atas-2",
		Label: "Atas 2",
		Tables: []Table{
			// G tables are currently closed; zero capacity keeps them
			// filtered out without removing the layout slots.
			{ID: "G1", Label: "G1", Area: AreaOutdoor, MinCapacity: 0, MaxCapacity: 0, Size: SizeLG},
			{ID: "G2", Label: "G2", Area: AreaOutdoor, MinCapacity: 0, MaxCapacity: 0, Size: SizeMD},
			{ID: "G3", Label: "G3", Area: AreaOutdoor, MinCapacity: 0, MaxCapacity: 0, Size: SizeFull},
		},
	},
}

var tablesByID = func() map[string]Table {
	m := make(map[string]Table)
	for _, z := range Zones {
		for _, t := range z.Tables {
			m[t.ID] = t
		}
	}
	return m
}()

// Tables returns every table flattened in zone order.
func Tables() []Table {
	var all []Table
	for _, z := range Zones {
		all = append(all, z.Tables...)
	}
	return all
}

// ByID looks up a table in the static catalog.
func ByID(id string) (Table, bool) {
	t, ok := tablesByID[strings.ToUpper(strings.TrimSpace(id))]
	return t, ok
}

// PlaceLabel formats the area-prefixed label used both for display and as
// the spreadsheet column name: "Indoor A1", "Semi Outdoor B1", "Atas G2".
// Unknown ids pass through unchanged.
func PlaceLabel(id string) string {
	if id == "" {
		return ""
	}

	table, ok := ByID(id)
	if !ok {
		return id
	}

	var prefix string
	switch strings.ToUpper(strings.TrimSpace(id))[:1] {
	case "A":
		prefix = "Indoor"
	case "B", "C", "D", "E":
		prefix = "Semi Outdoor"
	case "F", "G":
		prefix = "Atas"
	default:
		prefix = string(table.Area)
	}

	return prefix + " " + table.Label
}

// GroupPolicy names a set of tables that book together: when every member
// but one is unavailable, the remaining one is withheld too, so the group
// is never left with a single stranded table.
type GroupPolicy struct {
	ID     string
	Tables []string
}

// DefaultGroupPolicies returns the configured lockout groups. E4 is a
// planned table that has no catalog entry yet; listing it keeps the
// threshold identical to the floor staff's four-table rule.
func DefaultGroupPolicies() []GroupPolicy {
	return []GroupPolicy{
		{ID: "semi-outdoor-kiri", Tables: []string{"E1", "E2", "E3", "E4"}},
	}
}

package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasikocoffeeatery/adminKasiko/internal/catalog"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheetcsv"
)

func rowsFromCSV(t *testing.T, csv string) []sheetcsv.Row {
	t.Helper()
	rows := sheetcsv.Parse(csv)
	require.NotEmpty(t, rows)
	return rows
}

func TestDetectSchema(t *testing.T) {
	t.Run("any area column means area-count", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Tersedia Indoor\n2026-01-10,5")
		assert.Equal(t, "area-count", DetectSchema(rows[0]).Name())
	})

	t.Run("area column match is case-insensitive", func(t *testing.T) {
		rows := rowsFromCSV(t, "tanggal,TERSEDIA SEMI OUTDOOR\n2026-01-10,2")
		assert.Equal(t, "area-count", DetectSchema(rows[0]).Name())
	})

	t.Run("no area columns means per-table", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Semi Outdoor B1\n2026-01-10,Tersedia")
		assert.Equal(t, "per-table", DetectSchema(rows[0]).Name())
	})
}

func TestResolveAreaCount(t *testing.T) {
	t.Run("only areas with enough seats", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Tersedia Indoor,Tersedia Outdoor\n2026-01-10,5,0")

		got, schema := Resolve(rows, "2026-01-10", 4)
		require.NotNil(t, schema)
		assert.Equal(t, "area-count", schema.Name())
		assert.Equal(t, []string{"Indoor"}, got)
	})

	t.Run("fixed area order", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Tersedia Semi Outdoor,Tersedia Outdoor,Tersedia Indoor\n2026-01-10,9,9,9")

		got, _ := Resolve(rows, "2026-01-10", 2)
		assert.Equal(t, []string{"Indoor", "Outdoor", "Semi Outdoor"}, got)
	})

	t.Run("numeric junk is stripped", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Tersedia Indoor\n2026-01-10,\" 8 kursi\"")

		got, _ := Resolve(rows, "2026-01-10", 8)
		assert.Equal(t, []string{"Indoor"}, got)
	})

	t.Run("unparseable count is skipped not an error", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Tersedia Indoor,Tersedia Outdoor\n2026-01-10,penuh,6")

		got, _ := Resolve(rows, "2026-01-10", 4)
		assert.Equal(t, []string{"Outdoor"}, got)
	})

	t.Run("negative counts never qualify", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Tersedia Indoor\n2026-01-10,-3")

		got, _ := Resolve(rows, "2026-01-10", 1)
		assert.Empty(t, got)
	})

	t.Run("row date in slash format still matches", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Tersedia Indoor\n10/01/2026,5")

		got, _ := Resolve(rows, "2026-01-10", 4)
		assert.Equal(t, []string{"Indoor"}, got)
	})
}

func TestResolvePerTable(t *testing.T) {
	csv := "Tanggal,Indoor A1,Indoor A2,Indoor A3,Semi Outdoor B1,Semi Outdoor B2\n" +
		"2026-01-10,Tidak tersedia,Tidak tersedia,Tidak tersedia,Tersedia,Tidak tersedia"

	t.Run("only truthy cells included", func(t *testing.T) {
		rows := rowsFromCSV(t, csv)

		got, schema := Resolve(rows, "2026-01-10", 4)
		require.NotNil(t, schema)
		assert.Equal(t, "per-table", schema.Name())
		assert.Equal(t, []string{"B1"}, got)
	})

	t.Run("truthy tokens are case-insensitive", func(t *testing.T) {
		for _, token := range []string{"TERSEDIA", "Available", "ya", "YES", "1", "true"} {
			rows := rowsFromCSV(t, "Tanggal,Semi Outdoor B1\n2026-01-10,"+token)

			got, _ := Resolve(rows, "2026-01-10", 4)
			assert.Equal(t, []string{"B1"}, got, "token %q", token)
		}
	})

	t.Run("unrecognized tokens exclude the table", func(t *testing.T) {
		for _, token := range []string{"", "Tidak tersedia", "maybe", "0", "booked"} {
			rows := rowsFromCSV(t, "Tanggal,Semi Outdoor B1\n2026-01-10,"+token)

			got, _ := Resolve(rows, "2026-01-10", 4)
			assert.Empty(t, got, "token %q", token)
		}
	})

	t.Run("results follow catalog order", func(t *testing.T) {
		rows := rowsFromCSV(t, "Tanggal,Atas F1,Indoor A1,Semi Outdoor B1\n2026-01-10,Tersedia,Tersedia,Tersedia")

		got, _ := Resolve(rows, "2026-01-10", 4)
		assert.Equal(t, []string{"A1", "B1", "F1"}, got)
	})
}

func TestResolveMissingDate(t *testing.T) {
	rows := rowsFromCSV(t, "Tanggal,Tersedia Indoor\n2026-01-10,5")

	got, schema := Resolve(rows, "2026-02-20", 2)
	assert.Empty(t, got)
	assert.Nil(t, schema)

	got, schema = Resolve(nil, "2026-01-10", 2)
	assert.Empty(t, got)
	assert.Nil(t, schema)
}

func TestFilterByCapacity(t *testing.T) {
	ids := []string{"A1", "A3", "B1", "C1"}

	// A1 10-15, A3 4-7, B1 4-4, C1 28-45.
	assert.Equal(t, []string{"A3", "B1"}, FilterByCapacity(ids, 4))
	assert.Equal(t, []string{"A1"}, FilterByCapacity(ids, 12))
	assert.Equal(t, []string{"C1"}, FilterByCapacity(ids, 30))
	assert.Empty(t, FilterByCapacity(ids, 100))

	// Ids outside the catalog never survive.
	assert.Empty(t, FilterByCapacity([]string{"Z9"}, 4))

	// Zero-capacity tables cannot fit anyone.
	assert.Empty(t, FilterByCapacity([]string{"G1"}, 1))
}

func TestApplyGroupPolicy(t *testing.T) {
	policies := catalog.DefaultGroupPolicies()

	t.Run("last survivor withheld", func(t *testing.T) {
		// E4 has no catalog entry and is never resolved, so E1 open with
		// E2 and E3 closed counts three closed members.
		got := ApplyGroupPolicy([]string{"A1", "E1"}, policies)
		assert.Equal(t, []string{"A1"}, got)
	})

	t.Run("two open members keep both", func(t *testing.T) {
		got := ApplyGroupPolicy([]string{"E1", "E3"}, policies)
		assert.Equal(t, []string{"E1", "E3"}, got)
	})

	t.Run("no policies is passthrough", func(t *testing.T) {
		got := ApplyGroupPolicy([]string{"E1"}, nil)
		assert.Equal(t, []string{"E1"}, got)
	})

	t.Run("unrelated tables untouched", func(t *testing.T) {
		got := ApplyGroupPolicy([]string{"B1", "F2"}, policies)
		assert.Equal(t, []string{"B1", "F2"}, got)
	})
}

package sheetcsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("plain fields", func(t *testing.T) {
		rows := Parse("Tanggal,Tersedia Indoor\n2026-01-10,5\n2026-01-11,0")

		require.Len(t, rows, 2)
		assert.Equal(t, "2026-01-10", rows[0].Get("Tanggal"))
		assert.Equal(t, "5", rows[0].Get("Tersedia Indoor"))
		assert.Equal(t, "0", rows[1].Get("Tersedia Indoor"))
	})

	t.Run("quoted fields with commas", func(t *testing.T) {
		rows := Parse("Nama,Catatan\n\"Budi, Santoso\",\"meja dekat jendela, tolong\"")

		require.Len(t, rows, 1)
		assert.Equal(t, "Budi, Santoso", rows[0].Get("Nama"))
		assert.Equal(t, "meja dekat jendela, tolong", rows[0].Get("Catatan"))
	})

	t.Run("doubled quotes unescape", func(t *testing.T) {
		rows := Parse("Nama,Catatan\nBudi,\"menu \"\"spesial\"\" pedas\"")

		require.Len(t, rows, 1)
		assert.Equal(t, `menu "spesial" pedas`, rows[0].Get("Catatan"))
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		rows := Parse("Tanggal,Tersedia Semi Outdoor\n2026-01-10,3")

		require.Len(t, rows, 1)
		assert.Equal(t, "2026-01-10", rows[0].Get("tanggal"))
		assert.Equal(t, "2026-01-10", rows[0].Get("TANGGAL"))
		assert.Equal(t, "3", rows[0].Get("tersedia semi outdoor"))
		assert.True(t, rows[0].Has("TERSEDIA SEMI OUTDOOR"))
		assert.False(t, rows[0].Has("Tersedia Indoor"))
	})

	t.Run("blank lines and CRLF ignored", func(t *testing.T) {
		rows := Parse("Tanggal,Jam\r\n\r\n2026-01-10,18:00\r\n\n")

		require.Len(t, rows, 1)
		assert.Equal(t, "18:00", rows[0].Get("Jam"))
	})

	t.Run("short rows fill missing columns with empty strings", func(t *testing.T) {
		rows := Parse("A,B,C\n1,2")

		require.Len(t, rows, 1)
		assert.Equal(t, "2", rows[0].Get("B"))
		assert.Equal(t, "", rows[0].Get("C"))
		assert.True(t, rows[0].Has("C"))
	})

	t.Run("header only yields no rows", func(t *testing.T) {
		assert.Nil(t, Parse("Tanggal,Jam"))
	})

	t.Run("empty input yields no rows", func(t *testing.T) {
		assert.Nil(t, Parse(""))
		assert.Nil(t, Parse("\n\n"))
	})

	t.Run("headers preserve original order and casing", func(t *testing.T) {
		rows := Parse("Tanggal,Tersedia Indoor\n2026-01-10,5")

		require.Len(t, rows, 1)
		assert.Equal(t, []string{"Tanggal", "Tersedia Indoor"}, rows[0].Headers())
	})
}

func TestToCSVRoundTrip(t *testing.T) {
	// Values with embedded commas and quotes must survive
	// serialize-then-parse unchanged.
	values := [][]string{
		{"Nama", "Catatan"},
		{"Budi, Santoso", `pesan "rendang" 2 porsi`},
		{"Sari", ""},
	}

	rows := Parse(ToCSV(values))

	require.Len(t, rows, 2)
	assert.Equal(t, "Budi, Santoso", rows[0].Get("Nama"))
	assert.Equal(t, `pesan "rendang" 2 porsi`, rows[0].Get("Catatan"))
	assert.Equal(t, "Sari", rows[1].Get("Nama"))
	assert.Equal(t, "", rows[1].Get("Catatan"))
}

func TestToCSVEmpty(t *testing.T) {
	assert.Equal(t, "", ToCSV(nil))
	assert.Equal(t, "", ToCSV([][]string{}))
}

package reservation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadDecodeFlexibleNumbers(t *testing.T) {
	raw := `{
		"nama": "Budi",
		"jumlahOrang": 6,
		"tempat": "B1",
		"tanggal": "2026-01-10",
		"jam": "18:00",
		"totalHarga": 250000,
		"noWa": "08123456789"
	}`

	var p Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, FlexString("6"), p.JumlahOrang)
	assert.Equal(t, FlexString("250000"), p.TotalHarga)
}

func TestPayloadDecodeStringNumbers(t *testing.T) {
	raw := `{"jumlahOrang": "4", "totalHarga": "120000"}`

	var p Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, FlexString("4"), p.JumlahOrang)
	assert.Equal(t, FlexString("120000"), p.TotalHarga)
}

func TestNormalizeDefaults(t *testing.T) {
	var p Payload
	p.Normalize()

	assert.Equal(t, "lunas", p.TipePembayaran)
	assert.Equal(t, "", p.Nama)
	assert.Equal(t, "", p.Catatan)

	p = Payload{TipePembayaran: "dp"}
	p.Normalize()
	assert.Equal(t, "dp", p.TipePembayaran)

	p = Payload{TipePembayaran: "   "}
	p.Normalize()
	assert.Equal(t, "lunas", p.TipePembayaran)
}

func TestKey(t *testing.T) {
	p := Payload{
		Tanggal: "2026-01-10",
		Jam:     "18:00",
		Tempat:  "Semi Outdoor B1",
		NoWa:    "08123456789",
	}

	assert.Equal(t, "2026-01-10_18:00_Semi Outdoor B1_08123456789", p.Key())

	// Empty fields still produce a deterministic key.
	assert.Equal(t, "___", Payload{}.Key())
}

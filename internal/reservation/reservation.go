// Package reservation shapes reservation submissions and forwards them to
// the spreadsheet-writing Apps Script proxy. This layer never rejects a
// payload for missing fields; the write proxy is the source of truth for
// required-field enforcement.
package reservation

import (
	"encoding/json"
	"strings"
)

// DefaultPaymentType is assumed when the client sends none.
const DefaultPaymentType = "lunas"

// FlexString accepts either a JSON string or a JSON number, because the
// wizard sends jumlahOrang and totalHarga as numbers while older clients
// sent strings. It always marshals back as a string.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(num.String())
	return nil
}

// Payload is the reservation row as the Apps Script proxy expects it.
// Field names follow the spreadsheet's Indonesian column names.
type Payload struct {
	Nama           string     `json:"nama"`
	JumlahOrang    FlexString `json:"jumlahOrang"`
	Tempat         string     `json:"tempat"`
	Tanggal        string     `json:"tanggal"`
	Jam            string     `json:"jam"`
	Menu           string     `json:"menu"`
	TotalHarga     FlexString `json:"totalHarga"`
	IDWa           string     `json:"idWa"`
	NoWa           string     `json:"noWa"`
	Catatan        string     `json:"catatan"`
	TipePembayaran string     `json:"tipePembayaran"`
}

// Normalize coerces absent fields to their safe defaults. String zero
// values already are the defaults; only the payment type has a non-empty
// one.
func (p *Payload) Normalize() {
	if strings.TrimSpace(p.TipePembayaran) == "" {
		p.TipePembayaran = DefaultPaymentType
	}
}

// Key derives the reservation's identifying key from date, time, place and
// phone number. Not a guaranteed-unique id, but stable enough for the
// webhook receiver to dedupe on.
func (p Payload) Key() string {
	return strings.Join([]string{p.Tanggal, p.Jam, p.Tempat, p.NoWa}, "_")
}

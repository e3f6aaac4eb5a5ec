package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kasikocoffeeatery/adminKasiko/internal/availability"
	"github.com/kasikocoffeeatery/adminKasiko/internal/catalog"
	"github.com/kasikocoffeeatery/adminKasiko/internal/datekey"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheetcsv"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheets"
)

type AvailabilityQuery struct {
	URL    string `validate:"required,url"`
	Date   string `validate:"required"`
	People int    `validate:"min=1"`
}

type AvailabilityResponse struct {
	Date      string   `json:"date"`
	People    int      `json:"people"`
	Schema    string   `json:"schema"`
	Available []string `json:"available"`
}

// getAvailabilityHandler godoc
//
//	@Summary		Resolve availability for a date
//	@Description	Fetches the schedule sheet and returns the open options for a date and party size
//	@Tags			sheets
//	@Produce		json
//	@Param			url		query	string	true	"Google Sheets URL"
//	@Param			gid		query	string	false	"Sheet tab gid"	default(0)
//	@Param			date	query	string	true	"Reservation date"
//	@Param			people	query	int		false	"Party size"	default(1)
//	@Success		200	{object}	AvailabilityResponse
//	@Failure		400	{object}	errorEnvelope
//	@Failure		502	{object}	errorEnvelope
//	@Router			/availability [get]
func (app *application) getAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store, max-age=0")

	query := AvailabilityQuery{
		URL:    r.URL.Query().Get("url"),
		Date:   r.URL.Query().Get("date"),
		People: 1,
	}

	if raw := r.URL.Query().Get("people"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("people must be a number"))
			return
		}
		query.People = n
	}

	if err := Validate.Struct(query); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	gid := r.URL.Query().Get("gid")
	if gid == "" {
		gid = "0"
	}

	spreadsheetID, err := sheets.ExtractSpreadsheetID(query.URL)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entry, err := app.fetchSheet(r, spreadsheetID, gid)
	if err != nil {
		app.sheetErrorResponse(w, r, err)
		return
	}

	rows := sheetcsv.Parse(entry.CSV)
	ids, schema := availability.Resolve(rows, query.Date, query.People)

	schemaName := "none"
	if schema != nil {
		schemaName = schema.Name()

		if _, perTable := schema.(availability.PerTableSchema); perTable {
			ids = availability.FilterByCapacity(ids, query.People)
			ids = availability.ApplyGroupPolicy(ids, catalog.DefaultGroupPolicies())
		}
	}

	if ids == nil {
		ids = make([]string, 0)
	}

	data := AvailabilityResponse{
		Date:      datekey.Normalize(query.Date),
		People:    query.People,
		Schema:    schemaName,
		Available: ids,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

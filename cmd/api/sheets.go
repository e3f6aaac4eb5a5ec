package main

import (
	"errors"
	"net/http"

	"github.com/kasikocoffeeatery/adminKasiko/internal/sheetcache"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheets"
)

type SheetResponse struct {
	Data string `json:"data"`
	Hash string `json:"hash"`
}

// getSheetHandler godoc
//
//	@Summary		Fetch spreadsheet CSV
//	@Description	Proxies a public Google Sheets document as CSV with short-lived caching
//	@Tags			sheets
//	@Produce		json
//	@Param			url		query	string	true	"Google Sheets URL"
//	@Param			gid		query	string	false	"Sheet tab gid"	default(0)
//	@Param			ifHash	query	string	false	"Previously seen content hash"
//	@Success		200	{object}	SheetResponse
//	@Success		304	"Content unchanged"
//	@Failure		400	{object}	errorEnvelope
//	@Failure		502	{object}	errorEnvelope
//	@Router			/sheets [get]
func (app *application) getSheetHandler(w http.ResponseWriter, r *http.Request) {
	// Responses carry a hash of their own, the HTTP cache must stay out
	// of the way.
	w.Header().Set("Cache-Control", "no-store, max-age=0")

	sheetURL := r.URL.Query().Get("url")
	if sheetURL == "" {
		app.badRequestResponse(w, r, errors.New("url parameter wajib diisi"))
		return
	}

	gid := r.URL.Query().Get("gid")
	if gid == "" {
		gid = "0"
	}
	ifHash := r.URL.Query().Get("ifHash")

	spreadsheetID, err := sheets.ExtractSpreadsheetID(sheetURL)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entry, err := app.fetchSheet(r, spreadsheetID, gid)
	if err != nil {
		app.sheetErrorResponse(w, r, err)
		return
	}

	if ifHash != "" && ifHash == entry.Hash {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, SheetResponse{Data: entry.CSV, Hash: entry.Hash}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// fetchSheet serves from the short-lived cache when possible and goes
// upstream otherwise.
func (app *application) fetchSheet(r *http.Request, spreadsheetID, gid string) (sheetcache.Entry, error) {
	if entry, ok := app.cache.Get(spreadsheetID, gid); ok {
		return entry, nil
	}

	res, err := app.fetcher.Fetch(r.Context(), spreadsheetID, gid)
	if err != nil {
		return sheetcache.Entry{}, err
	}

	return app.cache.Put(spreadsheetID, gid, res.CSV, res.Hash), nil
}

func (app *application) sheetErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var upstreamErr *sheets.UpstreamError

	switch {
	case errors.Is(err, sheets.ErrHTMLBody):
		app.upstreamErrorResponse(w, r, http.StatusBadGateway,
			"failed to fetch spreadsheet", "possible rate limit or permission issue")
	case errors.As(err, &upstreamErr):
		app.upstreamErrorResponse(w, r, upstreamErr.StatusCode,
			"failed to fetch spreadsheet", upstreamErr.Status)
	default:
		app.upstreamErrorResponse(w, r, http.StatusBadGateway,
			"failed to fetch spreadsheet", err.Error())
	}
}

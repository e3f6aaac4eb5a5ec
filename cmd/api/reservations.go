package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kasikocoffeeatery/adminKasiko/internal/queue"
	"github.com/kasikocoffeeatery/adminKasiko/internal/reservation"
)

// createReservationHandler godoc
//
//	@Summary		Create a reservation
//	@Description	Forwards a reservation row to the spreadsheet write proxy and queues a webhook dispatch
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	reservation.Payload	true	"Reservation payload"
//	@Success		200	{object}	map[string]any
//	@Failure		500	{object}	errorEnvelope
//	@Router			/reservations [post]
func (app *application) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	if app.config.appsScript.url == "" {
		app.internalServerError(w, r, errors.New("write proxy is not configured"))
		return
	}

	var payload reservation.Payload
	if err := readJSON(w, r, &payload); err != nil {
		_ = writeJSON(w, http.StatusInternalServerError, errorEnvelope{
			Error:   "internal server error",
			Details: err.Error(),
		})
		return
	}

	payload.Normalize()

	result, err := app.submitter.Submit(r.Context(), payload)
	if err != nil {
		var submitErr *reservation.SubmitError
		if errors.As(err, &submitErr) {
			app.upstreamErrorResponse(w, r, submitErr.StatusCode,
				"failed to submit data to spreadsheet", submitErr.Details)
			return
		}

		app.upstreamErrorResponse(w, r, http.StatusBadGateway,
			"failed to submit data to spreadsheet", err.Error())
		return
	}

	app.queueWebhookDispatch(r, payload)

	body := make(map[string]any, len(result.Body)+2)
	for k, v := range result.Body {
		body[k] = v
	}
	body["reservationKey"] = payload.Key()
	if result.Warning != "" {
		body["warning"] = result.Warning
	}

	if err := app.jsonResponse(w, http.StatusOK, body); err != nil {
		app.internalServerError(w, r, err)
	}
}

// queueWebhookDispatch hands the accepted reservation to the webhook
// worker. Dispatch is best effort: a full queue or missing broker never
// fails the reservation.
func (app *application) queueWebhookDispatch(r *http.Request, payload reservation.Payload) {
	if app.broker == nil || app.config.webhook.URL == "" {
		return
	}

	message, err := json.Marshal(payload)
	if err != nil {
		app.logger.Errorw("failed to marshal webhook message", "error", err)
		return
	}

	if err := app.broker.Publish(r.Context(), queue.QueueWebhookDispatch, message); err != nil {
		app.logger.Errorw("failed to queue webhook dispatch",
			"reservationKey", payload.Key(), "error", err)
	}
}

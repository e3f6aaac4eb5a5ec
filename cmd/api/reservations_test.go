package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasikocoffeeatery/adminKasiko/internal/queue"
	"github.com/kasikocoffeeatery/adminKasiko/internal/reservation"
)

const reservationBody = `{
	"nama": "Budi",
	"jumlahOrang": 4,
	"tempat": "B1",
	"tanggal": "2025-01-10",
	"jam": "19:00",
	"noWa": "08123456789"
}`

func TestCreateReservationSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		var p reservation.Payload
		require.NoError(t, json.Unmarshal(body, &p))
		assert.Equal(t, "Budi", p.Nama)
		assert.Equal(t, reservation.FlexString("4"), p.JumlahOrang)
		assert.Equal(t, "lunas", p.TipePembayaran, "missing payment type should default")

		fmt.Fprint(w, `{"success":true,"row":12}`)
	}))
	defer upstream.Close()

	app := newTestApp(t, "http://localhost:1", upstream.URL)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(reservationBody))
	rr := executeRequest(req, mux)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(12), body["row"])
	assert.Equal(t, "2025-01-10_19:00_B1_08123456789", body["reservationKey"])
	assert.NotContains(t, body, "warning")
}

func TestCreateReservationMalformedBody(t *testing.T) {
	app := newTestApp(t, "http://localhost:1", "http://localhost:1")
	mux := app.mount()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader("{not json"))
	rr := executeRequest(req, mux)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body errorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestCreateReservationMirrorsUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"tanggal wajib diisi"}`)
	}))
	defer upstream.Close()

	app := newTestApp(t, "http://localhost:1", upstream.URL)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(reservationBody))
	rr := executeRequest(req, mux)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body errorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "failed to submit data to spreadsheet", body.Error)
	assert.Equal(t, "tanggal wajib diisi", body.Details)
}

func TestCreateReservationHTMLSoftSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>Moved Temporarily</body></html>")
	}))
	defer upstream.Close()

	app := newTestApp(t, "http://localhost:1", upstream.URL)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(reservationBody))
	rr := executeRequest(req, mux)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, reservation.HTMLWarning, body["warning"])
}

func TestCreateReservationQueuesWebhookDispatch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true}`)
	}))
	defer upstream.Close()

	app := newTestApp(t, "http://localhost:1", upstream.URL)
	app.config.webhook.URL = "http://localhost:1/hook"

	broker := queue.NewMemoryBroker()
	defer broker.Close()
	app.broker = broker

	dispatched := make(chan []byte, 1)
	require.NoError(t, broker.Subscribe(context.Background(), queue.QueueWebhookDispatch,
		func(ctx context.Context, message []byte) error {
			dispatched <- message
			return nil
		}))

	mux := app.mount()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(reservationBody))
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	select {
	case message := <-dispatched:
		var p reservation.Payload
		require.NoError(t, json.Unmarshal(message, &p))
		assert.Equal(t, "2025-01-10_19:00_B1_08123456789", p.Key())
	case <-time.After(time.Second):
		t.Fatal("webhook dispatch was not queued")
	}
}

func TestCreateReservationWebhookFailureDoesNotAffectResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true}`)
	}))
	defer upstream.Close()

	app := newTestApp(t, "http://localhost:1", upstream.URL)
	app.config.webhook.URL = "http://localhost:1/hook"

	broker := queue.NewMemoryBroker()
	require.NoError(t, broker.Close()) // closed broker makes Publish fail
	app.broker = broker

	mux := app.mount()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(reservationBody))
	rr := executeRequest(req, mux)

	assert.Equal(t, http.StatusOK, rr.Code)
}

package main

import (
	"fmt"
	"net/http"
)

type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)

	_ = writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: err.Error()})
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err)

	_ = writeJSON(w, http.StatusInternalServerError, errorEnvelope{
		Error:   "the server encountered a problem",
		Details: err.Error(),
	})
}

// upstreamErrorResponse mirrors a failure from one of the external
// services (spreadsheet export or write proxy) back to the caller.
func (app *application) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, status int, message, details string) {
	app.logger.Warnw("upstream error",
		"method", r.Method, "path", r.URL.Path, "status", status, "details", details)

	_ = writeJSON(w, status, errorEnvelope{Error: message, Details: details})
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	_ = writeJSON(w, http.StatusTooManyRequests, errorEnvelope{
		Error: fmt.Sprintf("rate limit exceeded, retry after: %s", retryAfter),
	})
}

// Package httpretry wraps outbound HTTP calls with the bounded
// retry-with-backoff policy shared by the spreadsheet fetch and the webhook
// dispatch.
package httpretry

import (
	"context"
	"net/http"
	"time"
)

// DefaultBackoff is the base delay; attempt n waits base << n.
const DefaultBackoff = 250 * time.Millisecond

var transientStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// IsTransientStatus reports whether a status code is worth retrying.
func IsTransientStatus(code int) bool {
	return transientStatus[code]
}

// Doer is the slice of *http.Client this package needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Do executes the request up to attempts times, backing off exponentially
// between tries. Requests are rebuilt per attempt because bodies are
// one-shot. Network errors and transient statuses retry; anything else
// returns immediately. When every attempt fails the last response (or
// error) is returned so the caller can mirror the upstream outcome.
func Do(ctx context.Context, client Doer, build func() (*http.Request, error), attempts int, backoff time.Duration) (*http.Response, error) {
	if attempts < 1 {
		attempts = 1
	}
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	var resp *http.Response
	var err error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			// Discard the failed attempt's body before retrying.
			if resp != nil {
				resp.Body.Close()
			}

			delay := backoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		var req *http.Request
		req, err = build()
		if err != nil {
			return nil, err
		}

		resp, err = client.Do(req.WithContext(ctx))
		if err != nil {
			continue
		}

		if !IsTransientStatus(resp.StatusCode) {
			return resp, nil
		}
	}

	return resp, err
}

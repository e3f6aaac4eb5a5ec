package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTMLWarning annotates a write whose response was a redirect or consent
// page: the row may still have landed, so the caller gets a soft success.
const HTMLWarning = "response was HTML, but request may have succeeded"

const maxLoggedBody = 500

// SubmitError is a non-success answer from the write proxy. Details carry
// whatever diagnostic the upstream returned.
type SubmitError struct {
	StatusCode int
	Details    string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("write proxy returned status %d: %s", e.StatusCode, e.Details)
}

// Result is a successful (or soft-successful) write.
type Result struct {
	// Body is the upstream's parsed JSON answer, or a synthesized success
	// object when the upstream answered with something other than JSON.
	Body map[string]any

	// Warning is set on soft successes.
	Warning string
}

// Client forwards reservation payloads to the Apps Script write proxy.
type Client struct {
	scriptURL  string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func NewClient(scriptURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Client{
		scriptURL:  scriptURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Submit writes one reservation row. Upstream failures come back as
// *SubmitError; an HTML body on a 2xx answer is a soft success.
func (c *Client) Submit(ctx context.Context, p Payload) (Result, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scriptURL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to reach write proxy: %w", err)
	}
	defer resp.Body.Close()

	respText, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read write proxy response: %w", err)
	}

	c.logger.Infow("write proxy responded",
		"status", resp.StatusCode,
		"body", truncate(string(respText), maxLoggedBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &SubmitError{
			StatusCode: resp.StatusCode,
			Details:    extractDetails(respText),
		}
	}

	var parsed map[string]any
	if err := json.Unmarshal(respText, &parsed); err == nil {
		return Result{Body: parsed}, nil
	}

	if isHTML(respText) {
		c.logger.Warnw("write proxy returned HTML instead of JSON, treating as soft success")
		return Result{
			Body:    map[string]any{"success": true},
			Warning: HTMLWarning,
		}, nil
	}

	return Result{Body: map[string]any{"success": true}}, nil
}

// extractDetails pulls a human-readable message out of an error body,
// preferring JSON "error"/"message" fields over raw text.
func extractDetails(body []byte) string {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, field := range []string{"error", "message"} {
			if v, ok := parsed[field].(string); ok && v != "" {
				return v
			}
		}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "unknown error"
	}

	return truncate(text, maxLoggedBody)
}

func isHTML(body []byte) bool {
	probe := strings.ToLower(string(body))
	return strings.Contains(probe, "<html") || strings.Contains(probe, "<!doctype")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

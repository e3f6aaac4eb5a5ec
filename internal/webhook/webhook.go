// Package webhook sends best-effort reservation notifications to an
// automation endpoint. Dispatch failures are logged and never reach the
// reservation caller.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kasikocoffeeatery/adminKasiko/internal/httpretry"
	"github.com/kasikocoffeeatery/adminKasiko/internal/reservation"
)

const (
	// DefaultTimeout bounds one dispatch including its single retry.
	DefaultTimeout = 6 * time.Second

	// Two tries total: the webhook is best-effort, not guaranteed delivery.
	dispatchAttempts = 2
)

// Config is the webhook target plus at most one authentication mode:
// Basic credentials, a raw Authorization value, or a custom header pair.
type Config struct {
	URL string

	BasicUser string
	BasicPass string

	// AuthValue is sent verbatim as the Authorization header, so it may
	// carry "Bearer ..." or any scheme the receiver expects.
	AuthValue string

	HeaderName  string
	HeaderValue string

	Timeout time.Duration
}

// Notification is the webhook body: the normalized payload plus the
// derived key the receiver can dedupe on.
type Notification struct {
	EventID        string              `json:"eventId"`
	ReservationKey string              `json:"reservationKey"`
	TipePembayaran string              `json:"tipePembayaran"`
	SentAt         time.Time           `json:"sentAt"`
	Reservation    reservation.Payload `json:"reservation"`
}

type Notifier struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
	logger *zap.SugaredLogger
}

func NewNotifier(cfg Config, logger *zap.SugaredLogger) *Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Notifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		now:    time.Now,
		logger: logger,
	}
}

// Notify posts one notification. A non-2xx answer after the retry budget
// is an error; the caller decides whether that matters (it shouldn't).
func (n *Notifier) Notify(ctx context.Context, p reservation.Payload) error {
	notification := Notification{
		EventID:        uuid.NewString(),
		ReservationKey: p.Key(),
		TipePembayaran: p.TipePembayaran,
		SentAt:         n.now().UTC(),
		Reservation:    p,
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	build := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, n.cfg.URL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		n.applyAuth(req)
		return req, nil
	}

	resp, err := httpretry.Do(ctx, n.client, build, dispatchAttempts, httpretry.DefaultBackoff)
	if err != nil {
		return fmt.Errorf("failed to reach webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respText, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respText))
	}

	n.logger.Infow("webhook notified",
		"event_id", notification.EventID,
		"reservation_key", notification.ReservationKey)

	return nil
}

func (n *Notifier) applyAuth(req *http.Request) {
	switch {
	case n.cfg.HeaderName != "":
		req.Header.Set(n.cfg.HeaderName, n.cfg.HeaderValue)
	case n.cfg.AuthValue != "":
		req.Header.Set("Authorization", n.cfg.AuthValue)
	case n.cfg.BasicUser != "":
		req.SetBasicAuth(n.cfg.BasicUser, n.cfg.BasicPass)
	}
}

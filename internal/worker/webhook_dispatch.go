package worker

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/kasikocoffeeatery/adminKasiko/internal/queue"
	"github.com/kasikocoffeeatery/adminKasiko/internal/reservation"
	"github.com/kasikocoffeeatery/adminKasiko/internal/webhook"
)

// WebhookWorker drains the webhook-dispatch queue in the background.
// Nothing it does can affect a response that has already been sent; every
// failure ends up in the log and nowhere else.
type WebhookWorker struct {
	notifier *webhook.Notifier
	broker   queue.Broker
	logger   *zap.SugaredLogger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewWebhookWorker(
	notifier *webhook.Notifier,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *WebhookWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &WebhookWorker{
		notifier: notifier,
		broker:   broker,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (w *WebhookWorker) Start() error {
	w.logger.Info("starting webhook dispatch worker")

	return w.broker.Subscribe(w.ctx, queue.QueueWebhookDispatch, w.handleMessage)
}

func (w *WebhookWorker) Stop() {
	w.logger.Info("stopping webhook dispatch worker")
	w.cancel()
}

func (w *WebhookWorker) handleMessage(ctx context.Context, message []byte) error {
	var payload reservation.Payload
	if err := json.Unmarshal(message, &payload); err != nil {
		w.logger.Errorw("failed to unmarshal webhook dispatch", "error", err)
		return nil
	}

	if err := w.notifier.Notify(ctx, payload); err != nil {
		// Best-effort: the notifier already spent its retry budget.
		w.logger.Errorw("webhook dispatch failed",
			"reservation_key", payload.Key(), "error", err)
	}

	return nil
}

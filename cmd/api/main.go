package main

import (
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kasikocoffeeatery/adminKasiko/internal/env"
	"github.com/kasikocoffeeatery/adminKasiko/internal/queue"
	"github.com/kasikocoffeeatery/adminKasiko/internal/ratelimiter"
	"github.com/kasikocoffeeatery/adminKasiko/internal/reservation"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheetcache"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheets"
	"github.com/kasikocoffeeatery/adminKasiko/internal/webhook"
	"github.com/kasikocoffeeatery/adminKasiko/internal/worker"
)

const version = "0.0.0"

//	@title			Kasiko Reservations
//	@description	Reservation and availability API for Kasiko Coffee & Eatery
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath	/api/v1
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		sheets: sheetsConfig{
			apiKey:   env.GetString("GOOGLE_SHEETS_API_KEY", ""),
			cacheTTL: env.GetDuration("SHEETS_CACHE_TTL", 10*time.Second),
		},
		appsScript: appsScriptConfig{
			url:     env.GetString("APPS_SCRIPT_URL", ""),
			timeout: time.Second * 30,
		},
		webhook: webhook.Config{
			URL:         env.GetString("WEBHOOK_URL", ""),
			BasicUser:   env.GetString("WEBHOOK_BASIC_USER", ""),
			BasicPass:   env.GetString("WEBHOOK_BASIC_PASS", ""),
			AuthValue:   env.GetString("WEBHOOK_AUTH_VALUE", ""),
			HeaderName:  env.GetString("WEBHOOK_HEADER_NAME", ""),
			HeaderValue: env.GetString("WEBHOOK_HEADER_VALUE", ""),
			Timeout:     env.GetDuration("WEBHOOK_TIMEOUT", webhook.DefaultTimeout),
		},
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// spreadsheet fetcher
	fetcher, err := sheets.New(sheets.Config{
		APIKey: cfg.sheets.apiKey,
		Logger: logger,
	})
	if err != nil {
		logger.Fatalw("failed to create sheets fetcher", "error", err)
	}

	cache := sheetcache.New(cfg.sheets.cacheTTL, nil)

	// write proxy client
	submitter := reservation.NewClient(cfg.appsScript.url, cfg.appsScript.timeout, logger)
	if cfg.appsScript.url == "" {
		logger.Warn("APPS_SCRIPT_URL not provided, reservation submissions will fail")
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		rateLimiter: rateLimiter,
		cache:       cache,
		fetcher:     fetcher,
		submitter:   submitter,
	}

	// webhook dispatch
	if cfg.webhook.URL != "" {
		broker := queue.NewMemoryBroker()
		notifier := webhook.NewNotifier(cfg.webhook, logger)

		app.broker = broker
		app.webhookWorker = worker.NewWebhookWorker(notifier, broker, logger)

		logger.Info("webhook dispatch enabled")
	} else {
		logger.Warn("WEBHOOK_URL not provided, webhook dispatch disabled")
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

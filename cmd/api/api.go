package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/kasikocoffeeatery/adminKasiko/docs"
	"github.com/kasikocoffeeatery/adminKasiko/internal/queue"
	"github.com/kasikocoffeeatery/adminKasiko/internal/ratelimiter"
	"github.com/kasikocoffeeatery/adminKasiko/internal/reservation"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheetcache"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheets"
	"github.com/kasikocoffeeatery/adminKasiko/internal/webhook"
	"github.com/kasikocoffeeatery/adminKasiko/internal/worker"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	rateLimiter   ratelimiter.Limiter
	cache         *sheetcache.Cache
	fetcher       *sheets.Fetcher
	submitter     *reservation.Client
	broker        queue.Broker
	webhookWorker *worker.WebhookWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	sheets      sheetsConfig
	appsScript  appsScriptConfig
	webhook     webhook.Config
}

type sheetsConfig struct {
	apiKey   string
	cacheTTL time.Duration
}

type appsScriptConfig struct {
	url     string
	timeout time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/sheets", app.getSheetHandler)
		r.Get("/availability", app.getAvailabilityHandler)

		r.Post("/reservations", app.createReservationHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Kasiko Reservations"
	docs.SwaggerInfo.Description = "Reservation and availability API for Kasiko Coffee & Eatery"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	if app.webhookWorker != nil {
		if err := app.webhookWorker.Start(); err != nil {
			return fmt.Errorf("failed to start webhook worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.webhookWorker != nil {
			app.webhookWorker.Stop()
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing broker", "error", err)
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

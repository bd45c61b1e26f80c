package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"hashnotes/docs"
	"hashnotes/internal/config"
	handlers "hashnotes/internal/http/handler"
	"hashnotes/internal/http/middleware"
	"hashnotes/internal/otel"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// @title Hashnotes
// @version 1.0
// @BasePath /
func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return err
	}

	// Ensure the notes directory exists once, at startup.
	svc, store, err := openNotes()
	if err != nil {
		return err
	}
	defer store.Close()

	app := fiber.New(handlers.NewConfig(cfg.Server))

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		prom, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			return err
		}
		app.Use(prom.Handler())
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(
			otelhttp.NewHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "metrics"),
		))
	}

	if cfg.SwaggerEnabled {
		configureSwagger(cfg)
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	handlers.RegisterRoutes(app, store, svc, cfg.Notes.MaxLength)

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(log.Fields{
			"port":      cfg.Port,
			"notes_dir": store.Dir(),
		}).Info("server_starting")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server_stopping")
	timeout := time.Duration(cfg.Server.ShutdownTimeoutSec) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err = app.ShutdownWithContext(shutdownCtx)
	if terr := shutdownTracing(shutdownCtx); terr != nil {
		err = errors.Join(err, terr)
	}
	if lerr := <-errCh; lerr != nil {
		err = errors.Join(err, lerr)
	}
	return err
}

// configureSwagger points the API docs at the public host. It runs before
// the server starts; the swagger handler only reads docs.SwaggerInfo.
func configureSwagger(c *config.AppConfig) {
	docs.SwaggerInfo.Host = c.AppHost
	docs.SwaggerInfo.Schemes = []string{c.AppScheme}
}

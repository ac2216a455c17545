package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"reach_backend/internals/configs"
	database "reach_backend/internals/databases"
	"reach_backend/internals/features/workshops/catalog"
	"reach_backend/internals/helpers"
	"reach_backend/internals/metrics"
	"reach_backend/internals/middlewares"
	"reach_backend/internals/middlewares/logger"
	routes "reach_backend/internals/route"
	routeDetails "reach_backend/internals/route/details"
	"reach_backend/internals/services/artifacts"
	"reach_backend/internals/services/mailer"
	"reach_backend/internals/services/token"
)

// requestTimeout bounds the user context of each request.
const requestTimeout = 5 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the admin HTTP server.

The server will:
- Load configuration from .env and environment variables
- Connect to PostgreSQL and tune the pool
- Serve /api/admin routes, /health and /metrics
- Shut down gracefully on SIGINT/SIGTERM

Examples:
  reach serve
  reach serve --port 8080 --log-format console`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (default: $PORT or 3000)")
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	log := configs.NewLogger(cfg.Logging)
	log.Info().Str("app", cfg.AppName).Str("environment", cfg.Environment).Msg("starting server")

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}()

	notifier, err := mailer.NewFromConfig(cfg.Email, log)
	if err != nil {
		return err
	}

	app := newApp(log)
	app.Use(middlewares.CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(middlewares.GlobalRateLimiter())

	routes.SetupRoutes(app, routeDetails.Deps{
		DB:        db,
		Config:    cfg,
		Logger:    log,
		Tokens:    token.NewService(cfg.Auth.JWTSecret),
		Mailer:    notifier,
		Catalog:   catalog.New(cfg.Files.WorkshopsFile),
		Artifacts: artifacts.NewFileStore(cfg.Files.ImagesDir),
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	return nil
}

// newApp builds the fiber app with the middleware every route shares.
func newApp(log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helpers.ErrorHandler(log),
	})

	app.Use(middlewares.RequestContext(requestTimeout))
	app.Use(metrics.FiberMiddleware())
	app.Use(logger.LoggerMiddleware(log))
	app.Use(middlewares.RecoveryMiddleware(log))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	return app
}

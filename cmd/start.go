package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toolbox/core/config"
	"toolbox/core/hostenv"
	"toolbox/core/loader"
	"toolbox/core/logger"
	"toolbox/core/metrics"
	"toolbox/core/middleware/auth"
	"toolbox/core/middleware/rayid"

	"toolbox/feature/calculator"
	"toolbox/feature/chmod"
	"toolbox/feature/color"
	"toolbox/feature/ipv4"
	"toolbox/feature/radix"
	"toolbox/feature/theme"
	"toolbox/feature/timestamp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "toolbox/docs/swagger"
)

// @title Toolbox API
// @version 1.0
// @description Conversion widgets and theme preferences.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the toolbox server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the theme store
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		store, err := theme.NewStore(ctx, cfg.Theme, cfg.Database, cfg.Storage)
		cancel()
		if err != nil {
			logg.Warn("Theme store unavailable, theme feature disabled",
				zap.String("backend", cfg.Theme.Backend), zap.Error(err))
		}

		// 4. Build the app
		app, err := newApp(cfg, logg, hostenv.New(cfg.HostEnv), store, metrics.New())
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.Bool("auth", cfg.Server.AuthEnabled()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

// newApp wires middleware and every feature onto a fresh Fiber app.
// A nil store disables the theme feature.
func newApp(cfg *config.Config, logg *zap.Logger, env *hostenv.Env, store theme.Store, rec *metrics.Recorder) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimitBytes,
	})

	// RayID first so every later log line can carry it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	})

	// Public endpoints
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", rec.Handler())
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	mgr := loader.NewManager(logg)
	mgr.Register(calculator.NewFeature(logg, rec))
	mgr.Register(radix.NewFeature(logg, rec))
	mgr.Register(ipv4.NewFeature(env.IP, logg, rec))
	mgr.Register(timestamp.NewFeature(env.Clock, logg, rec))
	mgr.Register(chmod.NewFeature(logg, rec))
	mgr.Register(color.NewFeature(env.Entropy, logg, rec))
	mgr.Register(theme.NewFeature(store, logg, rec))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-briefing/internal/api"
	"weather-briefing/internal/config"
	"weather-briefing/internal/scheduler"
	"weather-briefing/internal/services"
	"weather-briefing/pkg/client"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Weather Briefing Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	clientConfig := client.ClientConfig{
		Timeout:        cfg.HTTPClient.Timeout,
		MaxRetries:     cfg.Retry.MaxRetries,
		RetryDelay:     cfg.Retry.Delay,
		Multiplier:     cfg.Retry.Multiplier,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}

	weatherClient := client.NewOpenMeteoClient(
		cfg.Location.Latitude,
		cfg.Location.Longitude,
		cfg.Location.Timezone,
		clientConfig,
		logger,
	)
	airClient := client.NewAirQualityClient(
		cfg.Location.Latitude,
		cfg.Location.Longitude,
		cfg.Location.Timezone,
		clientConfig,
		logger,
	)
	telegramClient := client.NewTelegramClient(
		cfg.Telegram.BotToken,
		cfg.Telegram.ChatID,
		clientConfig,
		logger,
	)

	// Briefing service
	briefing := services.NewBriefing(
		weatherClient,
		airClient,
		telegramClient,
		cfg.Location.Timezone,
		logger,
	)

	// Daily schedule
	briefingScheduler, err := scheduler.NewScheduler(
		briefing,
		cfg.Briefing.CronSpec,
		cfg.Location.Timezone,
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to initialize scheduler", zap.Error(err))
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(briefing, briefingScheduler, logger)
	api.SetupRoutes(app, handler, logger)

	// Start scheduler
	if err := briefingScheduler.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop scheduler
	briefingScheduler.Stop()

	// Shutdown Fiber app
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}

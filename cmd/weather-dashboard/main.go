package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/render"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
	"github.com/i474232898/weather-dashboard/web"
)

func main() {
	// Load configuration (also reads .env).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	location := cfg.Coordinates()
	if cfg.WantsGeocoding() {
		loc, err := providers.GeocodeCity(cfg.GeocoderAPIKey, cfg.City, cfg.Country)
		if err != nil {
			log.Fatalf("failed to geocode %s: %v", cfg.City, err)
		}
		location = loc
		log.Printf("INFO: resolved %s,%s to %s", cfg.City, cfg.Country, location)
	}

	// Shared HTTP client for outbound forecast calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenMeteoProvider(httpClient, cfg.OpenMeteoURL, providers.DefaultBreaker)
	service := weather.NewService(provider, func() string { return cfg.TimeZone })
	renderer := render.NewRenderer(cfg.IconBase)
	template := web.Dashboard()

	// Fail at startup rather than on the first request if the page is broken.
	if _, err := render.ParseBytes(template); err != nil {
		log.Fatalf("invalid dashboard template: %v", err)
	}

	// Optional static export of the rendered page.
	exporter := scheduler.New(cfg.ExportPath, cfg.ExportInterval, service, renderer, template, location, cfg.TimeZone)
	if err := exporter.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer exporter.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          20 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	httpapi.RegisterRoutes(app, &httpapi.Dashboard{
		Service:  service,
		Renderer: renderer,
		Location: location,
		TimeZone: cfg.TimeZone,
		Template: template,
	})

	go func() {
		log.Printf("INFO: serving dashboard for %s (%s) on :%s", location, cfg.TimeZone, cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

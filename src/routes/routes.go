package routes

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"match-engine/src/handlers"
	"match-engine/src/middleware"
)

// SetupRoutes wires the debug server's read-only surface (spec section
// 6): health, metrics, symbol listing, and top-of-book queries. There
// is no order-entry route here, on purpose — order commands only ever
// arrive through an ingest.MultiIngestor's channels or cmd/matchctl.
func SetupRoutes(app *fiber.App, debugHandler *handlers.DebugHandler) {
	rateLimitDisabled := os.Getenv("RATE_LIMIT_DISABLED") == "1"

	maxRequests := 100
	if envMax := os.Getenv("RATE_LIMIT_MAX"); envMax != "" {
		if parsed, err := strconv.Atoi(envMax); err == nil && parsed > 0 {
			maxRequests = parsed
		}
	}

	windowDuration := time.Second
	if envWindow := os.Getenv("RATE_LIMIT_WINDOW"); envWindow != "" {
		if parsed, err := time.ParseDuration(envWindow); err == nil && parsed > 0 {
			windowDuration = parsed
		}
	}

	serviceAvailability := middleware.DefaultServiceAvailability()
	app.Use(serviceAvailability.Middleware())
	app.Use(middleware.RequestLogger())

	api := app.Group("/api/v1")

	if !rateLimitDisabled {
		rateLimiter := middleware.NewRateLimiter(maxRequests, windowDuration)
		api.Use(rateLimiter.Middleware())
	}

	api.Get("/orderbook/:symbol", debugHandler.GetOrderBook)
	api.Get("/symbols", debugHandler.Symbols)

	app.Get("/health", debugHandler.HealthCheck)
	app.Get("/metrics", debugHandler.Metrics)
}


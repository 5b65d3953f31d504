// Command marketd runs the read-only debug/introspection server for a
// set of symbols: health, metrics, symbol listing, and top-of-book
// queries over an ingest.MultiIngestor. It never accepts order
// commands over HTTP; producers send commands through the package API
// (ingest.MultiIngestor.TxCmd / Routes) or through cmd/matchctl.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"match-engine/src/engine"
	"match-engine/src/handlers"
	"match-engine/src/ingest"
	"match-engine/src/logger"
	"match-engine/src/routes"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()

	log.Info().Msg("Initializing matching engine debug server")

	symbols := parseSymbols(os.Getenv("SYMBOLS"))
	books := make(map[string]*engine.Book, len(symbols))
	for _, s := range symbols {
		books[s] = engine.NewBook()
	}

	mi := ingest.StartWithBooks(books, ingest.DefaultOptions())
	go drainTrades(mi)

	debugHandler := handlers.NewDebugHandler(mi)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Error().
				Str("path", c.Path()).
				Str("method", c.Method()).
				Int("status", code).
				Str("error", err.Error()).
				Msg("Request error")

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	routes.SetupRoutes(app, debugHandler)

	port := ":8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = ":" + envPort
	}

	serverError := make(chan error, 1)

	go func() {
		if err := app.Listen(port); err != nil {
			errStr := err.Error()
			if errStr != "server is shutting down" {
				serverError <- err
			}
		}
	}()

	select {
	case err := <-serverError:
		log.Fatal().
			Err(err).
			Str("port", port).
			Msg("Server failed to start")
	default:
		log.Info().
			Str("port", port).
			Strs("symbols", symbols).
			Msg("Matching engine debug server started")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-quit
	log.Info().Msg("Received shutdown signal, shutting down...")

	shutdownTimeout := 10 * time.Second
	if envTimeout := os.Getenv("SHUTDOWN_TIMEOUT"); envTimeout != "" {
		if parsed, err := time.ParseDuration(envTimeout); err == nil && parsed > 0 {
			shutdownTimeout = parsed
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Dur("timeout", shutdownTimeout).Msg("Timeout exceeded, shutting down...")
		} else {
			log.Error().Err(err).Msg("Error during shutdown")
		}
	} else {
		log.Info().Msg("Shutdown complete")
	}

	mi.Close()
	logger.CloseLogger()
}

func parseSymbols(raw string) []string {
	if raw == "" {
		return []string{"DEMO"}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// drainTrades discards the aggregate trade stream so the per-symbol
// worker trade channels never fill up when nothing else is consuming
// them; a future collaborator that wants to publish trades externally
// would replace this with real fan-out.
func drainTrades(mi *ingest.MultiIngestor) {
	for range mi.RxTrade {
	}
}

package handlers

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"match-engine/src/ingest"
	"match-engine/src/models"
)

// DebugHandler serves the read-only introspection surface spec
// section 6 keeps in scope: health, metrics, top-of-book queries, and
// the list of routed symbols. It never accepts order commands — those
// arrive only through an ingest.MultiIngestor's channels or
// cmd/matchctl, per spec section 1's exclusion of a network
// command-entry protocol.
type DebugHandler struct {
	Ingestor  *ingest.MultiIngestor
	StartTime time.Time
}

func NewDebugHandler(mi *ingest.MultiIngestor) *DebugHandler {
	return &DebugHandler{Ingestor: mi, StartTime: time.Now()}
}

func (h *DebugHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.HealthResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.StartTime).Seconds()),
	})
}

func (h *DebugHandler) Metrics(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.MetricsResponse{
		Symbols:         len(h.Ingestor.Symbols()),
		DroppedCommands: h.Ingestor.DroppedCount(),
	})
}

func (h *DebugHandler) Symbols(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.SymbolsResponse{
		Symbols: h.Ingestor.Symbols(),
	})
}

func (h *DebugHandler) GetOrderBook(c *fiber.Ctx) error {
	symbol := c.Params("symbol")

	defaultDepth := 10
	if envDepth := os.Getenv("ORDERBOOK_DEFAULT_DEPTH"); envDepth != "" {
		if parsed, err := strconv.Atoi(envDepth); err == nil && parsed > 0 {
			defaultDepth = parsed
		}
	}

	maxDepth := 1000
	if envMaxDepth := os.Getenv("ORDERBOOK_MAX_DEPTH"); envMaxDepth != "" {
		if parsed, err := strconv.Atoi(envMaxDepth); err == nil && parsed > 0 {
			maxDepth = parsed
		}
	}

	depthStr := c.Query("depth", strconv.Itoa(defaultDepth))
	depth, err := strconv.Atoi(depthStr)
	if err != nil || depth <= 0 {
		depth = defaultDepth
	}
	if depth > maxDepth {
		depth = maxDepth
	}

	bidLevels, askLevels := h.Ingestor.TopN(symbol, depth)
	if bidLevels == nil && askLevels == nil {
		log.Warn().Str("symbol", symbol).Str("ip", c.IP()).Msg("orderbook query for unknown symbol")
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "unknown symbol",
		})
	}

	bids := make([]models.PriceLevelInfo, 0, len(bidLevels))
	for _, lvl := range bidLevels {
		bids = append(bids, models.PriceLevelInfo{Price: uint64(lvl.Price), Quantity: uint64(lvl.Qty)})
	}
	asks := make([]models.PriceLevelInfo, 0, len(askLevels))
	for _, lvl := range askLevels {
		asks = append(asks, models.PriceLevelInfo{Price: uint64(lvl.Price), Quantity: uint64(lvl.Qty)})
	}

	return c.Status(fiber.StatusOK).JSON(models.OrderBookResponse{
		Symbol:    symbol,
		Timestamp: time.Now().UnixMilli(),
		Bids:      bids,
		Asks:      asks,
	})
}

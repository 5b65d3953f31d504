package models

// ErrorResponse is the body of any non-2xx debug-server response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PriceLevelInfo is one (price, aggregate quantity) point in an
// OrderBookResponse.
type PriceLevelInfo struct {
	Price    uint64 `json:"price"`
	Quantity uint64 `json:"quantity"`
}

// OrderBookResponse answers GET /api/v1/orderbook/:symbol with the top-of-book
// view spec section 6 keeps in scope as a read-only query surface.
type OrderBookResponse struct {
	Symbol    string           `json:"symbol"`
	Timestamp int64            `json:"timestamp"` // unix timestamp in milliseconds
	Bids      []PriceLevelInfo `json:"bids"`       // sorted descending (highest first)
	Asks      []PriceLevelInfo `json:"asks"`       // sorted ascending (lowest first)
}

// HealthResponse answers GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// MetricsResponse answers GET /metrics with ingestion-level counters.
// There is no per-order latency histogram here: the matching kernel
// runs in-process with no network hop to measure, so the teacher's
// latency percentiles don't carry over to a library-shaped engine.
type MetricsResponse struct {
	Symbols        int   `json:"symbols"`
	DroppedCommands int64 `json:"dropped_commands"`
}

// SymbolsResponse answers GET /api/v1/symbols.
type SymbolsResponse struct {
	Symbols []string `json:"symbols"`
}

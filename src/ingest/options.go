// Package ingest is the concurrent, multi-instrument command ingestion
// layer (spec sections 4.E and 4.F). Each symbol is driven by its own
// worker goroutine that owns a single engine.Book, assigns local
// sequence numbers, forms batches, and drives the batch processor. No
// lock is ever taken on a Book; synchronization happens only at channel
// endpoints, so parallelism is achieved by sharding on symbol rather
// than by locking a shared book.
package ingest

// Options configures batching behavior for both Ingestor and
// MultiIngestor (spec section 6, "Configuration options").
type Options struct {
	// BatchSize is the target maximum number of commands dispatched to
	// the batch processor in one call. Spec recommends 4K-64K for a
	// busy symbol.
	BatchSize uint32
	// EmitTrades, when false, skips forwarding trades on the outbound
	// trade channel. Disabling it avoids a cross-goroutine send on the
	// hot path for callers that don't need a live trade stream.
	EmitTrades bool
	// CoalesceMicros, when > 0, is the window a worker waits after
	// receiving the first command of a batch, opportunistically
	// draining additional commands without blocking, before dispatching
	// early if BatchSize is reached. When 0, the worker does a single
	// non-blocking drain instead of waiting.
	CoalesceMicros uint32
}

// DefaultOptions returns the package's baseline batching policy: a
// moderate batch size, trades forwarded, no coalescing window.
func DefaultOptions() Options {
	return Options{
		BatchSize:      4096,
		EmitTrades:     true,
		CoalesceMicros: 0,
	}
}

func (o Options) batchSize() int {
	if o.BatchSize == 0 {
		return 1
	}
	return int(o.BatchSize)
}

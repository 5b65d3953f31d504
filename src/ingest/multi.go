package ingest

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"match-engine/src/engine"
)

// MultiRawCommand addresses a RawCommand to a symbol, for producers
// that submit through the shared router rather than a direct route
// (spec section 4.F).
type MultiRawCommand struct {
	Symbol string
	Cmd    RawCommand
}

// SymbolTrade tags a trade with the symbol whose book produced it,
// since MultiIngestor fans trades from every symbol worker into one
// channel.
type SymbolTrade struct {
	Symbol string
	Trade  engine.Trade
}

// MultiIngestor fans a shared command stream out to one worker
// goroutine per symbol, each owning its own engine.Book, and fans
// their trades back into a single channel. Producers may either send
// through TxCmd and let the router dispatch by symbol, or look up a
// symbol in Routes and send directly to that symbol's worker,
// bypassing the router entirely (spec section 4.F, "Direct routing").
type MultiIngestor struct {
	TxCmd   chan<- MultiRawCommand
	RxTrade <-chan SymbolTrade
	RxDone  <-chan int

	// Routes exposes each symbol's own command channel for producers
	// that want to skip the router goroutine.
	Routes map[string]chan<- RawCommand

	workers map[string]*Ingestor
	dropped atomic.Int64
}

// StartWithBooks spawns one worker per entry in books, plus a router
// goroutine that dispatches incoming MultiRawCommands by symbol.
// Commands addressed to a symbol not present in books are logged and
// counted rather than dropped silently (see SPEC_FULL.md section 5,
// "Unknown symbol routing").
func StartWithBooks(books map[string]*engine.Book, opts Options) *MultiIngestor {
	workers := make(map[string]*Ingestor, len(books))
	routes := make(map[string]chan<- RawCommand, len(books))
	tradeCh := make(chan SymbolTrade, opts.batchSize())
	doneCh := make(chan int, len(books))
	routerCh := make(chan MultiRawCommand, opts.batchSize())

	mi := &MultiIngestor{
		TxCmd:   routerCh,
		RxTrade: tradeCh,
		RxDone:  doneCh,
		Routes:  routes,
		workers: workers,
	}

	for symbol, book := range books {
		ing := StartWithBook(book, opts)
		workers[symbol] = ing
		routes[symbol] = ing.TxCmd
		go forwardTrades(symbol, ing.RxTrade, tradeCh)
		go forwardDone(ing.RxDone, doneCh)
	}

	go mi.route(routerCh)

	return mi
}

func forwardTrades(symbol string, in <-chan engine.Trade, out chan<- SymbolTrade) {
	for t := range in {
		out <- SymbolTrade{Symbol: symbol, Trade: t}
	}
}

func forwardDone(in <-chan int, out chan<- int) {
	for n := range in {
		select {
		case out <- n:
		default:
		}
	}
}

func (mi *MultiIngestor) route(routerCh <-chan MultiRawCommand) {
	for mc := range routerCh {
		dst, ok := mi.Routes[mc.Symbol]
		if !ok {
			mi.dropped.Add(1)
			log.Warn().Str("symbol", mc.Symbol).Msg("ingest: command for unknown symbol dropped")
			continue
		}
		dst <- mc.Cmd
	}
}

// DroppedCount returns the number of commands addressed to a symbol
// with no registered worker, since the router started.
func (mi *MultiIngestor) DroppedCount() int64 {
	return mi.dropped.Load()
}

// BestBid synchronously reads a symbol's current best bid. ok is
// false both when the book's bid side is empty and when symbol has no
// worker.
func (mi *MultiIngestor) BestBid(symbol string) (Level, bool) {
	ing, ok := mi.workers[symbol]
	if !ok {
		return Level{}, false
	}
	return ing.BestBid()
}

// BestAsk synchronously reads a symbol's current best ask.
func (mi *MultiIngestor) BestAsk(symbol string) (Level, bool) {
	ing, ok := mi.workers[symbol]
	if !ok {
		return Level{}, false
	}
	return ing.BestAsk()
}

// TopN synchronously reads up to n levels per side for a symbol.
func (mi *MultiIngestor) TopN(symbol string, n int) (bids []Level, asks []Level) {
	ing, ok := mi.workers[symbol]
	if !ok {
		return nil, nil
	}
	return ing.TopN(n)
}

// Symbols returns the set of symbols this MultiIngestor is routing
// for, in no particular order.
func (mi *MultiIngestor) Symbols() []string {
	out := make([]string, 0, len(mi.workers))
	for s := range mi.workers {
		out = append(out, s)
	}
	return out
}

// Close stops every symbol worker. The router goroutine is left
// running on routerCh; callers that also close TxCmd's underlying
// channel should do so separately once no more producers remain.
func (mi *MultiIngestor) Close() {
	for _, ing := range mi.workers {
		ing.Close()
	}
}

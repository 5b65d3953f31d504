package ingest

import "match-engine/src/engine"

// QueryKind selects which read-only view of a book a Query asks for.
// Queries let an external reader (the debug server) observe live book
// state without a mutex ever being taken on an engine.Book: each
// worker goroutine answers queries itself, between batches, over its
// own reply channel.
type QueryKind uint8

const (
	QueryBestBid QueryKind = iota
	QueryBestAsk
	QueryTopN
)

// Query is sent on a worker's query channel and answered on reply.
// N is only meaningful for QueryTopN.
type Query struct {
	Kind  QueryKind
	N     int
	reply chan QueryResult
}

// QueryResult is a worker's answer to a Query. For QueryBestBid/Ask,
// Level and OK mirror engine.Book.BestBid/BestAsk. For QueryTopN,
// Bids and Asks mirror engine.Book.TopN.
type QueryResult struct {
	Level Level
	OK    bool
	Bids  []Level
	Asks  []Level
}

// Level mirrors engine.Level so callers of this package don't need to
// import src/engine just to read a query result.
type Level = engine.Level

func newQuery(kind QueryKind, n int) (Query, chan QueryResult) {
	reply := make(chan QueryResult, 1)
	return Query{Kind: kind, N: n, reply: reply}, reply
}

func answerQuery(book *engine.Book, q Query) QueryResult {
	switch q.Kind {
	case QueryBestBid:
		lvl, ok := book.BestBid()
		return QueryResult{Level: lvl, OK: ok}
	case QueryBestAsk:
		lvl, ok := book.BestAsk()
		return QueryResult{Level: lvl, OK: ok}
	case QueryTopN:
		bids, asks := book.TopN(q.N)
		return QueryResult{Bids: bids, Asks: asks, OK: true}
	default:
		return QueryResult{}
	}
}

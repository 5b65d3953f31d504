// Package engine implements a single-instrument, in-memory continuous
// limit order book under price-time priority (FIFO). A Book is not safe
// for concurrent use; callers that need concurrency shard by symbol
// instead of locking a Book (see src/ingest).
package engine

import "errors"

// Price is a fixed-point tick count. There is no floating point on the
// matching hot path.
type Price uint64

// Qty is a strictly positive (on input) unit count.
type Qty uint64

// OrderID uniquely identifies a resting or just-submitted order within a
// single Book. IDs are assigned from a monotonic counter starting at 1.
type OrderID uint64

// Seq is a replay witness: a strictly increasing per-symbol sequence
// number used by the batch processor to validate and order a batch.
// Single-threaded application is inherently ordered, so Seq is not
// required for in-process correctness — it exists so an external system
// can check replay equivalence across machines.
type Seq uint64

// Side is one side of the book.
type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// OrderType distinguishes resting limit orders from fire-and-forget
// market orders.
type OrderType uint8

const (
	Limit OrderType = iota
	Market
)

func (t OrderType) String() string {
	if t == Limit {
		return "LIMIT"
	}
	return "MARKET"
}

// Sentinel errors. ErrUnknownOrder and ErrInvalidSide and
// ErrInvalidSequence are named directly by spec section 7.
// ErrInvalidQty and ErrInvalidPrice are additive API-boundary guards
// resolving the spec's open question on zero/invalid input in favor of
// rejection rather than undefined behavior.
var (
	ErrUnknownOrder   = errors.New("engine: unknown order id")
	ErrInvalidSide    = errors.New("engine: invalid side for operation")
	ErrInvalidSequence = errors.New("engine: invalid sequence in batch")
	ErrInvalidQty     = errors.New("engine: quantity must be positive")
	ErrInvalidPrice   = errors.New("engine: price must be positive")
)

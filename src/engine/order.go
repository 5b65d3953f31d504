package engine

// Order is an accepted limit order currently resting in a PriceLevel, or
// the transient representation of an in-flight taker. A resting order
// lives in exactly one PriceLevel, pointed to by the Book's id index; it
// is mutated only by being partially filled (Remaining decreases), fully
// filled (removed), or cancelled (removed).
type Order struct {
	ID        OrderID
	Side      Side
	Price     Price // meaningless for a pure market taker that never rests
	Remaining Qty
}

// Trade is an immutable record of one match. Price is always the maker's
// resting price, never the taker's.
type Trade struct {
	TakerID OrderID
	MakerID OrderID
	Price   Price
	Qty     Qty
}

// LimitRequest is one entry of a same-shaped batch submitted via
// SubmitLimitsInto, restoring the original engine's submit_limits_batch
// convenience for callers that just want to seed or replay many limit
// orders without per-call overhead.
type LimitRequest struct {
	Side  Side
	Price Price
	Qty   Qty
}

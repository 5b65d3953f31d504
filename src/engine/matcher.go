package engine

// matchTaker is the matching kernel (spec section 4.C). It executes a
// taker of the given side against the opposite side under price-time
// priority, appending trades to tradesOut, and returns the taker's
// unmatched remainder. price is nil for a market taker (always
// crossable against any opposite price); for a limit taker it bounds
// which opposite levels are crossable.
//
// Tie-breaks: strictly FIFO within a price level, strictly best-price
// levels first, and the trade price is always the resting maker's
// price, never the taker's.
func (b *Book) matchTaker(takerID OrderID, side Side, price *Price, remaining Qty, tradesOut *[]Trade) Qty {
	opposite := Sell
	if side == Sell {
		opposite = Buy
	}

	for remaining > 0 {
		lvl := b.bestLevel(opposite)
		if lvl == nil {
			break
		}
		if price != nil {
			switch side {
			case Buy:
				if lvl.Price > *price {
					return remaining
				}
			case Sell:
				if lvl.Price < *price {
					return remaining
				}
			}
		}

		for remaining > 0 {
			maker := lvl.front()
			if maker == nil {
				break
			}
			fill := remaining
			if maker.Remaining < fill {
				fill = maker.Remaining
			}
			*tradesOut = append(*tradesOut, Trade{
				TakerID: takerID,
				MakerID: maker.ID,
				Price:   lvl.Price,
				Qty:     fill,
			})
			maker.Remaining -= fill
			remaining -= fill
			lvl.decrementHead(fill)
			if maker.Remaining == 0 {
				lvl.popFront()
				delete(b.index, maker.ID)
			}
		}

		if lvl.empty() {
			b.removeLevel(opposite, lvl.Price)
		}
	}

	return remaining
}

// SubmitLimitInto submits a limit order, matching it against the
// opposite side and resting any residual at the tail of its (side,
// price) FIFO queue. Trades are appended to the caller-owned tradesOut
// buffer rather than allocated, so a long-running caller can amortize
// allocation across many calls (spec section 4.B, "Zero-allocation
// variants").
func (b *Book) SubmitLimitInto(side Side, price Price, qty Qty, tradesOut *[]Trade) (OrderID, Qty, error) {
	if qty == 0 {
		return 0, 0, ErrInvalidQty
	}
	if price == 0 {
		return 0, 0, ErrInvalidPrice
	}

	id := b.nextOrderID()
	remaining := b.matchTaker(id, side, &price, qty, tradesOut)
	if remaining > 0 {
		b.rest(&Order{ID: id, Side: side, Price: price, Remaining: remaining})
	}
	return id, remaining, nil
}

// SubmitMarketInto submits a market order, matching until qty is
// exhausted or the opposite side is empty. Any unfilled remainder is
// dropped — a market order never rests.
func (b *Book) SubmitMarketInto(side Side, qty Qty, tradesOut *[]Trade) (OrderID, Qty, error) {
	if qty == 0 {
		return 0, 0, ErrInvalidQty
	}

	id := b.nextOrderID()
	remaining := b.matchTaker(id, side, nil, qty, tradesOut)
	return id, remaining, nil
}

// SubmitLimit is the allocating counterpart of SubmitLimitInto.
func (b *Book) SubmitLimit(side Side, price Price, qty Qty) (OrderID, []Trade, Qty, error) {
	var trades []Trade
	id, remaining, err := b.SubmitLimitInto(side, price, qty, &trades)
	return id, trades, remaining, err
}

// SubmitMarket is the allocating counterpart of SubmitMarketInto.
func (b *Book) SubmitMarket(side Side, qty Qty) (OrderID, []Trade, Qty, error) {
	var trades []Trade
	id, remaining, err := b.SubmitMarketInto(side, qty, &trades)
	return id, trades, remaining, err
}

// SubmitLimitsInto submits a batch of same-shaped limit requests without
// per-call overhead, restoring the original engine's
// submit_limits_batch convenience (see SPEC_FULL.md section 4). Invalid
// entries are skipped; callers that need per-entry results should use
// ProcessCommandsBatchCheckedInto instead.
func (b *Book) SubmitLimitsInto(orders []LimitRequest, tradesOut *[]Trade) {
	for _, o := range orders {
		_, _, _ = b.SubmitLimitInto(o.Side, o.Price, o.Qty, tradesOut)
	}
}

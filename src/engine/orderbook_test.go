package engine

import "testing"

func TestCancelUnknownOrderReturnsError(t *testing.T) {
	b := NewBook()
	if _, err := b.Cancel(999); err != ErrUnknownOrder {
		t.Fatalf("expected ErrUnknownOrder, got %v", err)
	}
}

func TestCancelRemovesEmptyLevelFromTree(t *testing.T) {
	b := NewBook()
	id, _, _, _ := b.SubmitLimit(Buy, 100, 10)
	if _, err := b.Cancel(id); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, ok := b.BestBid(); ok {
		t.Fatalf("expected empty bid side after cancelling the only order")
	}
}

func TestCancelPartiallyFilledOrderRemovesOnlyResidual(t *testing.T) {
	b := NewBook()
	id, _, _, _ := b.SubmitLimit(Sell, 100, 10)
	_, trades, _, _ := b.SubmitLimit(Buy, 100, 4)
	if len(trades) != 1 || trades[0].Qty != 4 {
		t.Fatalf("expected partial fill of 4, got %+v", trades)
	}

	resid, err := b.Cancel(id)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if resid.Remaining != 6 {
		t.Fatalf("expected residual 6, got %d", resid.Remaining)
	}
}

func TestBestBidIsHighestPrice(t *testing.T) {
	b := NewBook()
	b.SubmitLimit(Buy, 95, 1)
	b.SubmitLimit(Buy, 105, 1)
	b.SubmitLimit(Buy, 100, 1)

	bid, ok := b.BestBid()
	if !ok || bid.Price != 105 {
		t.Fatalf("expected best bid 105, got %+v ok=%v", bid, ok)
	}
}

func TestBestAskIsLowestPrice(t *testing.T) {
	b := NewBook()
	b.SubmitLimit(Sell, 110, 1)
	b.SubmitLimit(Sell, 90, 1)
	b.SubmitLimit(Sell, 100, 1)

	ask, ok := b.BestAsk()
	if !ok || ask.Price != 90 {
		t.Fatalf("expected best ask 90, got %+v ok=%v", ask, ok)
	}
}

func TestTopNOrdering(t *testing.T) {
	b := NewBook()
	for _, p := range []Price{95, 105, 100} {
		b.SubmitLimit(Buy, p, 1)
	}
	for _, p := range []Price{110, 90, 100 + 20} {
		b.SubmitLimit(Sell, p, 1)
	}

	// The sell at 90 crosses and consumes the bid at 105, leaving bids
	// {100, 95} and asks {110, 120}.
	bids, asks := b.TopN(2)
	if len(bids) != 2 || bids[0].Price != 100 || bids[1].Price != 95 {
		t.Fatalf("unexpected bid ordering: %+v", bids)
	}
	if len(asks) != 2 || asks[0].Price != 110 {
		t.Fatalf("expected lowest ask first, got %+v", asks)
	}
}

func TestTopNZeroOrNegativeReturnsNil(t *testing.T) {
	b := NewBook()
	b.SubmitLimit(Buy, 100, 1)
	bids, asks := b.TopN(0)
	if bids != nil || asks != nil {
		t.Fatalf("expected nil slices for n<=0, got %+v %+v", bids, asks)
	}
}

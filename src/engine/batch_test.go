package engine

import "testing"

// TestProcessBatchSortsBySeq covers spec section 4.D: a batch handed
// in out of Seq order is stable-sorted before dispatch, so results
// come back in Seq order regardless of input order.
func TestProcessBatchSortsBySeq(t *testing.T) {
	b := NewBook()
	cmds := []Command{
		{Seq: 2, Kind: CmdLimit, Side: Sell, Price: 100, Qty: 5},
		{Seq: 1, Kind: CmdLimit, Side: Buy, Price: 100, Qty: 5},
	}
	var trades []Trade
	results, err := b.ProcessCommandsBatchCheckedInto(cmds, &trades)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if len(trades) != 1 {
		t.Fatalf("expected the later sell to cross the earlier-seq'd resting buy, got %+v", trades)
	}
}

// TestProcessBatchRejectsDuplicateSeq covers spec section 4.D and 7:
// a duplicate Seq fails the whole batch atomically.
func TestProcessBatchRejectsDuplicateSeq(t *testing.T) {
	b := NewBook()
	cmds := []Command{
		{Seq: 1, Kind: CmdLimit, Side: Buy, Price: 100, Qty: 5},
		{Seq: 1, Kind: CmdLimit, Side: Buy, Price: 101, Qty: 5},
	}
	var trades []Trade
	_, err := b.ProcessCommandsBatchCheckedInto(cmds, &trades)
	if err != ErrInvalidSequence {
		t.Fatalf("expected ErrInvalidSequence, got %v", err)
	}
	if _, ok := b.BestBid(); ok {
		t.Fatalf("expected no mutation on a rejected batch")
	}
}

// TestProcessBatchStopsAtFirstError covers spec section 7: commands
// dispatched before a failing one remain applied; the failure is
// reported without a result vector.
func TestProcessBatchStopsAtFirstError(t *testing.T) {
	b := NewBook()
	cmds := []Command{
		{Seq: 1, Kind: CmdLimit, Side: Buy, Price: 100, Qty: 5},
		{Seq: 2, Kind: CmdCancel, ID: 999},
	}
	var trades []Trade
	results, err := b.ProcessCommandsBatchCheckedInto(cmds, &trades)
	if err != ErrUnknownOrder {
		t.Fatalf("expected ErrUnknownOrder, got %v", err)
	}
	if results != nil {
		t.Fatalf("expected nil results on failure, got %+v", results)
	}
	if bid, ok := b.BestBid(); !ok || bid.Price != 100 {
		t.Fatalf("expected the first command's resting order to remain, got %+v ok=%v", bid, ok)
	}
}

func TestProcessBatchCancelRoundTrip(t *testing.T) {
	b := NewBook()
	var trades []Trade
	results, err := b.ProcessCommandsBatchCheckedInto([]Command{
		{Seq: 1, Kind: CmdLimit, Side: Buy, Price: 100, Qty: 5},
	}, &trades)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := results[0].ID

	_, err = b.ProcessCommandsBatchCheckedInto([]Command{
		{Seq: 2, Kind: CmdCancel, ID: id},
	}, &trades)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := b.BestBid(); ok {
		t.Fatalf("expected book empty after cancel")
	}
}

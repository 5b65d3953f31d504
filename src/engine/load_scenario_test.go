package engine

import "testing"

// TestLoadScenarioSmokeAndThroughput restores, in trimmed deterministic
// form, the original engine's load_scenario_smoke_and_throughput_print
// integration test: seed a deep book, replay a mixed limit/market
// workload (no cancels), and assert the book is left uncrossed with both
// sides in priority order.
// Timing assertions from the original are dropped since wall-clock
// throughput isn't a portable CI assertion (see SPEC_FULL.md section 4).
func TestLoadScenarioSmokeAndThroughput(t *testing.T) {
	b := NewBook()

	var seed []LimitRequest
	for i := 0; i < 50; i++ {
		seed = append(seed, LimitRequest{Side: Buy, Price: Price(1000 - i), Qty: 10})
		seed = append(seed, LimitRequest{Side: Sell, Price: Price(1001 + i), Qty: 10})
	}
	var seedTrades []Trade
	b.SubmitLimitsInto(seed, &seedTrades)
	if len(seedTrades) != 0 {
		t.Fatalf("expected no crosses while seeding a two-sided book, got %+v", seedTrades)
	}

	var restingIDs []OrderID
	var cmds []Command
	var seq Seq
	for i := 0; i < 200; i++ {
		switch i % 4 {
		case 0:
			cmds = append(cmds, Command{Seq: seq, Kind: CmdLimit, Side: Buy, Price: Price(990 + i%20), Qty: 3})
		case 1:
			cmds = append(cmds, Command{Seq: seq, Kind: CmdLimit, Side: Sell, Price: Price(1010 - i%20), Qty: 3})
		case 2:
			cmds = append(cmds, Command{Seq: seq, Kind: CmdMarket, Side: Buy, Qty: 2})
		case 3:
			cmds = append(cmds, Command{Seq: seq, Kind: CmdMarket, Side: Sell, Qty: 2})
		}
		seq++
	}

	var trades []Trade
	results, err := b.ProcessCommandsBatchCheckedInto(cmds, &trades)
	if err != nil {
		t.Fatalf("unexpected error replaying load scenario: %v", err)
	}
	if len(results) != len(cmds) {
		t.Fatalf("expected %d results, got %d", len(cmds), len(results))
	}
	for _, r := range results {
		if r.ID != 0 {
			restingIDs = append(restingIDs, r.ID)
		}
	}

	bid, bidOK := b.BestBid()
	ask, askOK := b.BestAsk()
	if bidOK && askOK && bid.Price >= ask.Price {
		t.Fatalf("book left crossed after replay: bid=%+v ask=%+v", bid, ask)
	}

	bids, asks := b.TopN(5)
	for i := 1; i < len(bids); i++ {
		if bids[i].Price > bids[i-1].Price {
			t.Fatalf("bid side not descending: %+v", bids)
		}
	}
	for i := 1; i < len(asks); i++ {
		if asks[i].Price < asks[i-1].Price {
			t.Fatalf("ask side not ascending: %+v", asks)
		}
	}
}

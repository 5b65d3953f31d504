package ingest

import (
	"time"

	"github.com/rs/zerolog/log"

	"match-engine/src/engine"
)

// Ingestor drives a single engine.Book from its own worker goroutine
// (spec section 4.E). Commands sent on TxCmd are assigned a local,
// strictly increasing Seq in receipt order and applied in batches;
// trades are published on RxTrade if Options.EmitTrades is set; RxDone
// reports the size of each applied batch, for callers that want
// backpressure-aware progress without inspecting trades.
type Ingestor struct {
	TxCmd   chan<- RawCommand
	RxTrade <-chan engine.Trade
	RxDone  <-chan int

	cmdCh   chan RawCommand
	queryCh chan Query
}

// StartWithBook spawns the worker goroutine and returns the handles to
// drive it. Closing the returned Ingestor (via Close) stops the worker
// after it drains any in-flight batch.
func StartWithBook(book *engine.Book, opts Options) *Ingestor {
	cmdCh := make(chan RawCommand, opts.batchSize())
	tradeCh := make(chan engine.Trade, opts.batchSize())
	doneCh := make(chan int, 1)
	queryCh := make(chan Query)

	ing := &Ingestor{
		TxCmd:   cmdCh,
		RxTrade: tradeCh,
		RxDone:  doneCh,
		cmdCh:   cmdCh,
		queryCh: queryCh,
	}

	go runWorker(book, opts, cmdCh, tradeCh, doneCh, queryCh)

	return ing
}

// Close signals the worker to stop accepting new commands. It is safe
// to call exactly once; the worker finishes any batch already read
// before exiting.
func (i *Ingestor) Close() {
	close(i.cmdCh)
}

func (i *Ingestor) query(kind QueryKind, n int) QueryResult {
	q, reply := newQuery(kind, n)
	i.queryCh <- q
	return <-reply
}

// BestBid synchronously reads the worker's current best bid.
func (i *Ingestor) BestBid() (Level, bool) {
	r := i.query(QueryBestBid, 0)
	return r.Level, r.OK
}

// BestAsk synchronously reads the worker's current best ask.
func (i *Ingestor) BestAsk() (Level, bool) {
	r := i.query(QueryBestAsk, 0)
	return r.Level, r.OK
}

// TopN synchronously reads up to n levels per side.
func (i *Ingestor) TopN(n int) (bids []Level, asks []Level) {
	r := i.query(QueryTopN, n)
	return r.Bids, r.Asks
}

// runWorker is the per-symbol state machine: read one command to
// unblock, drain whatever else is immediately (or, with
// CoalesceMicros set, briefly) available, dispatch the batch, repeat.
// Queries are answered between batches rather than mid-drain, trading
// a small amount of added query latency for never touching the book
// from more than one goroutine.
func runWorker(book *engine.Book, opts Options, cmdCh <-chan RawCommand, tradeCh chan<- engine.Trade, doneCh chan<- int, queryCh chan Query) {
	var seq engine.Seq
	buf := make([]RawCommand, 0, opts.batchSize())
	var trades []engine.Trade

	for {
		select {
		case q, ok := <-queryCh:
			if ok {
				q.reply <- answerQuery(book, q)
			}
			continue
		case first, ok := <-cmdCh:
			if !ok {
				return
			}
			buf = append(buf[:0], first)
		}

		buf = drainBatch(cmdCh, buf, opts)

		cmds := make([]engine.Command, len(buf))
		for idx, raw := range buf {
			cmds[idx] = raw.withSeq(seq)
			seq++
		}

		trades = trades[:0]
		results, err := book.ProcessCommandsBatchCheckedInto(cmds, &trades)
		if err != nil {
			log.Error().Err(err).Int("batch_size", len(cmds)).Msg("ingest: batch rejected")
			continue
		}

		if opts.EmitTrades {
			for _, t := range trades {
				tradeCh <- t
			}
		}

		select {
		case doneCh <- len(results):
		default:
		}
	}
}

// drainBatch fills buf (already holding one command) with whatever
// else cmdCh can offer right now without blocking, up to BatchSize.
// When CoalesceMicros is set, it waits that long after the first
// command for more to arrive, which favors larger batches over
// latency for bursty producers; a CoalesceMicros of 0 just takes
// what's immediately queued.
func drainBatch(cmdCh <-chan RawCommand, buf []RawCommand, opts Options) []RawCommand {
	limit := opts.batchSize()

	if opts.CoalesceMicros > 0 {
		deadline := time.After(time.Duration(opts.CoalesceMicros) * time.Microsecond)
		for len(buf) < limit {
			select {
			case cmd, ok := <-cmdCh:
				if !ok {
					return buf
				}
				buf = append(buf, cmd)
			case <-deadline:
				return buf
			}
		}
		return buf
	}

	for len(buf) < limit {
		select {
		case cmd, ok := <-cmdCh:
			if !ok {
				return buf
			}
			buf = append(buf, cmd)
		default:
			return buf
		}
	}
	return buf
}

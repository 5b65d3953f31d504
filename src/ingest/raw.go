package ingest

import "match-engine/src/engine"

// RawCommand is a sequence-less command as submitted by an external
// producer (spec section 4.E). The ingestor worker assigns the local
// Seq in receipt order before handing it to the batch processor.
type RawCommand struct {
	Kind  engine.CommandKind
	Side  engine.Side
	Price engine.Price
	Qty   engine.Qty
	ID    engine.OrderID
}

// LimitCommand builds a resting-or-matching limit order command.
func LimitCommand(side engine.Side, price engine.Price, qty engine.Qty) RawCommand {
	return RawCommand{Kind: engine.CmdLimit, Side: side, Price: price, Qty: qty}
}

// MarketCommand builds a fire-and-forget market order command.
func MarketCommand(side engine.Side, qty engine.Qty) RawCommand {
	return RawCommand{Kind: engine.CmdMarket, Side: side, Qty: qty}
}

// CancelCommand builds a cancel-by-id command.
func CancelCommand(id engine.OrderID) RawCommand {
	return RawCommand{Kind: engine.CmdCancel, ID: id}
}

func (r RawCommand) withSeq(seq engine.Seq) engine.Command {
	return engine.Command{
		Seq:   seq,
		Kind:  r.Kind,
		Side:  r.Side,
		Price: r.Price,
		Qty:   r.Qty,
		ID:    r.ID,
	}
}

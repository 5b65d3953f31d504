package engine

import "sort"

// CommandKind discriminates the Command tagged union (spec section 3,
// "Command"). Go has no native sum type, so Command carries all fields
// and Kind picks which are meaningful.
type CommandKind uint8

const (
	CmdLimit CommandKind = iota
	CmdMarket
	CmdCancel
)

// Command is one batch entry. Seq is the replay witness validated by
// ProcessCommandsBatchCheckedInto. Price and Qty apply to CmdLimit; Qty
// alone applies to CmdMarket; ID applies to CmdCancel.
type Command struct {
	Seq   Seq
	Kind  CommandKind
	Side  Side
	Price Price
	Qty   Qty
	ID    OrderID
}

// CommandResult is one batch dispatch outcome: the affected order's id,
// and its remaining quantity after the command (0 for a successful
// cancel or a fully-filled submit).
type CommandResult struct {
	ID        OrderID
	Remaining Qty
}

// ProcessCommandsBatchCheckedInto validates and applies a batch under
// the deterministic-replay contract (spec section 4.D):
//
//  1. cmds is stable-sorted by Seq ascending — sort stability is what
//     makes the interpretation of any equal-Seq entries deterministic.
//  2. The sorted sequence is validated to be strictly increasing; any
//     adjacent non-increasing pair (a duplicate or an unorderable input)
//     fails the whole call with ErrInvalidSequence before any command is
//     applied — the call is atomic with respect to book state.
//  3. Each command is dispatched into the matching kernel or cancel, in
//     sorted order, appending trades to the caller-owned tradesOut
//     buffer.
//
// If a Cancel fails with ErrUnknownOrder, the error propagates
// immediately and this function returns the error without the result
// vector — but commands dispatched earlier in the same batch remain
// applied, per spec section 7.
func (b *Book) ProcessCommandsBatchCheckedInto(cmds []Command, tradesOut *[]Trade) ([]CommandResult, error) {
	sort.SliceStable(cmds, func(i, j int) bool { return cmds[i].Seq < cmds[j].Seq })

	for i := 1; i < len(cmds); i++ {
		if cmds[i].Seq <= cmds[i-1].Seq {
			return nil, ErrInvalidSequence
		}
	}

	results := make([]CommandResult, 0, len(cmds))
	for _, cmd := range cmds {
		switch cmd.Kind {
		case CmdLimit:
			id, remaining, err := b.SubmitLimitInto(cmd.Side, cmd.Price, cmd.Qty, tradesOut)
			if err != nil {
				return nil, err
			}
			results = append(results, CommandResult{ID: id, Remaining: remaining})
		case CmdMarket:
			id, remaining, err := b.SubmitMarketInto(cmd.Side, cmd.Qty, tradesOut)
			if err != nil {
				return nil, err
			}
			results = append(results, CommandResult{ID: id, Remaining: remaining})
		case CmdCancel:
			if _, err := b.Cancel(cmd.ID); err != nil {
				return nil, err
			}
			results = append(results, CommandResult{ID: cmd.ID, Remaining: 0})
		}
	}
	return results, nil
}

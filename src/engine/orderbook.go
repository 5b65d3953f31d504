package engine

import (
	"container/list"

	"github.com/google/btree"
)

// bidItem orders the bid tree descending by price, so Min() yields the
// best (highest) bid — mirroring the teacher's PriceLevelItem trick of
// inverting Less instead of maintaining a second comparator.
type bidItem struct{ level *PriceLevel }

func (b *bidItem) Less(than btree.Item) bool {
	return b.level.Price > than.(*bidItem).level.Price
}

// askItem orders the ask tree ascending by price, so Min() yields the
// best (lowest) ask.
type askItem struct{ level *PriceLevel }

func (a *askItem) Less(than btree.Item) bool {
	return a.level.Price < than.(*askItem).level.Price
}

// orderLocator is the Book's id index entry: a weak pointer to where a
// resting order lives, never ownership. The PriceLevel owns the order;
// this struct only lets cancel and the matching kernel find it in O(1).
type orderLocator struct {
	side  Side
	level *PriceLevel
	elem  *list.Element
}

// Book holds one instrument's continuous limit order book: two
// price-indexed btrees (bids descending, asks ascending), an order-id
// index, and the monotonic id counter. A Book is not safe for
// concurrent use — see the package doc and src/ingest.
type Book struct {
	bids   *btree.BTree
	asks   *btree.BTree
	index  map[OrderID]*orderLocator
	nextID OrderID
}

// degree controls the btree node fan-out; 32 matches the teacher's
// choice and is a reasonable default for the expected price-level
// cardinality of a single instrument.
const degree = 32

// NewBook constructs an empty book. Order ids are assigned starting at 1.
func NewBook() *Book {
	return &Book{
		bids:  btree.New(degree),
		asks:  btree.New(degree),
		index: make(map[OrderID]*orderLocator),
	}
}

func (b *Book) nextOrderID() OrderID {
	b.nextID++
	return b.nextID
}

func (b *Book) tree(side Side) *btree.BTree {
	if side == Buy {
		return b.bids
	}
	return b.asks
}

func (b *Book) levelAt(side Side, price Price) *PriceLevel {
	if side == Buy {
		item := b.bids.Get(&bidItem{level: &PriceLevel{Price: price}})
		if item == nil {
			return nil
		}
		return item.(*bidItem).level
	}
	item := b.asks.Get(&askItem{level: &PriceLevel{Price: price}})
	if item == nil {
		return nil
	}
	return item.(*askItem).level
}

// getOrCreateLevel returns the level at (side, price), creating and
// inserting it into the tree if this is the first resting order at that
// price.
func (b *Book) getOrCreateLevel(side Side, price Price) *PriceLevel {
	if lvl := b.levelAt(side, price); lvl != nil {
		return lvl
	}
	lvl := newPriceLevel(price)
	if side == Buy {
		b.bids.ReplaceOrInsert(&bidItem{level: lvl})
	} else {
		b.asks.ReplaceOrInsert(&askItem{level: lvl})
	}
	return lvl
}

// removeLevel deletes an emptied price level from its tree. Invariant
// I1 (no price level is ever empty) is restored by the caller invoking
// this the moment a level's last order is gone.
func (b *Book) removeLevel(side Side, price Price) {
	if side == Buy {
		b.bids.Delete(&bidItem{level: &PriceLevel{Price: price}})
	} else {
		b.asks.Delete(&askItem{level: &PriceLevel{Price: price}})
	}
}

// rest inserts the given order at the tail of its (side, price) level
// and records it in the id index. Called only with remaining > 0.
func (b *Book) rest(o *Order) {
	lvl := b.getOrCreateLevel(o.Side, o.Price)
	elem := lvl.pushBack(o)
	b.index[o.ID] = &orderLocator{side: o.Side, level: lvl, elem: elem}
}

// bestLevel returns the best (highest bid / lowest ask) non-empty level
// for a side, or nil.
func (b *Book) bestLevel(side Side) *PriceLevel {
	tree := b.tree(side)
	if tree.Len() == 0 {
		return nil
	}
	item := tree.Min()
	if item == nil {
		return nil
	}
	if side == Buy {
		return item.(*bidItem).level
	}
	return item.(*askItem).level
}

// Level is one (price, aggregate quantity) point returned by BestBid,
// BestAsk, and TopN.
type Level struct {
	Price Price
	Qty   Qty
}

// BestBid returns the highest resting bid price and its aggregate
// quantity, or ok=false if the bid side is empty.
func (b *Book) BestBid() (Level, bool) {
	lvl := b.bestLevel(Buy)
	if lvl == nil {
		return Level{}, false
	}
	return Level{Price: lvl.Price, Qty: lvl.Aggregate}, true
}

// BestAsk returns the lowest resting ask price and its aggregate
// quantity, or ok=false if the ask side is empty.
func (b *Book) BestAsk() (Level, bool) {
	lvl := b.bestLevel(Sell)
	if lvl == nil {
		return Level{}, false
	}
	return Level{Price: lvl.Price, Qty: lvl.Aggregate}, true
}

// TopN returns up to n price levels per side, in priority order (bids
// highest-first, asks lowest-first).
func (b *Book) TopN(n int) (bids []Level, asks []Level) {
	if n <= 0 {
		return nil, nil
	}
	bids = make([]Level, 0, n)
	b.bids.Ascend(func(item btree.Item) bool {
		lvl := item.(*bidItem).level
		bids = append(bids, Level{Price: lvl.Price, Qty: lvl.Aggregate})
		return len(bids) < n
	})
	asks = make([]Level, 0, n)
	b.asks.Ascend(func(item btree.Item) bool {
		lvl := item.(*askItem).level
		asks = append(asks, Level{Price: lvl.Price, Qty: lvl.Aggregate})
		return len(asks) < n
	})
	return bids, asks
}

// Cancel removes a resting order by id. It returns ErrUnknownOrder if no
// such order is currently resting. Per spec section 4.B, only the
// residual (remaining) quantity is ever resting, so cancelling a
// partially filled order removes just that residual.
func (b *Book) Cancel(id OrderID) (Order, error) {
	loc, ok := b.index[id]
	if !ok {
		return Order{}, ErrUnknownOrder
	}
	delete(b.index, id)
	o := loc.level.removeElem(loc.elem)
	if loc.level.empty() {
		b.removeLevel(loc.side, loc.level.Price)
	}
	return *o, nil
}

package engine

import "container/list"

// PriceLevel is a FIFO queue of resting orders at a single price, plus
// the cached sum of their remaining quantities. A level is created on
// first insertion at that price and destroyed the moment it becomes
// empty; the invariant sum(order.Remaining) == Aggregate always holds.
//
// Orders are held in a container/list so that Book.index can store the
// *list.Element locator directly, giving O(1) cancel instead of the O(k)
// linear scan spec section 4.A allows as a fallback.
type PriceLevel struct {
	Price     Price
	orders    *list.List // of *Order, front = earliest arrival
	Aggregate Qty
}

func newPriceLevel(price Price) *PriceLevel {
	return &PriceLevel{Price: price, orders: list.New()}
}

// pushBack appends an order to the tail of the FIFO and returns its
// locator element for O(1) future removal.
func (pl *PriceLevel) pushBack(o *Order) *list.Element {
	pl.Aggregate += o.Remaining
	return pl.orders.PushBack(o)
}

// front returns the head order for matching, or nil if the level is
// empty.
func (pl *PriceLevel) front() *Order {
	e := pl.orders.Front()
	if e == nil {
		return nil
	}
	return e.Value.(*Order)
}

// popFront removes the fully-consumed head order.
func (pl *PriceLevel) popFront() {
	pl.orders.Remove(pl.orders.Front())
}

// removeElem removes an order via its locator, used by cancel.
func (pl *PriceLevel) removeElem(e *list.Element) *Order {
	o := pl.orders.Remove(e).(*Order)
	pl.Aggregate -= o.Remaining
	return o
}

// decrementHead reduces the aggregate when the head order is partially
// filled without being removed.
func (pl *PriceLevel) decrementHead(qty Qty) {
	pl.Aggregate -= qty
}

func (pl *PriceLevel) empty() bool {
	return pl.orders.Len() == 0
}

func (pl *PriceLevel) len() int {
	return pl.orders.Len()
}

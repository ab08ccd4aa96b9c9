// Package ordering holds the single-customer order model: order lines,
// orders, and the customer that owns the order history.
package ordering

import (
	"time"

	"github.com/jcmexdev/storefront/internal/catalog"
)

// Line is one entry in an order: a product and how many units of it the
// customer is buying. The quantity here is the order-line quantity, never
// the product's catalog stock level.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal is the line's contribution to the order total.
func (l Line) Subtotal() float64 {
	return float64(l.Quantity) * l.Product.Price()
}

// Order is an ordered collection of lines plus payment state. Lines keep
// insertion order and duplicates are allowed. An order is only ever marked
// paid once, by the customer that commits it.
type Order struct {
	id        int
	paid      bool
	lines     []Line
	createdAt time.Time
}

func newOrder(id int) *Order {
	return &Order{id: id, createdAt: time.Now().UTC()}
}

func (o *Order) ID() int              { return o.id }
func (o *Order) Paid() bool           { return o.paid }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Lines returns a snapshot of the order's lines in insertion order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// AddLine appends a line to the order. No deduplication.
func (o *Order) AddLine(l Line) {
	o.lines = append(o.lines, l)
}

// Total sums the line subtotals at the time of the call; it is never cached.
func (o *Order) Total() float64 {
	var total float64
	for _, l := range o.lines {
		total += l.Subtotal()
	}
	return total
}

package ordering

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/payment"
)

// ErrInvalidOrderID is returned by CancelOrder when no order in the history
// carries the requested id.
var ErrInvalidOrderID = errors.New("ordering: order id not found")

// PaymentDeclinedError reports that the gateway declined the charge for an
// order. The order was discarded and the history is unchanged.
type PaymentDeclinedError struct {
	OrderID int
	Amount  float64
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("ordering: payment of %.2f declined for order %d", e.Amount, e.OrderID)
}

// Customer owns its order history and its own order-id counter. Order ids
// start at 1 and increase strictly per customer; two customers never share
// a counter. History mutations are serialized by a per-customer mutex.
type Customer struct {
	Name    string
	ID      int
	Contact string
	Address string
	Email   string

	mu          sync.Mutex
	nextOrderID int
	orders      []*Order
}

func NewCustomer(name string, id int, contact, address, email string) *Customer {
	return &Customer{
		Name:        name,
		ID:          id,
		Contact:     contact,
		Address:     address,
		Email:       email,
		nextOrderID: 1,
	}
}

// PlaceOrder builds a fresh order from the given lines, charges the gateway
// for the computed total, and commits the order to the history only if the
// charge is approved. A decline returns *PaymentDeclinedError and leaves the
// history exactly as it was; the attempted order id is consumed, not reused.
func (c *Customer) PlaceOrder(ctx context.Context, lines []Line, gw payment.Gateway) (*Order, error) {
	for _, l := range lines {
		if l.Quantity < 0 {
			return nil, fmt.Errorf("%w: %d of %q", catalog.ErrNegativeQuantity, l.Quantity, l.Product.Name())
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	order := newOrder(c.nextOrderID)
	c.nextOrderID++
	for _, l := range lines {
		order.AddLine(l)
	}

	total := order.Total()
	ok, err := gw.Charge(ctx, order.ID(), total)
	if err != nil {
		return nil, fmt.Errorf("ordering: charge order %d: %w", order.ID(), err)
	}
	if !ok {
		return nil, &PaymentDeclinedError{OrderID: order.ID(), Amount: total}
	}

	order.paid = true
	c.orders = append(c.orders, order)
	return order, nil
}

// CancelOrder physically removes the order with the given id from the
// history and returns it so the caller can release reserved stock and
// refund the charge. An unknown id fails with ErrInvalidOrderID and the
// history stays untouched, so cancelling the same id twice fails.
func (c *Customer) CancelOrder(orderID int) (*Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, o := range c.orders {
		if o.ID() == orderID {
			c.orders = append(c.orders[:i], c.orders[i+1:]...)
			return o, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, orderID)
}

// Orders returns a snapshot of the order history in placement order.
func (c *Customer) Orders() []*Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// TotalBill sums Total over every order still in the history. Cancelled
// orders are physically removed, so no filtering is needed here.
func (c *Customer) TotalBill() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, o := range c.orders {
		total += o.Total()
	}
	return total
}

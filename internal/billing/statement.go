// Package billing builds the structured billing report handed to the
// presentation renderer. All formatting for a display medium happens
// outside this module.
package billing

import "github.com/jcmexdev/storefront/internal/ordering"

// LineItem is one product line within an order summary.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderSummary is one surviving order with its line items and subtotal.
type OrderSummary struct {
	OrderID  int        `json:"order_id"`
	Paid     bool       `json:"paid"`
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

// Statement is the final billing report: customer identity, per-order line
// items and subtotals, and the grand total.
type Statement struct {
	CustomerName string         `json:"customer_name"`
	CustomerID   int            `json:"customer_id"`
	Contact      string         `json:"contact"`
	Address      string         `json:"address"`
	Email        string         `json:"email"`
	Orders       []OrderSummary `json:"orders"`
	GrandTotal   float64        `json:"grand_total"`
}

// BuildStatement snapshots the customer's order history. Cancelled orders
// are physically removed from the history, so the grand total is simply the
// sum over every remaining order.
func BuildStatement(c *ordering.Customer) Statement {
	st := Statement{
		CustomerName: c.Name,
		CustomerID:   c.ID,
		Contact:      c.Contact,
		Address:      c.Address,
		Email:        c.Email,
		Orders:       []OrderSummary{},
	}

	for _, o := range c.Orders() {
		summary := OrderSummary{
			OrderID: o.ID(),
			Paid:    o.Paid(),
		}
		for _, l := range o.Lines() {
			summary.Items = append(summary.Items, LineItem{
				ProductID: l.Product.ID(),
				Name:      l.Product.Name(),
				UnitPrice: l.Product.Price(),
				Quantity:  l.Quantity,
				Subtotal:  l.Subtotal(),
			})
		}
		summary.Subtotal = o.Total()
		st.Orders = append(st.Orders, summary)
		st.GrandTotal += summary.Subtotal
	}

	return st
}

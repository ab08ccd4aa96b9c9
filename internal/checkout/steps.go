package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/jcmexdev/storefront/internal/inventory"
	"github.com/jcmexdev/storefront/internal/ordering"
)

// ReserveStockStep takes the ordered quantities out of catalog stock before
// any money moves. Its compensation puts them back.
type ReserveStockStep struct {
	inv   *inventory.Service
	key   string
	lines []ordering.Line
}

func NewReserveStockStep(inv *inventory.Service, key string, lines []ordering.Line) *ReserveStockStep {
	return &ReserveStockStep{
		inv:   inv,
		key:   key,
		lines: lines,
	}
}

func (s *ReserveStockStep) Name() string { return "reserve_stock" }

func (s *ReserveStockStep) Execute(ctx context.Context) error {
	return s.inv.Reserve(s.key, s.lines)
}

func (s *ReserveStockStep) Compensate(ctx context.Context) error {
	return s.inv.Release(s.key)
}

// PlaceOrderStep places the order through the customer, which charges the
// gateway and commits the order to the history on approval. Compensation
// drops the order from the history again and refunds the charge.
type PlaceOrderStep struct {
	customer *ordering.Customer
	gateway  Gateway
	lines    []ordering.Line
	order    *ordering.Order
}

func NewPlaceOrderStep(customer *ordering.Customer, gateway Gateway, lines []ordering.Line) *PlaceOrderStep {
	return &PlaceOrderStep{
		customer: customer,
		gateway:  gateway,
		lines:    lines,
	}
}

func (s *PlaceOrderStep) Name() string { return "place_order" }

func (s *PlaceOrderStep) Execute(ctx context.Context) error {
	order, err := s.customer.PlaceOrder(ctx, s.lines, s.gateway)
	if err != nil {
		return err
	}
	s.order = order
	return nil
}

func (s *PlaceOrderStep) Compensate(ctx context.Context) error {
	if s.order == nil {
		return nil
	}
	if _, err := s.customer.CancelOrder(s.order.ID()); err != nil && !errors.Is(err, ordering.ErrInvalidOrderID) {
		return fmt.Errorf("drop order %d: %w", s.order.ID(), err)
	}
	return s.gateway.Refund(ctx, s.order.ID())
}

// Order returns the committed order once Execute has succeeded.
func (s *PlaceOrderStep) Order() *ordering.Order {
	return s.order
}

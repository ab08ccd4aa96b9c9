// Package payment provides the payment-authorization capability consulted
// when an order is placed.
package payment

import (
	"context"
	"log/slog"
	"sync"
)

// Gateway authorizes payment attempts. The boolean reports the gateway's
// decision; the error reports a transport failure, not a decline. Callers
// must handle the declined path explicitly.
type Gateway interface {
	Charge(ctx context.Context, orderID int, amount float64) (bool, error)
}

// Refunder reverses a previously approved charge. Compensation code depends
// on this alongside Gateway.
type Refunder interface {
	Refund(ctx context.Context, orderID int) error
}

// Processor is the stub gateway. It keeps approved charges in memory,
// keyed by order id, and declines any amount above the configured limit.
// A limit of 0 means every charge is approved.
type Processor struct {
	mu      sync.Mutex
	limit   float64
	charges map[int]float64
}

func NewProcessor(limit float64) *Processor {
	return &Processor{
		limit:   limit,
		charges: make(map[int]float64),
	}
}

func (p *Processor) Charge(ctx context.Context, orderID int, amount float64) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.limit > 0 && amount > p.limit {
		slog.InfoContext(ctx, "payment declined", "order_id", orderID, "amount", amount, "limit", p.limit)
		return false, nil
	}

	p.charges[orderID] = amount
	slog.InfoContext(ctx, "payment approved", "order_id", orderID, "amount", amount)
	return true, nil
}

// Refund forgets the charge for the given order. Refunding an order with no
// recorded charge is a no-op: compensations must be safe to repeat.
func (p *Processor) Refund(ctx context.Context, orderID int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	amount, ok := p.charges[orderID]
	if !ok {
		slog.WarnContext(ctx, "no charge to refund", "order_id", orderID)
		return nil
	}

	delete(p.charges, orderID)
	slog.InfoContext(ctx, "payment refunded", "order_id", orderID, "amount", amount)
	return nil
}

// Charged reports the amount currently held for the order, if any.
func (p *Processor) Charged(orderID int) (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	amount, ok := p.charges[orderID]
	return amount, ok
}

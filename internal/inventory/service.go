// Package inventory reserves catalog stock for a checkout in progress and
// restores it when the checkout is compensated or the order cancelled.
package inventory

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/ordering"
)

// Service tracks stock reservations keyed by an opaque reservation key
// (the checkout id). All checks and mutations happen under one mutex so a
// reservation is all-or-nothing.
type Service struct {
	mu           sync.Mutex
	reservations map[string][]ordering.Line
}

func NewService() *Service {
	return &Service{
		reservations: make(map[string][]ordering.Line),
	}
}

// Reserve decrements stock for every line, recording the reservation under
// key so Release can restore it. Nothing is decremented unless every line
// can be satisfied, including repeated lines for the same product.
func (s *Service) Reserve(key string, lines []ordering.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reservations[key]; exists {
		return fmt.Errorf("inventory: reservation %q already exists", key)
	}

	for _, l := range lines {
		if l.Quantity < 0 {
			return fmt.Errorf("%w: %d of %q", catalog.ErrNegativeQuantity, l.Quantity, l.Product.Name())
		}
		if l.Quantity > l.Product.Quantity() {
			return fmt.Errorf("%w: %q has %d, want %d",
				catalog.ErrInsufficientStock, l.Product.Name(), l.Product.Quantity(), l.Quantity)
		}
	}

	// The per-line check above cannot see duplicates of the same product,
	// so a commit may still fail partway; undo what was taken and bail.
	for i, l := range lines {
		if err := l.Product.ReduceStock(l.Quantity); err != nil {
			for _, taken := range lines[:i] {
				_ = taken.Product.IncreaseStock(taken.Quantity)
			}
			return fmt.Errorf("inventory: reserve %q: %w", l.Product.Name(), err)
		}
	}

	s.reservations[key] = lines
	return nil
}

// Release restores the stock taken by Reserve and forgets the reservation.
// Releasing an unknown key is a no-op: compensations must be safe to repeat.
func (s *Service) Release(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, exists := s.reservations[key]
	if !exists {
		slog.Warn("no reservation to release", "key", key)
		return nil
	}

	for _, l := range lines {
		if err := l.Product.IncreaseStock(l.Quantity); err != nil {
			return fmt.Errorf("inventory: release %q: %w", l.Product.Name(), err)
		}
	}

	delete(s.reservations, key)
	return nil
}

// Reserved reports whether a reservation is currently held under key.
func (s *Service) Reserved(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.reservations[key]
	return exists
}

// Package checkout orchestrates the units of work behind placing an order:
// stock reservation, then payment and commit. If a step fails, previously
// completed steps are compensated in reverse order so the session is left
// exactly as it was before the checkout started.
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jcmexdev/storefront/internal/checkout/journal"
	"github.com/jcmexdev/storefront/internal/payment"
)

// Gateway is the payment capability a checkout needs: charge on the way
// forward, refund on compensation.
type Gateway interface {
	payment.Gateway
	payment.Refunder
}

// Step is a single unit of work in a checkout. Every step must have a
// compensating action that undoes its effects.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator runs a checkout's steps sequentially, journaling each
// transition, and compensates completed steps LIFO when one fails.
type Orchestrator struct {
	checkoutID string
	steps      []Step
	journal    journal.Repository // nil-safe: transitions are not recorded if nil

	// Payload is the serialized input that started the checkout; written
	// to the STARTED journal row when set.
	Payload string
}

func NewOrchestrator(checkoutID string, steps []Step, repo journal.Repository) *Orchestrator {
	return &Orchestrator{
		checkoutID: checkoutID,
		steps:      steps,
		journal:    repo,
	}
}

// Start runs the steps in order. On failure it compensates every step that
// already completed, newest first, and returns the original error.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.record(ctx, journal.StatusStarted, "", o.Payload, nil)

	var completed []Step
	for _, step := range o.steps {
		slog.InfoContext(ctx, "executing checkout step", "checkout_id", o.checkoutID, "step", step.Name())
		if err := step.Execute(ctx); err != nil {
			slog.WarnContext(ctx, "checkout step failed, compensating",
				"checkout_id", o.checkoutID, "step", step.Name(), "error", err)
			o.record(ctx, journal.StatusCompensating, step.Name(), "", []string{err.Error()})
			failures := append([]string{err.Error()}, o.rollback(ctx, completed)...)
			o.record(ctx, journal.StatusFailed, step.Name(), "", failures)
			return err
		}
		o.record(ctx, journal.StatusStepDone, step.Name(), "", nil)
		completed = append(completed, step)
	}

	o.record(ctx, journal.StatusCompleted, "", "", nil)
	slog.InfoContext(ctx, "checkout completed", "checkout_id", o.checkoutID)
	return nil
}

// rollback compensates the given steps newest first and collects any
// compensation failures. A failed compensation is logged and recorded but
// does not stop the remaining compensations.
func (o *Orchestrator) rollback(ctx context.Context, steps []Step) []string {
	var failures []string
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		slog.InfoContext(ctx, "compensating checkout step", "checkout_id", o.checkoutID, "step", step.Name())
		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "compensation failed",
				"checkout_id", o.checkoutID, "step", step.Name(), "error", err)
			failures = append(failures, fmt.Sprintf("compensate %s: %v", step.Name(), err))
		}
	}
	return failures
}

func (o *Orchestrator) record(ctx context.Context, status journal.Status, step, payload string, errs []string) {
	if o.journal == nil {
		return
	}
	entry := journal.NewEntry(ctx, o.checkoutID, status, step, payload, errs)
	if err := o.journal.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "journal write failed", "checkout_id", o.checkoutID, "error", err)
	}
}

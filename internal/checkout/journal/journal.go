// Package journal defines the checkout journal: an append-only audit trail
// of every state transition a checkout goes through.
//
// The journal serves observability only. Order history itself lives in the
// customer; the journal lets an operator see where a checkout stopped and
// correlate it with a distributed trace via the trace_id field.
package journal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Status is the lifecycle state of a checkout execution.
type Status string

const (
	StatusStarted      Status = "STARTED"
	StatusStepDone     Status = "STEP_DONE"
	StatusCompleted    Status = "COMPLETED"
	StatusCompensating Status = "COMPENSATING"
	StatusFailed       Status = "FAILED"
)

// Entry is a single row in the checkout journal: a point-in-time snapshot
// of one checkout execution.
type Entry struct {
	// EntryID uniquely identifies this row.
	EntryID string

	// CheckoutID groups the rows of one checkout execution.
	CheckoutID string

	// Status is the lifecycle state at the time this row was written.
	Status Status

	// CurrentStep names the step that just executed or failed.
	CurrentStep string

	// Payload is the JSON-serialized input that started the checkout.
	// Written once on the STARTED row, empty after.
	Payload string

	// ErrorMessages is a JSON array of failure details, one per failed
	// step or failed compensation.
	ErrorMessages string

	// TraceID and SpanID identify the OpenTelemetry span active when the
	// row was written. Empty when no span was recording.
	TraceID string
	SpanID  string

	// RecordedAt is the wall-clock time of this transition.
	RecordedAt time.Time
}

// Repository is the port for persisting journal entries. Save appends a
// row; the journal is append-only, never upserted.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
}

// NewEntry builds a journal entry stamped with the trace and span ids of
// the active span in ctx, when one exists.
func NewEntry(ctx context.Context, checkoutID string, status Status, step, payload string, errs []string) *Entry {
	e := &Entry{
		EntryID:       uuid.NewString(),
		CheckoutID:    checkoutID,
		Status:        status,
		CurrentStep:   step,
		Payload:       payload,
		ErrorMessages: "[]",
		RecordedAt:    time.Now().UTC(),
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		e.TraceID = sc.TraceID().String()
		e.SpanID = sc.SpanID().String()
	}

	if len(errs) > 0 {
		if b, err := json.Marshal(errs); err == nil {
			e.ErrorMessages = string(b)
		}
	}

	return e
}

// Package sqlite provides a SQLite-backed implementation of
// journal.Repository.
//
// WAL mode is enabled on Open so readers never block the writer: the
// checkout goroutine appends rows while a status query may be reading.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/storefront/internal/checkout/journal"

	// Register the pure-Go SQLite driver; no CGO required.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup. The table is append-only:
// each row is an immutable event in a checkout's lifecycle.
const schema = `
CREATE TABLE IF NOT EXISTS checkout_journal (
    entry_id        TEXT        PRIMARY KEY,
    checkout_id     TEXT        NOT NULL,
    status          TEXT        NOT NULL,
    current_step    TEXT        NOT NULL DEFAULT '',
    payload         TEXT,
    error_messages  TEXT        NOT NULL DEFAULT '[]',
    trace_id        TEXT        NOT NULL DEFAULT '',
    span_id         TEXT        NOT NULL DEFAULT '',
    -- RFC3339 TEXT; SQLite has no native datetime type.
    recorded_at     TEXT        NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checkout_journal_checkout_id
    ON checkout_journal(checkout_id, recorded_at);

CREATE INDEX IF NOT EXISTS idx_checkout_journal_trace_id
    ON checkout_journal(trace_id);
`

// Repository is the SQLite implementation of journal.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the journal database at the given path and
// applies the schema.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new journal entry. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *journal.Entry) error {
	const q = `
		INSERT INTO checkout_journal
			(entry_id, checkout_id, status, current_step, payload, error_messages, trace_id, span_id, recorded_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.EntryID,
		entry.CheckoutID,
		string(entry.Status),
		entry.CurrentStep,
		nullableString(entry.Payload),
		entry.ErrorMessages,
		entry.TraceID,
		entry.SpanID,
		entry.RecordedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save journal entry for %q: %w", entry.CheckoutID, err)
	}
	return nil
}

// Latest returns the most recent entry for a checkout id.
func (r *Repository) Latest(ctx context.Context, checkoutID string) (*journal.Entry, error) {
	const q = `
		SELECT entry_id, checkout_id, status, current_step, COALESCE(payload,''),
		       error_messages, trace_id, span_id, recorded_at
		FROM   checkout_journal
		WHERE  checkout_id = ?
		ORDER  BY recorded_at DESC, rowid DESC
		LIMIT  1`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, q, checkoutID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite: checkout %q not found", checkoutID)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: latest for %q: %w", checkoutID, err)
	}
	return entry, nil
}

// History returns every entry for a checkout id in recording order.
func (r *Repository) History(ctx context.Context, checkoutID string) ([]*journal.Entry, error) {
	const q = `
		SELECT entry_id, checkout_id, status, current_step, COALESCE(payload,''),
		       error_messages, trace_id, span_id, recorded_at
		FROM   checkout_journal
		WHERE  checkout_id = ?
		ORDER  BY recorded_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, q, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: history for %q: %w", checkoutID, err)
	}
	defer rows.Close()

	var entries []*journal.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: history for %q: %w", checkoutID, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: history for %q: %w", checkoutID, err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*journal.Entry, error) {
	var entry journal.Entry
	var recordedAt string
	err := row.Scan(
		&entry.EntryID,
		&entry.CheckoutID,
		&entry.Status,
		&entry.CurrentStep,
		&entry.Payload,
		&entry.ErrorMessages,
		&entry.TraceID,
		&entry.SpanID,
		&recordedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.RecordedAt, err = parseRFC3339(recordedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// nullableString returns nil for empty strings so SQLite stores NULL
// instead of empty TEXT on non-STARTED rows.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/storefront/internal/checkout/journal"
	"github.com/jcmexdev/storefront/internal/checkout/journal/sqlite"
)

func openRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestJournalRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	entries := []*journal.Entry{
		journal.NewEntry(ctx, "ck-1", journal.StatusStarted, "", `{"items":[]}`, nil),
		journal.NewEntry(ctx, "ck-1", journal.StatusStepDone, "reserve_stock", "", nil),
		journal.NewEntry(ctx, "ck-1", journal.StatusCompleted, "", "", nil),
	}
	for _, e := range entries {
		require.NoError(t, repo.Save(ctx, e))
	}

	history, err := repo.History(ctx, "ck-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, journal.StatusStarted, history[0].Status)
	assert.Equal(t, `{"items":[]}`, history[0].Payload)
	assert.Equal(t, "reserve_stock", history[1].CurrentStep)
	// Payload is only written on the STARTED row.
	assert.Empty(t, history[1].Payload)

	latest, err := repo.Latest(ctx, "ck-1")
	require.NoError(t, err)
	assert.Equal(t, journal.StatusCompleted, latest.Status)
	assert.NotEmpty(t, latest.EntryID)
	assert.False(t, latest.RecordedAt.IsZero())
}

func TestJournalFailureEntries(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	entry := journal.NewEntry(ctx, "ck-2", journal.StatusFailed, "place_order",
		"", []string{"payment declined", "compensate reserve_stock: boom"})
	require.NoError(t, repo.Save(ctx, entry))

	latest, err := repo.Latest(ctx, "ck-2")
	require.NoError(t, err)
	assert.Equal(t, journal.StatusFailed, latest.Status)
	assert.JSONEq(t, `["payment declined","compensate reserve_stock: boom"]`, latest.ErrorMessages)
}

func TestJournalUnknownCheckout(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	_, err := repo.Latest(ctx, "missing")
	assert.Error(t, err)

	history, err := repo.History(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, history)
}

package journal_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/nhath/registros/internal/export"
	"github.com/nhath/registros/internal/journal"
)

func openStore(t *testing.T) *journal.Store {
	t.Helper()
	store, err := journal.Open(filepath.Join(t.TempDir(), "exports.db"))
	gt.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	first := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	second := time.Now().UTC().Truncate(time.Second)

	gt.NoError(t, store.Record(ctx, export.Result{Written: true, Path: "/tmp/a.xlsx", Format: "xlsx", Rows: 3, At: first}))
	gt.NoError(t, store.Record(ctx, export.Result{Written: true, Path: "/tmp/b.csv", Format: "csv", Rows: 4, Fallback: true, At: second}))

	entries, err := store.List(ctx, 10)
	gt.NoError(t, err)
	gt.A(t, entries).Length(2)
	gt.Equal(t, entries[0].Path, "/tmp/b.csv")
	gt.True(t, entries[0].Fallback)
	gt.Equal(t, entries[0].Rows, 4)
	gt.True(t, entries[0].ExportedAt.Equal(second))
	gt.Equal(t, entries[1].Format, "xlsx")

	latest, err := store.Latest(ctx)
	gt.NoError(t, err)
	gt.Equal(t, latest.Path, "/tmp/b.csv")
}

func TestRecordSkipsUnwritten(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	gt.NoError(t, store.Record(ctx, export.Result{}))
	count, err := store.Count(ctx)
	gt.NoError(t, err)
	gt.Equal(t, count, 0)

	latest, err := store.Latest(ctx)
	gt.NoError(t, err)
	gt.True(t, latest == nil)
}

func TestOldEntriesArePruned(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "exports.db")

	store, err := journal.Open(path)
	gt.NoError(t, err)
	_, err = store.Add(ctx, &journal.Entry{Path: "old.csv", Format: "csv", Rows: 1, ExportedAt: time.Now().AddDate(0, 0, -120)})
	gt.NoError(t, err)
	_, err = store.Add(ctx, &journal.Entry{Path: "new.csv", Format: "csv", Rows: 1, ExportedAt: time.Now()})
	gt.NoError(t, err)
	gt.NoError(t, store.Close())

	store, err = journal.Open(path)
	gt.NoError(t, err)
	defer store.Close()

	entries, err := store.List(ctx, 10)
	gt.NoError(t, err)
	gt.A(t, entries).Length(1)
	gt.Equal(t, entries[0].Path, "new.csv")
}

package memory_test

import (
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/domain/model/digitalmenu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func now() time.Time {
	return time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
}

func TestDigitalMenuFeed(t *testing.T) {
	ctx := t.Context()
	feed := memory.NewDigitalMenuFeed()
	feed.Insert(digitalmenu.Order{ID: "b", Status: digitalmenu.Confirmed, CreatedAt: now()})
	feed.Insert(digitalmenu.Order{ID: "a", Status: digitalmenu.Pending, CreatedAt: now().Add(-time.Minute)})
	feed.Insert(digitalmenu.Order{ID: "c", Status: digitalmenu.Preparing, CreatedAt: now().Add(time.Minute)})

	unsynced, err := feed.FindUnsynced(ctx)
	require.NoError(t, err)
	require.Len(t, unsynced, 2)
	assert.Equal(t, "a", unsynced[0].ID, "oldest first")

	require.NoError(t, feed.MarkSynced(ctx, "a", "pos-1", now()))
	synced, err := feed.FindSynced(ctx)
	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.Equal(t, "pos-1", synced[0].POSOrderID)

	latest, err := feed.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "c", latest[0].ID, "newest first")

	require.Error(t, feed.MarkSynced(ctx, "missing", "pos-2", now()))
	require.Error(t, feed.SetStatus("missing", digitalmenu.Completed, now()))
}

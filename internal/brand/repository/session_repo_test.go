package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	ctx := context.Background()
	err = client.Ping(ctx).Err()
	require.NoError(t, err)

	return client, mr
}

func TestSessionRepository_Register(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewSessionRepository(client)
	ctx := context.Background()

	t.Run("registers a new session", func(t *testing.T) {
		summary, err := repo.Register(ctx, "p1", "Launch Campaign")
		require.NoError(t, err)
		assert.Equal(t, "p1", summary.ID)
		assert.Equal(t, "Launch Campaign", summary.Title)
		assert.False(t, summary.CreatedAt.IsZero())
		assert.Equal(t, summary.CreatedAt, summary.LastActive)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := repo.Register(ctx, "p1", "Another Title")
		assert.ErrorIs(t, err, domain.ErrDuplicateID)
	})
}

func TestSessionRepository_Get(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewSessionRepository(client)
	ctx := context.Background()

	t.Run("returns registered summary", func(t *testing.T) {
		_, err := repo.Register(ctx, "p1", "Launch Campaign")
		require.NoError(t, err)

		summary, err := repo.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Launch Campaign", summary.Title)
	})

	t.Run("returns NotFound for unknown id", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionRepository_List(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewSessionRepository(client)
	ctx := context.Background()

	t.Run("empty registry lists no sessions", func(t *testing.T) {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("lists newest first", func(t *testing.T) {
		// Write summaries directly so createdAt ordering is controlled.
		old := domain.ProjectSummary{
			ID:         "older",
			Title:      "Older",
			CreatedAt:  time.Now().Add(-2 * time.Hour).UTC(),
			LastActive: time.Now().Add(-2 * time.Hour).UTC(),
		}
		data, err := json.Marshal(old)
		require.NoError(t, err)
		require.NoError(t, client.Set(ctx, "brand:project:older", data, 0).Err())
		require.NoError(t, client.SAdd(ctx, "brand:projects", "older").Err())

		_, err = repo.Register(ctx, "newer", "Newer")
		require.NoError(t, err)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "newer", items[0].ID)
		assert.Equal(t, "older", items[1].ID)
	})
}

func TestSessionRepository_SetTitleAndTouch(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewSessionRepository(client)
	ctx := context.Background()

	created, err := repo.Register(ctx, "p1", "Before")
	require.NoError(t, err)

	t.Run("SetTitle updates title and lastActive", func(t *testing.T) {
		updated, err := repo.SetTitle(ctx, "p1", "After")
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Title)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.LastActive.Before(created.LastActive))
	})

	t.Run("Touch refreshes lastActive only", func(t *testing.T) {
		require.NoError(t, repo.Touch(ctx, "p1"))

		summary, err := repo.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "After", summary.Title)
		assert.Equal(t, created.CreatedAt, summary.CreatedAt)
	})

	t.Run("SetTitle on unknown id is NotFound", func(t *testing.T) {
		_, err := repo.SetTitle(ctx, "missing", "x")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionRepository_Unregister(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewSessionRepository(client)
	ctx := context.Background()

	_, err := repo.Register(ctx, "p1", "Launch Campaign")
	require.NoError(t, err)

	t.Run("first delete reports existing entry", func(t *testing.T) {
		existed, err := repo.Unregister(ctx, "p1")
		require.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("second delete is idempotent", func(t *testing.T) {
		existed, err := repo.Unregister(ctx, "p1")
		require.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("deleted id disappears from the list", func(t *testing.T) {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

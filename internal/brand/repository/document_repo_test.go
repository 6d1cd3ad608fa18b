package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
)

// setupTestPostgres connects to the database named by TEST_DB_DSN and makes
// sure the documents table exists. Skips the test when no DSN is configured.
func setupTestPostgres(t *testing.T) *pgxpool.Pool {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	_, err = pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS project_documents (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL DEFAULT '',
    doc         JSONB NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`)
	require.NoError(t, err)

	return pool
}

func TestDocumentRepository_PutAndGet(t *testing.T) {
	pool := setupTestPostgres(t)
	defer pool.Close()

	repo := NewDocumentRepository(pool)
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("get before put is NotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("put then get round-trips the document", func(t *testing.T) {
		doc := domain.NewDocument(id, "Launch Campaign")
		require.NoError(t, repo.Put(ctx, id, doc))

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Launch Campaign", got.Title)
		assert.Equal(t, domain.DefaultFormData(), got.FormData)
		assert.Empty(t, got.Visuals)
	})

	t.Run("put forces the route id over the document id", func(t *testing.T) {
		doc := domain.NewDocument("some-other-id", "Renamed")
		require.NoError(t, repo.Put(ctx, id, doc))

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Renamed", got.Title)
	})

	t.Run("put replaces the whole document", func(t *testing.T) {
		doc := domain.NewDocument(id, "Renamed")
		doc.Visuals = []domain.VisualRecord{{ID: "v1", Headline: "Hello"}}
		require.NoError(t, repo.Put(ctx, id, doc))

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.Len(t, got.Visuals, 1)
		assert.Equal(t, "v1", got.Visuals[0].ID)
	})
}

func TestDocumentRepository_Delete(t *testing.T) {
	pool := setupTestPostgres(t)
	defer pool.Close()

	repo := NewDocumentRepository(pool)
	ctx := context.Background()
	id := uuid.New().String()

	require.NoError(t, repo.Put(ctx, id, domain.NewDocument(id, "To Delete")))

	existed, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, existed)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
)

// DocumentRepository handles PostgreSQL operations for project documents.
// Schema lives in migrations/001_project_documents.sql.
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Get retrieves the document for id.
func (r *DocumentRepository) Get(ctx context.Context, id string) (*domain.ProjectDocument, error) {
	const q = `
SELECT doc
FROM project_documents
WHERE id = $1;
`
	var docJSON []byte
	err := r.db.QueryRow(ctx, q, id).Scan(&docJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc domain.ProjectDocument
	if err := json.Unmarshal(docJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	doc.ID = id
	return &doc, nil
}

// Put fully replaces the stored document for id. The route-supplied id is
// authoritative and overrides whatever the document carries.
func (r *DocumentRepository) Put(ctx context.Context, id string, doc *domain.ProjectDocument) error {
	doc.ID = id
	if doc.Visuals == nil {
		doc.Visuals = []domain.VisualRecord{}
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	const q = `
INSERT INTO project_documents (id, title, doc)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	doc = EXCLUDED.doc,
	updated_at = NOW();
`
	if _, err := r.db.Exec(ctx, q, id, doc.Title, docJSON); err != nil {
		return fmt.Errorf("failed to put document: %w", err)
	}
	return nil
}

// Delete removes the document for id, reporting whether a row existed.
func (r *DocumentRepository) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM project_documents WHERE id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

package repository

import (
	"context"
	"sync"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
)

// MemoryDocumentStore is a process-local ProjectStore backend used for
// development and tests, where Postgres is not available.
type MemoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[string]domain.ProjectDocument
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{docs: make(map[string]domain.ProjectDocument)}
}

func (m *MemoryDocumentStore) Get(_ context.Context, id string) (*domain.ProjectDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (m *MemoryDocumentStore) Put(_ context.Context, id string, doc *domain.ProjectDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc.ID = id
	if doc.Visuals == nil {
		doc.Visuals = []domain.VisualRecord{}
	}
	m.docs[id] = *doc
	return nil
}

func (m *MemoryDocumentStore) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.docs[id]
	delete(m.docs, id)
	return ok, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
)

// SessionRegistry is the durable catalog of project summaries.
type SessionRegistry interface {
	Register(ctx context.Context, id, title string) (*domain.ProjectSummary, error)
	Get(ctx context.Context, id string) (*domain.ProjectSummary, error)
	List(ctx context.Context) ([]domain.ProjectSummary, error)
	SetTitle(ctx context.Context, id, title string) (*domain.ProjectSummary, error)
	Touch(ctx context.Context, id string) error
	Unregister(ctx context.Context, id string) (bool, error)
}

// ProjectStore is the durable per-project document store.
type ProjectStore interface {
	Get(ctx context.Context, id string) (*domain.ProjectDocument, error)
	Put(ctx context.Context, id string, doc *domain.ProjectDocument) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ProjectService presents the registry and the document store as a single
// consistent project abstraction. The two stores are independent; sequencing
// here is what keeps them in sync for a sequential caller.
type ProjectService struct {
	registry SessionRegistry
	store    ProjectStore
}

// NewProjectService creates a new ProjectService.
func NewProjectService(registry SessionRegistry, store ProjectStore) *ProjectService {
	return &ProjectService{registry: registry, store: store}
}

// Create registers a new project and initializes its document with default
// form data and no visuals. The registry is written first: if the document
// init then fails, the id still resolves through Get, which materializes the
// default document for any registered id (see Get).
func (s *ProjectService) Create(ctx context.Context, title string) (*domain.ProjectSummary, error) {
	if title == "" {
		title = fmt.Sprintf("New Project %s", time.Now().Format("15:04:05"))
	}

	id := uuid.New().String()

	summary, err := s.registry.Register(ctx, id, title)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, id, domain.NewDocument(id, title)); err != nil {
		// No compensating unregister; the registered id self-heals on first read.
		log.Printf("project %s: registered but document init failed: %v", id, err)
		return nil, fmt.Errorf("project %s registered but document init failed: %w", id, err)
	}

	return summary, nil
}

// List returns all project summaries, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.ProjectSummary, error) {
	return s.registry.List(ctx)
}

// Get returns the document for a registered id. Unregistered ids are
// NotFound regardless of store state. A registered id with no stored
// document gets the default document materialized and persisted.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.ProjectDocument, error) {
	summary, err := s.registry.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		doc = domain.NewDocument(id, summary.Title)
		if err := s.store.Put(ctx, id, doc); err != nil {
			return nil, fmt.Errorf("failed to materialize document for %s: %w", id, err)
		}
	} else if err != nil {
		return nil, err
	}

	if err := s.registry.Touch(ctx, id); err != nil {
		log.Printf("project %s: failed to refresh lastActive: %v", id, err)
	}

	return doc, nil
}

// Update merges the patch over the stored document, forces the path id, and
// syncs the registry title and lastActive. Store write first, registry
// second; a registry failure after the store write is surfaced as an
// inconsistency rather than repaired.
func (s *ProjectService) Update(ctx context.Context, id string, patch domain.DocumentPatch) (*domain.ProjectDocument, error) {
	summary, err := s.registry.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		doc = domain.NewDocument(id, summary.Title)
	} else if err != nil {
		return nil, err
	}

	doc.Apply(patch)
	doc.ID = id

	if err := s.store.Put(ctx, id, doc); err != nil {
		return nil, err
	}

	if _, err := s.registry.SetTitle(ctx, id, doc.Title); err != nil {
		log.Printf("project %s: document updated but registry sync failed: %v", id, err)
		return nil, fmt.Errorf("project %s: document updated but registry sync failed: %w", id, err)
	}

	return doc, nil
}

// Delete removes the registry entry and cascades to the document store.
// Deleting a missing id returns false rather than an error.
func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := s.registry.Unregister(ctx, id)
	if err != nil {
		return false, err
	}
	if !existed {
		return false, nil
	}

	// Best effort: an orphaned document is unreachable behind the registry
	// gate and a re-used id would overwrite it.
	if _, err := s.store.Delete(ctx, id); err != nil {
		log.Printf("project %s: unregistered but document cleanup failed: %v", id, err)
	}

	return true, nil
}

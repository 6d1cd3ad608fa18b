package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
)

const (
	summaryKeyPrefix = "brand:project:" // Key for a summary: brand:project:{id}
	projectSetKey    = "brand:projects" // Set of all registered project ids
)

// SessionRepository handles Redis operations for the project session registry.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Register creates a summary for id with createdAt = lastActive = now.
// Registering an id that already exists returns domain.ErrDuplicateID.
func (r *SessionRepository) Register(ctx context.Context, id, title string) (*domain.ProjectSummary, error) {
	now := time.Now().UTC()
	summary := &domain.ProjectSummary{
		ID:         id,
		Title:      title,
		CreatedAt:  now,
		LastActive: now,
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.summaryKey(id), data, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to register session: %w", err)
	}
	if !ok {
		return nil, domain.ErrDuplicateID
	}

	if err := r.client.SAdd(ctx, projectSetKey, id).Err(); err != nil {
		return nil, fmt.Errorf("failed to index session: %w", err)
	}

	return summary, nil
}

// Get retrieves the summary for id.
func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.ProjectSummary, error) {
	data, err := r.client.Get(ctx, r.summaryKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var summary domain.ProjectSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, nil
}

// List returns all registered summaries, newest first.
func (r *SessionRepository) List(ctx context.Context) ([]domain.ProjectSummary, error) {
	ids, err := r.client.SMembers(ctx, projectSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(ids) == 0 {
		return []domain.ProjectSummary{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.summaryKey(id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	out := make([]domain.ProjectSummary, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// id in the index set without a summary key; skip
			continue
		}
		var summary domain.ProjectSummary
		if err := json.Unmarshal([]byte(s), &summary); err != nil {
			continue
		}
		out = append(out, summary)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// SetTitle updates the summary title and refreshes lastActive.
func (r *SessionRepository) SetTitle(ctx context.Context, id, title string) (*domain.ProjectSummary, error) {
	summary, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	summary.Title = title
	summary.LastActive = time.Now().UTC()
	if err := r.save(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// Touch refreshes lastActive for id.
func (r *SessionRepository) Touch(ctx context.Context, id string) error {
	summary, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	summary.LastActive = time.Now().UTC()
	return r.save(ctx, summary)
}

// Unregister removes the summary for id. Deleting a missing id returns
// false rather than an error.
func (r *SessionRepository) Unregister(ctx context.Context, id string) (bool, error) {
	pipe := r.client.Pipeline()
	delCmd := pipe.Del(ctx, r.summaryKey(id))
	pipe.SRem(ctx, projectSetKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to unregister session: %w", err)
	}

	return delCmd.Val() > 0, nil
}

func (r *SessionRepository) save(ctx context.Context, summary *domain.ProjectSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := r.client.Set(ctx, r.summaryKey(summary.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) summaryKey(id string) string {
	return fmt.Sprintf("%s%s", summaryKeyPrefix, id)
}

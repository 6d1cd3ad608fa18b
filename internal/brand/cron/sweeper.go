package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/service"
)

// Sweeper periodically removes sessions that have been idle past the
// retention window, cascading through the service delete path so the
// document store is cleaned up with the registry entry.
type Sweeper struct {
	svc       *service.ProjectService
	retention time.Duration
	schedule  string
	c         *cron.Cron
}

func NewSweeper(svc *service.ProjectService, retention time.Duration, schedule string) *Sweeper {
	return &Sweeper{
		svc:       svc,
		retention: retention,
		schedule:  schedule,
	}
}

// Start schedules the sweep. Returns an error only for an invalid schedule.
func (s *Sweeper) Start() error {
	s.c = cron.New()

	_, err := s.c.AddFunc(s.schedule, func() {
		n, err := s.Sweep(context.Background())
		if err != nil {
			log.Printf("session sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("session sweep removed %d stale project(s)", n)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("session sweeper started (schedule %q, retention %s)", s.schedule, s.retention)
	s.c.Start()
	return nil
}

func (s *Sweeper) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}

// Sweep deletes every project whose lastActive is older than the retention
// window and returns how many were removed.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	summaries, err := s.svc.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-s.retention)
	removed := 0
	for _, summary := range summaries {
		if summary.LastActive.After(cutoff) {
			continue
		}
		deleted, err := s.svc.Delete(ctx, summary.ID)
		if err != nil {
			log.Printf("session sweep: failed to delete project %s: %v", summary.ID, err)
			continue
		}
		if deleted {
			removed++
		}
	}

	return removed, nil
}

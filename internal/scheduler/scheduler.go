package scheduler

import (
	"context"
	"log"
	"time"
)

type sessionReaper interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Scheduler periodically reclaims expired booking sessions. Expiry is also
// enforced on read, so the sweep is pure cleanup and can run infrequently.
type Scheduler struct {
	sessions sessionReaper
	interval time.Duration
}

func New(sessions sessionReaper, interval time.Duration) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("session sweep started interval=%s", s.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("session sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	removed, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		log.Printf("session sweep failed err=%v", err)
		return
	}
	if removed > 0 {
		log.Printf("session sweep removed=%d", removed)
	}
}

// Package scheduler runs background maintenance on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionEvicter drops sessions that have been idle for longer than the given duration.
type SessionEvicter interface {
	EvictIdleSessions(idle time.Duration) int
}

// Scheduler wraps a cron runner with the session sweep job.
type Scheduler struct {
	cron *cron.Cron
}

// New registers the session sweep on schedule (standard cron spec or
// descriptor such as "@every 5m").
func New(schedule string, idle time.Duration, evicter SessionEvicter) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if removed := evicter.EvictIdleSessions(idle); removed > 0 {
			log.Printf("Evicted %d idle calculator sessions", removed)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session sweep schedule %q: %w", schedule, err)
	}

	return &Scheduler{cron: c}, nil
}

// Run starts the jobs and blocks until ctx is done, then waits for a
// running job to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}

package syncer

import (
	"context"
	"log"
	"time"

	"github.com/deckhaus/storesync/internal/models"
)

// Scheduler runs periodic forced refreshes of every entity kind in the
// background, the way a dashboard keeps its mirror warm without operator
// action.
type Scheduler struct {
	orch     *Orchestrator
	interval time.Duration
	limit    int
	stop     chan struct{}
}

// NewScheduler creates a background sync scheduler.
func NewScheduler(orch *Orchestrator, interval time.Duration, limit int) *Scheduler {
	return &Scheduler{
		orch:     orch,
		interval: interval,
		limit:    limit,
		stop:     make(chan struct{}),
	}
}

// Start begins the background synchronization loop
func (s *Scheduler) Start() {
	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	go func() {
		log.Println("Sync scheduler started")

		// Initial sync delay so the server finishes coming up first
		time.Sleep(5 * time.Second)
		s.runAll()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runAll()
			case <-s.stop:
				log.Println("Sync scheduler stopped")
				return
			}
		}
	}()
}

// Stop halts the scheduler
func (s *Scheduler) Stop() {
	close(s.stop)
}

// runAll refreshes every entity kind sequentially. Each kind is an
// independent run; one kind aborting never blocks the next.
func (s *Scheduler) runAll() {
	log.Println("Sync: starting full refresh...")

	for _, kind := range models.AllKinds() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		summary, err := s.orch.SyncEntity(ctx, kind, Options{Limit: s.limit, ForceRefresh: true})
		cancel()

		if err != nil {
			log.Printf("Sync error (%s): %v", kind, err)
			continue
		}
		if summary.Aborted {
			log.Printf("Sync aborted (%s): %s", kind, summary.AbortReason)
			continue
		}
		log.Printf("Sync: %s done (created %d, updated %d, failed %d)",
			kind, summary.Created, summary.Updated, summary.Failed)
	}

	log.Println("Sync: full refresh completed")
}

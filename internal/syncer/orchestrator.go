package syncer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/deckhaus/storesync/internal/cache"
	"github.com/deckhaus/storesync/internal/models"
	"github.com/deckhaus/storesync/internal/remote"
	"github.com/deckhaus/storesync/internal/transform"
	"github.com/google/uuid"
)

// Store is the persistence boundary the orchestrator drives. Implemented by
// repository.Repository; tests substitute an in-memory fake.
type Store interface {
	Upsert(ctx context.Context, entity models.MirroredEntity) (models.MirroredEntity, models.SyncAction, error)
	AppendLog(ctx context.Context, entry *models.SyncLog) error
}

// Options tunes one sync run.
type Options struct {
	Limit        int  // max records to process; 0 = configured default
	ForceRefresh bool // bypass the TTL cache
}

// Summary is what every SyncEntity call returns, failures included.
type Summary struct {
	Kind        models.EntityKind `json:"kind"`
	RunID       string            `json:"run_id"`
	Created     int               `json:"created"`
	Updated     int               `json:"updated"`
	Failed      int               `json:"failed"`
	Total       int               `json:"total"`
	Pages       int               `json:"pages"`
	FromCache   bool              `json:"from_cache"`
	Aborted     bool              `json:"aborted"`
	AbortReason string            `json:"abort_reason,omitempty"`
}

// runState tracks where in its lifecycle a sync run is. Recorded in the
// log detail for diagnostics.
type runState string

const (
	stateFetching     runState = "FETCHING"
	stateTransforming runState = "TRANSFORMING"
	statePersisting   runState = "PERSISTING"
	stateLogging      runState = "LOGGING"
	stateDone         runState = "DONE"
	stateAborted      runState = "ABORTED"
)

// Config holds orchestrator tuning.
type Config struct {
	PageSize     int
	DefaultLimit int
	DefaultTTL   time.Duration
	KindTTLs     map[models.EntityKind]time.Duration
}

// Orchestrator drives the remote paginator, transformer and store for one
// entity kind at a time. Runs for different kinds may execute concurrently;
// the cache and store tolerate that.
type Orchestrator struct {
	paginator remote.Paginator
	store     Store
	cache     *cache.Store
	cfg       Config
	notify    func(*Summary)
}

// New creates a sync orchestrator.
func New(paginator remote.Paginator, store Store, c *cache.Store, cfg Config) *Orchestrator {
	if cfg.PageSize <= 0 || cfg.PageSize > remote.MaxPageSize {
		cfg.PageSize = remote.MaxPageSize
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 1000
	}
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = 10 * time.Minute
	}
	return &Orchestrator{
		paginator: paginator,
		store:     store,
		cache:     c,
		cfg:       cfg,
	}
}

// OnRunComplete registers a callback invoked after each non-cached run,
// e.g. to push progress to dashboard clients.
func (o *Orchestrator) OnRunComplete(fn func(*Summary)) {
	o.notify = fn
}

func (o *Orchestrator) ttlFor(kind models.EntityKind) time.Duration {
	if ttl, ok := o.cfg.KindTTLs[kind]; ok && ttl > 0 {
		return ttl
	}
	return o.cfg.DefaultTTL
}

// SyncEntity synchronizes one entity kind from the remote platform into the
// local mirror. It always returns a summary; run-level remote failures mark
// the summary aborted instead of surfacing as an error. The only error case
// is an unknown entity kind.
func (o *Orchestrator) SyncEntity(ctx context.Context, kind models.EntityKind, opts Options) (*Summary, error) {
	if _, err := models.ParseEntityKind(string(kind)); err != nil {
		return nil, err
	}

	summary := &Summary{Kind: kind, RunID: uuid.NewString()}

	// A valid cache entry short-circuits the whole run: no remote calls,
	// no log entry.
	if !opts.ForceRefresh {
		if entry, ok := o.cache.Get(string(kind)); ok {
			summary.FromCache = true
			summary.Total = len(entry.Payload)
			return summary, nil
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = o.cfg.DefaultLimit
	}

	state := stateFetching
	cursor := ""
	var fetched []remote.RemoteRecord
	var itemErrors []interface{}

	for {
		pageSize := o.cfg.PageSize
		if remaining := limit - summary.Total; remaining < pageSize {
			pageSize = remaining
		}

		page, err := o.paginator.FetchPage(ctx, kind, cursor, pageSize)
		if err != nil {
			// Page-level failure aborts pagination; everything already
			// persisted stays persisted.
			summary.Aborted = true
			summary.AbortReason = err.Error()
			state = stateAborted
			break
		}
		summary.Pages++
		fetched = append(fetched, page.Records...)

		for _, rec := range page.Records {
			if summary.Total >= limit {
				break
			}
			summary.Total++

			state = stateTransforming
			entity, err := transform.Transform(kind, rec)
			if err != nil {
				summary.Failed++
				itemErrors = append(itemErrors, map[string]interface{}{
					"stage": "transform",
					"error": err.Error(),
				})
				continue
			}

			state = statePersisting
			_, action, err := o.store.Upsert(ctx, entity)
			if err != nil {
				summary.Failed++
				itemErrors = append(itemErrors, map[string]interface{}{
					"stage":       "persist",
					"external_id": entity.GetExternalID(),
					"error":       err.Error(),
				})
				continue
			}
			if action == models.ActionCreate {
				summary.Created++
			} else {
				summary.Updated++
			}
		}

		if !page.HasMore || summary.Total >= limit {
			break
		}
		cursor = page.EndCursor
		state = stateFetching
	}

	// Refresh the cache with the raw remote page set, never the transformed
	// rows. Aborted runs hold a partial set and must not satisfy later reads.
	// The payload is capped at the run's limit so a later cache-hit summary
	// reports the same total as the run that produced it.
	if !summary.Aborted {
		if len(fetched) > limit {
			fetched = fetched[:limit]
		}
		o.cache.Set(string(kind), fetched, o.ttlFor(kind))
		state = stateDone
	}

	o.writeLog(ctx, summary, state, itemErrors)

	if o.notify != nil {
		o.notify(summary)
	}

	return summary, nil
}

// writeLog appends exactly one sync-log row summarizing the run.
func (o *Orchestrator) writeLog(ctx context.Context, summary *Summary, state runState, itemErrors []interface{}) {
	outcome := models.OutcomeSuccess
	message := summaryMessage(summary)
	if summary.Aborted {
		outcome = models.OutcomeError
	}

	detail := models.JSONB{
		"run_id":  summary.RunID,
		"created": summary.Created,
		"updated": summary.Updated,
		"failed":  summary.Failed,
		"total":   summary.Total,
		"pages":   summary.Pages,
		"state":   string(state),
		"partial": summary.Failed > 0,
	}
	if len(itemErrors) > 0 {
		detail["item_errors"] = itemErrors
	}
	if summary.AbortReason != "" {
		detail["abort_reason"] = summary.AbortReason
	}

	entry := &models.SyncLog{
		EntityKind: string(summary.Kind),
		Action:     models.ActionSyncBatch,
		Outcome:    outcome,
		Message:    message,
		Detail:     detail,
	}
	if err := o.store.AppendLog(ctx, entry); err != nil {
		log.Printf("Sync: failed to write log entry for %s run %s: %v", summary.Kind, summary.RunID, err)
	}
}

func summaryMessage(s *Summary) string {
	if s.Aborted {
		return fmt.Sprintf("sync aborted after %d page(s): %s", s.Pages, s.AbortReason)
	}
	return fmt.Sprintf("synchronized %d %s record(s): %d created, %d updated, %d failed",
		s.Total, s.Kind, s.Created, s.Updated, s.Failed)
}

// GetCached returns the cached raw payload for a kind, or nil when absent or
// expired. Never triggers a remote fetch.
func (o *Orchestrator) GetCached(kind models.EntityKind) []remote.RemoteRecord {
	entry, ok := o.cache.Get(string(kind))
	if !ok {
		return nil
	}
	return entry.Payload
}

// InvalidateCache drops the cached payload for a kind.
func (o *Orchestrator) InvalidateCache(kind models.EntityKind) {
	o.cache.Invalidate(string(kind))
}

// CacheStats reports cache hit/miss counters.
func (o *Orchestrator) CacheStats() cache.Stats {
	return o.cache.Stats()
}

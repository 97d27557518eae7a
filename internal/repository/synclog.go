package repository

import (
	"context"
	"fmt"

	"github.com/deckhaus/storesync/internal/models"
)

// HistoryFilter narrows a sync-history query. Zero values mean "any".
type HistoryFilter struct {
	Kind    string
	Outcome string
	Page    int
	Limit   int
}

// AppendLog writes one immutable sync-log row.
func (r *Repository) AppendLog(ctx context.Context, entry *models.SyncLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append sync log: %w", err)
	}
	return nil
}

// SyncHistory returns one page of sync-log rows, newest first, plus the
// total match count.
func (r *Repository) SyncHistory(ctx context.Context, filter HistoryFilter) ([]models.SyncLog, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := r.db.WithContext(ctx).Model(&models.SyncLog{})
	if filter.Kind != "" {
		query = query.Where("entity_kind = ?", filter.Kind)
	}
	if filter.Outcome != "" {
		query = query.Where("outcome = ?", filter.Outcome)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sync logs: %w", err)
	}

	var entries []models.SyncLog
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sync logs: %w", err)
	}

	return entries, total, nil
}

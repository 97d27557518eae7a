package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deckhaus/storesync/internal/database"
	"github.com/deckhaus/storesync/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PersistenceError marks one record that failed to upsert. The orchestrator
// records it as a per-item failure and continues with the next record.
type PersistenceError struct {
	Kind       models.EntityKind
	ExternalID string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s %s: %v", e.Kind, e.ExternalID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Repository persists mirrored entities keyed by (kind, external_id).
type Repository struct {
	db *database.DB
}

// New creates a repository over the given database
func New(db *database.DB) *Repository {
	return &Repository{db: db}
}

// modelFor returns a pointer to a zero value of the kind's model, usable as
// a GORM query target.
func modelFor(kind models.EntityKind) (models.MirroredEntity, error) {
	switch kind {
	case models.KindProduct:
		return &models.Product{}, nil
	case models.KindCollection:
		return &models.Collection{}, nil
	case models.KindCustomer:
		return &models.Customer{}, nil
	case models.KindOrder:
		return &models.Order{}, nil
	case models.KindPromotion:
		return &models.Promotion{}, nil
	case models.KindTutorial:
		return &models.Tutorial{}, nil
	}
	return nil, fmt.Errorf("no model for entity kind %q", kind)
}

// FindByExternalID looks up one mirrored row by its remote identifier.
// Returns (nil, nil) when no row exists.
func (r *Repository) FindByExternalID(ctx context.Context, kind models.EntityKind, externalID string) (models.MirroredEntity, error) {
	target, err := modelFor(kind)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(target)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup %s %s: %w", kind, externalID, result.Error)
	}
	return target, nil
}

// Upsert inserts or updates one entity by its external identifier and returns
// the persisted entity with its local id populated, plus whether the row was
// created or updated. Persistence is atomic via ON CONFLICT; the pre-existence
// lookup only decides which counter the run increments, never correctness.
func (r *Repository) Upsert(ctx context.Context, entity models.MirroredEntity) (models.MirroredEntity, models.SyncAction, error) {
	kind := entity.GetEntityKind()
	externalID := entity.GetExternalID()
	if externalID == "" {
		return nil, "", &PersistenceError{Kind: kind, Err: errors.New("empty external id")}
	}

	existing, err := r.FindByExternalID(ctx, kind, externalID)
	if err != nil {
		return nil, "", &PersistenceError{Kind: kind, ExternalID: externalID, Err: err}
	}

	action := models.ActionCreate
	if existing != nil {
		action = models.ActionUpdate
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns(entity.MirrorColumns()),
	}).Create(entity)
	if result.Error != nil {
		return nil, "", &PersistenceError{Kind: kind, ExternalID: externalID, Err: result.Error}
	}

	return entity, action, nil
}

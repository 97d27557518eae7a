package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EntityKind identifies one mirrored storefront entity collection.
type EntityKind string

const (
	KindProduct    EntityKind = "product"
	KindCollection EntityKind = "collection"
	KindCustomer   EntityKind = "customer"
	KindOrder      EntityKind = "order"
	KindPromotion  EntityKind = "promotion"
	KindTutorial   EntityKind = "tutorial"
)

// AllKinds lists every syncable entity kind in scheduler order.
func AllKinds() []EntityKind {
	return []EntityKind{
		KindProduct,
		KindCollection,
		KindCustomer,
		KindOrder,
		KindPromotion,
		KindTutorial,
	}
}

// ParseEntityKind validates a kind string from user input (URL path, query).
func ParseEntityKind(s string) (EntityKind, error) {
	kind := EntityKind(s)
	switch kind {
	case KindProduct, KindCollection, KindCustomer, KindOrder, KindPromotion, KindTutorial:
		return kind, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// MirroredEntity is implemented by every local mirror model. The repository
// persists them generically keyed by external id.
type MirroredEntity interface {
	GetExternalID() string
	GetEntityKind() EntityKind
	// MirrorColumns lists the columns refreshed on conflict. Never includes
	// id, external_id or created_at.
	MirrorColumns() []string
}

// JSONB type for PostgreSQL JSONB fields
type JSONB map[string]interface{}

// Scan implements sql.Scanner interface
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSONB)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	*j = result
	return err
}

// Value implements driver.Valuer interface
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return json.Marshal(map[string]interface{}{})
	}
	return json.Marshal(j)
}

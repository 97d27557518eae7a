package models

import "time"

// Collection mirrors one storefront collection.
type Collection struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ExternalID  string `gorm:"column:external_id;type:varchar(64);not null;uniqueIndex" json:"external_id"`
	Title       string `gorm:"not null" json:"title"`
	Handle      string `gorm:"index" json:"handle"`
	Description string `gorm:"type:text" json:"description"`

	AdditionalData JSONB `gorm:"column:additional_data;type:jsonb" json:"additional_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Collection) TableName() string { return "collections" }

// GetExternalID implements MirroredEntity
func (c Collection) GetExternalID() string { return c.ExternalID }

// GetEntityKind implements MirroredEntity
func (c Collection) GetEntityKind() EntityKind { return KindCollection }

// MirrorColumns implements MirroredEntity
func (Collection) MirrorColumns() []string {
	return []string{"title", "handle", "description", "additional_data", "updated_at"}
}

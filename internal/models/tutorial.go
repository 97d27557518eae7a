package models

import "time"

// Tutorial mirrors one storefront blog article (the dashboard surfaces them
// as tutorials).
type Tutorial struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ExternalID  string     `gorm:"column:external_id;type:varchar(64);not null;uniqueIndex" json:"external_id"`
	Title       string     `gorm:"not null" json:"title"`
	Handle      string     `gorm:"index" json:"handle"`
	AuthorName  string     `gorm:"column:author_name" json:"author_name"`
	Tags        string     `json:"tags"` // comma-separated
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at"`

	AdditionalData JSONB `gorm:"column:additional_data;type:jsonb" json:"additional_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tutorial) TableName() string { return "tutorials" }

// GetExternalID implements MirroredEntity
func (t Tutorial) GetExternalID() string { return t.ExternalID }

// GetEntityKind implements MirroredEntity
func (t Tutorial) GetEntityKind() EntityKind { return KindTutorial }

// MirrorColumns implements MirroredEntity
func (Tutorial) MirrorColumns() []string {
	return []string{"title", "handle", "author_name", "tags", "published_at", "additional_data", "updated_at"}
}

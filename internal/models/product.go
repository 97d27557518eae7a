package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product mirrors one storefront product. Scalar columns are promoted for
// querying; variants, images and option lists live in AdditionalData.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ExternalID  string `gorm:"column:external_id;type:varchar(64);not null;uniqueIndex" json:"external_id"`
	Title       string `gorm:"not null" json:"title"`
	Handle      string `gorm:"index" json:"handle"`
	Status      string `gorm:"type:varchar(32)" json:"status"`
	Vendor      string `json:"vendor"`
	ProductType string `gorm:"column:product_type" json:"product_type"`
	Price       string `gorm:"type:varchar(32);default:'0.00'" json:"price"`

	AdditionalData JSONB          `gorm:"column:additional_data;type:jsonb" json:"additional_data"`
	RawData        datatypes.JSON `gorm:"column:raw_data;type:jsonb" json:"raw_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// GetExternalID implements MirroredEntity
func (p Product) GetExternalID() string { return p.ExternalID }

// GetEntityKind implements MirroredEntity
func (p Product) GetEntityKind() EntityKind { return KindProduct }

// MirrorColumns implements MirroredEntity
func (Product) MirrorColumns() []string {
	return []string{"title", "handle", "status", "vendor", "product_type", "price", "additional_data", "raw_data", "updated_at"}
}

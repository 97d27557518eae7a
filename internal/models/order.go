package models

import "time"

// Order mirrors one storefront order. Line items, shipping lines and
// addresses are flattened into AdditionalData.
type Order struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	ExternalID        string     `gorm:"column:external_id;type:varchar(64);not null;uniqueIndex" json:"external_id"`
	Name              string     `gorm:"index" json:"name"` // e.g. "#1001"
	Email             string     `json:"email"`
	FinancialStatus   string     `gorm:"column:financial_status;type:varchar(32)" json:"financial_status"`
	FulfillmentStatus string     `gorm:"column:fulfillment_status;type:varchar(32)" json:"fulfillment_status"`
	Currency          string     `gorm:"type:varchar(8)" json:"currency"`
	TotalPrice        string     `gorm:"column:total_price;type:varchar(32);default:'0.00'" json:"total_price"`
	SubtotalPrice     string     `gorm:"column:subtotal_price;type:varchar(32);default:'0.00'" json:"subtotal_price"`
	ProcessedAt       *time.Time `gorm:"column:processed_at" json:"processed_at"`

	AdditionalData JSONB `gorm:"column:additional_data;type:jsonb" json:"additional_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// GetExternalID implements MirroredEntity
func (o Order) GetExternalID() string { return o.ExternalID }

// GetEntityKind implements MirroredEntity
func (o Order) GetEntityKind() EntityKind { return KindOrder }

// MirrorColumns implements MirroredEntity
func (Order) MirrorColumns() []string {
	return []string{"name", "email", "financial_status", "fulfillment_status", "currency", "total_price", "subtotal_price", "processed_at", "additional_data", "updated_at"}
}

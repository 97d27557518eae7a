package models

import "time"

// Promotion mirrors one storefront discount.
type Promotion struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ExternalID string     `gorm:"column:external_id;type:varchar(64);not null;uniqueIndex" json:"external_id"`
	Title      string     `gorm:"not null" json:"title"`
	Code       string     `gorm:"index" json:"code"`
	ValueType  string     `gorm:"column:value_type;type:varchar(32)" json:"value_type"` // percentage, fixed_amount
	Value      string     `gorm:"type:varchar(32);default:'0.00'" json:"value"`
	Status     string     `gorm:"type:varchar(32)" json:"status"`
	StartsAt   *time.Time `gorm:"column:starts_at" json:"starts_at"`
	EndsAt     *time.Time `gorm:"column:ends_at" json:"ends_at"`

	AdditionalData JSONB `gorm:"column:additional_data;type:jsonb" json:"additional_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Promotion) TableName() string { return "promotions" }

// GetExternalID implements MirroredEntity
func (p Promotion) GetExternalID() string { return p.ExternalID }

// GetEntityKind implements MirroredEntity
func (p Promotion) GetEntityKind() EntityKind { return KindPromotion }

// MirrorColumns implements MirroredEntity
func (Promotion) MirrorColumns() []string {
	return []string{"title", "code", "value_type", "value", "status", "starts_at", "ends_at", "additional_data", "updated_at"}
}

package models

import "time"

// Customer mirrors one storefront customer. Address lists stay in
// AdditionalData; only the fields the dashboard filters on are columns.
type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ExternalID  string `gorm:"column:external_id;type:varchar(64);not null;uniqueIndex" json:"external_id"`
	Email       string `gorm:"index" json:"email"`
	FirstName   string `gorm:"column:first_name" json:"first_name"`
	LastName    string `gorm:"column:last_name" json:"last_name"`
	Phone       string `json:"phone"`
	State       string `gorm:"type:varchar(32)" json:"state"`
	OrdersCount int    `gorm:"column:orders_count;default:0" json:"orders_count"`
	TotalSpent  string `gorm:"column:total_spent;type:varchar(32);default:'0.00'" json:"total_spent"`

	AdditionalData JSONB `gorm:"column:additional_data;type:jsonb" json:"additional_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

// GetExternalID implements MirroredEntity
func (c Customer) GetExternalID() string { return c.ExternalID }

// GetEntityKind implements MirroredEntity
func (c Customer) GetEntityKind() EntityKind { return KindCustomer }

// MirrorColumns implements MirroredEntity
func (Customer) MirrorColumns() []string {
	return []string{"email", "first_name", "last_name", "phone", "state", "orders_count", "total_spent", "additional_data", "updated_at"}
}

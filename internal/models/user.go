package models

import "time"

// AdminUser is a dashboard operator account.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Name         string `json:"name"`
	Role         string `gorm:"type:varchar(32);default:'admin'" json:"role"`
	Active       bool   `gorm:"default:true" json:"active"`

	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (AdminUser) TableName() string { return "admin_users" }

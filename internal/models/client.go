package models

import "time"

// Client is a billable customer. Rows are never deleted physically;
// IsActive=false marks a soft-deleted client. The unique index on
// ClientCode is the authoritative uniqueness guarantee, the handler-level
// pre-check only exists for a friendlier conflict message.
type Client struct {
	ClientID   uint   `gorm:"primaryKey;column:client_id" json:"client_id"`
	ClientCode string `gorm:"size:20;not null;uniqueIndex" json:"client_code"`
	FirstName  string `gorm:"size:100;not null" json:"first_name"`
	LastName   string `gorm:"size:100;not null" json:"last_name"`

	Email      *string `gorm:"size:100" json:"email"`
	Phone      *string `gorm:"size:30" json:"phone"`
	Address    *string `gorm:"size:250" json:"address"`
	City       *string `gorm:"size:100" json:"city"`
	Department *string `gorm:"size:100" json:"department"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

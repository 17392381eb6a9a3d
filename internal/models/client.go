package models

import "time"

// Client profile, linked to the user account that owns it.
type Client struct {
	ID     string `gorm:"size:64;primaryKey" json:"id"`
	UserID string `gorm:"size:64;not null;uniqueIndex" json:"user_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type Barber struct {
	ID        string `gorm:"size:64;primaryKey" json:"id"`
	UserID    string `gorm:"size:64;not null;uniqueIndex" json:"user_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Available bool   `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

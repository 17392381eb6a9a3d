package models

import "time"

// Service is a catalog entry. Prices are in minor currency units.
type Service struct {
	ID          string `gorm:"size:64;primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`
	Price       int64  `gorm:"not null" json:"price"`
	DurationMin int    `gorm:"not null" json:"duration_min"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

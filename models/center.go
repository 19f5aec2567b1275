package models

import (
	"time"
)

// Center represents a physical drop-off/collection location with fixed coordinates
type Center struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Address     string    `json:"address" gorm:"type:text;not null"`
	Latitude    float64   `json:"latitude" gorm:"type:decimal(9,6);not null"`
	Longitude   float64   `json:"longitude" gorm:"type:decimal(9,6);not null"`
	ContactInfo *string   `json:"contact_info" gorm:"size:100"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the Center model
func (Center) TableName() string {
	return "centers"
}

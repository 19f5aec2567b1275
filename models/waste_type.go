package models

import (
	"time"
)

// WasteType represents a category of waste that can be picked up,
// priced per kilogram
type WasteType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	PricePerKg  float64   `json:"price_per_kg" gorm:"type:decimal(10,2);not null;check:price_per_kg >= 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the WasteType model
func (WasteType) TableName() string {
	return "waste_types"
}

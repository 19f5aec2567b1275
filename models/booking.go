package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Booking struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null;index"`
	WasteTypeID   uint          `json:"waste_type_id" gorm:"not null"`
	CenterID      *uint         `json:"center_id"` // Optional drop-off center
	QuantityKg    float64       `json:"quantity_kg" gorm:"type:decimal(10,2);not null"`
	PickupDate    time.Time     `json:"pickup_date" gorm:"not null"`
	PickupTime    string        `json:"pickup_time" gorm:"size:20;not null"`
	Address       string        `json:"address" gorm:"type:text;not null"`
	WasteImageURL *string       `json:"waste_image_url" gorm:"size:500"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending','accepted','in_progress','completed','cancelled')"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'pending';check:payment_status IN ('pending','paid','failed')"`
	TotalPrice    float64       `json:"total_price" gorm:"type:decimal(10,2)"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	WasteType WasteType `json:"waste_type,omitempty" gorm:"foreignKey:WasteTypeID"`
	Center    *Center   `json:"center,omitempty" gorm:"foreignKey:CenterID"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// ComputeTotalPrice derives the booking price from quantity and the per-kg
// rate, rounded to 2 decimal places
func ComputeTotalPrice(quantityKg, pricePerKg float64) float64 {
	return math.Round(quantityKg*pricePerKg*100) / 100
}

// BeforeSave computes the total price once, at first save. A price that is
// already set is never recomputed unless explicitly cleared to zero. Column
// updates through a zero-value model carry no waste type and are left alone.
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	if b.TotalPrice != 0 || b.WasteTypeID == 0 {
		return nil
	}
	wasteType := b.WasteType
	if wasteType.ID == 0 {
		if err := tx.First(&wasteType, b.WasteTypeID).Error; err != nil {
			return err
		}
	}
	b.TotalPrice = ComputeTotalPrice(b.QuantityKg, wasteType.PricePerKg)
	return nil
}

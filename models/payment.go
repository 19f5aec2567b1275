package models

import (
	"time"
)

// Payment tracks the monetary settlement of exactly one booking through the
// external gateway. The unique index on BookingID enforces the one-to-one
// relation and makes payment creation idempotent per booking.
type Payment struct {
	ID                uint          `json:"id" gorm:"primaryKey"`
	BookingID         uint          `json:"booking_id" gorm:"uniqueIndex;not null"`
	Amount            float64       `json:"amount" gorm:"type:decimal(10,2);not null"`
	RazorpayOrderID   *string       `json:"razorpay_order_id" gorm:"size:255"`
	RazorpayPaymentID *string       `json:"razorpay_payment_id" gorm:"size:255"`
	RazorpaySignature *string       `json:"razorpay_signature" gorm:"size:255"`
	Status            PaymentStatus `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending','paid','failed')"`
	PaidAt            *time.Time    `json:"paid_at"`
	CreatedAt         time.Time     `json:"created_at" gorm:"autoCreateTime"`

	// Relationships
	Booking Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// IsTerminal reports whether the payment has reached a final state
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusPaid || p.Status == PaymentStatusFailed
}

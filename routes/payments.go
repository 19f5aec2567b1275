package routes

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"waste-pickup-server/config"
	"waste-pickup-server/database"
	"waste-pickup-server/models"
	"waste-pickup-server/services"
)

// CreatePaymentRequest represents the payment initiation request
type CreatePaymentRequest struct {
	BookingID uint     `json:"booking_id" binding:"required"`
	Amount    *float64 `json:"amount" binding:"omitempty,gt=0"`
}

// VerifyPaymentRequest represents the gateway verification callback payload
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// RegisterPaymentRoutes registers payment routes under the protected group
func RegisterPaymentRoutes(router *gin.RouterGroup) {
	router.POST("/payments/create", createPayment)
	router.POST("/payments/verify", verifyPayment)
}

// createPayment gets or creates the payment tied to a booking. The unique
// index on booking_id makes the get-or-create idempotent: a second initiate
// for the same booking returns the existing payment and order reference.
func createPayment(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	// Booking must belong to the caller
	var booking models.Booking
	if err := database.DB.
		Where("id = ? AND user_id = ?", req.BookingID, userID).
		First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Booking not found",
			"message": "No booking matches the given identifier",
		})
		return
	}

	gateway := services.NewRazorpayService()

	var payment models.Payment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("booking_id = ?", booking.ID).First(&payment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			amount := booking.TotalPrice
			if req.Amount != nil {
				amount = *req.Amount
			}
			payment = models.Payment{
				BookingID: booking.ID,
				Amount:    amount,
				Status:    models.PaymentStatusPending,
			}
			// DO NOTHING keeps the transaction usable when a concurrent
			// initiate wins the unique-index race
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "booking_id"}},
				DoNothing: true,
			}).Create(&payment).Error; err != nil {
				return err
			}
			if payment.ID == 0 {
				if err := tx.Where("booking_id = ?", booking.ID).First(&payment).Error; err != nil {
					return err
				}
			}
		} else if err != nil {
			return err
		}

		if payment.RazorpayOrderID == nil {
			orderID := gateway.OrderReference(payment.ID, booking.ID)
			payment.RazorpayOrderID = &orderID
			if err := tx.Model(&payment).Update("razorpay_order_id", orderID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ Payment creation failed for booking %d: %v", booking.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Payment creation failed",
			"message": "Failed to create payment",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"payment":           payment,
			"razorpay_order_id": *payment.RazorpayOrderID,
			"razorpay_key_id":   config.AppConfig.Razorpay.KeyID,
			"amount":            payment.Amount,
		},
	})
}

// verifyPayment persists the gateway verification result. On a valid
// signature the payment and the linked booking's payment status move to
// "paid" in one transaction; on a mismatch both move to "failed".
func verifyPayment(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	// Locate the payment through the caller's bookings so foreign payments
	// look like missing ones
	var payment models.Payment
	if err := database.DB.
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("payments.razorpay_order_id = ? AND bookings.user_id = ?", req.RazorpayOrderID, userID).
		First(&payment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Payment not found",
			"message": "No payment matches the given order reference",
		})
		return
	}

	if payment.IsTerminal() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Payment already settled",
			"message": "This payment has already been verified",
		})
		return
	}

	gateway := services.NewRazorpayService()
	verified := gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)

	status := models.PaymentStatusPaid
	if !verified {
		status = models.PaymentStatusFailed
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"razorpay_payment_id": req.RazorpayPaymentID,
			"razorpay_signature":  req.RazorpaySignature,
			"status":              status,
		}
		if verified {
			now := time.Now()
			updates["paid_at"] = &now
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}

		// Only the payment status moves on the booking; hooks stay out of
		// a single-column write
		return tx.Session(&gorm.Session{SkipHooks: true}).
			Model(&models.Booking{}).
			Where("id = ?", payment.BookingID).
			Update("payment_status", status).Error
	})
	if err != nil {
		log.Printf("❌ Payment verification persist failed for payment %d: %v", payment.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Verification failed",
			"message": "Failed to persist verification result",
		})
		return
	}

	if !verified {
		log.Printf("❌ Signature mismatch for payment %d", payment.ID)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Signature verification failed",
			"message": "Payment signature is invalid; payment marked as failed",
		})
		return
	}

	log.Printf("✅ Payment %d verified for booking %d", payment.ID, payment.BookingID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully",
		"data":    gin.H{"payment": payment},
	})
}

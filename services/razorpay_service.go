package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"waste-pickup-server/config"
)

// RazorpayService is the collaborator boundary to the payment gateway. Order
// creation against the live gateway happens client-side with the key ID; this
// service owns the order reference scheme and the signature check on the
// verification callback.
type RazorpayService struct {
	keySecret string
}

// NewRazorpayService creates a gateway service using the configured key material
func NewRazorpayService() *RazorpayService {
	return &RazorpayService{keySecret: config.AppConfig.Razorpay.KeySecret}
}

// NewRazorpayServiceWithSecret creates a gateway service with an explicit secret
func NewRazorpayServiceWithSecret(keySecret string) *RazorpayService {
	return &RazorpayService{keySecret: keySecret}
}

// OrderReference builds the order reference persisted on a payment. The
// scheme is derived from the payment and booking identifiers, so a repeated
// initiate call regenerates the identical reference.
func (rs *RazorpayService) OrderReference(paymentID, bookingID uint) string {
	return fmt.Sprintf("order_%d_%d", paymentID, bookingID)
}

// Sign computes the gateway signature over an order/payment identifier pair
func (rs *RazorpayService) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(rs.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a gateway-supplied signature. A mismatch means the
// verification callback cannot be trusted and the payment must be failed.
func (rs *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	expected := rs.Sign(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

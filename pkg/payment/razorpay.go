// Package payment wraps the Razorpay SDK behind a small Gateway interface so
// that services can be exercised against a fake in tests.
package payment

import (
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
)

// Currency for all gateway orders. The marketplace trades in rupees.
const Currency = "INR"

// ErrPaymentNotVerified is returned when a payment reference does not
// correspond to an authorized or captured gateway payment.
var ErrPaymentNotVerified = errors.New("payment not verified")

// Gateway is the contract the order flow needs from a payment processor.
type Gateway interface {
	// CreateOrder registers a payment intent for the given major-unit amount
	// and returns the gateway's order object verbatim.
	CreateOrder(amount float64, receipt string) (map[string]interface{}, error)
	// VerifyPayment checks that the referenced payment actually went through.
	VerifyPayment(paymentID string) error
}

// RazorpayGateway implements Gateway on top of the official Razorpay client.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway creates a gateway using the given API credentials.
func NewRazorpayGateway(key, secret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(key, secret),
	}
}

// ToMinorUnits converts a major-unit amount (rupees) to minor units (paise),
// rounding to the nearest integer.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreateOrder creates a Razorpay order for the amount, converted to paise.
func (g *RazorpayGateway) CreateOrder(amount float64, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   ToMinorUnits(amount),
		"currency": Currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}
	return order, nil
}

// VerifyPayment fetches the payment from Razorpay and requires it to be
// authorized or captured before an order may be recorded against it.
func (g *RazorpayGateway) VerifyPayment(paymentID string) error {
	paymentDetails, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch payment %s: %w", paymentID, err)
	}
	status, _ := paymentDetails["status"].(string)
	switch status {
	case "authorized", "captured":
		return nil
	default:
		return fmt.Errorf("payment %s has status %q: %w", paymentID, status, ErrPaymentNotVerified)
	}
}

package booking

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler charges a booking total.
type PaymentHandler interface {
	Charge(ctx context.Context, amount float64, currency, description string) (string, error)
}

// StripePaymentHandler collects payment through Stripe payment intents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler creates a Stripe-backed payment handler. The Stripe
// API key is set globally at startup.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// Charge creates a payment intent for the amount and returns its id. Amounts
// are in major currency units; Stripe wants the smallest unit.
func (h *StripePaymentHandler) Charge(ctx context.Context, amount float64, currency, description string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("charge amount must be positive, got %v", amount)
	}
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(amount * 100))),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}
	h.logger.Info("payment intent created",
		zap.String("paymentIntent", pi.ID),
		zap.Float64("amount", amount),
		zap.String("currency", currency),
	)
	return pi.ID, nil
}

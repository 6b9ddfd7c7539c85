package service

import (
	"context"
)

// PaymentIntentRequest carries what the processor needs to open an intent.
// Amount is in minor currency units (price x 100).
type PaymentIntentRequest struct {
	OrderID  string
	Amount   int64
	Currency string
	Email    string
}

// PaymentIntent is the processor's answer; ClientSecret is what the
// frontend needs to confirm the payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
}

// PaymentGatewayService wraps the external payment processor.
type PaymentGatewayService interface {
	CreateIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
}

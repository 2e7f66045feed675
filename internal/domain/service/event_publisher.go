package service

import (
	"context"
)

// PaymentEvent is published after a payment has been durably recorded.
// Downstream consumers (receipts, analytics) react asynchronously; publishing
// failures never affect the payment itself.
type PaymentEvent struct {
	RequestID        string  `json:"request_id,omitempty"` // For distributed tracing
	UserID           string  `json:"user_id"`
	PaymentID        string  `json:"payment_id"`
	ProductID        string  `json:"product_id"`
	Amount           float64 `json:"amount"`
	ReferralCredited bool    `json:"referral_credited"`
	ReferrerID       string  `json:"referrer_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPaymentEvent publishes a payment-recorded event for async processing
	PublishPaymentEvent(ctx context.Context, event *PaymentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

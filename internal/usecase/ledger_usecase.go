package usecase

import "context"

// RecordPaymentInput arrives from the payment gateway callback after an
// external checkout flow completes.
type RecordPaymentInput struct {
	UserID    string  `json:"userId" validate:"required"`
	PaymentID string  `json:"paymentId" validate:"required"`
	Amount    float64 `json:"amount" validate:"gte=0"`
}

// LedgerUsecase defines the referral commission ledger operations.
type LedgerUsecase interface {
	// RecordPayment records the transaction and, when the payer was referred,
	// credits the referrer exactly once. Replaying the same payment ID is a
	// no-op: for any (userID, paymentID) pair exactly one Transaction and at
	// most one Referral ever exist, however many times this is invoked.
	RecordPayment(ctx context.Context, input *RecordPaymentInput) error
}

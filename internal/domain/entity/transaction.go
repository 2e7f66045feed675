package entity

import "time"

// Transaction records one successful purchase. It lives under the buyer's
// document, keyed by the payment gateway's payment ID, which makes the write
// idempotent under duplicate callbacks.
type Transaction struct {
	ID                          string    `firestore:"id" json:"id"`
	UserID                      string    `firestore:"userId" json:"userId"`
	ProductID                   string    `firestore:"productId" json:"productId"`
	Amount                      float64   `firestore:"amount" json:"amount"`
	TransactionDate             time.Time `firestore:"transactionDate,serverTimestamp" json:"transactionDate"`
	PaymentGatewayTransactionID string    `firestore:"paymentGatewayTransactionId" json:"paymentGatewayTransactionId"`
}

// Referral credits a referrer for one referred purchase. At most one Referral
// exists per Transaction; it is written inside the same atomic transaction as
// the Transaction document.
type Referral struct {
	ID               string    `firestore:"id" json:"id"`
	ReferrerID       string    `firestore:"referrerId" json:"referrerId"`
	ReferredUserID   string    `firestore:"referredUserId" json:"referredUserId"`
	TransactionID    string    `firestore:"transactionId" json:"transactionId"`
	ReferralDate     time.Time `firestore:"referralDate,serverTimestamp" json:"referralDate"`
	CommissionAmount float64   `firestore:"commissionAmount" json:"commissionAmount"`
}

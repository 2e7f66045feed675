package repository

import (
	"context"

	"mindset/internal/domain/entity"
)

// LedgerStore is the set of reads and writes available inside one atomic
// ledger transaction. Reads observe a consistent snapshot; writes are staged
// and either all commit or none do. All reads must be issued before the
// first staged write: the backing store rejects a read that follows a write
// within the same transaction.
type LedgerStore interface {
	// GetProfile reads a user profile, or ErrUserNotFound.
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)

	// TransactionExists reports whether a transaction document already exists
	// for the given payment ID under the user.
	TransactionExists(ctx context.Context, userID, paymentID string) (bool, error)

	// FindReferrerByCode looks up the profile whose referral code matches,
	// or ErrUserNotFound when there is no referrer with that code.
	FindReferrerByCode(ctx context.Context, code string) (*entity.UserProfile, error)

	// PutTransaction stages the transaction document write.
	PutTransaction(txn *entity.Transaction) error

	// PutReferral stages the referral document write under a fresh ID.
	PutReferral(referral *entity.Referral) error
}

// LedgerTxManager runs ledger work inside one atomic transaction of the
// backing store. The check-then-write sequence in fn must not be approximated
// with separate reads and writes — the atomicity is what prevents duplicate
// commission credits under concurrent payment callbacks.
type LedgerTxManager interface {
	Execute(ctx context.Context, fn func(store LedgerStore) error) error
}

// ReferralRepository exposes non-transactional reads over the referral ledger.
type ReferralRepository interface {
	// ListByReferrer returns all referrals credited to the given user.
	ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error)
}

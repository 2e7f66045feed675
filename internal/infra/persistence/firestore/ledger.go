package firestore

import (
	"context"

	"mindset/internal/domain/entity"
	"mindset/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ledgerTxManager implements the domain's LedgerTxManager on Firestore's
// native transactions. Firestore retries the callback on contention, which is
// what makes the check-then-write on the payment ID safe under concurrent
// duplicate callbacks: the losing attempt re-reads, sees the transaction
// document, and turns into a no-op.
type ledgerTxManager struct {
	client *firestore.Client
}

// ledgerStore is the transaction-bound implementation of LedgerStore. All
// reads go through the Firestore transaction handle, all writes are staged on
// it and commit together.
type ledgerStore struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewLedgerTxManager is the constructor for ledgerTxManager.
func NewLedgerTxManager(client *firestore.Client) repository.LedgerTxManager {
	return &ledgerTxManager{client: client}
}

// Execute runs fn inside one Firestore transaction.
func (tm *ledgerTxManager) Execute(ctx context.Context, fn func(store repository.LedgerStore) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&ledgerStore{client: tm.client, tx: tx})
	})

	return errors.WithStack(err)
}

// GetProfile reads the payer's profile within the transaction.
func (s *ledgerStore) GetProfile(_ context.Context, userID string) (*entity.UserProfile, error) {
	snap, err := s.tx.Get(userDoc(s.client, userID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to read profile in transaction")
	}

	return decodeProfile(snap)
}

// TransactionExists checks for an earlier write under the same payment ID.
func (s *ledgerStore) TransactionExists(_ context.Context, userID, paymentID string) (bool, error) {
	_, err := s.tx.Get(transactionDoc(s.client, userID, paymentID))
	if err == nil {
		return true, nil
	}
	if status.Code(err) == codes.NotFound {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to read transaction document")
}

// FindReferrerByCode resolves a referral code to its owner inside the
// transaction, so the commission decision observes the same snapshot as the
// transaction write.
func (s *ledgerStore) FindReferrerByCode(_ context.Context, code string) (*entity.UserProfile, error) {
	query := s.client.Collection(usersCollection).
		Where(referralCodeField, "==", code).
		Limit(1)

	iter := s.tx.Documents(query)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to query referrer in transaction")
	}

	return decodeProfile(snap)
}

// PutTransaction stages the transaction document, keyed by the payment ID.
// The TransactionDate carries the serverTimestamp tag and is assigned at
// commit time.
func (s *ledgerStore) PutTransaction(txn *entity.Transaction) error {
	ref := transactionDoc(s.client, txn.UserID, txn.ID)

	return errors.WithStack(s.tx.Set(ref, txn))
}

// PutReferral stages the referral document under a fresh auto ID.
func (s *ledgerStore) PutReferral(referral *entity.Referral) error {
	ref := s.client.Collection(referralsCollection).NewDoc()
	referral.ID = ref.ID

	return errors.WithStack(s.tx.Set(ref, referral))
}

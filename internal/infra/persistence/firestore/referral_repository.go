package firestore

import (
	"context"

	"mindset/internal/domain/entity"
	"mindset/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// referralRepository implements read access over the referrals collection.
type referralRepository struct {
	client *firestore.Client
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(client *firestore.Client) repository.ReferralRepository {
	return &referralRepository{client: client}
}

// ListByReferrer returns all referrals credited to the given user.
func (repo *referralRepository) ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error) {
	iter := repo.client.Collection(referralsCollection).
		Where(referrerIDField, "==", referrerID).
		Documents(ctx)
	defer iter.Stop()

	var referrals []*entity.Referral
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate referrals")
		}

		var referral entity.Referral
		if err := snap.DataTo(&referral); err != nil {
			return nil, errors.Wrap(err, "failed to decode referral document")
		}
		referral.ID = snap.Ref.ID
		referrals = append(referrals, &referral)
	}

	return referrals, nil
}

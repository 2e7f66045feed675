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

// userRepository implements the domain.UserRepository interface on Firestore.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindByID retrieves a single profile document by user ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	snap, err := userDoc(repo.client, id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	return decodeProfile(snap)
}

// FindByReferralCode retrieves the profile whose referral code matches.
func (repo *userRepository) FindByReferralCode(ctx context.Context, code string) (*entity.UserProfile, error) {
	iter := repo.client.Collection(usersCollection).
		Where(referralCodeField, "==", code).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to query profile by referral code")
	}

	return decodeProfile(snap)
}

// Create persists a new profile. The document ID is the user ID, so a
// duplicate signup for the same account fails with AlreadyExists.
func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if _, err := userDoc(repo.client, profile.ID).Create(ctx, profile); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Wrapf(repository.ErrUserAlreadyExists, "profile %s", profile.ID)
		}

		return errors.Wrap(err, "failed to create profile document")
	}

	return nil
}

// Patch merges a partial field update into an existing profile document.
func (repo *userRepository) Patch(ctx context.Context, id string, patch *entity.ProfilePatch) error {
	updates := patchUpdates(patch)
	if len(updates) == 0 {
		return nil
	}

	if _, err := userDoc(repo.client, id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to patch profile document")
	}

	return nil
}

// patchUpdates converts a ProfilePatch into Firestore field updates. Only the
// set fields are touched, mirroring a document merge.
func patchUpdates(patch *entity.ProfilePatch) []firestore.Update {
	if patch == nil {
		return nil
	}

	var updates []firestore.Update
	if patch.Interest != nil {
		updates = append(updates, firestore.Update{Path: "interest", Value: *patch.Interest})
	}
	if patch.Goal != nil {
		updates = append(updates, firestore.Update{Path: "goal", Value: *patch.Goal})
	}
	if patch.RecommendedPath != nil {
		updates = append(updates, firestore.Update{Path: "recommendedPath", Value: *patch.RecommendedPath})
	}
	if patch.ChosenPath != nil {
		updates = append(updates, firestore.Update{Path: "chosenPath", Value: *patch.ChosenPath})
	}
	if patch.ProgressScore != nil {
		updates = append(updates, firestore.Update{Path: "progressScore", Value: *patch.ProgressScore})
	}
	if patch.MonetizationStatus != nil {
		updates = append(updates, firestore.Update{Path: "monetizationStatus", Value: *patch.MonetizationStatus})
	}

	return updates
}

func decodeProfile(snap *firestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}
	profile.ID = snap.Ref.ID

	return &profile, nil
}

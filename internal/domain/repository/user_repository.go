// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mindset/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned by Create when the profile document exists.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserRepository defines the standard operations for user profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single profile by its document ID.
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// FindByReferralCode retrieves the profile whose referral code matches,
	// or ErrUserNotFound when no such profile exists.
	FindByReferralCode(ctx context.Context, code string) (*entity.UserProfile, error)

	// Create persists a new profile. Fails if the document already exists.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// Patch merges a partial field update into an existing profile.
	Patch(ctx context.Context, id string, patch *entity.ProfilePatch) error
}

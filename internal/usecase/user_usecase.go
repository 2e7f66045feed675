package usecase

import (
	"context"

	"mindset/internal/domain/entity"
)

// SignupInput defines the data required to create a new account profile.
// Authentication itself happens upstream; this only creates the profile
// document and its referral code.
type SignupInput struct {
	UserID     string `json:"userId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	ReferredBy string `json:"referredBy"` // Optional referral code from the signup link.
}

// SignupOutput returns the newly created profile.
type SignupOutput struct {
	Profile *entity.UserProfile `json:"profile"`
}

// ReferralSummaryOutput aggregates a user's referral earnings.
type ReferralSummaryOutput struct {
	Referrals    []*entity.Referral `json:"referrals"`
	TotalEarned  float64            `json:"totalEarned"`
	ReferralCode string             `json:"referralCode"`
	ReferralLink string             `json:"referralLink"`
}

// UserUsecase defines account and referral program operations.
type UserUsecase interface {
	// Signup creates the profile document with a fresh referral code.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// GetProfile retrieves a profile by user ID.
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)

	// ReferralSummary lists the user's credited referrals and total earnings.
	ReferralSummary(ctx context.Context, userID string) (*ReferralSummaryOutput, error)

	// ReferralQR renders a PNG QR code pointing at the user's referral link.
	ReferralQR(ctx context.Context, userID string) ([]byte, error)
}

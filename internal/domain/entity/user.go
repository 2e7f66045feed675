// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// UserProfile is the core entity in the system, one document per account.
// Optional onboarding fields stay empty until the mentor conversation fills
// them in; all mutation after signup goes through a ProfilePatch.
type UserProfile struct {
	ID           string `firestore:"id" json:"id"`
	Name         string `firestore:"name" json:"name"`
	Email        string `firestore:"email" json:"email"`
	ReferralCode string `firestore:"referralCode" json:"referralCode"` // Unique share code generated at signup.
	ReferredBy   string `firestore:"referredBy,omitempty" json:"referredBy,omitempty"`

	Interest           string `firestore:"interest,omitempty" json:"interest,omitempty"` // Comma-separated categories; first one is primary.
	Goal               string `firestore:"goal,omitempty" json:"goal,omitempty"`
	RecommendedPath    string `firestore:"recommendedPath,omitempty" json:"recommendedPath,omitempty"`
	ChosenPath         string `firestore:"chosenPath,omitempty" json:"chosenPath,omitempty"`
	ProgressScore      int    `firestore:"progressScore" json:"progressScore"` // 0-100, reaches 100 only on plan completion.
	MonetizationStatus bool   `firestore:"monetizationStatus" json:"monetizationStatus"`
}

// PrimaryInterest returns the first listed interest category, or empty.
func (p *UserProfile) PrimaryInterest() string {
	if p == nil || p.Interest == "" {
		return ""
	}

	primary, _, _ := strings.Cut(p.Interest, ",")

	return strings.TrimSpace(primary)
}

// ProfilePatch is a partial set of profile fields to merge into a persisted
// UserProfile after a conversation turn. Nil fields are left untouched.
type ProfilePatch struct {
	Interest           *string `json:"interest,omitempty"`
	Goal               *string `json:"goal,omitempty"`
	RecommendedPath    *string `json:"recommendedPath,omitempty"`
	ChosenPath         *string `json:"chosenPath,omitempty"`
	ProgressScore      *int    `json:"progressScore,omitempty"`
	MonetizationStatus *bool   `json:"monetizationStatus,omitempty"`
}

// IsEmpty reports whether the patch carries no field updates.
func (p *ProfilePatch) IsEmpty() bool {
	if p == nil {
		return true
	}

	return p.Interest == nil &&
		p.Goal == nil &&
		p.RecommendedPath == nil &&
		p.ChosenPath == nil &&
		p.ProgressScore == nil &&
		p.MonetizationStatus == nil
}

// Apply merges the patch into the given profile in place.
func (p *ProfilePatch) Apply(profile *UserProfile) {
	if p == nil || profile == nil {
		return
	}

	if p.Interest != nil {
		profile.Interest = *p.Interest
	}
	if p.Goal != nil {
		profile.Goal = *p.Goal
	}
	if p.RecommendedPath != nil {
		profile.RecommendedPath = *p.RecommendedPath
	}
	if p.ChosenPath != nil {
		profile.ChosenPath = *p.ChosenPath
	}
	if p.ProgressScore != nil {
		profile.ProgressScore = *p.ProgressScore
	}
	if p.MonetizationStatus != nil {
		profile.MonetizationStatus = *p.MonetizationStatus
	}
}

package entity

import "github.com/pkg/errors"

// Stage is a named step in the scripted mentor conversation.
type Stage string

const (
	StageGreeting           Stage = "GREETING"
	StageOnboardingInterest Stage = "ONBOARDING_INTEREST"
	StageOnboardingGoal     Stage = "ONBOARDING_GOAL"
	StagePathSelection      Stage = "PATH_SELECTION"
	StageProgressUpdate     Stage = "PROGRESS_UPDATE"
	StageComplete           Stage = "COMPLETE"
)

// ErrUnknownStage is returned when a stage string does not name a known stage.
var ErrUnknownStage = errors.New("unknown conversation stage")

// ParseStage converts a stage string into a Stage.
func ParseStage(s string) (Stage, error) {
	switch Stage(s) {
	case StageGreeting, StageOnboardingInterest, StageOnboardingGoal,
		StagePathSelection, StageProgressUpdate, StageComplete:
		return Stage(s), nil
	default:
		return "", errors.Wrapf(ErrUnknownStage, "stage %q", s)
	}
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is a single entry in the conversation history, oldest first.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

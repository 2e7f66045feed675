// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mindset/internal/domain/entity"
)

// --- Input DTOs ---

// AdvanceInput carries one turn of the scripted mentor conversation.
type AdvanceInput struct {
	UserID      string `json:"userId" validate:"required"`
	Stage       string `json:"stage" validate:"required"`
	UserMessage string `json:"userMessage" validate:"required"`
}

// ChatInput carries one turn of the freeform mentor chat. The caller owns the
// conversation history and sends it back in full on every turn.
type ChatInput struct {
	History     []entity.Turn `json:"history"`
	UserMessage string        `json:"userMessage" validate:"required"`
	UserName    string        `json:"userName" validate:"required"`
}

// StrategiesInput feeds the personalized wealth strategies generator.
type StrategiesInput struct {
	UserResponses  string `json:"userResponses" validate:"required"`
	CurrentAffairs string `json:"currentAffairs"`
}

// --- Output DTOs ---

// AdvanceOutput is the result of one scripted conversation turn. Messages are
// presented to the user in order; the caller resumes from NextStage.
type AdvanceOutput struct {
	Messages       []string             `json:"messages"`
	NextStage      entity.Stage         `json:"nextStage"`
	UpdatedProfile *entity.ProfilePatch `json:"updatedProfile,omitempty"`
}

// ChatOutput is the reply to one freeform chat turn.
type ChatOutput struct {
	Reply string `json:"reply"`
}

// StrategiesOutput holds the generated wealth strategies text.
type StrategiesOutput struct {
	WealthStrategies string `json:"wealthStrategies"`
}

// MentorUsecase defines the mentor conversation operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type MentorUsecase interface {
	// Advance runs one turn of the staged conversation. On a text generation
	// failure the turn fails as a whole: no profile patch is written and the
	// stage does not move. Retrying is the caller's responsibility.
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)

	// Chat answers one freeform mentor turn in the mentor persona.
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)

	// WealthStrategies generates personalized wealth building advice.
	WealthStrategies(ctx context.Context, input *StrategiesInput) (*StrategiesOutput, error)
}

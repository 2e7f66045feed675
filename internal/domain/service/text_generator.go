// Package service defines interfaces for external collaborators the use
// cases depend on.
package service

import (
	"context"
	"errors"

	"mindset/internal/domain/entity"
)

// ErrNoOutput is returned when the text generation service produced nothing
// usable: an empty response, a schema mismatch, or a timed-out call. Callers
// must treat it as a turn-level failure and mutate no state.
var ErrNoOutput = errors.New("text generation returned no usable output")

// GenerateRequest describes one call to the text generation service.
type GenerateRequest struct {
	// System carries role instructions prepended to the conversation.
	System string

	// History holds prior turns, oldest first. May be empty.
	History []entity.Turn

	// Prompt is the latest user-facing text to respond to.
	Prompt string
}

// Reaction is a structured classification of a user message produced
// alongside a conversational reply.
type Reaction struct {
	// Affirmed is true when the message confirms the proposal or reports a
	// completed task, depending on the question asked.
	Affirmed bool `json:"affirmed"`

	// Response is the conversational reply to show the user.
	Response string `json:"response"`
}

// TextGenerator is the external text generation collaborator. Implementations
// bound each call with a timeout and surface ErrNoOutput for empty results.
type TextGenerator interface {
	// Generate returns free text for the request.
	Generate(ctx context.Context, req *GenerateRequest) (string, error)

	// GenerateReaction returns a schema-validated boolean-plus-reply object.
	GenerateReaction(ctx context.Context, req *GenerateRequest) (*Reaction, error)
}

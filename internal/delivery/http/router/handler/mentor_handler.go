// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mindset/internal/delivery/http/response"
	"mindset/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MentorHandler holds dependencies for mentor-related handlers.
type MentorHandler struct {
	uc     usecase.MentorUsecase
	logger *slog.Logger
}

// NewMentorHandler is the constructor for MentorHandler, injected by Fx.
func NewMentorHandler(uc usecase.MentorUsecase, logger *slog.Logger) *MentorHandler {
	return &MentorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Chat handles one freeform mentor chat turn.
func (h *MentorHandler) Chat(c echo.Context) error {
	var input *usecase.ChatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	output, err := h.uc.Chat(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Mentor reply generated")
}

// Advance handles one turn of the staged mentor conversation.
func (h *MentorHandler) Advance(c echo.Context) error {
	var input *usecase.AdvanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversation input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	output, err := h.uc.Advance(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Conversation advanced")
}

// WealthStrategies handles personalized wealth strategy generation.
func (h *MentorHandler) WealthStrategies(c echo.Context) error {
	var input *usecase.StrategiesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid strategies input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	output, err := h.uc.WealthStrategies(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Strategies generated")
}

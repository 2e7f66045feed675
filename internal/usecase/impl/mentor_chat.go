package impl

import (
	"context"
	"fmt"
	"strings"

	domainerrors "mindset/internal/domain/errors"
	"mindset/internal/domain/service"
	"mindset/internal/usecase"

	"github.com/pkg/errors"
)

// Freeform chat stages. These are internal to the lightweight chat flow and
// are derived from the history on every turn rather than persisted anywhere.
type chatStage string

const (
	chatStageGreeting      chatStage = "GREETING"
	chatStageProvideAdvice chatStage = "PROVIDE_ADVICE"
	chatStageConcluded     chatStage = "CONCLUDED"
)

var chatSystemPrompts = map[chatStage]string{
	chatStageGreeting:      `You are an AI mentor for the "Millionaire Mindset" platform. Your name is 'M'. You have just greeted the user. Now they are telling you about their goals. Analyze their message and provide simple, actionable advice based on the principles of the "Millionaire Mindset" (e.g., investing, side hustles, positive mindset, law of attraction). After giving advice, ask a follow-up question to keep the conversation going.`,
	chatStageProvideAdvice: `You are an AI mentor named 'M'. The user is responding to your advice. Continue the conversation by providing more specific tips or asking clarifying questions. Keep your responses encouraging and focused on actionable steps. If the user seems to be finishing the conversation (e.g., says "thank you", "thanks"), provide a concluding, encouraging remark and wish them well on their journey.`,
	chatStageConcluded:     `You are an AI mentor named 'M'. The user is thanking you and likely ending the conversation. Provide a brief, warm, and encouraging closing statement. Wish them the best on their journey to financial success.`,
}

// Chat answers one freeform mentor turn. The stage is inferred from the
// history length and the user's message, not stored server-side.
func (srv *mentorService) Chat(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	current := chatStageGreeting
	if len(input.History) > 2 {
		current = chatStageProvideAdvice
	}
	next := nextChatStage(current, input.UserMessage)

	system, ok := chatSystemPrompts[next]
	if !ok {
		system = chatSystemPrompts[chatStageProvideAdvice]
	}
	system += fmt.Sprintf(" Address the user as %s when appropriate.", input.UserName)

	reply, err := srv.generator.Generate(ctx, &service.GenerateRequest{
		System:  system,
		History: input.History,
		Prompt:  input.UserMessage,
	})
	if err != nil {
		return nil, srv.generationError(err, "mentor chat")
	}
	if strings.TrimSpace(reply) == "" {
		return nil, errors.Wrap(domainerrors.ErrGenerationFailed, "mentor chat returned empty")
	}

	return &usecase.ChatOutput{Reply: reply}, nil
}

func nextChatStage(current chatStage, userMessage string) chatStage {
	if current == chatStageGreeting {
		return chatStageProvideAdvice
	}

	lowered := strings.ToLower(userMessage)
	if strings.Contains(lowered, "thank you") || strings.Contains(lowered, "thanks") {
		return chatStageConcluded
	}

	return chatStageProvideAdvice
}

// WealthStrategies generates personalized wealth building advice from the
// user's questionnaire answers and a summary of current market conditions.
func (srv *mentorService) WealthStrategies(ctx context.Context, input *usecase.StrategiesInput) (*usecase.StrategiesOutput, error) {
	prompt := fmt.Sprintf(`You are an AI assistant designed to provide personalized wealth strategies to users based on their individual circumstances and current market conditions.

Consider the following information provided by the user:
User Responses: %s

Also, take into account these current affairs and market trends:
Current Affairs: %s

Based on this information, generate actionable wealth strategies that the user can implement to build wealth. Provide specific and practical advice.
Wealth Strategies: `, input.UserResponses, input.CurrentAffairs)

	strategies, err := srv.generator.Generate(ctx, &service.GenerateRequest{Prompt: prompt})
	if err != nil {
		return nil, srv.generationError(err, "wealth strategies")
	}
	if strings.TrimSpace(strategies) == "" {
		return nil, errors.Wrap(domainerrors.ErrGenerationFailed, "wealth strategies returned empty")
	}

	return &usecase.StrategiesOutput{WealthStrategies: strategies}, nil
}

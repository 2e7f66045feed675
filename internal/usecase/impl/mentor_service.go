// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mindset/config"
	"mindset/internal/domain/entity"
	domainerrors "mindset/internal/domain/errors"
	"mindset/internal/domain/repository"
	"mindset/internal/domain/service"
	"mindset/internal/usecase"

	"github.com/pkg/errors"
)

// maxProgressBeforeComplete reserves 100 exclusively for the completion
// transition; ordinary progress turns clamp here.
const maxProgressBeforeComplete = 99

// mentorService implements the MentorUsecase interface.
type mentorService struct {
	userRepo  repository.UserRepository
	generator service.TextGenerator
	cfg       *config.Config
	logger    *slog.Logger
}

// NewMentorService is the constructor for mentorService.
func NewMentorService(
	userRepo repository.UserRepository,
	generator service.TextGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MentorUsecase {
	return &mentorService{
		userRepo:  userRepo,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Advance runs one turn of the staged mentor conversation. The stage switch
// is exhaustive over the known stages; anything else falls through to the
// recovery branch, which resets to ONBOARDING_INTEREST with no profile patch.
func (srv *mentorService) Advance(ctx context.Context, input *usecase.AdvanceInput) (*usecase.AdvanceOutput, error) {
	profile, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "mentor advance")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	stage, err := entity.ParseStage(input.Stage)
	if err != nil {
		srv.logger.Warn("Unknown conversation stage, recovering",
			slog.String("stage", input.Stage),
			slog.String("userID", input.UserID),
		)

		return &usecase.AdvanceOutput{
			Messages:  []string{recoveryMessage},
			NextStage: entity.StageOnboardingInterest,
		}, nil
	}

	var output *usecase.AdvanceOutput

	switch stage {
	case entity.StageGreeting:
		output = srv.advanceGreeting()
	case entity.StageOnboardingInterest:
		output, err = srv.advanceInterest(ctx, input.UserMessage)
	case entity.StageOnboardingGoal:
		output, err = srv.advanceGoal(ctx, input.UserMessage, profile)
	case entity.StagePathSelection:
		output, err = srv.advancePathSelection(ctx, input.UserMessage, profile)
	case entity.StageProgressUpdate:
		output, err = srv.advanceProgress(ctx, input.UserMessage, profile)
	case entity.StageComplete:
		output, err = srv.advanceComplete(ctx, profile)
	}

	if err != nil {
		return nil, err
	}

	// The patch is written only after the turn fully succeeded, so a failed
	// generation never leaves a half-advanced profile behind.
	if !output.UpdatedProfile.IsEmpty() {
		if err := srv.userRepo.Patch(ctx, input.UserID, output.UpdatedProfile); err != nil {
			return nil, errors.Wrap(err, "failed to patch profile")
		}
	}

	return output, nil
}

func (srv *mentorService) advanceGreeting() *usecase.AdvanceOutput {
	return &usecase.AdvanceOutput{
		Messages:  []string{greetingWelcome, greetingInterestPrompt},
		NextStage: entity.StageOnboardingInterest,
	}
}

func (srv *mentorService) advanceInterest(ctx context.Context, userMessage string) (*usecase.AdvanceOutput, error) {
	interest, err := srv.generator.Generate(ctx, &service.GenerateRequest{
		Prompt: interestExtractionPrompt(userMessage),
	})
	if err != nil {
		return nil, srv.generationError(err, "interest extraction")
	}
	interest = strings.TrimSpace(interest)
	if interest == "" {
		return nil, errors.Wrap(domainerrors.ErrGenerationFailed, "interest extraction returned empty")
	}

	return &usecase.AdvanceOutput{
		Messages:       []string{interestAck, goalPrompt},
		NextStage:      entity.StageOnboardingGoal,
		UpdatedProfile: &entity.ProfilePatch{Interest: &interest},
	}, nil
}

func (srv *mentorService) advanceGoal(ctx context.Context, userMessage string, profile *entity.UserProfile) (*usecase.AdvanceOutput, error) {
	goal, err := srv.generator.Generate(ctx, &service.GenerateRequest{
		Prompt: goalExtractionPrompt(userMessage),
	})
	if err != nil {
		return nil, srv.generationError(err, "goal extraction")
	}
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, errors.Wrap(domainerrors.ErrGenerationFailed, "goal extraction returned empty")
	}

	primary := profile.PrimaryInterest()
	path := recommendedPathFor(primary)
	if primary == "" {
		primary = "Other"
	}

	return &usecase.AdvanceOutput{
		Messages: []string{
			fmt.Sprintf("Great goal! Based on your interest in %s, I've found a path for you.", primary),
			fmt.Sprintf("I recommend this to start: **%s**", path),
			planIntro,
		},
		NextStage: entity.StagePathSelection,
		UpdatedProfile: &entity.ProfilePatch{
			Goal:            &goal,
			RecommendedPath: &path,
		},
	}, nil
}

func (srv *mentorService) advancePathSelection(ctx context.Context, userMessage string, profile *entity.UserProfile) (*usecase.AdvanceOutput, error) {
	reaction, err := srv.generator.GenerateReaction(ctx, &service.GenerateRequest{
		Prompt: pathConfirmationPrompt(profile, userMessage),
	})
	if err != nil {
		return nil, srv.generationError(err, "path confirmation")
	}

	if !reaction.Affirmed {
		// Let them choose again.
		return &usecase.AdvanceOutput{
			Messages:  []string{reaction.Response},
			NextStage: entity.StagePathSelection,
		}, nil
	}

	chosenPath := profile.RecommendedPath
	progress := 0

	return &usecase.AdvanceOutput{
		Messages: []string{
			reaction.Response,
			sevenDayPlan(chosenPath),
			planKickoff,
		},
		NextStage: entity.StageProgressUpdate,
		UpdatedProfile: &entity.ProfilePatch{
			ChosenPath:    &chosenPath,
			ProgressScore: &progress,
		},
	}, nil
}

func (srv *mentorService) advanceProgress(ctx context.Context, userMessage string, profile *entity.UserProfile) (*usecase.AdvanceOutput, error) {
	reaction, err := srv.generator.GenerateReaction(ctx, &service.GenerateRequest{
		Prompt: progressUpdatePrompt(profile, userMessage),
	})
	if err != nil {
		return nil, srv.generationError(err, "progress update")
	}

	newProgress := profile.ProgressScore
	if reaction.Affirmed {
		newProgress += srv.cfg.Mentor.ProgressIncrement
	}

	if newProgress >= srv.cfg.Mentor.CompleteThreshold {
		completed := 100

		return &usecase.AdvanceOutput{
			Messages:       []string{reaction.Response, planDone},
			NextStage:      entity.StageComplete,
			UpdatedProfile: &entity.ProfilePatch{ProgressScore: &completed},
		}, nil
	}

	if newProgress > maxProgressBeforeComplete {
		newProgress = maxProgressBeforeComplete
	}

	return &usecase.AdvanceOutput{
		Messages:       []string{reaction.Response},
		NextStage:      entity.StageProgressUpdate,
		UpdatedProfile: &entity.ProfilePatch{ProgressScore: &newProgress},
	}, nil
}

func (srv *mentorService) advanceComplete(ctx context.Context, profile *entity.UserProfile) (*usecase.AdvanceOutput, error) {
	guidance, err := srv.generator.Generate(ctx, &service.GenerateRequest{
		Prompt: monetizationPrompt(profile),
	})
	if err != nil {
		return nil, srv.generationError(err, "monetization guidance")
	}
	if strings.TrimSpace(guidance) == "" {
		return nil, errors.Wrap(domainerrors.ErrGenerationFailed, "monetization guidance returned empty")
	}

	monetized := true

	return &usecase.AdvanceOutput{
		Messages:       []string{guidance},
		NextStage:      entity.StageComplete,
		UpdatedProfile: &entity.ProfilePatch{MonetizationStatus: &monetized},
	}, nil
}

func (srv *mentorService) generationError(err error, op string) error {
	if errors.Is(err, service.ErrNoOutput) {
		return errors.Wrap(domainerrors.ErrGenerationFailed, op)
	}

	return errors.Wrapf(err, "%s failed", op)
}

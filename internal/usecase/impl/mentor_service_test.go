package impl

import (
	"context"
	"testing"

	"mindset/internal/domain/entity"
	domainerrors "mindset/internal/domain/errors"
	"mindset/internal/domain/repository"
	"mindset/internal/domain/service"
	mockRepo "mindset/internal/mocks/repository"
	mockService "mindset/internal/mocks/service"
	"mindset/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mentorServiceFixtures holds all test dependencies for mentor service tests.
type mentorServiceFixtures struct {
	service   usecase.MentorUsecase
	userRepo  *mockRepo.MockUserRepository
	generator *mockService.MockTextGenerator
}

func createTestMentorService(t *testing.T) mentorServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	generator := mockService.NewMockTextGenerator(t)
	service := NewMentorService(userRepo, generator, newTestConfig(), newDiscardLogger())

	return mentorServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		generator: generator,
	}
}

func TestMentorService_Advance_Greeting(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(&entity.UserProfile{ID: "user-1"}, nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "GREETING",
		UserMessage: "hi",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageOnboardingInterest, output.NextStage)
	require.Len(t, output.Messages, 2)
	assert.Contains(t, output.Messages[0], "Welcome to Millionaire Mindset")
	assert.Contains(t, output.Messages[1], "what are you passionate about")
	assert.True(t, output.UpdatedProfile.IsEmpty())
}

func TestMentorService_Advance_UserNotFound(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "missing",
		Stage:       "GREETING",
		UserMessage: "hi",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMentorService_Advance_UnknownStageRecovers(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(&entity.UserProfile{ID: "user-1"}, nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "SOMETHING_ELSE",
		UserMessage: "hi",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageOnboardingInterest, output.NextStage)
	require.Len(t, output.Messages, 1)
	assert.Contains(t, output.Messages[0], "back on track")
	// Recovery never touches the profile, so no Patch expectation is set.
	assert.True(t, output.UpdatedProfile.IsEmpty())
}

func TestMentorService_Advance_InterestExtraction(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(&entity.UserProfile{ID: "user-1"}, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Run(func(ctx context.Context, req *service.GenerateRequest) {
			assert.Contains(t, req.Prompt, "extract the category")
			assert.Contains(t, req.Prompt, "I love building things with code")
		}).
		Return("Coding", nil)

	var patched *entity.ProfilePatch
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Run(func(ctx context.Context, id string, patch *entity.ProfilePatch) {
			patched = patch
		}).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "ONBOARDING_INTEREST",
		UserMessage: "I love building things with code",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageOnboardingGoal, output.NextStage)
	require.NotNil(t, patched)
	require.NotNil(t, patched.Interest)
	assert.Equal(t, "Coding", *patched.Interest)
}

func TestMentorService_Advance_InterestGenerationFails(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(&entity.UserProfile{ID: "user-1"}, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return("", service.ErrNoOutput)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "ONBOARDING_INTEREST",
		UserMessage: "coding I guess",
	})

	// A failed turn must not move the stage or patch the profile.
	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrGenerationFailed))
}

func TestMentorService_Advance_GoalRecommendsPathByInterest(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	profile := &entity.UserProfile{ID: "user-1", Interest: "Coding, Writing"}
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return("Fast Income", nil)

	var patched *entity.ProfilePatch
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Run(func(ctx context.Context, id string, patch *entity.ProfilePatch) {
			patched = patch
		}).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "ONBOARDING_GOAL",
		UserMessage: "I want to earn income quickly",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StagePathSelection, output.NextStage)
	require.Len(t, output.Messages, 3)
	assert.Contains(t, output.Messages[0], "your interest in Coding")
	assert.Contains(t, output.Messages[1], "Developing AI automations or simple web apps.")
	require.NotNil(t, patched)
	require.NotNil(t, patched.Goal)
	assert.Equal(t, "Fast Income", *patched.Goal)
	require.NotNil(t, patched.RecommendedPath)
	assert.Equal(t, "Developing AI automations or simple web apps.", *patched.RecommendedPath)
}

func TestMentorService_Advance_GoalFallsBackToOtherPath(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	profile := &entity.UserProfile{ID: "user-1"} // No interest recorded.
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return("Freedom Building", nil)
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "ONBOARDING_GOAL",
		UserMessage: "freedom",
	})

	require.NoError(t, err)
	assert.Contains(t, output.Messages[0], "your interest in Other")
	assert.Contains(t, output.Messages[1], "General content creation with AI tools.")
}

func TestMentorService_Advance_PathConfirmed(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	profile := &entity.UserProfile{
		ID:              "user-1",
		Interest:        "Writing",
		RecommendedPath: "Freelance writing using AI assistants.",
	}
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		GenerateReaction(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return(&service.Reaction{Affirmed: true, Response: "Alright, let's do this! Generating your 7-day plan now..."}, nil)

	var patched *entity.ProfilePatch
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Run(func(ctx context.Context, id string, patch *entity.ProfilePatch) {
			patched = patch
		}).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "PATH_SELECTION",
		UserMessage: "yes let's do it",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageProgressUpdate, output.NextStage)
	require.Len(t, output.Messages, 3)
	assert.Contains(t, output.Messages[1], "Day 1")
	assert.Contains(t, output.Messages[1], "Day 7")
	assert.Contains(t, output.Messages[1], profile.RecommendedPath)
	require.NotNil(t, patched)
	require.NotNil(t, patched.ChosenPath)
	assert.Equal(t, profile.RecommendedPath, *patched.ChosenPath)
	require.NotNil(t, patched.ProgressScore)
	assert.Equal(t, 0, *patched.ProgressScore)
}

func TestMentorService_Advance_PathDeclinedStays(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	profile := &entity.UserProfile{
		ID:              "user-1",
		RecommendedPath: "Freelance writing using AI assistants.",
	}
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		GenerateReaction(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return(&service.Reaction{Affirmed: false, Response: "No problem! What would you prefer to focus on instead?"}, nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "PATH_SELECTION",
		UserMessage: "not really",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StagePathSelection, output.NextStage)
	require.Len(t, output.Messages, 1)
	assert.True(t, output.UpdatedProfile.IsEmpty())
}

func TestMentorService_Advance_ProgressIncrement(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	profile := &entity.UserProfile{ID: "user-1", ProgressScore: 28}
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		GenerateReaction(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return(&service.Reaction{Affirmed: true, Response: "Awesome job! Keep that momentum going!"}, nil)

	var patched *entity.ProfilePatch
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Run(func(ctx context.Context, id string, patch *entity.ProfilePatch) {
			patched = patch
		}).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "PROGRESS_UPDATE",
		UserMessage: "done with day 3",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageProgressUpdate, output.NextStage)
	require.NotNil(t, patched)
	require.NotNil(t, patched.ProgressScore)
	assert.Equal(t, 42, *patched.ProgressScore)
}

func TestMentorService_Advance_ProgressNotAffirmedKeepsScore(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	profile := &entity.UserProfile{ID: "user-1", ProgressScore: 42}
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		GenerateReaction(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return(&service.Reaction{Affirmed: false, Response: "No worries, what part are you stuck on?"}, nil)

	var patched *entity.ProfilePatch
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Run(func(ctx context.Context, id string, patch *entity.ProfilePatch) {
			patched = patch
		}).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "PROGRESS_UPDATE",
		UserMessage: "I'm stuck",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageProgressUpdate, output.NextStage)
	require.NotNil(t, patched.ProgressScore)
	assert.Equal(t, 42, *patched.ProgressScore)
}

func TestMentorService_Advance_ProgressReachesComplete(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	profile := &entity.UserProfile{ID: "user-1", ProgressScore: 84}
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		GenerateReaction(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return(&service.Reaction{Affirmed: true, Response: "Awesome job!"}, nil)

	var patched *entity.ProfilePatch
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Run(func(ctx context.Context, id string, patch *entity.ProfilePatch) {
			patched = patch
		}).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "PROGRESS_UPDATE",
		UserMessage: "finished day 7",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageComplete, output.NextStage)
	require.Len(t, output.Messages, 2)
	assert.Contains(t, output.Messages[1], "completed the 7-day plan")
	require.NotNil(t, patched.ProgressScore)
	assert.Equal(t, 100, *patched.ProgressScore)
}

func TestMentorService_Advance_ProgressClampsBelowComplete(t *testing.T) {
	fx := createTestMentorService(t)
	mentorSrv, ok := fx.service.(*mentorService)
	require.True(t, ok)
	mentorSrv.cfg.Mentor.ProgressIncrement = 50
	mentorSrv.cfg.Mentor.CompleteThreshold = 150

	ctx := context.Background()
	profile := &entity.UserProfile{ID: "user-1", ProgressScore: 60}
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		GenerateReaction(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return(&service.Reaction{Affirmed: true, Response: "Nice!"}, nil)

	var patched *entity.ProfilePatch
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Run(func(ctx context.Context, id string, patch *entity.ProfilePatch) {
			patched = patch
		}).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "PROGRESS_UPDATE",
		UserMessage: "crushed it",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageProgressUpdate, output.NextStage)
	require.NotNil(t, patched.ProgressScore)
	assert.Equal(t, 99, *patched.ProgressScore)
}

func TestMentorService_Advance_CompleteMonetization(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	profile := &entity.UserProfile{
		ID:         "user-1",
		ChosenPath: "Freelance writing using AI assistants.",
	}
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(profile, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Run(func(ctx context.Context, req *service.GenerateRequest) {
			assert.Contains(t, req.Prompt, profile.ChosenPath)
		}).
		Return("Create a Fiverr gig today. Ready?", nil)

	var patched *entity.ProfilePatch
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Run(func(ctx context.Context, id string, patch *entity.ProfilePatch) {
			patched = patch
		}).
		Return(nil)

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "COMPLETE",
		UserMessage: "what now?",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StageComplete, output.NextStage)
	require.NotNil(t, patched.MonetizationStatus)
	assert.True(t, *patched.MonetizationStatus)
}

func TestMentorService_Advance_PatchFailureSurfaces(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(&entity.UserProfile{ID: "user-1"}, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("*service.GenerateRequest")).
		Return("Design", nil)
	fx.userRepo.EXPECT().
		Patch(ctx, "user-1", mock.AnythingOfType("*entity.ProfilePatch")).
		Return(errors.New("firestore unavailable"))

	output, err := fx.service.Advance(ctx, &usecase.AdvanceInput{
		UserID:      "user-1",
		Stage:       "ONBOARDING_INTEREST",
		UserMessage: "design",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to patch profile")
}

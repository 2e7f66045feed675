package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"mindset/config"
	"mindset/internal/domain/entity"
	domainerrors "mindset/internal/domain/errors"
	"mindset/internal/domain/repository"
	"mindset/internal/domain/service"
	"mindset/internal/usecase"

	"github.com/pkg/errors"
)

const (
	referralCodeLength   = 6
	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	referralRepo repository.ReferralRepository
	qrService    service.QRCodeService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	referralRepo repository.ReferralRepository,
	qrService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		qrService:    qrService,
		cfg:          cfg,
		logger:       logger,
	}
}

// Signup creates the profile document for a freshly authenticated account.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	code, err := generateReferralCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral code")
	}

	profile := &entity.UserProfile{
		ID:           input.UserID,
		Name:         input.Name,
		Email:        input.Email,
		ReferralCode: code,
		ReferredBy:   input.ReferredBy,
	}

	if err := srv.userRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "signup")
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.logger.Info("Profile created",
		slog.String("userID", input.UserID),
		slog.Bool("referred", input.ReferredBy != ""),
	)

	return &usecase.SignupOutput{Profile: profile}, nil
}

// GetProfile retrieves a profile by user ID.
func (srv *userService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	profile, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// ReferralSummary lists credited referrals and sums the commissions.
func (srv *userService) ReferralSummary(ctx context.Context, userID string) (*usecase.ReferralSummaryOutput, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := srv.referralRepo.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	var total float64
	for _, referral := range referrals {
		total += referral.CommissionAmount
	}

	return &usecase.ReferralSummaryOutput{
		Referrals:    referrals,
		TotalEarned:  total,
		ReferralCode: profile.ReferralCode,
		ReferralLink: srv.referralLink(profile.ReferralCode),
	}, nil
}

// ReferralQR renders a QR code pointing at the user's referral signup link.
func (srv *userService) ReferralQR(ctx context.Context, userID string) ([]byte, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateReferralQR(srv.referralLink(profile.ReferralCode))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}

func (srv *userService) referralLink(code string) string {
	return fmt.Sprintf("%s?ref=%s", srv.cfg.Referral.SignupBaseURL, code)
}

// generateReferralCode returns a short upper-alphanumeric share token.
func generateReferralCode() (string, error) {
	code := make([]byte, referralCodeLength)
	alphabetLen := big.NewInt(int64(len(referralCodeAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = referralCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}

package impl

import (
	"context"
	"log/slog"

	"mindset/config"
	deliverycontext "mindset/internal/delivery/context"
	"mindset/internal/domain/constants"
	"mindset/internal/domain/entity"
	domainerrors "mindset/internal/domain/errors"
	"mindset/internal/domain/repository"
	"mindset/internal/domain/service"
	"mindset/internal/usecase"

	"github.com/pkg/errors"
)

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	txManager repository.LedgerTxManager
	publisher service.EventPublisher
	cfg       *config.Config
	logger    *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(
	txManager repository.LedgerTxManager,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LedgerUsecase {
	return &ledgerService{
		txManager: txManager,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// RecordPayment records one completed purchase and credits the referrer when
// the payer was referred. The whole check-then-write sequence runs inside one
// atomic store transaction keyed by the payment ID, so duplicate callbacks
// (webhook retries, page reloads, concurrent requests) collapse to exactly
// one Transaction and at most one Referral.
func (srv *ledgerService) RecordPayment(ctx context.Context, input *usecase.RecordPaymentInput) error {
	srv.logger.Info("Recording payment",
		slog.String("userID", input.UserID),
		slog.String("paymentID", input.PaymentID),
	)

	var (
		replay           bool
		referralCredited bool
		referrerID       string
	)

	err := srv.txManager.Execute(ctx, func(store repository.LedgerStore) error {
		// The store retries this callback on contention; start every attempt
		// from a clean slate so nothing leaks from an aborted one.
		replay = false
		referralCredited = false
		referrerID = ""

		profile, err := store.GetProfile(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "record payment")
			}

			return errors.Wrap(err, "failed to read payer profile")
		}

		exists, err := store.TransactionExists(ctx, input.UserID, input.PaymentID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing transaction")
		}
		if exists {
			// Idempotent replay: nothing to write, the first delivery won.
			replay = true

			return nil
		}

		// All reads must finish before the first staged write: Firestore
		// transactions reject any read issued after a write.
		var referrer *entity.UserProfile
		if profile.ReferredBy != "" {
			referrer, err = store.FindReferrerByCode(ctx, profile.ReferredBy)
			if err != nil {
				if !errors.Is(err, repository.ErrUserNotFound) {
					return errors.Wrap(err, "failed to look up referrer")
				}

				// A dangling referral code does not fail the purchase.
				srv.logger.Info("Referrer not found, skipping commission",
					slog.String("referralCode", profile.ReferredBy),
					slog.String("userID", input.UserID),
				)
				referrer = nil
			}
		}

		if err := store.PutTransaction(&entity.Transaction{
			ID:                          input.PaymentID,
			UserID:                      input.UserID,
			ProductID:                   constants.ProductID,
			Amount:                      input.Amount,
			PaymentGatewayTransactionID: input.PaymentID,
		}); err != nil {
			return errors.Wrap(err, "failed to write transaction")
		}

		if referrer == nil {
			return nil
		}

		if err := store.PutReferral(&entity.Referral{
			ReferrerID:       referrer.ID,
			ReferredUserID:   input.UserID,
			TransactionID:    input.PaymentID,
			CommissionAmount: srv.cfg.Referral.CommissionAmount,
		}); err != nil {
			return errors.Wrap(err, "failed to write referral")
		}

		referralCredited = true
		referrerID = referrer.ID

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return errors.Wrap(domainerrors.ErrPaymentRecordFailed, err.Error())
	}

	if replay {
		srv.logger.Info("Duplicate payment callback ignored",
			slog.String("paymentID", input.PaymentID),
		)

		return nil
	}

	srv.publishPaymentEvent(ctx, input, referralCredited, referrerID)

	return nil
}

// publishPaymentEvent emits the post-commit event. Failures are logged only;
// the payment is already durable and must report success.
func (srv *ledgerService) publishPaymentEvent(ctx context.Context, input *usecase.RecordPaymentInput, referralCredited bool, referrerID string) {
	event := &service.PaymentEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		UserID:           input.UserID,
		PaymentID:        input.PaymentID,
		ProductID:        constants.ProductID,
		Amount:           input.Amount,
		ReferralCredited: referralCredited,
		ReferrerID:       referrerID,
	}

	if err := srv.publisher.PublishPaymentEvent(ctx, event); err != nil {
		srv.logger.Error("Failed to publish payment event",
			slog.String("paymentID", input.PaymentID),
			slog.Any("error", err),
		)
	}
}

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

// ledgerServiceFixtures holds all test dependencies for ledger service tests.
type ledgerServiceFixtures struct {
	service   usecase.LedgerUsecase
	txManager *mockRepo.MockLedgerTxManager
	publisher *mockService.MockEventPublisher
}

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	txManager := mockRepo.NewMockLedgerTxManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	service := NewLedgerService(txManager, publisher, newTestConfig(), newDiscardLogger())

	return ledgerServiceFixtures{
		service:   service,
		txManager: txManager,
		publisher: publisher,
	}
}

// onExecute wires the transaction mock to run the transactional closure
// against a store configured by setup, propagating the closure's error the
// way a real transaction commit would.
func (fx ledgerServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(store *mockRepo.MockLedgerStore)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.LedgerStore) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.LedgerStore) error) error {
			store := mockRepo.NewMockLedgerStore(t)
			setup(store)

			return fn(store)
		})
}

func TestLedgerService_RecordPayment_NoReferrer(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	var writtenTxn *entity.Transaction

	fx.onExecute(t, ctx, func(store *mockRepo.MockLedgerStore) {
		store.EXPECT().GetProfile(ctx, "user-1").Return(&entity.UserProfile{ID: "user-1"}, nil)
		store.EXPECT().TransactionExists(ctx, "user-1", "pay_123").Return(false, nil)
		store.EXPECT().
			PutTransaction(mock.AnythingOfType("*entity.Transaction")).
			Run(func(txn *entity.Transaction) {
				writtenTxn = txn
			}).
			Return(nil)
	})

	var published *service.PaymentEvent
	fx.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.AnythingOfType("*service.PaymentEvent")).
		Run(func(ctx context.Context, event *service.PaymentEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "user-1",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.NoError(t, err)
	require.NotNil(t, writtenTxn)
	assert.Equal(t, "pay_123", writtenTxn.ID)
	assert.Equal(t, "pay_123", writtenTxn.PaymentGatewayTransactionID)
	assert.Equal(t, "user-1", writtenTxn.UserID)
	assert.Equal(t, "Success_Pathway_Guide", writtenTxn.ProductID)
	assert.InEpsilon(t, 49.99, writtenTxn.Amount, 1e-9)
	require.NotNil(t, published)
	assert.False(t, published.ReferralCredited)
	assert.Empty(t, published.ReferrerID)
}

func TestLedgerService_RecordPayment_CreditsReferrer(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	var writtenReferral *entity.Referral

	fx.onExecute(t, ctx, func(store *mockRepo.MockLedgerStore) {
		store.EXPECT().GetProfile(ctx, "user-1").
			Return(&entity.UserProfile{ID: "user-1", ReferredBy: "AB12CD"}, nil)
		store.EXPECT().TransactionExists(ctx, "user-1", "pay_123").Return(false, nil)
		store.EXPECT().
			PutTransaction(mock.AnythingOfType("*entity.Transaction")).
			Return(nil)
		store.EXPECT().FindReferrerByCode(ctx, "AB12CD").
			Return(&entity.UserProfile{ID: "referrer-9", ReferralCode: "AB12CD"}, nil)
		store.EXPECT().
			PutReferral(mock.AnythingOfType("*entity.Referral")).
			Run(func(referral *entity.Referral) {
				writtenReferral = referral
			}).
			Return(nil)
	})

	var published *service.PaymentEvent
	fx.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.AnythingOfType("*service.PaymentEvent")).
		Run(func(ctx context.Context, event *service.PaymentEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "user-1",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.NoError(t, err)
	require.NotNil(t, writtenReferral)
	assert.Equal(t, "referrer-9", writtenReferral.ReferrerID)
	assert.Equal(t, "user-1", writtenReferral.ReferredUserID)
	assert.Equal(t, "pay_123", writtenReferral.TransactionID)
	assert.InEpsilon(t, 10.0, writtenReferral.CommissionAmount, 1e-9)
	require.NotNil(t, published)
	assert.True(t, published.ReferralCredited)
	assert.Equal(t, "referrer-9", published.ReferrerID)
}

func TestLedgerService_RecordPayment_DuplicateCallbackIsIdempotent(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	fx.onExecute(t, ctx, func(store *mockRepo.MockLedgerStore) {
		store.EXPECT().GetProfile(ctx, "user-1").
			Return(&entity.UserProfile{ID: "user-1", ReferredBy: "AB12CD"}, nil)
		store.EXPECT().TransactionExists(ctx, "user-1", "pay_123").Return(true, nil)
		// No PutTransaction, no referral lookup, no publish.
	})

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "user-1",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.NoError(t, err)
}

func TestLedgerService_RecordPayment_DanglingReferralCodeStillSucceeds(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	fx.onExecute(t, ctx, func(store *mockRepo.MockLedgerStore) {
		store.EXPECT().GetProfile(ctx, "user-1").
			Return(&entity.UserProfile{ID: "user-1", ReferredBy: "GONE99"}, nil)
		store.EXPECT().TransactionExists(ctx, "user-1", "pay_123").Return(false, nil)
		store.EXPECT().
			PutTransaction(mock.AnythingOfType("*entity.Transaction")).
			Return(nil)
		store.EXPECT().FindReferrerByCode(ctx, "GONE99").
			Return(nil, repository.ErrUserNotFound)
	})

	var published *service.PaymentEvent
	fx.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.AnythingOfType("*service.PaymentEvent")).
		Run(func(ctx context.Context, event *service.PaymentEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "user-1",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.False(t, published.ReferralCredited)
}

func TestLedgerService_RecordPayment_ReadsCompleteBeforeWrites(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	var calls []string
	record := func(name string) {
		calls = append(calls, name)
	}

	fx.onExecute(t, ctx, func(store *mockRepo.MockLedgerStore) {
		store.EXPECT().GetProfile(ctx, "user-1").
			Run(func(ctx context.Context, userID string) { record("GetProfile") }).
			Return(&entity.UserProfile{ID: "user-1", ReferredBy: "AB12CD"}, nil)
		store.EXPECT().TransactionExists(ctx, "user-1", "pay_123").
			Run(func(ctx context.Context, userID, paymentID string) { record("TransactionExists") }).
			Return(false, nil)
		store.EXPECT().FindReferrerByCode(ctx, "AB12CD").
			Run(func(ctx context.Context, code string) { record("FindReferrerByCode") }).
			Return(&entity.UserProfile{ID: "referrer-9"}, nil)
		store.EXPECT().
			PutTransaction(mock.AnythingOfType("*entity.Transaction")).
			Run(func(txn *entity.Transaction) { record("PutTransaction") }).
			Return(nil)
		store.EXPECT().
			PutReferral(mock.AnythingOfType("*entity.Referral")).
			Run(func(referral *entity.Referral) { record("PutReferral") }).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.AnythingOfType("*service.PaymentEvent")).
		Return(nil)

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "user-1",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.NoError(t, err)
	// Firestore rejects reads issued after a staged write, so every read
	// must come before the first Put.
	assert.Equal(t, []string{
		"GetProfile",
		"TransactionExists",
		"FindReferrerByCode",
		"PutTransaction",
		"PutReferral",
	}, calls)
}

func TestLedgerService_RecordPayment_RetryDoesNotLeakReferralState(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()

	// First attempt credits the referrer but is aborted by contention; the
	// retry finds the referral code dangling. The published event must
	// reflect only the attempt that committed.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.LedgerStore) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.LedgerStore) error) error {
			first := mockRepo.NewMockLedgerStore(t)
			first.EXPECT().GetProfile(ctx, "user-1").
				Return(&entity.UserProfile{ID: "user-1", ReferredBy: "AB12CD"}, nil)
			first.EXPECT().TransactionExists(ctx, "user-1", "pay_123").Return(false, nil)
			first.EXPECT().FindReferrerByCode(ctx, "AB12CD").
				Return(&entity.UserProfile{ID: "referrer-9"}, nil)
			first.EXPECT().PutTransaction(mock.AnythingOfType("*entity.Transaction")).Return(nil)
			first.EXPECT().PutReferral(mock.AnythingOfType("*entity.Referral")).Return(nil)
			require.NoError(t, fn(first))

			retry := mockRepo.NewMockLedgerStore(t)
			retry.EXPECT().GetProfile(ctx, "user-1").
				Return(&entity.UserProfile{ID: "user-1", ReferredBy: "AB12CD"}, nil)
			retry.EXPECT().TransactionExists(ctx, "user-1", "pay_123").Return(false, nil)
			retry.EXPECT().FindReferrerByCode(ctx, "AB12CD").
				Return(nil, repository.ErrUserNotFound)
			retry.EXPECT().PutTransaction(mock.AnythingOfType("*entity.Transaction")).Return(nil)

			return fn(retry)
		})

	var published *service.PaymentEvent
	fx.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.AnythingOfType("*service.PaymentEvent")).
		Run(func(ctx context.Context, event *service.PaymentEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "user-1",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.False(t, published.ReferralCredited)
	assert.Empty(t, published.ReferrerID)
}

func TestLedgerService_RecordPayment_PayerNotFound(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	fx.onExecute(t, ctx, func(store *mockRepo.MockLedgerStore) {
		store.EXPECT().GetProfile(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "ghost",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestLedgerService_RecordPayment_ReferralWriteFailureAborts(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	fx.onExecute(t, ctx, func(store *mockRepo.MockLedgerStore) {
		store.EXPECT().GetProfile(ctx, "user-1").
			Return(&entity.UserProfile{ID: "user-1", ReferredBy: "AB12CD"}, nil)
		store.EXPECT().TransactionExists(ctx, "user-1", "pay_123").Return(false, nil)
		store.EXPECT().
			PutTransaction(mock.AnythingOfType("*entity.Transaction")).
			Return(nil)
		store.EXPECT().FindReferrerByCode(ctx, "AB12CD").
			Return(&entity.UserProfile{ID: "referrer-9"}, nil)
		store.EXPECT().
			PutReferral(mock.AnythingOfType("*entity.Referral")).
			Return(errors.New("write contention"))
	})

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "user-1",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentRecordFailed))
	assert.Contains(t, err.Error(), "failed to write referral")
}

func TestLedgerService_RecordPayment_PublishFailureDoesNotFailPayment(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	fx.onExecute(t, ctx, func(store *mockRepo.MockLedgerStore) {
		store.EXPECT().GetProfile(ctx, "user-1").Return(&entity.UserProfile{ID: "user-1"}, nil)
		store.EXPECT().TransactionExists(ctx, "user-1", "pay_123").Return(false, nil)
		store.EXPECT().
			PutTransaction(mock.AnythingOfType("*entity.Transaction")).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.AnythingOfType("*service.PaymentEvent")).
		Return(errors.New("broker unavailable"))

	err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		UserID:    "user-1",
		PaymentID: "pay_123",
		Amount:    49.99,
	})

	require.NoError(t, err)
}

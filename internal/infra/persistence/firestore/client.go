// Package firestore contains the concrete implementation of the persistence
// layer on top of Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"mindset/config"
	"mindset/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection and subcollection names in the document store.
const (
	usersCollection        = "users"
	transactionsCollection = "transactions"
	referralsCollection    = "referrals"

	referralCodeField = "referralCode"
	referrerIDField   = "referrerId"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New initializes the Firebase app and returns its Firestore client. The
// client is closed through the fx lifecycle on shutdown.
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Logger.Info("Firestore client initialized",
		slog.String("projectID", cfg.ProjectID),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

func userDoc(client *firestore.Client, userID string) *firestore.DocumentRef {
	return client.Collection(usersCollection).Doc(userID)
}

func transactionDoc(client *firestore.Client, userID, paymentID string) *firestore.DocumentRef {
	return userDoc(client, userID).Collection(transactionsCollection).Doc(paymentID)
}

package main

import (
	"context"
	"log/slog"
	"os"

	"mindset/config"
	"mindset/internal/delivery"
	"mindset/internal/delivery/http"
	"mindset/internal/delivery/http/middleware"
	"mindset/internal/delivery/http/router/handler"
	"mindset/internal/domain/service"
	infragenai "mindset/internal/infra/genai"
	logs "mindset/internal/infra/log"
	"mindset/internal/infra/persistence/firestore"
	"mindset/internal/infra/pubsub"
	"mindset/internal/infra/qrcode"
	"mindset/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewReferralRepository,
			firestore.NewLedgerTxManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newGeminiGenerator,
			newQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

// newGeminiGenerator creates the Gemini text generator with dependency injection
func newGeminiGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TextGenerator, error) {
	return infragenai.NewGeminiGenerator(ctx, cfg.Gemini, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMentorService,
			impl.NewLedgerService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMentorHandler,
			handler.NewPaymentHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/delivery/worker"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/crypto"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/mail"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/infra/qrcode"
	"bazaar/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCredentialRepository,
			postgres.NewVoucherRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newHasher,
			crypto.NewSaltSource,
			newCredentialManager,
			auth.NewJWTService,
			mail.NewSlogSender,
			newQRCodeService,
		),
	)
}

// newHasher selects the digest algorithm from configuration
func newHasher(cfg *config.Config) (service.Hasher, error) {
	algorithm := ""
	if cfg.Security != nil {
		algorithm = cfg.Security.HashAlgorithm
	}

	hasher, err := crypto.NewHasher(algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create hasher: %w", err)
	}

	return hasher, nil
}

// newCredentialManager wires the hasher, salt source and password policy together
func newCredentialManager(hasher service.Hasher, salts service.SaltSource, cfg *config.Config) (service.CredentialManager, error) {
	return crypto.NewCredentialManager(crypto.CredentialManagerParams{
		Hasher: hasher,
		Salts:  salts,
		Policy: cfg.PasswordPolicy,
	})
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
			impl.NewAccountService,
			impl.NewVoucherService,
			impl.NewSweeperService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewVoucherHandler,
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
			fx.Annotate(
				worker.NewSweepWorker,
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

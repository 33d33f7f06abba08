// Package fitlife собирает приложение: хранилище, репозитории, сервисы,
// HTTP-сервер и сидирование зарезервированной учётной записи администратора.
package fitlife

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/fitlifehub/fitlife-backend/internal/adviceprovider"
	"github.com/fitlifehub/fitlife-backend/internal/config"
	"github.com/fitlifehub/fitlife-backend/internal/lib/jwt"
	"github.com/fitlifehub/fitlife-backend/internal/lib/smtp"
	adviceservice "github.com/fitlifehub/fitlife-backend/internal/services/advice"
	authservice "github.com/fitlifehub/fitlife-backend/internal/services/auth"
	catalogservice "github.com/fitlifehub/fitlife-backend/internal/services/catalog"
	feedservice "github.com/fitlifehub/fitlife-backend/internal/services/feed"
	senderservice "github.com/fitlifehub/fitlife-backend/internal/services/sender"
	subservice "github.com/fitlifehub/fitlife-backend/internal/services/subscription"
	trackerservice "github.com/fitlifehub/fitlife-backend/internal/services/tracker"
	"github.com/fitlifehub/fitlife-backend/internal/storage"
	"github.com/fitlifehub/fitlife-backend/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	store  *storage.KVStore
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := storage.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(store, cfg.AdminEmail)
	planRepo := repository.NewPlanRepository(store)
	requestRepo := repository.NewRequestRepository(store)
	videoRepo := repository.NewVideoRepository(store)
	recipeRepo := repository.NewRecipeRepository(store)
	mealRepo := repository.NewMealRepository(store)
	postRepo := repository.NewPostRepository(store)

	transport := smtp.NewTransport(cfg.SMTPConnection, logger)
	senderService := senderservice.NewSenderService(transport, logger)

	subscriptionService := subservice.NewSubscriptionService(
		planRepo, requestRepo, userRepo, senderService, logger)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(userRepo, subscriptionService, jwtMaker, logger)

	if err := authService.EnsureAdmin(ctx, cfg.AdminName, cfg.DefaultPassword); err != nil {
		return nil, err
	}

	catalogService := catalogservice.NewCatalogService(videoRepo, recipeRepo, logger)
	trackerService := trackerservice.NewTrackerService(mealRepo, logger)
	feedService := feedservice.NewFeedService(postRepo, logger)

	providerClient := adviceprovider.NewClient(
		cfg.AdviceURL, cfg.AdviceKey, cfg.AdviceModel, cfg.AdviceTimeout)
	adviceService := adviceservice.NewAdviceService(providerClient, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, &Services{
		Auth:         authService,
		Subscription: subscriptionService,
		Catalog:      catalogService,
		Tracker:      trackerService,
		Feed:         feedService,
		Advice:       adviceService,
		Users:        userRepo,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.store.Close(); cerr != nil {
			a.logger.Error("failed to close kv store", slog.Any("err", cerr))
		}
		return err
	}
}

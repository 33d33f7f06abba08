// Package fitlife предоставляет маршруты для основного приложения.
package fitlife

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/advice/ask"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/auth/login"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/auth/register"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/feed/postcreate"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/feed/postlist"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/feed/postremove"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/plan/plancreate"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/plan/planlist"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/plan/planremove"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/plan/planupdate"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/recipe/recipecreate"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/recipe/recipelist"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/recipe/reciperemove"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/subscription/approve"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/subscription/reject"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/subscription/reqlist"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/subscription/subscribe"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/subscription/substatus"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/tracker/mealcreate"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/tracker/mealremove"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/tracker/mealsummary"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/video/videocreate"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/video/videolist"
	"github.com/fitlifehub/fitlife-backend/internal/http/handlers/video/videoremove"
	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	adviceservice "github.com/fitlifehub/fitlife-backend/internal/services/advice"
	authservice "github.com/fitlifehub/fitlife-backend/internal/services/auth"
	catalogservice "github.com/fitlifehub/fitlife-backend/internal/services/catalog"
	feedservice "github.com/fitlifehub/fitlife-backend/internal/services/feed"
	subservice "github.com/fitlifehub/fitlife-backend/internal/services/subscription"
	trackerservice "github.com/fitlifehub/fitlife-backend/internal/services/tracker"
	"github.com/fitlifehub/fitlife-backend/internal/storage/repository"
)

// Services объединяет сервисы приложения для регистрации маршрутов.
type Services struct {
	Auth         *authservice.AuthService
	Subscription *subservice.SubscriptionService
	Catalog      *catalogservice.CatalogService
	Tracker      *trackerservice.TrackerService
	Feed         *feedservice.FeedService
	Advice       *adviceservice.AdviceService
	Users        *repository.UserRepository
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/plans", planlist.New(logger, s.Subscription).ServeHTTP)
			r.Post("/subscriptions", subscribe.New(logger, s.Subscription).ServeHTTP)
			r.Get("/subscriptions/status", substatus.New(logger, s.Subscription).ServeHTTP)

			r.Get("/videos", videolist.New(logger, s.Catalog).ServeHTTP)
			r.Get("/recipes", recipelist.New(logger, s.Catalog).ServeHTTP)

			r.Post("/meals", mealcreate.New(logger, s.Tracker).ServeHTTP)
			r.Get("/meals", mealsummary.New(logger, s.Tracker).ServeHTTP)
			r.Delete("/meals/{id}", mealremove.New(logger, s.Tracker).ServeHTTP)

			r.Post("/posts", postcreate.New(logger, s.Feed, s.Users).ServeHTTP)
			r.Get("/posts", postlist.New(logger, s.Feed).ServeHTTP)
			r.Delete("/posts/{id}", postremove.New(logger, s.Feed).ServeHTTP)

			r.Post("/advice", ask.New(logger, s.Advice).ServeHTTP)

			// Группа только для администратора
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))

				r.Post("/plans", plancreate.New(logger, s.Subscription).ServeHTTP)
				r.Put("/plans/{id}", planupdate.New(logger, s.Subscription).ServeHTTP)
				r.Delete("/plans/{id}", planremove.New(logger, s.Subscription).ServeHTTP)

				r.Get("/subscriptions/requests", reqlist.New(logger, s.Subscription).ServeHTTP)
				r.Post("/subscriptions/{id}/approve", approve.New(logger, s.Subscription).ServeHTTP)
				r.Post("/subscriptions/{id}/reject", reject.New(logger, s.Subscription).ServeHTTP)

				r.Post("/videos", videocreate.New(logger, s.Catalog).ServeHTTP)
				r.Delete("/videos/{id}", videoremove.New(logger, s.Catalog).ServeHTTP)
				r.Post("/recipes", recipecreate.New(logger, s.Catalog).ServeHTTP)
				r.Delete("/recipes/{id}", reciperemove.New(logger, s.Catalog).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

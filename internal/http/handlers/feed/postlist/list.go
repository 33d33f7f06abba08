// Package postlist реализует HTTP-обработчик чтения ленты трансформаций.
// Посты возвращаются от новых к старым.
package postlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/fitlifehub/fitlife-backend/internal/http/response"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// Handler обрабатывает запросы на чтение ленты.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис ленты трансформаций
}

// Service описывает интерфейс чтения ленты.
type Service interface {
	ListPosts(ctx context.Context) ([]*models.Post, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Лента трансформаций
// @Description Возвращает посты всех пользователей от новых к старым.
// @Tags Feed
// @Produce  json
// @Success 200 {object} map[string]any "Список постов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /posts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.postlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	posts, err := h.service.ListPosts(r.Context())
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list posts"))
		return
	}

	log.Info("posts listed", slog.Int("count", len(posts)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"posts": posts,
	}))
}

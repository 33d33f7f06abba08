// Package postremove реализует HTTP-обработчик удаления поста из ленты.
// Удалять пост может его автор или администратор.
package postremove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	"github.com/fitlifehub/fitlife-backend/internal/http/response"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	feedservice "github.com/fitlifehub/fitlife-backend/internal/services/feed"
)

// Handler обрабатывает запросы на удаление постов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис ленты трансформаций
}

// Service описывает интерфейс бизнес-логики удаления поста.
type Service interface {
	RemovePost(ctx context.Context, postID, requesterID, requesterRole string) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить пост
// @Description Удаляет пост по ID. Доступно автору поста и администратору.
// @Tags Feed
// @Produce  json
// @Param id path string true "ID поста"
// @Success 200 {object} response.Response "Пост удалён"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Нет прав на удаление"
// @Failure 404 {object} response.ErrorResponse "Пост не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.postremove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	postID := chi.URLParam(r, "id")
	if postID == "" {
		log.Error("missing post id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing post id"))
		return
	}

	userID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	role, _ := r.Context().Value(middlewarectx.Role).(string)

	deleted, err := h.service.RemovePost(r.Context(), postID, userID, role)
	if err != nil {
		if errors.Is(err, feedservice.ErrNotPostAuthor) {
			log.Error("not the post author", slog.String("user_id", userID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("not allowed to delete this post"))
			return
		}
		log.Error("failed to remove post", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove post"))
		return
	}
	if !deleted {
		log.Error("post not found", slog.String("post_id", postID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("post not found"))
		return
	}

	log.Info("post removed",
		slog.String("post_id", postID),
		slog.String("user_id", userID))
	render.JSON(w, r, response.OK())
}

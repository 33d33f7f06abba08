// Package videoremove реализует HTTP-обработчик удаления тренировочного видео.
// Доступен только администратору.
package videoremove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/fitlifehub/fitlife-backend/internal/http/response"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
)

// Handler обрабатывает запросы на удаление видео.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис каталогов контента
}

// Service описывает интерфейс бизнес-логики удаления видео.
type Service interface {
	RemoveVideo(ctx context.Context, id string) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить тренировочное видео
// @Description Удаляет видео из каталога по ID. Только для администратора.
// @Tags Videos
// @Produce  json
// @Param id path string true "ID видео"
// @Success 200 {object} response.Response "Видео удалено"
// @Failure 404 {object} response.ErrorResponse "Видео не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /videos/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	videoID := chi.URLParam(r, "id")
	if videoID == "" {
		log.Error("missing video id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing video id"))
		return
	}

	deleted, err := h.service.RemoveVideo(r.Context(), videoID)
	if err != nil {
		log.Error("failed to remove video", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove video"))
		return
	}
	if !deleted {
		log.Error("video not found", slog.String("video_id", videoID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("video not found"))
		return
	}

	log.Info("video removed", slog.String("video_id", videoID))
	render.JSON(w, r, response.OK())
}

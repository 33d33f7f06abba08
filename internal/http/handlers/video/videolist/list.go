// Package videolist реализует HTTP-обработчик получения каталога тренировочных видео.
package videolist

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

// Handler обрабатывает запросы на чтение каталога видео.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис каталогов контента
}

// Service описывает интерфейс чтения каталога видео.
type Service interface {
	ListVideos(ctx context.Context) ([]*models.WorkoutVideo, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Каталог тренировочных видео
// @Description Возвращает все тренировочные видео.
// @Tags Videos
// @Produce  json
// @Success 200 {object} map[string]any "Список видео"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /videos [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	videos, err := h.service.ListVideos(r.Context())
	if err != nil {
		log.Error("failed to list videos", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list videos"))
		return
	}

	log.Info("videos listed", slog.Int("count", len(videos)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"videos": videos,
	}))
}

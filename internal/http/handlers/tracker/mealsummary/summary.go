// Package mealsummary реализует HTTP-обработчик дневного итога трекера калорий.
// День передаётся необязательным query-параметром day в формате 2006-01-02,
// по умолчанию используется текущий день.
package mealsummary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	"github.com/fitlifehub/fitlife-backend/internal/http/response"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// Handler обрабатывает запросы дневных итогов трекера.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис трекера калорий
}

// Service описывает интерфейс подсчёта дневного итога.
type Service interface {
	DailySummary(ctx context.Context, userID, day string) (*models.DailySummary, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Дневной итог трекера калорий
// @Description Возвращает записи и суммарную калорийность текущего пользователя за день.
// @Tags Tracker
// @Produce  json
// @Param day query string false "День в формате 2006-01-02, по умолчанию сегодня"
// @Success 200 {object} map[string]any "Итог за день"
// @Failure 400 {object} response.ErrorResponse "Некорректный формат дня"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /meals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tracker.mealsummary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	day := r.URL.Query().Get("day")

	summary, err := h.service.DailySummary(r.Context(), userID, day)
	if err != nil {
		log.Error("failed to build daily summary", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("could not build daily summary"))
		return
	}

	log.Info("daily summary built",
		slog.String("user_id", userID),
		slog.String("day", summary.Date),
		slog.Int("total_calories", summary.TotalCalories))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"summary": summary,
	}))
}

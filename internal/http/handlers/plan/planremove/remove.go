// Package planremove реализует HTTP-обработчик удаления тарифного плана
// с каскадом: отмена подписок у пользователей плана и автоматическое
// отклонение ожидающих заявок. Доступен только администратору.
package planremove

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

// Handler обрабатывает запросы на удаление тарифных планов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис жизненного цикла подписок
}

// Service описывает интерфейс бизнес-логики удаления плана с каскадом.
type Service interface {
	DeletePlan(ctx context.Context, planID string) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить тарифный план
// @Description Удаляет план из каталога с каскадом по подпискам и заявкам. Только для администратора.
// @Tags Plans
// @Produce  json
// @Param id path string true "ID плана"
// @Success 200 {object} response.Response "План удалён"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /plans/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	planID := chi.URLParam(r, "id")
	if planID == "" {
		log.Error("missing plan id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing plan id"))
		return
	}

	deleted, err := h.service.DeletePlan(r.Context(), planID)
	if err != nil {
		log.Error("failed to delete plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete plan"))
		return
	}
	if !deleted {
		log.Error("plan not found", slog.String("plan_id", planID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("plan not found"))
		return
	}

	log.Info("plan deleted", slog.String("plan_id", planID))
	render.JSON(w, r, response.OK())
}

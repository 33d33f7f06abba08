// Package mealremove реализует HTTP-обработчик удаления записи трекера калорий.
// Пользователь может удалять только собственные записи.
package mealremove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	"github.com/fitlifehub/fitlife-backend/internal/http/response"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
)

// Handler обрабатывает запросы на удаление приёмов пищи.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис трекера калорий
}

// Service описывает интерфейс бизнес-логики удаления записи трекера.
type Service interface {
	RemoveMeal(ctx context.Context, userID, mealID string) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить приём пищи
// @Description Удаляет запись трекера текущего пользователя по ID.
// @Tags Tracker
// @Produce  json
// @Param id path string true "ID записи"
// @Success 200 {object} response.Response "Запись удалена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /meals/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tracker.mealremove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	mealID := chi.URLParam(r, "id")
	if mealID == "" {
		log.Error("missing meal id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing meal id"))
		return
	}

	userID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	deleted, err := h.service.RemoveMeal(r.Context(), userID, mealID)
	if err != nil {
		log.Error("failed to remove meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove meal entry"))
		return
	}
	if !deleted {
		log.Error("meal not found", slog.String("meal_id", mealID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("meal entry not found"))
		return
	}

	log.Info("meal removed",
		slog.String("meal_id", mealID),
		slog.String("user_id", userID))
	render.JSON(w, r, response.OK())
}

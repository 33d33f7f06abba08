// Package reject реализует HTTP-обработчик отклонения заявки на подписку.
package reject

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	"github.com/fitlifehub/fitlife-backend/internal/http/response"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	"github.com/fitlifehub/fitlife-backend/internal/models"
	subservice "github.com/fitlifehub/fitlife-backend/internal/services/subscription"
)

// Handler обрабатывает запросы на отклонение заявок.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис жизненного цикла подписок
}

// Service описывает интерфейс бизнес-логики отклонения заявки.
type Service interface {
	RejectSubscription(ctx context.Context, requestID, adminID, notes string) (*models.SubscriptionRequest, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отклонить заявку на подписку
// @Description Переводит заявку в терминальный статус rejected с комментарием администратора. Только для администратора.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param id path string true "ID заявки"
// @Param request body models.DummyReject true "Комментарий администратора"
// @Success 200 {object} map[string]any "Обновлённая заявка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 409 {object} response.ErrorResponse "Заявка уже обработана"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /subscriptions/{id}/reject [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.reject"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		log.Error("missing request id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing request id"))
		return
	}

	var req models.DummyReject
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	adminID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || adminID == "" {
		log.Error("admin uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	request, err := h.service.RejectSubscription(r.Context(), requestID, adminID, req.Notes)
	if err != nil {
		if errors.Is(err, subservice.ErrRequestAlreadyFinal) {
			log.Error("request already processed", slog.String("request_id_sub", requestID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("request already processed"))
			return
		}
		log.Error("failed to reject request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not reject request"))
		return
	}
	if request == nil {
		log.Error("request not found", slog.String("request_id_sub", requestID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("request not found"))
		return
	}

	log.Info("subscription rejected",
		slog.String("request_id_sub", request.ID),
		slog.String("user_id", request.UserID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"request": request,
	}))
}

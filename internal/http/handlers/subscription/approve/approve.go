// Package approve реализует HTTP-обработчик одобрения заявки на подписку.
//
// Одобрение активирует подписку пользователя: дата окончания считается
// календарными днями от даты решения. Терминальные заявки повторно
// не обрабатываются.
package approve

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	"github.com/fitlifehub/fitlife-backend/internal/http/response"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	"github.com/fitlifehub/fitlife-backend/internal/models"
	subservice "github.com/fitlifehub/fitlife-backend/internal/services/subscription"
)

// Handler обрабатывает запросы на одобрение заявок.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис жизненного цикла подписок
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики одобрения заявки.
type Service interface {
	ApproveSubscription(ctx context.Context, requestID, adminID string, durationDays int) (*models.SubscriptionRequest, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Одобрить заявку на подписку
// @Description Переводит заявку в статус active и активирует подписку пользователя. Только для администратора.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param id path string true "ID заявки"
// @Param request body models.DummyApprove true "Срок подписки в днях"
// @Success 200 {object} map[string]any "Обновлённая заявка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 409 {object} response.ErrorResponse "Заявка уже обработана"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /subscriptions/{id}/approve [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.approve"

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

	var req models.DummyApprove
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	adminID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || adminID == "" {
		log.Error("admin uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	request, err := h.service.ApproveSubscription(r.Context(), requestID, adminID, req.DurationDays)
	if err != nil {
		if errors.Is(err, subservice.ErrRequestAlreadyFinal) {
			log.Error("request already processed", slog.String("request_id_sub", requestID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("request already processed"))
			return
		}
		log.Error("failed to approve request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not approve request"))
		return
	}
	if request == nil {
		log.Error("request not found", slog.String("request_id_sub", requestID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("request not found"))
		return
	}

	log.Info("subscription approved",
		slog.String("request_id_sub", request.ID),
		slog.String("user_id", request.UserID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"request": request,
	}))
}

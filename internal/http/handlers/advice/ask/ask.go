// Package ask реализует HTTP-обработчик вопросов о питании.
//
// Ответ генерируется внешним сервисом; при его недоступности пользователь
// получает вежливое извинение с кодом 200, а не ошибку.
package ask

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	"github.com/fitlifehub/fitlife-backend/internal/http/response"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// Handler обрабатывает вопросы о питании.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис рекомендаций по питанию
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс сервиса рекомендаций.
type Service interface {
	GetAdvice(ctx context.Context, userID string, req models.DummyAdvice) string
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
// @Summary Вопрос о питании
// @Description Возвращает сгенерированный ответ на вопрос пользователя о питании с учётом истории диалога.
// @Tags Advice
// @Accept  json
// @Produce  json
// @Param request body models.DummyAdvice true "Вопрос и история диалога"
// @Success 200 {object} map[string]any "Ответ сервиса рекомендаций"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Security BearerAuth
// @Router /advice [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.advice.ask"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyAdvice
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

	userID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	answer := h.service.GetAdvice(r.Context(), userID, req)

	log.Info("advice answered", slog.String("user_id", userID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"answer": answer,
	}))
}

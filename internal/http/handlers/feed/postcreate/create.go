// Package postcreate реализует HTTP-обработчик публикации поста
// в ленте трансформаций. Имя автора фиксируется снимком на момент публикации.
package postcreate

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

// Handler обрабатывает запросы на публикацию постов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис ленты трансформаций
	users    UserService         // Сервис чтения данных пользователя
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики публикации.
type Service interface {
	CreatePost(ctx context.Context, userID, authorName string, req models.DummyPost) (*models.Post, error)
}

// UserService описывает чтение пользователя для снимка имени автора.
type UserService interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, service Service, users UserService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		users:    users,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Опубликовать пост
// @Description Создаёт пост текущего пользователя в ленте трансформаций.
// @Tags Feed
// @Accept  json
// @Produce  json
// @Param request body models.DummyPost true "Данные поста"
// @Success 200 {object} map[string]any "Созданный пост"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /posts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.postcreate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPost
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

	authorName := ""
	if user, err := h.users.GetByID(r.Context(), userID); err == nil && user != nil {
		authorName = user.Username
	}

	post, err := h.service.CreatePost(r.Context(), userID, authorName, req)
	if err != nil {
		log.Error("failed to create post", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create post"))
		return
	}

	log.Info("post created",
		slog.String("post_id", post.ID),
		slog.String("user_id", userID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"post": post,
	}))
}

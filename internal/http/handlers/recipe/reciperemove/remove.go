// Package reciperemove реализует HTTP-обработчик удаления рецепта.
// Доступен только администратору.
package reciperemove

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

// Handler обрабатывает запросы на удаление рецептов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис каталогов контента
}

// Service описывает интерфейс бизнес-логики удаления рецепта.
type Service interface {
	RemoveRecipe(ctx context.Context, id string) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить рецепт
// @Description Удаляет рецепт из каталога по ID. Только для администратора.
// @Tags Recipes
// @Produce  json
// @Param id path string true "ID рецепта"
// @Success 200 {object} response.Response "Рецепт удалён"
// @Failure 404 {object} response.ErrorResponse "Рецепт не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /recipes/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeID := chi.URLParam(r, "id")
	if recipeID == "" {
		log.Error("missing recipe id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing recipe id"))
		return
	}

	deleted, err := h.service.RemoveRecipe(r.Context(), recipeID)
	if err != nil {
		log.Error("failed to remove recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove recipe"))
		return
	}
	if !deleted {
		log.Error("recipe not found", slog.String("recipe_id", recipeID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("recipe not found"))
		return
	}

	log.Info("recipe removed", slog.String("recipe_id", recipeID))
	render.JSON(w, r, response.OK())
}

// Package services содержит бизнес-логику каталогов контента:
// тренировочных видео и рецептов.
package services

import (
	"context"
	"log/slog"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// VideoRepository определяет методы для работы с каталогом видео.
type VideoRepository interface {
	List(ctx context.Context) ([]*models.WorkoutVideo, error)
	GetByID(ctx context.Context, id string) (*models.WorkoutVideo, error)
	Add(ctx context.Context, req models.DummyVideo, createdBy string) (*models.WorkoutVideo, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RecipeRepository определяет методы для работы с каталогом рецептов.
type RecipeRepository interface {
	List(ctx context.Context) ([]*models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	Add(ctx context.Context, req models.DummyRecipe, createdBy string) (*models.Recipe, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CatalogService реализует операции над каталогами контента.
type CatalogService struct {
	videos  VideoRepository
	recipes RecipeRepository
	log     *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(videos VideoRepository, recipes RecipeRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{
		videos:  videos,
		recipes: recipes,
		log:     log,
	}
}

// ListVideos возвращает каталог тренировочных видео.
func (s *CatalogService) ListVideos(ctx context.Context) ([]*models.WorkoutVideo, error) {
	return s.videos.List(ctx)
}

// AddVideo добавляет видео в каталог.
func (s *CatalogService) AddVideo(ctx context.Context, req models.DummyVideo, createdBy string) (*models.WorkoutVideo, error) {
	video, err := s.videos.Add(ctx, req, createdBy)
	if err != nil {
		return nil, err
	}
	s.log.Info("added workout video", slog.String("video_id", video.ID), slog.String("title", video.Title))
	return video, nil
}

// RemoveVideo удаляет видео из каталога. Возвращает true, если запись была удалена.
func (s *CatalogService) RemoveVideo(ctx context.Context, id string) (bool, error) {
	deleted, err := s.videos.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("removed workout video", slog.String("video_id", id))
	}
	return deleted, nil
}

// ListRecipes возвращает каталог рецептов.
func (s *CatalogService) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	return s.recipes.List(ctx)
}

// AddRecipe добавляет рецепт в каталог.
func (s *CatalogService) AddRecipe(ctx context.Context, req models.DummyRecipe, createdBy string) (*models.Recipe, error) {
	recipe, err := s.recipes.Add(ctx, req, createdBy)
	if err != nil {
		return nil, err
	}
	s.log.Info("added recipe", slog.String("recipe_id", recipe.ID), slog.String("title", recipe.Title))
	return recipe, nil
}

// RemoveRecipe удаляет рецепт из каталога. Возвращает true, если запись была удалена.
func (s *CatalogService) RemoveRecipe(ctx context.Context, id string) (bool, error) {
	deleted, err := s.recipes.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("removed recipe", slog.String("recipe_id", id))
	}
	return deleted, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// RecipeRepository управляет каталогом рецептов.
type RecipeRepository struct {
	store Store
}

// NewRecipeRepository создает новый RecipeRepository.
func NewRecipeRepository(store Store) *RecipeRepository {
	return &RecipeRepository{store: store}
}

func (r *RecipeRepository) load(ctx context.Context) ([]*models.Recipe, error) {
	const op = "repository.recipes.load"
	var recipes []*models.Recipe
	if _, err := r.store.Read(ctx, recipesKey, &recipes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return recipes, nil
}

func (r *RecipeRepository) save(ctx context.Context, recipes []*models.Recipe) error {
	const op = "repository.recipes.save"
	if err := r.store.Write(ctx, recipesKey, recipes); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// List возвращает все рецепты каталога.
func (r *RecipeRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	return r.load(ctx)
}

// GetByID возвращает рецепт по ID или (nil, nil), если не найден.
func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	recipes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range recipes {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

// Add создает новый рецепт, назначая ID и дату добавления.
func (r *RecipeRepository) Add(ctx context.Context, req models.DummyRecipe, createdBy string) (*models.Recipe, error) {
	recipes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Calories:    req.Calories,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   createdBy,
	}

	recipes = append(recipes, recipe)
	if err := r.save(ctx, recipes); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete удаляет рецепт по ID. Возвращает true, если запись была удалена.
func (r *RecipeRepository) Delete(ctx context.Context, id string) (bool, error) {
	recipes, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i, rec := range recipes {
		if rec.ID == id {
			recipes = append(recipes[:i], recipes[i+1:]...)
			if err := r.save(ctx, recipes); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

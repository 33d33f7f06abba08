package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// MealRepository управляет записями трекера калорий.
type MealRepository struct {
	store Store
}

// NewMealRepository создает новый MealRepository.
func NewMealRepository(store Store) *MealRepository {
	return &MealRepository{store: store}
}

func (r *MealRepository) load(ctx context.Context) ([]*models.MealEntry, error) {
	const op = "repository.meals.load"
	var meals []*models.MealEntry
	if _, err := r.store.Read(ctx, mealsKey, &meals); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return meals, nil
}

func (r *MealRepository) save(ctx context.Context, meals []*models.MealEntry) error {
	const op = "repository.meals.save"
	if err := r.store.Write(ctx, mealsKey, meals); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// List возвращает все записи трекера. Фильтрация по пользователю и дню —
// на стороне вызывающего.
func (r *MealRepository) List(ctx context.Context) ([]*models.MealEntry, error) {
	return r.load(ctx)
}

// Add создает новую запись трекера, назначая ID и дату создания.
func (r *MealRepository) Add(ctx context.Context, meal models.MealEntry) (*models.MealEntry, error) {
	meals, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	meal.ID = uuid.New().String()
	meal.CreatedAt = time.Now().UTC()

	meals = append(meals, &meal)
	if err := r.save(ctx, meals); err != nil {
		return nil, err
	}
	return &meal, nil
}

// Delete удаляет запись трекера по ID. Возвращает true, если запись была удалена.
func (r *MealRepository) Delete(ctx context.Context, id string) (bool, error) {
	meals, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i, m := range meals {
		if m.ID == id {
			meals = append(meals[:i], meals[i+1:]...)
			if err := r.save(ctx, meals); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

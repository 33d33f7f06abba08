// Package services содержит бизнес-логику трекера калорий: добавление
// приёмов пищи и подсчёт дневных итогов.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitlifehub/fitlife-backend/internal/lib/dates"
	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// MealRepository определяет методы для работы с записями трекера.
type MealRepository interface {
	List(ctx context.Context) ([]*models.MealEntry, error)
	Add(ctx context.Context, meal models.MealEntry) (*models.MealEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TrackerService реализует бизнес-логику трекера калорий.
type TrackerService struct {
	meals MealRepository
	log   *slog.Logger
}

// NewTrackerService создает новый экземпляр TrackerService.
func NewTrackerService(meals MealRepository, log *slog.Logger) *TrackerService {
	return &TrackerService{
		meals: meals,
		log:   log,
	}
}

// AddMeal создает запись трекера для пользователя.
// Дата приёма пищи принимается строкой в формате RFC3339.
func (s *TrackerService) AddMeal(ctx context.Context, userID string, req models.DummyMeal) (*models.MealEntry, error) {
	eatenAt, err := time.Parse(time.RFC3339, req.EatenAt)
	if err != nil {
		return nil, fmt.Errorf("invalid eaten_at date: %w", err)
	}

	meal, err := s.meals.Add(ctx, models.MealEntry{
		UserID:   userID,
		Name:     req.Name,
		Calories: req.Calories,
		EatenAt:  eatenAt,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("added meal entry",
		slog.String("meal_id", meal.ID),
		slog.String("user_id", userID),
		slog.Int("calories", meal.Calories))
	return meal, nil
}

// DailySummary считает итог трекера пользователя за календарный день.
// day принимается в формате 2006-01-02; пустое значение означает сегодня.
func (s *TrackerService) DailySummary(ctx context.Context, userID, day string) (*models.DailySummary, error) {
	var dayTime time.Time
	if day == "" {
		dayTime = time.Now()
		day = dates.DayKey(dayTime)
	} else {
		var err error
		dayTime, err = time.Parse(dates.DayFormat, day)
		if err != nil {
			return nil, fmt.Errorf("invalid day: %w", err)
		}
	}

	all, err := s.meals.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.DailySummary{Date: day, Entries: []*models.MealEntry{}}
	for _, m := range all {
		if m.UserID != userID || !dates.SameDay(m.EatenAt, dayTime) {
			continue
		}
		summary.Entries = append(summary.Entries, m)
		summary.TotalCalories += m.Calories
	}
	return summary, nil
}

// RemoveMeal удаляет запись трекера, если она принадлежит пользователю.
// Возвращает false и для чужих, и для отсутствующих записей.
func (s *TrackerService) RemoveMeal(ctx context.Context, userID, mealID string) (bool, error) {
	all, err := s.meals.List(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range all {
		if m.ID == mealID && m.UserID == userID {
			return s.meals.Delete(ctx, mealID)
		}
	}
	return false, nil
}

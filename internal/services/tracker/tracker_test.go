package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

type MealRepoMock struct{ mock.Mock }

func (m *MealRepoMock) List(ctx context.Context) ([]*models.MealEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MealEntry), args.Error(1)
}
func (m *MealRepoMock) Add(ctx context.Context, meal models.MealEntry) (*models.MealEntry, error) {
	args := m.Called(ctx, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealEntry), args.Error(1)
}
func (m *MealRepoMock) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTrackerService_AddMeal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		meals := new(MealRepoMock)
		meals.On("Add", mock.Anything, mock.MatchedBy(func(meal models.MealEntry) bool {
			return meal.UserID == "user-1" &&
				meal.Name == "Овсянка" &&
				meal.Calories == 350 &&
				meal.EatenAt.Equal(time.Date(2025, 6, 5, 8, 30, 0, 0, time.UTC))
		})).Return(&models.MealEntry{ID: "meal-1", Calories: 350}, nil).Once()

		svc := NewTrackerService(meals, newNoopLogger())
		got, err := svc.AddMeal(context.Background(), "user-1", models.DummyMeal{
			Name:     "Овсянка",
			Calories: 350,
			EatenAt:  "2025-06-05T08:30:00Z",
		})

		assert.NoError(t, err)
		assert.Equal(t, "meal-1", got.ID)
		meals.AssertExpectations(t)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := NewTrackerService(new(MealRepoMock), newNoopLogger())
		got, err := svc.AddMeal(context.Background(), "user-1", models.DummyMeal{
			Name: "Овсянка", Calories: 350, EatenAt: "05.06.2025",
		})

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestTrackerService_DailySummary(t *testing.T) {
	day := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	entries := []*models.MealEntry{
		{ID: "m-1", UserID: "user-1", Calories: 350, EatenAt: day.Add(8 * time.Hour)},
		{ID: "m-2", UserID: "user-1", Calories: 600, EatenAt: day.Add(13 * time.Hour)},
		{ID: "m-3", UserID: "user-2", Calories: 900, EatenAt: day.Add(13 * time.Hour)},
		{ID: "m-4", UserID: "user-1", Calories: 500, EatenAt: day.Add(30 * time.Hour)},
	}

	t.Run("sums only own entries of the day", func(t *testing.T) {
		meals := new(MealRepoMock)
		meals.On("List", mock.Anything).Return(entries, nil).Once()

		svc := NewTrackerService(meals, newNoopLogger())
		summary, err := svc.DailySummary(context.Background(), "user-1", "2025-06-05")

		assert.NoError(t, err)
		assert.Equal(t, "2025-06-05", summary.Date)
		assert.Equal(t, 950, summary.TotalCalories)
		assert.Len(t, summary.Entries, 2)
	})

	t.Run("empty day", func(t *testing.T) {
		meals := new(MealRepoMock)
		meals.On("List", mock.Anything).Return([]*models.MealEntry{}, nil).Once()

		svc := NewTrackerService(meals, newNoopLogger())
		summary, err := svc.DailySummary(context.Background(), "user-1", "2025-06-06")

		assert.NoError(t, err)
		assert.Equal(t, 0, summary.TotalCalories)
		assert.Empty(t, summary.Entries)
	})

	t.Run("invalid day format", func(t *testing.T) {
		svc := NewTrackerService(new(MealRepoMock), newNoopLogger())
		_, err := svc.DailySummary(context.Background(), "user-1", "05.06.2025")
		assert.Error(t, err)
	})
}

func TestTrackerService_RemoveMeal(t *testing.T) {
	entries := []*models.MealEntry{
		{ID: "m-1", UserID: "user-1"},
		{ID: "m-2", UserID: "user-2"},
	}

	t.Run("own entry removed", func(t *testing.T) {
		meals := new(MealRepoMock)
		meals.On("List", mock.Anything).Return(entries, nil).Once()
		meals.On("Delete", mock.Anything, "m-1").Return(true, nil).Once()

		svc := NewTrackerService(meals, newNoopLogger())
		deleted, err := svc.RemoveMeal(context.Background(), "user-1", "m-1")

		assert.NoError(t, err)
		assert.True(t, deleted)
		meals.AssertExpectations(t)
	})

	t.Run("foreign entry not removed", func(t *testing.T) {
		meals := new(MealRepoMock)
		meals.On("List", mock.Anything).Return(entries, nil).Once()

		svc := NewTrackerService(meals, newNoopLogger())
		deleted, err := svc.RemoveMeal(context.Background(), "user-1", "m-2")

		assert.NoError(t, err)
		assert.False(t, deleted)
		meals.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

package models

import "time"

// MealEntry — запись трекера калорий: один приём пищи пользователя.
type MealEntry struct {
	ID        string    `json:"id"`         // Идентификатор записи
	UserID    string    `json:"user_id"`    // UID пользователя-владельца
	Name      string    `json:"name"`       // Название блюда
	Calories  int       `json:"calories"`   // Калорийность
	EatenAt   time.Time `json:"eaten_at"`   // Дата и время приёма пищи
	CreatedAt time.Time `json:"created_at"` // Дата создания записи
}

// DailySummary — итог трекера за один календарный день.
type DailySummary struct {
	Date          string       `json:"date"`           // День в формате 2006-01-02
	TotalCalories int          `json:"total_calories"` // Суммарная калорийность
	Entries       []*MealEntry `json:"entries"`        // Записи дня
}

// DummyMeal используется для приёма записи трекера из JSON-запроса.
type DummyMeal struct {
	Name     string `json:"name" validate:"required"`           // Название блюда
	Calories int    `json:"calories" validate:"required,gt=0"`  // Калорийность (>0)
	EatenAt  string `json:"eaten_at" validate:"required"`       // Дата и время в формате RFC3339
}

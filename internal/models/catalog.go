package models

import "time"

// WorkoutVideo представляет тренировочное видео из каталога.
type WorkoutVideo struct {
	ID              string    `json:"id"`               // Идентификатор видео
	Title           string    `json:"title"`            // Название
	Description     string    `json:"description"`      // Описание
	URL             string    `json:"url"`              // Ссылка на видео
	Category        string    `json:"category"`         // Категория: cardio, strength, yoga и т.д.
	Level           string    `json:"level"`            // Уровень сложности: beginner, intermediate, advanced
	DurationMinutes int       `json:"duration_minutes"` // Длительность в минутах
	CreatedAt       time.Time `json:"created_at"`       // Дата добавления
	CreatedBy       string    `json:"created_by"`       // UID добавившего администратора
}

// Recipe представляет рецепт из каталога питания.
type Recipe struct {
	ID          string    `json:"id"`                  // Идентификатор рецепта
	Title       string    `json:"title"`               // Название
	Description string    `json:"description"`         // Описание приготовления
	Ingredients []string  `json:"ingredients"`         // Список ингредиентов
	Calories    int       `json:"calories"`            // Калорийность порции
	ImageURL    string    `json:"image_url,omitempty"` // Ссылка на изображение
	CreatedAt   time.Time `json:"created_at"`          // Дата добавления
	CreatedBy   string    `json:"created_by"`          // UID добавившего администратора
}

// DummyVideo используется для приёма данных видео из JSON-запроса.
type DummyVideo struct {
	Title           string `json:"title" validate:"required"`               // Название
	Description     string `json:"description"`                             // Описание
	URL             string `json:"url" validate:"required,url"`             // Ссылка на видео
	Category        string `json:"category" validate:"required"`            // Категория
	Level           string `json:"level" validate:"required"`               // Уровень сложности
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"` // Длительность (>0)
}

// DummyRecipe используется для приёма данных рецепта из JSON-запроса.
type DummyRecipe struct {
	Title       string   `json:"title" validate:"required"`              // Название
	Description string   `json:"description"`                            // Описание
	Ingredients []string `json:"ingredients" validate:"required,min=1"`  // Ингредиенты
	Calories    int      `json:"calories" validate:"required,gt=0"`      // Калорийность (>0)
	ImageURL    string   `json:"image_url"`                              // Ссылка на изображение
}

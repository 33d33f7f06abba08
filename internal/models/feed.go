package models

import "time"

// Post — пост ленты трансформаций: история прогресса пользователя.
type Post struct {
	ID         string    `json:"id"`                  // Идентификатор поста
	UserID     string    `json:"user_id"`             // UID автора
	AuthorName string    `json:"author_name"`         // Снимок имени автора на момент публикации
	Text       string    `json:"text"`                // Текст поста
	ImageURL   string    `json:"image_url,omitempty"` // Фото до/после (опционально)
	CreatedAt  time.Time `json:"created_at"`          // Дата публикации
}

// DummyPost используется для приёма поста из JSON-запроса.
type DummyPost struct {
	Text     string `json:"text" validate:"required,max=2000"` // Текст поста
	ImageURL string `json:"image_url"`                         // Ссылка на фото (опционально)
}

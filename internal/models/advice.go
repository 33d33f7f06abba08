package models

// ChatMessage — одно сообщение диалога с сервисом рекомендаций по питанию.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"` // Роль: user, assistant или system
	Content string `json:"content" validate:"required"`                          // Текст сообщения
}

// DummyAdvice используется для приёма вопроса о питании из JSON-запроса.
type DummyAdvice struct {
	Query   string        `json:"query" validate:"required,max=1000"` // Вопрос пользователя
	History []ChatMessage `json:"history" validate:"dive"`            // Предыдущие сообщения диалога
}

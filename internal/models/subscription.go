// Package models содержит доменные структуры тарифных планов и заявок
// на подписку, а также вспомогательные типы для работы с JSON-запросами.
package models

import "time"

// PlanFeature — одна позиция в списке возможностей тарифного плана.
// Порядок позиций важен для отображения, идентификаторы уникальны в рамках плана.
type PlanFeature struct {
	ID   string `json:"id"`   // Идентификатор позиции
	Text string `json:"text"` // Текст позиции
}

// SubscriptionPlan представляет тарифный план из каталога.
type SubscriptionPlan struct {
	ID          string        `json:"id"`          // Идентификатор плана, неизменяем после создания
	Name        string        `json:"name"`        // Название плана
	Price       int           `json:"price"`       // Цена в минимальных единицах валюты
	Currency    string        `json:"currency"`    // Код валюты, например RUB
	Description string        `json:"description"` // Описание плана
	Features    []PlanFeature `json:"features"`    // Упорядоченный список возможностей
	CreatedAt   time.Time     `json:"created_at"`  // Дата создания
	CreatedBy   string        `json:"created_by"`  // UID администратора-создателя
}

// SubscriptionRequest — транзакционная запись одного эпизода подписки:
// от заявки пользователя до решения администратора и истечения срока.
//
// PlanName — неизменяемый снимок названия плана на момент заявки:
// история остаётся читаемой, даже если план переименован или удалён.
// Статусы expired, cancelled и rejected терминальны для конкретной заявки.
type SubscriptionRequest struct {
	ID            string     `json:"id"`                       // Идентификатор заявки
	UserID        string     `json:"user_id"`                  // UID пользователя-владельца
	UserEmail     string     `json:"user_email"`               // Снимок электронной почты пользователя
	PlanID        string     `json:"plan_id"`                  // Ссылка на план (может стать висячей)
	PlanName      string     `json:"plan_name"`                // Снимок названия плана на момент заявки
	RequestDate   time.Time  `json:"request_date"`             // Дата подачи заявки
	Status        string     `json:"status"`                   // Текущий статус заявки
	AdminNotes    string     `json:"admin_notes,omitempty"`    // Комментарий администратора
	ProcessedBy   string     `json:"processed_by,omitempty"`   // UID обработавшего администратора; пуст для системных переходов
	ProcessedDate *time.Time `json:"processed_date,omitempty"` // Дата обработки
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`    // Дата окончания действия подписки
}

// DummyPlan используется для приёма данных тарифного плана из JSON-запроса.
type DummyPlan struct {
	Name        string   `json:"name" validate:"required"`         // Название плана
	Price       int      `json:"price" validate:"required,gt=0"`   // Цена (>0)
	Currency    string   `json:"currency" validate:"required"`     // Код валюты
	Description string   `json:"description"`                      // Описание
	Features    []string `json:"features" validate:"required,min=1"` // Список возможностей
}

// DummySubscribe используется для приёма заявки на подписку из JSON-запроса.
type DummySubscribe struct {
	PlanID string `json:"plan_id" validate:"required"` // Идентификатор плана
}

// DummyApprove используется для приёма решения об одобрении заявки.
type DummyApprove struct {
	DurationDays int `json:"duration_days" validate:"required,gt=0"` // Срок подписки в днях (>0)
}

// DummyReject используется для приёма решения об отклонении заявки.
type DummyReject struct {
	Notes string `json:"notes"` // Комментарий администратора (опционально)
}

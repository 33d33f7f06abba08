// Package models содержит доменные структуры приложения FitLife:
// пользователей, тарифные планы, заявки на подписку, каталоги тренировок
// и рецептов, записи трекера калорий и посты ленты трансформаций.
package models

import "time"

// Роли пользователей системы.
const (
	RoleUser        = "user"         // Обычный пользователь
	RoleAdmin       = "admin"        // Администратор
	RoleSiteManager = "site_manager" // Менеджер контента
)

// Статусы подписки. Используются и в заявке, и в зеркале на пользователе.
const (
	SubscriptionNone      = "none"      // Подписки нет
	SubscriptionPending   = "pending"   // Заявка ожидает решения администратора
	SubscriptionActive    = "active"    // Подписка активна
	SubscriptionExpired   = "expired"   // Срок подписки истёк
	SubscriptionCancelled = "cancelled" // Подписка отменена (например, план удалён)
	SubscriptionRejected  = "rejected"  // Заявка отклонена администратором
)

// User представляет зарегистрированного пользователя системы.
//
// Поля ActivePlanID, SubscriptionID, SubscriptionExpiry, SubscriptionStatus
// и SubscriptionNotes — денормализованное зеркало текущего состояния подписки.
// Источник истории — SubscriptionRequest, зеркало изменяется только
// менеджером жизненного цикла подписок.
type User struct {
	UID                string     `json:"uid"`                            // Уникальный идентификатор пользователя
	Email              string     `json:"email"`                         // Электронная почта (уникальная)
	Username           string     `json:"username"`                      // Отображаемое имя
	PasswordHash       string     `json:"password_hash"`                 // Bcrypt-хэш пароля
	Role               string     `json:"role"`                          // Роль: user, admin или site_manager
	FullName           string     `json:"full_name,omitempty"`           // Полное имя (опционально)
	Age                *int       `json:"age,omitempty"`                 // Возраст (опционально)
	WeightKG           *float64   `json:"weight_kg,omitempty"`           // Вес в кг (опционально)
	HeightCM           *float64   `json:"height_cm,omitempty"`           // Рост в см (опционально)
	ActivePlanID       *string    `json:"active_plan_id,omitempty"`      // Ссылка на текущий тарифный план
	SubscriptionID     *string    `json:"subscription_id,omitempty"`     // Ссылка на текущую заявку
	SubscriptionExpiry *time.Time `json:"subscription_expiry,omitempty"` // Дата окончания подписки
	SubscriptionStatus string     `json:"subscription_status"`           // Текущий статус подписки
	SubscriptionNotes  string     `json:"subscription_notes,omitempty"`  // Пояснение к текущему статусу
	CreatedAt          time.Time  `json:"created_at"`                    // Дата регистрации
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Email    string `json:"email" validate:"required,email"`       // Электронная почта
	Username string `json:"username" validate:"required,alphanum"` // Имя пользователя
	Password string `json:"password" validate:"required,min=8"`    // Пароль (не короче 8 символов)
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"` // Электронная почта
	Password string `json:"password" validate:"required"`    // Пароль
}

// Package middlewarectx содержит HTTP middleware приложения: проверку JWT,
// ограничение частоты запросов и доступ только для администраторов,
// а также ключи контекста с данными аутентифицированного пользователя.
package middlewarectx

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserEmail — ключ для почты пользователя в контексте
	UserEmail Key = "user_email"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
	// UserUID — ключ для UID пользователя в контексте
	UserUID Key = "user_uid"
)

package services

import "errors"

// Типизированные ошибки бизнес-правил жизненного цикла подписки.
// Презентационный слой перехватывает их и отображает локализованные сообщения.
var (
	// ErrPlanNotFound — заявка на несуществующий тарифный план.
	ErrPlanNotFound = errors.New("subscription plan not found")
	// ErrDuplicatePendingRequest — повторная заявка, пока предыдущая
	// находится в статусе pending.
	ErrDuplicatePendingRequest = errors.New("pending subscription request already exists")
	// ErrRequestAlreadyFinal — попытка перевести заявку из терминального
	// статуса (expired, cancelled, rejected).
	ErrRequestAlreadyFinal = errors.New("subscription request already in final status")
)

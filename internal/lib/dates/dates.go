// Package dates содержит календарную арифметику для сроков подписки
// и группировки записей трекера по дням.
package dates

import (
	"time"
)

// DayFormat — формат ключа календарного дня.
const DayFormat = "2006-01-02"

// ExpiryDate считает дату окончания подписки: processed плюс durationDays
// календарных дней. Используется AddDate, а не сложение 24-часовых интервалов,
// поэтому переходы через границы месяца и года обрабатываются корректно:
// 31 января + 1 день даёт 1 февраля.
func ExpiryDate(processed time.Time, durationDays int) time.Time {
	return processed.AddDate(0, 0, durationDays)
}

// IsExpired сообщает, истёк ли срок подписки к моменту now.
// Нулевое значение expiry считается истёкшим.
func IsExpired(expiry *time.Time, now time.Time) bool {
	if expiry == nil || expiry.IsZero() {
		return true
	}
	return expiry.Before(now)
}

// DayKey возвращает ключ календарного дня для момента t в его локации.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// SameDay сообщает, относятся ли два момента к одному календарному дню.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

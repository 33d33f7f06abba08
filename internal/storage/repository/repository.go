// Package repository реализует репозитории коллекций приложения поверх
// key-value хранилища. Каждый репозиторий владеет одной логической
// коллекцией: операция читает коллекцию целиком, изменяет её в памяти и
// записывает обратно. Две последовательные записи разных репозиториев
// не атомарны как пара — вызывающая сторона не должна рассчитывать на
// изоляцию частичных сбоев между ними.
//
// Промахи поиска возвращаются как отсутствующее значение (nil, nil),
// нарушения бизнес-инвариантов — как типизированные ошибки.
package repository

import (
	"context"
	"errors"
)

// Ключи логических коллекций в хранилище.
const (
	usersKey    = "fitlife:users"
	plansKey    = "fitlife:plans"
	requestsKey = "fitlife:requests"
	videosKey   = "fitlife:videos"
	recipesKey  = "fitlife:recipes"
	mealsKey    = "fitlife:meals"
	postsKey    = "fitlife:posts"
)

// Store описывает контракт внешнего key-value хранилища.
type Store interface {
	// Read десериализует значение по ключу в dest; false — ключ отсутствует.
	Read(ctx context.Context, key string, dest any) (bool, error)
	// Write сохраняет значение по ключу.
	Write(ctx context.Context, key string, value any) error
}

// Типизированные ошибки уровня репозиториев.
var (
	// ErrReservedAdminEmail — попытка создать не-администратора
	// с зарезервированной почтой администратора.
	ErrReservedAdminEmail = errors.New("reserved admin email")
	// ErrEmailTaken — почта уже занята другим пользователем.
	ErrEmailTaken = errors.New("email already taken")
)

// Package storage реализует адаптер внешнего durable key-value хранилища
// поверх Redis. Каждая логическая коллекция приложения хранится целиком
// одним JSON-значением под фиксированным ключом; атомарность гарантируется
// только в пределах одной операции чтения или записи.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fitlifehub/fitlife-backend/internal/config"
)

// KVStore обёртка над клиентом Redis, предоставляющая чтение и запись
// JSON-значений по строковому ключу.
type KVStore struct {
	Db *redis.Client
}

// InitServer подключается к Redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*KVStore, error) {
	const op = "storage.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &KVStore{Db: db}, nil
}

// Read читает JSON-значение по ключу и десериализует его в dest.
// Возвращает false без ошибки, если ключ отсутствует.
func (s *KVStore) Read(ctx context.Context, key string, dest any) (bool, error) {
	const op = "storage.Read"
	val, err := s.Db.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Write сериализует value в JSON и сохраняет по ключу без срока жизни.
func (s *KVStore) Write(ctx context.Context, key string, value any) error {
	const op = "storage.Write"
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.Db.Set(ctx, key, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (s *KVStore) Close() error {
	return s.Db.Close()
}

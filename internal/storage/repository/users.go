package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// UserRepository управляет коллекцией пользователей.
//
// adminEmail — зарезервированная почта единственного администратора;
// инвариант проверяется при записи, а не на уровне типов.
type UserRepository struct {
	store      Store
	adminEmail string
}

// NewUserRepository создает новый UserRepository.
func NewUserRepository(store Store, adminEmail string) *UserRepository {
	return &UserRepository{store: store, adminEmail: adminEmail}
}

// normalizeUser выставляет значения по умолчанию для отсутствующих
// опциональных полей: записи старых версий не содержат части полей,
// и отсутствие трактуется как "не задано", а не как ноль.
func normalizeUser(u *models.User) {
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.SubscriptionStatus == "" {
		u.SubscriptionStatus = models.SubscriptionNone
	}
}

func (r *UserRepository) load(ctx context.Context) ([]*models.User, error) {
	const op = "repository.users.load"
	var users []*models.User
	if _, err := r.store.Read(ctx, usersKey, &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, u := range users {
		normalizeUser(u)
	}
	return users, nil
}

func (r *UserRepository) save(ctx context.Context, users []*models.User) error {
	const op = "repository.users.save"
	if err := r.store.Write(ctx, usersKey, users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// List возвращает всех пользователей. Фильтрация — на стороне вызывающего.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.load(ctx)
}

// GetByID возвращает пользователя по UID или (nil, nil), если не найден.
func (r *UserRepository) GetByID(ctx context.Context, uid string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, nil
}

// GetByEmail ищет пользователя линейным сканом по точному совпадению почты
// с учётом регистра. Возвращает (nil, nil), если не найден.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// Add создает нового пользователя, назначая UID и дату регистрации.
//
// Возвращает ErrReservedAdminEmail при попытке занять почту администратора
// записью без роли admin и ErrEmailTaken, если почта уже используется.
func (r *UserRepository) Add(ctx context.Context, user models.User) (*models.User, error) {
	const op = "repository.users.Add"
	if user.Email == r.adminEmail && user.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%s: %w", op, ErrReservedAdminEmail)
	}

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
	}

	user.UID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()
	normalizeUser(&user)

	users = append(users, &user)
	if err := r.save(ctx, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update заменяет запись пользователя по UID.
// Возвращает (nil, nil), если пользователь с таким UID не найден.
func (r *UserRepository) Update(ctx context.Context, user models.User) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		if u.UID == user.UID {
			normalizeUser(&user)
			users[i] = &user
			if err := r.save(ctx, users); err != nil {
				return nil, err
			}
			return &user, nil
		}
	}
	return nil, nil
}

// EnsureAdmin выполняет идемпотентное засеивание хранилища:
// ровно одна запись с зарезервированной почтой и ролью admin.
// Отсутствующий администратор синтезируется с именем по умолчанию и
// переданным хэшем пароля; любая другая запись с ролью admin на иной
// почте понижается до user. Повторный запуск ничего не меняет.
func (r *UserRepository) EnsureAdmin(ctx context.Context, name, passwordHash string) error {
	const op = "repository.users.EnsureAdmin"
	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	changed := false
	var admin *models.User
	for _, u := range users {
		if u.Email == r.adminEmail {
			admin = u
			continue
		}
		if u.Role == models.RoleAdmin {
			u.Role = models.RoleUser
			changed = true
		}
	}

	if admin == nil {
		users = append(users, &models.User{
			UID:                uuid.New().String(),
			Email:              r.adminEmail,
			Username:           name,
			PasswordHash:       passwordHash,
			Role:               models.RoleAdmin,
			SubscriptionStatus: models.SubscriptionNone,
			CreatedAt:          time.Now().UTC(),
		})
		changed = true
	} else if admin.Role != models.RoleAdmin {
		admin.Role = models.RoleAdmin
		changed = true
	}

	if !changed {
		return nil
	}
	if err := r.save(ctx, users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

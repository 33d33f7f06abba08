// Package services содержит логику бизнес-уровня для работы с пользователями
// и аутентификацией: регистрация, вход, проверка JWT, засеивание
// зарезервированного администратора и пассивная сверка подписки при входе.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fitlifehub/fitlife-backend/internal/lib/jwt"
	"github.com/fitlifehub/fitlife-backend/internal/lib/password"
	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// ErrInvalidCredentials — неверная пара почта/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// Add сохраняет нового пользователя и возвращает запись с назначенным UID.
	Add(ctx context.Context, user models.User) (*models.User, error)
	// GetByEmail возвращает пользователя по почте или (nil, nil), если не найден.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID возвращает пользователя по UID или (nil, nil), если не найден.
	GetByID(ctx context.Context, uid string) (*models.User, error)
	// EnsureAdmin выполняет идемпотентное засеивание администратора.
	EnsureAdmin(ctx context.Context, name, passwordHash string) error
}

// Reconciler выполняет пассивную сверку состояния подписки пользователя.
type Reconciler interface {
	CheckUserSubscriptionStatus(ctx context.Context, userID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users      UserRepository
	reconciler Reconciler
	jwtMaker   jwt.Maker
	log        *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, reconciler Reconciler, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		reconciler: reconciler,
		jwtMaker:   jwtMaker,
		log:        log,
	}
}

// Register создает нового пользователя с хэшированием пароля и ролью user.
func (s *AuthService) Register(ctx context.Context, email, username, rawPassword string) (*models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Add(ctx, models.User{
		Email:              email,
		Username:           username,
		PasswordHash:       hashed,
		Role:               models.RoleUser, // дефолтная роль при регистрации
		SubscriptionStatus: models.SubscriptionNone,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("registered new user", slog.String("user_id", user.UID))
	return user, nil
}

// Login проверяет пароль пользователя, выполняет пассивную сверку подписки
// и генерирует JWT. Возвращает токен и актуальную запись пользователя.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	// Сверка выполняется на входе, фонового таймера истечения нет
	reconciled, err := s.reconciler.CheckUserSubscriptionStatus(ctx, user.UID)
	if err != nil {
		return "", nil, err
	}
	if reconciled != nil {
		user = reconciled
	}

	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role, user.UID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateToken проверяет JWT и возвращает данные пользователя из claims.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}

// EnsureAdmin засеивает зарезервированного администратора с именем и
// паролем по умолчанию. Запускается при старте приложения; повторные
// запуски не создают дубликатов.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, defaultPassword string) error {
	hashed, err := password.GetHash(defaultPassword)
	if err != nil {
		return err
	}
	if err := s.users.EnsureAdmin(ctx, name, hashed); err != nil {
		return err
	}
	s.log.Info("admin account verified")
	return nil
}

// Package services содержит менеджер жизненного цикла подписки — ядро
// приложения. Менеджер ведёт конечный автомат заявки:
//
//	none → pending → {active, rejected};  active → {expired, cancelled}
//
// и на каждом переходе синхронизирует два представления состояния:
// заявку (источник истории) и денормализованное зеркало на пользователе
// (источник текущего состояния). Терминальные статусы заявки —
// expired, cancelled и rejected; переходы из них менеджер не допускает,
// но пользователь может подать новую заявку, начав цикл заново.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fitlifehub/fitlife-backend/internal/lib/dates"
	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// PlanRepository определяет методы для работы с тарифными планами в хранилище.
type PlanRepository interface {
	List(ctx context.Context) ([]*models.SubscriptionPlan, error)
	GetByID(ctx context.Context, id string) (*models.SubscriptionPlan, error)
	Add(ctx context.Context, req models.DummyPlan, createdBy string) (*models.SubscriptionPlan, error)
	Update(ctx context.Context, plan models.SubscriptionPlan) (*models.SubscriptionPlan, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RequestRepository определяет методы для работы с заявками на подписку.
type RequestRepository interface {
	List(ctx context.Context) ([]*models.SubscriptionRequest, error)
	GetByID(ctx context.Context, id string) (*models.SubscriptionRequest, error)
	Add(ctx context.Context, request models.SubscriptionRequest) (*models.SubscriptionRequest, error)
	Update(ctx context.Context, request models.SubscriptionRequest) (*models.SubscriptionRequest, error)
	UpdateAll(ctx context.Context, requests []*models.SubscriptionRequest) error
}

// UserRepository определяет методы для работы с пользователями.
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, uid string) (*models.User, error)
	Update(ctx context.Context, user models.User) (*models.User, error)
}

// Notifier отправляет пользователю уведомление о решении по заявке.
// Отправка выполняется по мере возможности: её сбой не откатывает переход.
type Notifier interface {
	SendSubscriptionDecision(email, planName, status string, expiry *time.Time) error
}

// SubscriptionService реализует бизнес-логику жизненного цикла подписок.
type SubscriptionService struct {
	plans    PlanRepository
	requests RequestRepository
	users    UserRepository
	notifier Notifier
	log      *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
// notifier может быть nil — тогда уведомления не отправляются.
func NewSubscriptionService(plans PlanRepository, requests RequestRepository, users UserRepository, notifier Notifier, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		plans:    plans,
		requests: requests,
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

// isFinal сообщает, терминален ли статус заявки.
func isFinal(status string) bool {
	switch status {
	case models.SubscriptionExpired, models.SubscriptionCancelled, models.SubscriptionRejected:
		return true
	}
	return false
}

// ListPlans возвращает каталог тарифных планов.
func (s *SubscriptionService) ListPlans(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	return s.plans.List(ctx)
}

// CreatePlan добавляет тарифный план в каталог.
func (s *SubscriptionService) CreatePlan(ctx context.Context, req models.DummyPlan, adminID string) (*models.SubscriptionPlan, error) {
	plan, err := s.plans.Add(ctx, req, adminID)
	if err != nil {
		return nil, err
	}
	s.log.Info("created subscription plan", slog.String("plan_id", plan.ID), slog.String("name", plan.Name))
	return plan, nil
}

// UpdatePlan обновляет тарифный план по ID. Идентификатор плана неизменяем;
// снимки названия в существующих заявках не трогаются.
// Возвращает (nil, nil), если план не найден.
func (s *SubscriptionService) UpdatePlan(ctx context.Context, planID string, req models.DummyPlan) (*models.SubscriptionPlan, error) {
	existing, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	features := existing.Features
	if len(req.Features) > 0 {
		features = make([]models.PlanFeature, 0, len(req.Features))
		for i, text := range req.Features {
			// Идентификаторы позиций сохраняются по порядку, лишние отбрасываются,
			// новые позиции получают свежие идентификаторы
			id := uuid.New().String()
			if i < len(existing.Features) {
				id = existing.Features[i].ID
			}
			features = append(features, models.PlanFeature{ID: id, Text: text})
		}
	}

	updated := models.SubscriptionPlan{
		ID:          existing.ID,
		Name:        req.Name,
		Price:       req.Price,
		Currency:    req.Currency,
		Description: req.Description,
		Features:    features,
		CreatedAt:   existing.CreatedAt,
		CreatedBy:   existing.CreatedBy,
	}
	return s.plans.Update(ctx, updated)
}

// ListRequests возвращает все заявки на подписку (для админ-панели).
func (s *SubscriptionService) ListRequests(ctx context.Context) ([]*models.SubscriptionRequest, error) {
	return s.requests.List(ctx)
}

// RequestSubscription создает заявку на подписку в статусе pending и
// переводит зеркало пользователя в pending.
//
// Предусловия: план существует (иначе ErrPlanNotFound) и у пользователя
// нет другой заявки в статусе pending (иначе ErrDuplicatePendingRequest).
// При нарушении предусловий не создаётся ни заявка, ни изменения пользователя.
func (s *SubscriptionService) RequestSubscription(ctx context.Context, userID, userEmail, planID string) (*models.SubscriptionRequest, error) {
	const op = "services.subscription.RequestSubscription"

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrPlanNotFound)
	}

	existing, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, req := range existing {
		if req.UserID == userID && req.Status == models.SubscriptionPending {
			return nil, fmt.Errorf("%s: %w", op, ErrDuplicatePendingRequest)
		}
	}

	request, err := s.requests.Add(ctx, models.SubscriptionRequest{
		UserID:    userID,
		UserEmail: userEmail,
		PlanID:    planID,
		PlanName:  plan.Name, // снимок названия: история переживёт переименование и удаление плана
		Status:    models.SubscriptionPending,
	})
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.SubscriptionStatus = models.SubscriptionPending
		user.ActivePlanID = &request.PlanID
		if _, err := s.users.Update(ctx, *user); err != nil {
			return nil, err
		}
	}

	s.log.Info("created subscription request",
		slog.String("request_id", request.ID),
		slog.String("user_id", userID),
		slog.String("plan_id", planID))
	return request, nil
}

// ApproveSubscription одобряет заявку: переводит её в active, заполняет
// processedBy, processedDate и expiryDate и обновляет зеркало пользователя.
//
// Срок считается календарными днями через AddDate, поэтому переходы через
// границы месяца и года корректны. durationDays здесь не валидируется —
// граница HTTP отклоняет неположительные значения до вызова.
// Возвращает (nil, nil), если заявка не найдена, и ErrRequestAlreadyFinal,
// если заявка уже в терминальном статусе.
func (s *SubscriptionService) ApproveSubscription(ctx context.Context, requestID, adminID string, durationDays int) (*models.SubscriptionRequest, error) {
	const op = "services.subscription.ApproveSubscription"

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	if isFinal(request.Status) {
		return nil, fmt.Errorf("%s: %w", op, ErrRequestAlreadyFinal)
	}

	processedDate := time.Now().UTC()
	expiryDate := dates.ExpiryDate(processedDate, durationDays)

	request.Status = models.SubscriptionActive
	request.ProcessedBy = adminID
	request.ProcessedDate = &processedDate
	request.ExpiryDate = &expiryDate
	if _, err := s.requests.Update(ctx, *request); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.SubscriptionStatus = models.SubscriptionActive
		user.ActivePlanID = &request.PlanID
		user.SubscriptionExpiry = &expiryDate
		user.SubscriptionID = &request.ID
		user.SubscriptionNotes = ""
		if _, err := s.users.Update(ctx, *user); err != nil {
			return nil, err
		}
	}

	s.log.Info("approved subscription request",
		slog.String("request_id", request.ID),
		slog.String("admin_id", adminID),
		slog.Time("expiry_date", expiryDate))
	s.notify(request.UserEmail, request.PlanName, models.SubscriptionActive, &expiryDate)
	return request, nil
}

// RejectSubscription отклоняет заявку: переводит её в rejected с комментарием
// администратора и очищает ссылки подписки в зеркале пользователя.
// Возвращает (nil, nil), если заявка не найдена, и ErrRequestAlreadyFinal,
// если заявка уже в терминальном статусе.
func (s *SubscriptionService) RejectSubscription(ctx context.Context, requestID, adminID, notes string) (*models.SubscriptionRequest, error) {
	const op = "services.subscription.RejectSubscription"

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	if isFinal(request.Status) {
		return nil, fmt.Errorf("%s: %w", op, ErrRequestAlreadyFinal)
	}

	processedDate := time.Now().UTC()
	request.Status = models.SubscriptionRejected
	request.ProcessedBy = adminID
	request.ProcessedDate = &processedDate
	request.AdminNotes = notes
	if _, err := s.requests.Update(ctx, *request); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.SubscriptionStatus = models.SubscriptionRejected
		user.SubscriptionID = nil
		user.ActivePlanID = nil
		user.SubscriptionExpiry = nil
		user.SubscriptionNotes = notes
		if _, err := s.users.Update(ctx, *user); err != nil {
			return nil, err
		}
	}

	s.log.Info("rejected subscription request",
		slog.String("request_id", request.ID),
		slog.String("admin_id", adminID))
	s.notify(request.UserEmail, request.PlanName, models.SubscriptionRejected, nil)
	return request, nil
}

// CheckUserSubscriptionStatus выполняет пассивную сверку состояния подписки
// пользователя. Вызывается при входе и обновлении сессии, фонового таймера нет.
//
// Для активной подписки: истёкший срок переводит в expired; отсутствующий
// в каталоге план — в cancelled с очисткой ссылки на план; отсутствие даты
// окончания (аномалия данных) — в expired. Иначе пользователь возвращается
// без изменений. Повторный вызов на уже сверенном пользователе — no-op.
func (s *SubscriptionService) CheckUserSubscriptionStatus(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if user.SubscriptionStatus != models.SubscriptionActive {
		return user, nil
	}

	now := time.Now().UTC()
	switch {
	case user.SubscriptionExpiry != nil && dates.IsExpired(user.SubscriptionExpiry, now):
		user.SubscriptionStatus = models.SubscriptionExpired
		user.SubscriptionNotes = "Срок подписки истёк"
	case user.ActivePlanID != nil && !s.planExists(ctx, *user.ActivePlanID):
		user.SubscriptionStatus = models.SubscriptionCancelled
		user.ActivePlanID = nil
		user.SubscriptionNotes = "Тарифный план больше не доступен"
	case dates.IsExpired(user.SubscriptionExpiry, now):
		user.SubscriptionStatus = models.SubscriptionExpired
		user.SubscriptionNotes = "Дата окончания подписки отсутствовала"
	default:
		return user, nil
	}

	if _, err := s.users.Update(ctx, *user); err != nil {
		return nil, err
	}
	s.markCurrentRequest(ctx, user)

	s.log.Info("reconciled subscription status",
		slog.String("user_id", user.UID),
		slog.String("status", user.SubscriptionStatus))
	return user, nil
}

// markCurrentRequest переносит итог сверки на текущую заявку пользователя.
// Текущая заявка определяется указателем SubscriptionID в зеркале, а не
// поиском по дате. Уже терминальная заявка не изменяется.
func (s *SubscriptionService) markCurrentRequest(ctx context.Context, user *models.User) {
	if user.SubscriptionID == nil {
		return
	}
	request, err := s.requests.GetByID(ctx, *user.SubscriptionID)
	if err != nil || request == nil || isFinal(request.Status) {
		return
	}
	processedDate := time.Now().UTC()
	request.Status = user.SubscriptionStatus
	request.ProcessedDate = &processedDate
	if _, err := s.requests.Update(ctx, *request); err != nil {
		s.log.Warn("failed to mark current request", sl.Err(err))
	}
}

func (s *SubscriptionService) planExists(ctx context.Context, planID string) bool {
	plan, err := s.plans.GetByID(ctx, planID)
	return err == nil && plan != nil
}

// DeletePlan удаляет тарифный план и выполняет каскад:
// каждому пользователю с этим планом в зеркале проставляется cancelled с
// пояснением и очищается ссылка на план; каждая pending-заявка на план
// переводится в rejected с пояснением и processedDate, но без processedBy —
// переход системный, а не административный. Уже активные и терминальные
// заявки остаются историческими записями.
// Возвращает false, если план не найден.
func (s *SubscriptionService) DeletePlan(ctx context.Context, planID string) (bool, error) {
	deleted, err := s.plans.Delete(ctx, planID)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return true, err
	}
	for _, u := range users {
		if u.ActivePlanID == nil || *u.ActivePlanID != planID {
			continue
		}
		u.ActivePlanID = nil
		u.SubscriptionStatus = models.SubscriptionCancelled
		u.SubscriptionNotes = "Тарифный план был удалён администратором"
		if _, err := s.users.Update(ctx, *u); err != nil {
			return true, err
		}
	}

	requests, err := s.requests.List(ctx)
	if err != nil {
		return true, err
	}
	changed := false
	now := time.Now().UTC()
	for _, req := range requests {
		if req.PlanID != planID || req.Status != models.SubscriptionPending {
			continue
		}
		req.Status = models.SubscriptionRejected
		req.AdminNotes = "Заявка отклонена автоматически: тарифный план удалён"
		req.ProcessedDate = &now
		changed = true
	}
	if changed {
		if err := s.requests.UpdateAll(ctx, requests); err != nil {
			return true, err
		}
	}

	s.log.Info("deleted subscription plan with cascade", slog.String("plan_id", planID))
	return true, nil
}

func (s *SubscriptionService) notify(email, planName, status string, expiry *time.Time) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendSubscriptionDecision(email, planName, status, expiry); err != nil {
		s.log.Warn("failed to send subscription notification",
			slog.String("email", email), sl.Err(err))
	}
}

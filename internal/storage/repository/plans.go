package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// PlanRepository управляет каталогом тарифных планов.
type PlanRepository struct {
	store Store
}

// NewPlanRepository создает новый PlanRepository.
func NewPlanRepository(store Store) *PlanRepository {
	return &PlanRepository{store: store}
}

func (r *PlanRepository) load(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	const op = "repository.plans.load"
	var plans []*models.SubscriptionPlan
	if _, err := r.store.Read(ctx, plansKey, &plans); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plans, nil
}

func (r *PlanRepository) save(ctx context.Context, plans []*models.SubscriptionPlan) error {
	const op = "repository.plans.save"
	if err := r.store.Write(ctx, plansKey, plans); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// List возвращает все тарифные планы.
func (r *PlanRepository) List(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	return r.load(ctx)
}

// GetByID возвращает план по ID или (nil, nil), если не найден.
func (r *PlanRepository) GetByID(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	plans, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Add создает новый план, назначая ID плана и идентификаторы позиций
// списка возможностей. Порядок позиций сохраняется.
func (r *PlanRepository) Add(ctx context.Context, req models.DummyPlan, createdBy string) (*models.SubscriptionPlan, error) {
	plans, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	features := make([]models.PlanFeature, 0, len(req.Features))
	for _, text := range req.Features {
		features = append(features, models.PlanFeature{
			ID:   uuid.New().String(),
			Text: text,
		})
	}
	plan := &models.SubscriptionPlan{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Price:       req.Price,
		Currency:    req.Currency,
		Description: req.Description,
		Features:    features,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   createdBy,
	}

	plans = append(plans, plan)
	if err := r.save(ctx, plans); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update заменяет план по ID. ID неизменяем: записывается план с тем же
// идентификатором. Возвращает (nil, nil), если план не найден.
func (r *PlanRepository) Update(ctx context.Context, plan models.SubscriptionPlan) (*models.SubscriptionPlan, error) {
	plans, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i, p := range plans {
		if p.ID == plan.ID {
			plans[i] = &plan
			if err := r.save(ctx, plans); err != nil {
				return nil, err
			}
			return &plan, nil
		}
	}
	return nil, nil
}

// Delete удаляет план по ID. Возвращает true, если запись была удалена.
// Каскадные эффекты удаления выполняет менеджер жизненного цикла подписок.
func (r *PlanRepository) Delete(ctx context.Context, id string) (bool, error) {
	plans, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i, p := range plans {
		if p.ID == id {
			plans = append(plans[:i], plans[i+1:]...)
			if err := r.save(ctx, plans); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// RequestRepository управляет коллекцией заявок на подписку.
// Заявки никогда не удаляются: это источник истории подписок.
type RequestRepository struct {
	store Store
}

// NewRequestRepository создает новый RequestRepository.
func NewRequestRepository(store Store) *RequestRepository {
	return &RequestRepository{store: store}
}

func normalizeRequest(req *models.SubscriptionRequest) {
	if req.Status == "" {
		req.Status = models.SubscriptionPending
	}
}

func (r *RequestRepository) load(ctx context.Context) ([]*models.SubscriptionRequest, error) {
	const op = "repository.requests.load"
	var requests []*models.SubscriptionRequest
	if _, err := r.store.Read(ctx, requestsKey, &requests); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, req := range requests {
		normalizeRequest(req)
	}
	return requests, nil
}

func (r *RequestRepository) save(ctx context.Context, requests []*models.SubscriptionRequest) error {
	const op = "repository.requests.save"
	if err := r.store.Write(ctx, requestsKey, requests); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// List возвращает все заявки. Фильтрация — на стороне вызывающего.
func (r *RequestRepository) List(ctx context.Context) ([]*models.SubscriptionRequest, error) {
	return r.load(ctx)
}

// GetByID возвращает заявку по ID или (nil, nil), если не найдена.
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.SubscriptionRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, nil
}

// Add создает новую заявку, назначая ID и дату подачи.
func (r *RequestRepository) Add(ctx context.Context, request models.SubscriptionRequest) (*models.SubscriptionRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	request.ID = uuid.New().String()
	request.RequestDate = time.Now().UTC()
	normalizeRequest(&request)

	requests = append(requests, &request)
	if err := r.save(ctx, requests); err != nil {
		return nil, err
	}
	return &request, nil
}

// Update заменяет заявку по ID.
// Возвращает (nil, nil), если заявка не найдена.
func (r *RequestRepository) Update(ctx context.Context, request models.SubscriptionRequest) (*models.SubscriptionRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i, req := range requests {
		if req.ID == request.ID {
			normalizeRequest(&request)
			requests[i] = &request
			if err := r.save(ctx, requests); err != nil {
				return nil, err
			}
			return &request, nil
		}
	}
	return nil, nil
}

// UpdateAll перезаписывает коллекцию заявок целиком. Используется
// менеджером при каскадном отклонении, чтобы изменить несколько заявок
// одной записью в хранилище.
func (r *RequestRepository) UpdateAll(ctx context.Context, requests []*models.SubscriptionRequest) error {
	return r.save(ctx, requests)
}

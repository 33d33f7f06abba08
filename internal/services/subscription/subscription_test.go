package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

type PlanRepoMock struct{ mock.Mock }

func (m *PlanRepoMock) List(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionPlan), args.Error(1)
}
func (m *PlanRepoMock) GetByID(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionPlan), args.Error(1)
}
func (m *PlanRepoMock) Add(ctx context.Context, req models.DummyPlan, createdBy string) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, req, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionPlan), args.Error(1)
}
func (m *PlanRepoMock) Update(ctx context.Context, plan models.SubscriptionPlan) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionPlan), args.Error(1)
}
func (m *PlanRepoMock) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type RequestRepoMock struct{ mock.Mock }

func (m *RequestRepoMock) List(ctx context.Context) ([]*models.SubscriptionRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionRequest), args.Error(1)
}
func (m *RequestRepoMock) GetByID(ctx context.Context, id string) (*models.SubscriptionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionRequest), args.Error(1)
}
func (m *RequestRepoMock) Add(ctx context.Context, request models.SubscriptionRequest) (*models.SubscriptionRequest, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionRequest), args.Error(1)
}
func (m *RequestRepoMock) Update(ctx context.Context, request models.SubscriptionRequest) (*models.SubscriptionRequest, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionRequest), args.Error(1)
}
func (m *RequestRepoMock) UpdateAll(ctx context.Context, requests []*models.SubscriptionRequest) error {
	return m.Called(ctx, requests).Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *UserRepoMock) GetByID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserRepoMock) Update(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type NotifierMock struct{ mock.Mock }

func (m *NotifierMock) SendSubscriptionDecision(email, planName, status string, expiry *time.Time) error {
	return m.Called(email, planName, status, expiry).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(plans *PlanRepoMock, requests *RequestRepoMock, users *UserRepoMock, notifier *NotifierMock) *SubscriptionService {
	if notifier == nil {
		return NewSubscriptionService(plans, requests, users, nil, newNoopLogger())
	}
	return NewSubscriptionService(plans, requests, users, notifier, newNoopLogger())
}

func TestSubscriptionService_RequestSubscription(t *testing.T) {
	plan := &models.SubscriptionPlan{ID: "plan-1", Name: "Премиум"}
	user := &models.User{UID: "user-1", SubscriptionStatus: models.SubscriptionNone}

	tests := []struct {
		name       string
		setupMocks func(p *PlanRepoMock, r *RequestRepoMock, u *UserRepoMock)
		wantErr    error
	}{
		{
			name: "success request",
			setupMocks: func(p *PlanRepoMock, r *RequestRepoMock, u *UserRepoMock) {
				p.On("GetByID", mock.Anything, "plan-1").Return(plan, nil).Once()
				r.On("List", mock.Anything).Return([]*models.SubscriptionRequest{}, nil).Once()
				r.On("Add", mock.Anything, mock.MatchedBy(func(req models.SubscriptionRequest) bool {
					return req.UserID == "user-1" &&
						req.PlanID == "plan-1" &&
						req.PlanName == "Премиум" &&
						req.Status == models.SubscriptionPending
				})).Return(&models.SubscriptionRequest{
					ID:     "req-1",
					UserID: "user-1",
					PlanID: "plan-1",
					Status: models.SubscriptionPending,
				}, nil).Once()
				u.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()
				u.On("Update", mock.Anything, mock.MatchedBy(func(usr models.User) bool {
					return usr.SubscriptionStatus == models.SubscriptionPending &&
						usr.ActivePlanID != nil && *usr.ActivePlanID == "plan-1"
				})).Return(user, nil).Once()
			},
		},
		{
			name: "plan not found",
			setupMocks: func(p *PlanRepoMock, _ *RequestRepoMock, _ *UserRepoMock) {
				p.On("GetByID", mock.Anything, "plan-1").Return(nil, nil).Once()
			},
			wantErr: ErrPlanNotFound,
		},
		{
			name: "duplicate pending request",
			setupMocks: func(p *PlanRepoMock, r *RequestRepoMock, _ *UserRepoMock) {
				p.On("GetByID", mock.Anything, "plan-1").Return(plan, nil).Once()
				r.On("List", mock.Anything).Return([]*models.SubscriptionRequest{
					{ID: "req-old", UserID: "user-1", Status: models.SubscriptionPending},
				}, nil).Once()
			},
			wantErr: ErrDuplicatePendingRequest,
		},
		{
			name: "rejected history does not block new request",
			setupMocks: func(p *PlanRepoMock, r *RequestRepoMock, u *UserRepoMock) {
				p.On("GetByID", mock.Anything, "plan-1").Return(plan, nil).Once()
				r.On("List", mock.Anything).Return([]*models.SubscriptionRequest{
					{ID: "req-old", UserID: "user-1", Status: models.SubscriptionRejected},
				}, nil).Once()
				r.On("Add", mock.Anything, mock.Anything).Return(&models.SubscriptionRequest{
					ID: "req-2", UserID: "user-1", PlanID: "plan-1",
					Status: models.SubscriptionPending,
				}, nil).Once()
				u.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()
				u.On("Update", mock.Anything, mock.Anything).Return(user, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans := new(PlanRepoMock)
			requests := new(RequestRepoMock)
			users := new(UserRepoMock)
			tt.setupMocks(plans, requests, users)

			svc := newService(plans, requests, users, nil)
			got, err := svc.RequestSubscription(context.Background(), "user-1", "user@example.com", "plan-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
				assert.Equal(t, models.SubscriptionPending, got.Status)
			}
			plans.AssertExpectations(t)
			requests.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_ApproveSubscription(t *testing.T) {
	pending := func() *models.SubscriptionRequest {
		return &models.SubscriptionRequest{
			ID:        "req-1",
			UserID:    "user-1",
			UserEmail: "user@example.com",
			PlanID:    "plan-1",
			PlanName:  "Премиум",
			Status:    models.SubscriptionPending,
		}
	}

	t.Run("success approve", func(t *testing.T) {
		plans := new(PlanRepoMock)
		requests := new(RequestRepoMock)
		users := new(UserRepoMock)
		notifier := new(NotifierMock)

		requests.On("GetByID", mock.Anything, "req-1").Return(pending(), nil).Once()
		requests.On("Update", mock.Anything, mock.MatchedBy(func(req models.SubscriptionRequest) bool {
			return req.Status == models.SubscriptionActive &&
				req.ProcessedBy == "admin-1" &&
				req.ProcessedDate != nil &&
				req.ExpiryDate != nil
		})).Return(pending(), nil).Once()
		user := &models.User{UID: "user-1", SubscriptionStatus: models.SubscriptionPending}
		users.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()
		users.On("Update", mock.Anything, mock.MatchedBy(func(usr models.User) bool {
			return usr.SubscriptionStatus == models.SubscriptionActive &&
				usr.SubscriptionExpiry != nil &&
				usr.SubscriptionID != nil && *usr.SubscriptionID == "req-1" &&
				usr.SubscriptionNotes == ""
		})).Return(user, nil).Once()
		notifier.On("SendSubscriptionDecision",
			"user@example.com", "Премиум", models.SubscriptionActive, mock.Anything).Return(nil).Once()

		svc := newService(plans, requests, users, notifier)
		got, err := svc.ApproveSubscription(context.Background(), "req-1", "admin-1", 30)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, models.SubscriptionActive, got.Status)
		assert.Equal(t, "admin-1", got.ProcessedBy)
		// срок действия — календарные дни от даты решения
		wantExpiry := got.ProcessedDate.AddDate(0, 0, 30)
		assert.Equal(t, wantExpiry, *got.ExpiryDate)
		requests.AssertExpectations(t)
		users.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("request not found", func(t *testing.T) {
		requests := new(RequestRepoMock)
		requests.On("GetByID", mock.Anything, "req-missing").Return(nil, nil).Once()

		svc := newService(new(PlanRepoMock), requests, new(UserRepoMock), nil)
		got, err := svc.ApproveSubscription(context.Background(), "req-missing", "admin-1", 30)

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("request already final", func(t *testing.T) {
		final := pending()
		final.Status = models.SubscriptionRejected
		requests := new(RequestRepoMock)
		requests.On("GetByID", mock.Anything, "req-1").Return(final, nil).Once()

		svc := newService(new(PlanRepoMock), requests, new(UserRepoMock), nil)
		got, err := svc.ApproveSubscription(context.Background(), "req-1", "admin-1", 30)

		assert.ErrorIs(t, err, ErrRequestAlreadyFinal)
		assert.Nil(t, got)
	})

	t.Run("notifier failure does not fail approve", func(t *testing.T) {
		requests := new(RequestRepoMock)
		users := new(UserRepoMock)
		notifier := new(NotifierMock)

		requests.On("GetByID", mock.Anything, "req-1").Return(pending(), nil).Once()
		requests.On("Update", mock.Anything, mock.Anything).Return(pending(), nil).Once()
		users.On("GetByID", mock.Anything, "user-1").Return(nil, nil).Once()
		notifier.On("SendSubscriptionDecision",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError).Once()

		svc := newService(new(PlanRepoMock), requests, users, notifier)
		got, err := svc.ApproveSubscription(context.Background(), "req-1", "admin-1", 7)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		notifier.AssertExpectations(t)
	})
}

func TestSubscriptionService_RejectSubscription(t *testing.T) {
	pending := &models.SubscriptionRequest{
		ID:        "req-1",
		UserID:    "user-1",
		UserEmail: "user@example.com",
		PlanName:  "Премиум",
		Status:    models.SubscriptionPending,
	}

	t.Run("success reject", func(t *testing.T) {
		requests := new(RequestRepoMock)
		users := new(UserRepoMock)
		notifier := new(NotifierMock)

		reqCopy := *pending
		requests.On("GetByID", mock.Anything, "req-1").Return(&reqCopy, nil).Once()
		requests.On("Update", mock.Anything, mock.MatchedBy(func(req models.SubscriptionRequest) bool {
			return req.Status == models.SubscriptionRejected &&
				req.AdminNotes == "нет оплаты" &&
				req.ProcessedBy == "admin-1" &&
				req.ProcessedDate != nil
		})).Return(&reqCopy, nil).Once()

		planID := "plan-1"
		user := &models.User{
			UID:                "user-1",
			SubscriptionStatus: models.SubscriptionPending,
			ActivePlanID:       &planID,
		}
		users.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()
		users.On("Update", mock.Anything, mock.MatchedBy(func(usr models.User) bool {
			return usr.SubscriptionStatus == models.SubscriptionRejected &&
				usr.ActivePlanID == nil &&
				usr.SubscriptionID == nil &&
				usr.SubscriptionExpiry == nil &&
				usr.SubscriptionNotes == "нет оплаты"
		})).Return(user, nil).Once()
		notifier.On("SendSubscriptionDecision",
			"user@example.com", "Премиум", models.SubscriptionRejected, (*time.Time)(nil)).
			Return(nil).Once()

		svc := newService(new(PlanRepoMock), requests, users, notifier)
		got, err := svc.RejectSubscription(context.Background(), "req-1", "admin-1", "нет оплаты")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, models.SubscriptionRejected, got.Status)
		requests.AssertExpectations(t)
		users.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("already final", func(t *testing.T) {
		final := *pending
		final.Status = models.SubscriptionExpired
		requests := new(RequestRepoMock)
		requests.On("GetByID", mock.Anything, "req-1").Return(&final, nil).Once()

		svc := newService(new(PlanRepoMock), requests, new(UserRepoMock), nil)
		got, err := svc.RejectSubscription(context.Background(), "req-1", "admin-1", "")

		assert.ErrorIs(t, err, ErrRequestAlreadyFinal)
		assert.Nil(t, got)
	})
}

func TestSubscriptionService_CheckUserSubscriptionStatus(t *testing.T) {
	planID := "plan-1"
	reqID := "req-1"

	activeUser := func(expiry time.Time) *models.User {
		return &models.User{
			UID:                "user-1",
			SubscriptionStatus: models.SubscriptionActive,
			ActivePlanID:       &planID,
			SubscriptionID:     &reqID,
			SubscriptionExpiry: &expiry,
		}
	}

	t.Run("expired subscription becomes expired", func(t *testing.T) {
		plans := new(PlanRepoMock)
		requests := new(RequestRepoMock)
		users := new(UserRepoMock)

		user := activeUser(time.Now().UTC().Add(-time.Hour))
		users.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()
		users.On("Update", mock.Anything, mock.MatchedBy(func(usr models.User) bool {
			return usr.SubscriptionStatus == models.SubscriptionExpired
		})).Return(user, nil).Once()
		requests.On("GetByID", mock.Anything, "req-1").Return(&models.SubscriptionRequest{
			ID: "req-1", Status: models.SubscriptionActive,
		}, nil).Once()
		requests.On("Update", mock.Anything, mock.MatchedBy(func(req models.SubscriptionRequest) bool {
			return req.Status == models.SubscriptionExpired &&
				req.ProcessedDate != nil &&
				req.ProcessedBy == ""
		})).Return(&models.SubscriptionRequest{}, nil).Once()

		svc := newService(plans, requests, users, nil)
		got, err := svc.CheckUserSubscriptionStatus(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, models.SubscriptionExpired, got.SubscriptionStatus)
		requests.AssertExpectations(t)
		users.AssertExpectations(t)
	})

	t.Run("missing plan becomes cancelled", func(t *testing.T) {
		plans := new(PlanRepoMock)
		requests := new(RequestRepoMock)
		users := new(UserRepoMock)

		user := activeUser(time.Now().UTC().Add(24 * time.Hour))
		users.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()
		plans.On("GetByID", mock.Anything, "plan-1").Return(nil, nil).Once()
		users.On("Update", mock.Anything, mock.MatchedBy(func(usr models.User) bool {
			return usr.SubscriptionStatus == models.SubscriptionCancelled &&
				usr.ActivePlanID == nil
		})).Return(user, nil).Once()
		requests.On("GetByID", mock.Anything, "req-1").Return(&models.SubscriptionRequest{
			ID: "req-1", Status: models.SubscriptionActive,
		}, nil).Once()
		requests.On("Update", mock.Anything, mock.Anything).
			Return(&models.SubscriptionRequest{}, nil).Once()

		svc := newService(plans, requests, users, nil)
		got, err := svc.CheckUserSubscriptionStatus(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, models.SubscriptionCancelled, got.SubscriptionStatus)
		assert.Nil(t, got.ActivePlanID)
	})

	t.Run("valid active subscription untouched", func(t *testing.T) {
		plans := new(PlanRepoMock)
		users := new(UserRepoMock)

		user := activeUser(time.Now().UTC().Add(24 * time.Hour))
		users.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()
		plans.On("GetByID", mock.Anything, "plan-1").
			Return(&models.SubscriptionPlan{ID: "plan-1"}, nil).Once()

		svc := newService(plans, new(RequestRepoMock), users, nil)
		got, err := svc.CheckUserSubscriptionStatus(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, models.SubscriptionActive, got.SubscriptionStatus)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("non-active statuses are no-op", func(t *testing.T) {
		users := new(UserRepoMock)
		user := &models.User{UID: "user-1", SubscriptionStatus: models.SubscriptionExpired}
		users.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()

		svc := newService(new(PlanRepoMock), new(RequestRepoMock), users, nil)
		got, err := svc.CheckUserSubscriptionStatus(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, models.SubscriptionExpired, got.SubscriptionStatus)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(UserRepoMock)
		users.On("GetByID", mock.Anything, "ghost").Return(nil, nil).Once()

		svc := newService(new(PlanRepoMock), new(RequestRepoMock), users, nil)
		got, err := svc.CheckUserSubscriptionStatus(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSubscriptionService_DeletePlan(t *testing.T) {
	planID := "plan-1"
	otherPlanID := "plan-2"

	t.Run("cascade cancels users and rejects pending requests", func(t *testing.T) {
		plans := new(PlanRepoMock)
		requests := new(RequestRepoMock)
		users := new(UserRepoMock)

		plans.On("Delete", mock.Anything, "plan-1").Return(true, nil).Once()
		subscriber := &models.User{
			UID:                "user-1",
			SubscriptionStatus: models.SubscriptionActive,
			ActivePlanID:       &planID,
		}
		bystander := &models.User{
			UID:                "user-2",
			SubscriptionStatus: models.SubscriptionActive,
			ActivePlanID:       &otherPlanID,
		}
		users.On("List", mock.Anything).Return([]*models.User{subscriber, bystander}, nil).Once()
		users.On("Update", mock.Anything, mock.MatchedBy(func(usr models.User) bool {
			return usr.UID == "user-1" &&
				usr.SubscriptionStatus == models.SubscriptionCancelled &&
				usr.ActivePlanID == nil
		})).Return(subscriber, nil).Once()

		pendingReq := &models.SubscriptionRequest{
			ID: "req-1", PlanID: "plan-1", Status: models.SubscriptionPending,
		}
		activeReq := &models.SubscriptionRequest{
			ID: "req-2", PlanID: "plan-1", Status: models.SubscriptionActive,
		}
		requests.On("List", mock.Anything).
			Return([]*models.SubscriptionRequest{pendingReq, activeReq}, nil).Once()
		requests.On("UpdateAll", mock.Anything, mock.MatchedBy(func(reqs []*models.SubscriptionRequest) bool {
			return reqs[0].Status == models.SubscriptionRejected &&
				reqs[0].ProcessedBy == "" &&
				reqs[0].ProcessedDate != nil &&
				reqs[1].Status == models.SubscriptionActive
		})).Return(nil).Once()

		svc := newService(plans, requests, users, nil)
		deleted, err := svc.DeletePlan(context.Background(), "plan-1")

		assert.NoError(t, err)
		assert.True(t, deleted)
		plans.AssertExpectations(t)
		requests.AssertExpectations(t)
		users.AssertExpectations(t)
	})

	t.Run("plan not found", func(t *testing.T) {
		plans := new(PlanRepoMock)
		plans.On("Delete", mock.Anything, "ghost").Return(false, nil).Once()

		svc := newService(plans, new(RequestRepoMock), new(UserRepoMock), nil)
		deleted, err := svc.DeletePlan(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("no pending requests skips bulk update", func(t *testing.T) {
		plans := new(PlanRepoMock)
		requests := new(RequestRepoMock)
		users := new(UserRepoMock)

		plans.On("Delete", mock.Anything, "plan-1").Return(true, nil).Once()
		users.On("List", mock.Anything).Return([]*models.User{}, nil).Once()
		requests.On("List", mock.Anything).Return([]*models.SubscriptionRequest{
			{ID: "req-1", PlanID: "plan-1", Status: models.SubscriptionExpired},
		}, nil).Once()

		svc := newService(plans, requests, users, nil)
		deleted, err := svc.DeletePlan(context.Background(), "plan-1")

		assert.NoError(t, err)
		assert.True(t, deleted)
		requests.AssertNotCalled(t, "UpdateAll", mock.Anything, mock.Anything)
	})
}

func TestSubscriptionService_UpdatePlan(t *testing.T) {
	existing := &models.SubscriptionPlan{
		ID:       "plan-1",
		Name:     "Базовый",
		Price:    990,
		Currency: "RUB",
		Features: []models.PlanFeature{
			{ID: "f-1", Text: "Доступ к видео"},
			{ID: "f-2", Text: "Рецепты"},
		},
		CreatedBy: "admin-1",
	}

	t.Run("keeps id and feature ids", func(t *testing.T) {
		plans := new(PlanRepoMock)
		plans.On("GetByID", mock.Anything, "plan-1").Return(existing, nil).Once()
		plans.On("Update", mock.Anything, mock.MatchedBy(func(plan models.SubscriptionPlan) bool {
			return plan.ID == "plan-1" &&
				plan.Name == "Базовый+" &&
				plan.CreatedBy == "admin-1" &&
				len(plan.Features) == 2 &&
				plan.Features[0].ID == "f-1" &&
				plan.Features[0].Text == "Доступ к видео и трансляциям"
		})).Return(existing, nil).Once()

		svc := newService(plans, new(RequestRepoMock), new(UserRepoMock), nil)
		_, err := svc.UpdatePlan(context.Background(), "plan-1", models.DummyPlan{
			Name:     "Базовый+",
			Price:    1190,
			Currency: "RUB",
			Features: []string{"Доступ к видео и трансляциям", "Рецепты"},
		})

		assert.NoError(t, err)
		plans.AssertExpectations(t)
	})

	t.Run("new features get fresh unique ids", func(t *testing.T) {
		plans := new(PlanRepoMock)
		plans.On("GetByID", mock.Anything, "plan-1").Return(existing, nil).Once()
		plans.On("Update", mock.Anything, mock.MatchedBy(func(plan models.SubscriptionPlan) bool {
			if len(plan.Features) != 4 {
				return false
			}
			seen := map[string]bool{}
			for _, f := range plan.Features {
				if f.ID == "" || seen[f.ID] {
					return false
				}
				seen[f.ID] = true
			}
			return plan.Features[0].ID == "f-1" &&
				plan.Features[1].ID == "f-2" &&
				plan.Features[2].Text == "Трекер калорий" &&
				plan.Features[3].Text == "Консультации"
		})).Return(existing, nil).Once()

		svc := newService(plans, new(RequestRepoMock), new(UserRepoMock), nil)
		_, err := svc.UpdatePlan(context.Background(), "plan-1", models.DummyPlan{
			Name:     "Базовый",
			Price:    990,
			Currency: "RUB",
			Features: []string{"Доступ к видео", "Рецепты", "Трекер калорий", "Консультации"},
		})

		assert.NoError(t, err)
		plans.AssertExpectations(t)
	})

	t.Run("unknown plan", func(t *testing.T) {
		plans := new(PlanRepoMock)
		plans.On("GetByID", mock.Anything, "ghost").Return(nil, nil).Once()

		svc := newService(plans, new(RequestRepoMock), new(UserRepoMock), nil)
		got, err := svc.UpdatePlan(context.Background(), "ghost", models.DummyPlan{Name: "X"})

		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

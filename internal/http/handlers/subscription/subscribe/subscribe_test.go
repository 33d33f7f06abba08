package subscribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	"github.com/fitlifehub/fitlife-backend/internal/models"
	subservice "github.com/fitlifehub/fitlife-backend/internal/services/subscription"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) RequestSubscription(ctx context.Context, userID, userEmail, planID string) (*models.SubscriptionRequest, error) {
	args := m.Called(ctx, userID, userEmail, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionRequest), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSubscribeHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		withIdentity   bool
		mockRequest    *models.SubscriptionRequest
		mockErr        error
		wantStatusCode int
	}{
		{
			name:         "valid request",
			requestBody:  models.DummySubscribe{PlanID: "plan-1"},
			withIdentity: true,
			mockRequest: &models.SubscriptionRequest{
				ID: "req-1", PlanID: "plan-1", Status: models.SubscriptionPending,
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			withIdentity:   true,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "validation error - missing plan id",
			requestBody:    models.DummySubscribe{},
			withIdentity:   true,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing identity in context",
			requestBody:    models.DummySubscribe{PlanID: "plan-1"},
			withIdentity:   false,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "plan not found",
			requestBody:    models.DummySubscribe{PlanID: "ghost"},
			withIdentity:   true,
			mockErr:        subservice.ErrPlanNotFound,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "duplicate pending request",
			requestBody:    models.DummySubscribe{PlanID: "plan-1"},
			withIdentity:   true,
			mockErr:        subservice.ErrDuplicatePendingRequest,
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "service failure",
			requestBody:    models.DummySubscribe{PlanID: "plan-1"},
			withIdentity:   true,
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockRequest != nil || tt.mockErr != nil {
				serviceMock.On("RequestSubscription",
					mock.Anything, "uid-1", "user@example.com", mock.Anything).
					Return(tt.mockRequest, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions", bytes.NewReader(body))
			if tt.withIdentity {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, "uid-1")
				ctx = context.WithValue(ctx, middlewarectx.UserEmail, "user@example.com")
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			serviceMock.AssertExpectations(t)
		})
	}
}

package approve

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fitlifehub/fitlife-backend/internal/http/middlewarectx"
	"github.com/fitlifehub/fitlife-backend/internal/models"
	subservice "github.com/fitlifehub/fitlife-backend/internal/services/subscription"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ApproveSubscription(ctx context.Context, requestID, adminID string, durationDays int) (*models.SubscriptionRequest, error) {
	args := m.Called(ctx, requestID, adminID, durationDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionRequest), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newRequest(t *testing.T, requestID string, body any) *http.Request {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/subscriptions/"+requestID+"/approve", bytes.NewReader(raw))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", requestID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middlewarectx.UserUID, "admin-1")
	return req.WithContext(ctx)
}

func TestApproveHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestID      string
		body           any
		mockRequest    *models.SubscriptionRequest
		mockErr        error
		mockCalled     bool
		wantStatusCode int
	}{
		{
			name:      "valid approve",
			requestID: "req-1",
			body:      models.DummyApprove{DurationDays: 30},
			mockRequest: &models.SubscriptionRequest{
				ID: "req-1", UserID: "user-1", Status: models.SubscriptionActive,
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid json body",
			requestID:      "req-1",
			body:           "not a json",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "validation error - zero duration",
			requestID:      "req-1",
			body:           models.DummyApprove{DurationDays: 0},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "validation error - negative duration",
			requestID:      "req-1",
			body:           models.DummyApprove{DurationDays: -5},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "request not found",
			requestID:      "ghost",
			body:           models.DummyApprove{DurationDays: 30},
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "request already processed",
			requestID:      "req-1",
			body:           models.DummyApprove{DurationDays: 30},
			mockErr:        subservice.ErrRequestAlreadyFinal,
			mockCalled:     true,
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockCalled {
				serviceMock.On("ApproveSubscription",
					mock.Anything, tt.requestID, "admin-1", mock.Anything).
					Return(tt.mockRequest, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, newRequest(t, tt.requestID, tt.body))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			serviceMock.AssertExpectations(t)
		})
	}
}

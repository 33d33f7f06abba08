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

type PostRepoMock struct{ mock.Mock }

func (m *PostRepoMock) List(ctx context.Context) ([]*models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}
func (m *PostRepoMock) GetByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}
func (m *PostRepoMock) Add(ctx context.Context, post models.Post) (*models.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}
func (m *PostRepoMock) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestFeedService_CreatePost(t *testing.T) {
	posts := new(PostRepoMock)
	posts.On("Add", mock.Anything, mock.MatchedBy(func(post models.Post) bool {
		return post.UserID == "user-1" &&
			post.AuthorName == "Мария" &&
			post.Text == "Минус 10 кг за три месяца"
	})).Return(&models.Post{ID: "post-1"}, nil).Once()

	svc := NewFeedService(posts, newNoopLogger())
	got, err := svc.CreatePost(context.Background(), "user-1", "Мария", models.DummyPost{
		Text: "Минус 10 кг за три месяца",
	})

	assert.NoError(t, err)
	assert.Equal(t, "post-1", got.ID)
	posts.AssertExpectations(t)
}

func TestFeedService_ListPosts_NewestFirst(t *testing.T) {
	now := time.Now()
	posts := new(PostRepoMock)
	posts.On("List", mock.Anything).Return([]*models.Post{
		{ID: "old", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "new", CreatedAt: now},
		{ID: "mid", CreatedAt: now.Add(-time.Hour)},
	}, nil).Once()

	svc := NewFeedService(posts, newNoopLogger())
	got, err := svc.ListPosts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestFeedService_RemovePost(t *testing.T) {
	post := &models.Post{ID: "post-1", UserID: "author-1"}

	tests := []struct {
		name        string
		requesterID string
		role        string
		setupMocks  func(p *PostRepoMock)
		wantDeleted bool
		wantErr     error
	}{
		{
			name:        "author removes own post",
			requesterID: "author-1",
			role:        models.RoleUser,
			setupMocks: func(p *PostRepoMock) {
				p.On("GetByID", mock.Anything, "post-1").Return(post, nil).Once()
				p.On("Delete", mock.Anything, "post-1").Return(true, nil).Once()
			},
			wantDeleted: true,
		},
		{
			name:        "admin removes foreign post",
			requesterID: "admin-1",
			role:        models.RoleAdmin,
			setupMocks: func(p *PostRepoMock) {
				p.On("GetByID", mock.Anything, "post-1").Return(post, nil).Once()
				p.On("Delete", mock.Anything, "post-1").Return(true, nil).Once()
			},
			wantDeleted: true,
		},
		{
			name:        "stranger cannot remove",
			requesterID: "user-2",
			role:        models.RoleUser,
			setupMocks: func(p *PostRepoMock) {
				p.On("GetByID", mock.Anything, "post-1").Return(post, nil).Once()
			},
			wantErr: ErrNotPostAuthor,
		},
		{
			name:        "missing post",
			requesterID: "author-1",
			role:        models.RoleUser,
			setupMocks: func(p *PostRepoMock) {
				p.On("GetByID", mock.Anything, "post-1").Return(nil, nil).Once()
			},
			wantDeleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := new(PostRepoMock)
			tt.setupMocks(posts)

			svc := NewFeedService(posts, newNoopLogger())
			deleted, err := svc.RemovePost(context.Background(), "post-1", tt.requesterID, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantDeleted, deleted)
			}
			posts.AssertExpectations(t)
		})
	}
}

// Package services содержит бизнес-логику ленты трансформаций:
// публикацию, чтение и удаление постов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// ErrNotPostAuthor — попытка удалить чужой пост без прав администратора.
var ErrNotPostAuthor = errors.New("not the post author")

// PostRepository определяет методы для работы с постами ленты.
type PostRepository interface {
	List(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Add(ctx context.Context, post models.Post) (*models.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// FeedService реализует бизнес-логику ленты трансформаций.
type FeedService struct {
	posts PostRepository
	log   *slog.Logger
}

// NewFeedService создает новый экземпляр FeedService.
func NewFeedService(posts PostRepository, log *slog.Logger) *FeedService {
	return &FeedService{
		posts: posts,
		log:   log,
	}
}

// CreatePost публикует пост от имени пользователя. Имя автора фиксируется
// снимком на момент публикации.
func (s *FeedService) CreatePost(ctx context.Context, userID, authorName string, req models.DummyPost) (*models.Post, error) {
	post, err := s.posts.Add(ctx, models.Post{
		UserID:     userID,
		AuthorName: authorName,
		Text:       req.Text,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("created feed post", slog.String("post_id", post.ID), slog.String("user_id", userID))
	return post, nil
}

// ListPosts возвращает посты ленты, новые первыми.
func (s *FeedService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// RemovePost удаляет пост. Удалять может автор поста или администратор.
// Возвращает false, если пост не найден.
func (s *FeedService) RemovePost(ctx context.Context, postID, requesterID, requesterRole string) (bool, error) {
	const op = "services.feed.RemovePost"
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, nil
	}
	if post.UserID != requesterID && requesterRole != models.RoleAdmin {
		return false, fmt.Errorf("%s: %w", op, ErrNotPostAuthor)
	}
	return s.posts.Delete(ctx, postID)
}

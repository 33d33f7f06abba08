package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// PostRepository управляет постами ленты трансформаций.
type PostRepository struct {
	store Store
}

// NewPostRepository создает новый PostRepository.
func NewPostRepository(store Store) *PostRepository {
	return &PostRepository{store: store}
}

func (r *PostRepository) load(ctx context.Context) ([]*models.Post, error) {
	const op = "repository.posts.load"
	var posts []*models.Post
	if _, err := r.store.Read(ctx, postsKey, &posts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return posts, nil
}

func (r *PostRepository) save(ctx context.Context, posts []*models.Post) error {
	const op = "repository.posts.save"
	if err := r.store.Write(ctx, postsKey, posts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// List возвращает все посты ленты.
func (r *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	return r.load(ctx)
}

// GetByID возвращает пост по ID или (nil, nil), если не найден.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	posts, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Add создает новый пост, назначая ID и дату публикации.
func (r *PostRepository) Add(ctx context.Context, post models.Post) (*models.Post, error) {
	posts, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	post.ID = uuid.New().String()
	post.CreatedAt = time.Now().UTC()

	posts = append(posts, &post)
	if err := r.save(ctx, posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete удаляет пост по ID. Возвращает true, если запись была удалена.
func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	posts, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i, p := range posts {
		if p.ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			if err := r.save(ctx, posts); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// VideoRepository управляет каталогом тренировочных видео.
type VideoRepository struct {
	store Store
}

// NewVideoRepository создает новый VideoRepository.
func NewVideoRepository(store Store) *VideoRepository {
	return &VideoRepository{store: store}
}

func (r *VideoRepository) load(ctx context.Context) ([]*models.WorkoutVideo, error) {
	const op = "repository.videos.load"
	var videos []*models.WorkoutVideo
	if _, err := r.store.Read(ctx, videosKey, &videos); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return videos, nil
}

func (r *VideoRepository) save(ctx context.Context, videos []*models.WorkoutVideo) error {
	const op = "repository.videos.save"
	if err := r.store.Write(ctx, videosKey, videos); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// List возвращает все видео каталога.
func (r *VideoRepository) List(ctx context.Context) ([]*models.WorkoutVideo, error) {
	return r.load(ctx)
}

// GetByID возвращает видео по ID или (nil, nil), если не найдено.
func (r *VideoRepository) GetByID(ctx context.Context, id string) (*models.WorkoutVideo, error) {
	videos, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range videos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

// Add создает новое видео, назначая ID и дату добавления.
func (r *VideoRepository) Add(ctx context.Context, req models.DummyVideo, createdBy string) (*models.WorkoutVideo, error) {
	videos, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	video := &models.WorkoutVideo{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Description:     req.Description,
		URL:             req.URL,
		Category:        req.Category,
		Level:           req.Level,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       time.Now().UTC(),
		CreatedBy:       createdBy,
	}

	videos = append(videos, video)
	if err := r.save(ctx, videos); err != nil {
		return nil, err
	}
	return video, nil
}

// Delete удаляет видео по ID. Возвращает true, если запись была удалена.
func (r *VideoRepository) Delete(ctx context.Context, id string) (bool, error) {
	videos, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i, v := range videos {
		if v.ID == id {
			videos = append(videos[:i], videos[i+1:]...)
			if err := r.save(ctx, videos); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Package services содержит бизнес-логику рекомендаций по питанию поверх
// внешнего генеративного API. Любой сбой удалённого вызова деградирует до
// локализованного извинения: ошибка не считается фатальной и не влияет
// ни на какие сохранённые сущности.
package services

import (
	"context"
	"log/slog"

	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// ApologyMessage возвращается пользователю при любом сбое внешнего API.
const ApologyMessage = "Извините, сейчас я не могу ответить на ваш вопрос. Пожалуйста, попробуйте позже."

// Provider описывает контракт клиента генеративного API.
type Provider interface {
	GetAdvice(ctx context.Context, query string, history []models.ChatMessage) (string, error)
}

// AdviceService реализует рекомендации по питанию с деградацией при сбоях.
type AdviceService struct {
	provider Provider
	log      *slog.Logger
}

// NewAdviceService создает новый экземпляр AdviceService.
func NewAdviceService(provider Provider, log *slog.Logger) *AdviceService {
	return &AdviceService{
		provider: provider,
		log:      log,
	}
}

// GetAdvice возвращает ответ на вопрос о питании. Сбой внешнего вызова
// логируется, а пользователю возвращается извинение вместо ошибки.
func (s *AdviceService) GetAdvice(ctx context.Context, userID string, req models.DummyAdvice) string {
	answer, err := s.provider.GetAdvice(ctx, req.Query, req.History)
	if err != nil {
		s.log.Warn("advice provider call failed",
			slog.String("user_id", userID), sl.Err(err))
		return ApologyMessage
	}
	return answer
}

package analytics

import (
	"context"

	"go.uber.org/zap"

	"gomarketplace/internal/kafka"
)

type Service struct {
	repo   AnalyticsRepo
	logger *zap.SugaredLogger
}

func NewService(repo AnalyticsRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ProcessEvent меняет популярность товара: добавление и увеличение +1, уменьшение -1
func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.ProductID == "" {
		return nil // Игнорируем события без товара
	}

	var delta int
	switch event.Type {
	case kafka.EventTypeAddToCart, kafka.EventTypeIncrement:
		delta = 1
	case kafka.EventTypeDecrement:
		delta = -1
	default:
		s.logger.Debugw("skipping unknown event type", "type", event.Type, "event_id", event.ID)
		return nil
	}

	return s.repo.UpdatePopularity(ctx, event.ProductID, delta)
}

func (s *Service) GetTopProducts(ctx context.Context, limit int) ([]string, error) {
	return s.repo.GetTopProducts(ctx, limit)
}

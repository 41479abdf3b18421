package analytics

import (
	"context"

	"gomarketplace/internal/kafka"
)

// AnalyticsRepo — интерфейс репозитория популярности товаров.
type AnalyticsRepo interface {
	UpdatePopularity(ctx context.Context, productID string, delta int) error
	GetTopProducts(ctx context.Context, limit int) ([]string, error)
}

// AnalyticsService — интерфейс сервиса аналитики корзин.
type AnalyticsService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	GetTopProducts(ctx context.Context, limit int) ([]string, error)
}

package analytics

import (
	"context"
	"errors"
	"testing"

	"gomarketplace/internal/kafka"
)

// fakeRepo нужен для «подмены» AnalyticsRepo в тестах.
type fakeRepo struct {
	called        bool
	lastProductID string
	lastDelta     int
	returnErr     error
}

func (f *fakeRepo) UpdatePopularity(ctx context.Context, productID string, delta int) error {
	f.called = true
	f.lastProductID = productID
	f.lastDelta = delta
	return f.returnErr
}

func (f *fakeRepo) GetTopProducts(ctx context.Context, limit int) ([]string, error) {
	return nil, nil
}

func TestService_ProcessEvent(t *testing.T) {
	tests := []struct {
		name          string
		event         kafka.Event
		expectCalled  bool
		expectedDelta int
	}{
		{
			name:          "add to cart",
			event:         kafka.NewEvent("d", kafka.EventTypeAddToCart, "p1", 1, 10),
			expectCalled:  true,
			expectedDelta: 1,
		},
		{
			name:          "increment",
			event:         kafka.NewEvent("d", kafka.EventTypeIncrement, "p1", 2, 10),
			expectCalled:  true,
			expectedDelta: 1,
		},
		{
			name:          "decrement",
			event:         kafka.NewEvent("d", kafka.EventTypeDecrement, "p1", 1, 10),
			expectCalled:  true,
			expectedDelta: -1,
		},
		{
			name:  "no product id",
			event: kafka.NewEvent("d", kafka.EventTypeAddToCart, "", 1, 10),
		},
		{
			name:  "unknown type",
			event: kafka.NewEvent("d", kafka.EventType("purchase"), "p1", 1, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			service := NewService(repo, zapTestLogger(t))

			if err := service.ProcessEvent(context.Background(), tt.event); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.called != tt.expectCalled {
				t.Fatalf("expected called=%v, got %v", tt.expectCalled, repo.called)
			}
			if tt.expectCalled {
				if repo.lastProductID != "p1" {
					t.Errorf("expected product \"p1\", got %q", repo.lastProductID)
				}
				if repo.lastDelta != tt.expectedDelta {
					t.Errorf("expected delta %d, got %d", tt.expectedDelta, repo.lastDelta)
				}
			}
		})
	}
}

func TestService_ProcessEvent_RepoError(t *testing.T) {
	repo := &fakeRepo{returnErr: errors.New("db error")}
	service := NewService(repo, zapTestLogger(t))

	err := service.ProcessEvent(context.Background(), kafka.NewEvent("d", kafka.EventTypeIncrement, "p1", 2, 1))
	if err == nil {
		t.Errorf("expected error from repo, got nil")
	}
}

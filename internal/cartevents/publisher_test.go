package cartevents

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gomarketplace/internal/cart"
	"gomarketplace/internal/kafka"
	"gomarketplace/internal/storage"
	"gomarketplace/internal/types/product"
)

type fakeProducer struct {
	mu     sync.Mutex
	events []kafka.Event
	err    error
	delay  time.Duration
}

func (f *fakeProducer) SendEvent(ctx context.Context, event kafka.Event) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)
	return f.err
}

func (f *fakeProducer) Close() error {
	return nil
}

func (f *fakeProducer) Events() []kafka.Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]kafka.Event(nil), f.events...)
}

func TestPublisher_Run(t *testing.T) {
	producer := &fakeProducer{}
	publisher := NewPublisher(producer, zaptest.NewLogger(t).Sugar(), "device-1")

	changes := make(chan cart.Change, 4)
	shoe := product.Product{ID: "p1", Title: "Shoe", ImageURL: "u", Price: 10, Quantity: 1}

	changes <- cart.Change{Op: cart.OpLoad, Products: []product.Product{shoe}, Version: 1}
	changes <- cart.Change{Op: cart.OpAdd, ProductID: "p1", Products: []product.Product{shoe}, Version: 2}
	shoe.Quantity = 2
	changes <- cart.Change{Op: cart.OpIncrement, ProductID: "p1", Products: []product.Product{shoe}, Version: 3}
	shoe.Quantity = 1
	changes <- cart.Change{Op: cart.OpDecrement, ProductID: "p1", Products: []product.Product{shoe}, Version: 4}
	close(changes)

	publisher.Run(changes)

	events := producer.Events()
	require.Len(t, events, 3)

	assert.Equal(t, kafka.EventTypeAddToCart, events[0].Type)
	assert.Equal(t, kafka.EventTypeIncrement, events[1].Type)
	assert.Equal(t, kafka.EventTypeDecrement, events[2].Type)
	assert.Equal(t, []int{1, 2, 1}, []int{events[0].Quantity, events[1].Quantity, events[2].Quantity})
	for _, e := range events {
		assert.Equal(t, "device-1", e.DeviceID)
		assert.Equal(t, "p1", e.ProductID)
		assert.Equal(t, float64(10), e.Price)
	}
}

func TestPublisher_SendErrorDoesNotStop(t *testing.T) {
	producer := &fakeProducer{err: errors.New("kafka down")}
	publisher := NewPublisher(producer, zaptest.NewLogger(t).Sugar(), "device-1")

	changes := make(chan cart.Change, 2)
	changes <- cart.Change{Op: cart.OpAdd, ProductID: "p1"}
	changes <- cart.Change{Op: cart.OpAdd, ProductID: "p2"}
	close(changes)

	publisher.Run(changes)

	assert.Len(t, producer.Events(), 2)
}

func TestPublisher_WithStore(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	store := cart.NewStore(storage.NewMemoryStorage(), logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, store.WaitReady(ctx))

	producer := &fakeProducer{}
	changes, unsubscribe := store.SubscribeAll()

	done := make(chan struct{})
	go func() {
		defer close(done)
		NewPublisher(producer, logger, "device-1").Run(changes)
	}()

	store.AddToCart(product.Descriptor{ID: "p1", Title: "Shoe", ImageURL: "u", Price: 10})
	store.AddToCart(product.Descriptor{ID: "p1", Title: "Shoe", ImageURL: "u", Price: 10})
	store.Decrement("p1")

	require.Eventually(t, func() bool {
		return len(producer.Events()) == 3
	}, time.Second, 5*time.Millisecond)

	unsubscribe()
	<-done
	require.NoError(t, store.Close(ctx))

	events := producer.Events()
	assert.Equal(t, kafka.EventTypeAddToCart, events[0].Type)
	assert.Equal(t, kafka.EventTypeIncrement, events[1].Type)
	assert.Equal(t, kafka.EventTypeDecrement, events[2].Type)
}

// Медленный продюсер и серия изменений больше буфера подписчика:
// каждое изменение превращается в событие.
func TestPublisher_SlowProducerBurst(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	store := cart.NewStore(storage.NewMemoryStorage(), logger, cart.WithSubscriberBuffer(4))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, store.WaitReady(ctx))

	producer := &fakeProducer{delay: 5 * time.Millisecond}
	changes, _ := store.SubscribeAll()

	done := make(chan struct{})
	go func() {
		defer close(done)
		NewPublisher(producer, logger, "device-1").Run(changes)
	}()

	const burst = 50
	store.AddToCart(product.Descriptor{ID: "p1", Title: "Shoe", ImageURL: "u", Price: 10})
	for i := 1; i < burst; i++ {
		store.Increment("p1")
	}

	// Close закрывает подписку только после того, как все изменения прочитаны
	require.NoError(t, store.Close(ctx))
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("publisher did not drain")
	}

	events := producer.Events()
	require.Len(t, events, burst)
	assert.Equal(t, kafka.EventTypeAddToCart, events[0].Type)
	for i, e := range events {
		assert.Equal(t, i+1, e.Quantity)
	}
	for _, e := range events[1:] {
		assert.Equal(t, kafka.EventTypeIncrement, e.Type)
	}
}

// Отправка ограничена SendTimeout, а не временем жизни процесса
func TestPublisher_SendTimeout(t *testing.T) {
	var deadline time.Time
	producer := &deadlineProducer{seen: &deadline}
	publisher := NewPublisher(producer, zaptest.NewLogger(t).Sugar(), "device-1")
	publisher.SendTimeout = time.Minute

	changes := make(chan cart.Change, 1)
	changes <- cart.Change{Op: cart.OpAdd, ProductID: "p1"}
	close(changes)

	start := time.Now()
	publisher.Run(changes)

	require.False(t, deadline.IsZero())
	assert.WithinDuration(t, start.Add(time.Minute), deadline, 5*time.Second)
}

type deadlineProducer struct {
	seen *time.Time
}

func (d *deadlineProducer) SendEvent(ctx context.Context, event kafka.Event) error {
	*d.seen, _ = ctx.Deadline()
	return nil
}

func (d *deadlineProducer) Close() error {
	return nil
}

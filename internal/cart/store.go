package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"gomarketplace/internal/app"
	"gomarketplace/internal/storage"
	myErr "gomarketplace/internal/types/errors"
	"gomarketplace/internal/types/product"
)

var _ CartStore = (*Store)(nil)

type Option func(*Store)

// WithKey задает ключ, под которым корзина лежит в хранилище
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTimeout ограничивает время одного чтения или записи в хранилище
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithSubscriberBuffer(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.subscriberBuffer = n
		}
	}
}

// Store хранит корзину в памяти и синхронизирует ее с хранилищем.
//
// Изменения применяются под мьютексом и сразу публикуются подписчикам.
// Запись в хранилище делает одна горутина: она берет самый свежий снимок,
// поэтому записи идут в порядке изменений и старый снимок никогда
// не перезаписывает новый.
type Store struct {
	storage storage.KeyValueStorage
	logger  *zap.SugaredLogger

	key              string
	timeout          time.Duration
	subscriberBuffer int

	mu       sync.RWMutex
	products []product.Product
	version  uint64
	mutated  bool
	closed   bool

	pending  []byte
	enqueued uint64
	written  uint64
	progress chan struct{}

	subs    map[uint64]chan Change
	queues  map[uint64]*queue
	nextSub uint64

	wake      chan struct{}
	quit      chan struct{}
	stopped   chan struct{}
	ready     chan struct{}
	closeOnce sync.Once
}

// NewStore создает корзину и сразу запускает ее однократную загрузку из хранилища
func NewStore(kv storage.KeyValueStorage, logger *zap.SugaredLogger, opts ...Option) *Store {
	s := &Store{
		storage:          kv,
		logger:           logger,
		key:              app.DefaultStorageKey,
		timeout:          app.DefaultWriteTimeout,
		subscriberBuffer: app.DefaultSubscriberBuffer,
		products:         []product.Product{},
		progress:         make(chan struct{}),
		subs:             make(map[uint64]chan Change),
		queues:           make(map[uint64]*queue),
		wake:             make(chan struct{}, 1),
		quit:             make(chan struct{}),
		stopped:          make(chan struct{}),
		ready:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.runWriter()
	go s.load()

	return s
}

func (s *Store) Products() []product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneProducts(s.products)
}

func (s *Store) AddToCart(item product.Descriptor) []product.Product {
	return s.apply(item.ID, func() (Op, bool) {
		if i := s.indexOf(item.ID); i >= 0 {
			s.products[i].Quantity++
			return OpIncrement, true
		}

		s.products = append(s.products, item.ToProduct())
		return OpAdd, true
	})
}

func (s *Store) Increment(id string) []product.Product {
	return s.apply(id, func() (Op, bool) {
		i := s.indexOf(id)
		if i < 0 {
			return OpIncrement, false
		}

		s.products[i].Quantity++
		return OpIncrement, true
	})
}

func (s *Store) Decrement(id string) []product.Product {
	return s.apply(id, func() (Op, bool) {
		i := s.indexOf(id)
		if i < 0 || s.products[i].Quantity <= 1 {
			return OpDecrement, false
		}

		s.products[i].Quantity--
		return OpDecrement, true
	})
}

func (s *Store) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Change, s.subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}

	return ch, cancel
}

// SubscribeAll подписывает на изменения без потерь: отставший читатель
// получит каждое изменение по порядку. Для потребителей вроде отправки событий,
// которым нужна вся история, а не последний снимок. После Close канал
// закрывается, когда накопленные изменения прочитаны.
func (s *Store) SubscribeAll() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := newQueue()
	if s.closed {
		q.close()
		return q.out, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.queues[id] = q

	cancel := func() {
		s.mu.Lock()
		delete(s.queues, id)
		s.mu.Unlock()

		q.stop()
	}

	return q.out, cancel
}

func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// WaitReady блокируется до окончания первичной загрузки
func (s *Store) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) Flush(ctx context.Context) error {
	s.mu.RLock()
	target := s.enqueued
	s.mu.RUnlock()

	for {
		s.mu.RLock()
		done := s.written >= target
		progress := s.progress
		s.mu.RUnlock()

		if done {
			return nil
		}

		select {
		case <-progress:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close дописывает последний снимок, останавливает запись и закрывает каналы подписчиков.
// Изменения после Close применяются только в памяти.
func (s *Store) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		for id, ch := range s.subs {
			delete(s.subs, id)
			close(ch)
		}
		for id, q := range s.queues {
			delete(s.queues, id)
			q.close()
		}
		s.mu.Unlock()

		close(s.quit)
	})

	select {
	case <-s.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// apply выполняет mutate под мьютексом; если корзина изменилась,
// публикует снимок и ставит его в очередь на запись
func (s *Store) apply(id string, mutate func() (Op, bool)) []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, changed := mutate()
	if !changed {
		return cloneProducts(s.products)
	}

	s.mutated = true
	s.version++
	observeCart(s)

	snapshot := cloneProducts(s.products)
	s.publish(Change{
		Op:        op,
		ProductID: id,
		Products:  snapshot,
		Version:   s.version,
	})
	s.enqueue()

	return cloneProducts(snapshot)
}

func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// publish вызывается под s.mu
func (s *Store) publish(c Change) {
	for _, ch := range s.subs {
		select {
		case ch <- c:
		default:
			// подписчик отстал: выкидываем самое старое изменение
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- c:
			default:
			}
		}
	}
	for _, q := range s.queues {
		q.push(c)
	}
}

// enqueue вызывается под s.mu
func (s *Store) enqueue() {
	if s.closed {
		s.logger.Warnw("cart store is closed, change is kept in memory only",
			"key", s.key,
			"version", s.version,
		)
		return
	}

	payload, err := json.Marshal(s.products)
	if err != nil {
		s.logger.Errorw("failed to encode cart", "key", s.key, "err", err)
		return
	}

	s.pending = payload
	s.enqueued = s.version

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store) runWriter() {
	defer close(s.stopped)

	for {
		select {
		case <-s.wake:
			s.writePending()
		case <-s.quit:
			s.writePending()
			return
		}
	}
}

func (s *Store) writePending() {
	s.mu.Lock()
	payload, version := s.pending, s.enqueued
	s.pending = nil
	s.mu.Unlock()

	if payload == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	err := s.storage.SetItem(ctx, s.key, string(payload))
	cancel()

	if err != nil {
		cartPersistFailuresTotal.Inc()
		s.logger.Warnw("failed to persist cart",
			"key", s.key,
			"version", version,
			"err", err,
		)
	} else {
		cartPersistWritesTotal.Inc()
	}

	s.mu.Lock()
	s.written = version
	close(s.progress)
	s.progress = make(chan struct{})
	s.mu.Unlock()
}

func (s *Store) load() {
	defer close(s.ready)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	raw, err := s.storage.GetItem(ctx, s.key)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			cartLoadTotal.WithLabelValues("empty").Inc()
			s.logger.Infow("no persisted cart, starting empty", "key", s.key)
			return
		}

		cartLoadTotal.WithLabelValues("error").Inc()
		s.logger.Warnw("failed to load cart, starting empty", "key", s.key, "err", err)
		return
	}

	var loaded []product.Product
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		cartLoadTotal.WithLabelValues("malformed").Inc()
		s.logger.Warnw("persisted cart is malformed, starting empty", "key", s.key, "err", err)
		return
	}
	loaded = sanitize(loaded)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mutated {
		cartLoadTotal.WithLabelValues("discarded").Inc()
		s.logger.Infow("cart changed before load completed, persisted cart discarded", "key", s.key)
		return
	}

	s.products = loaded
	s.version++
	observeCart(s)
	s.publish(Change{
		Op:       OpLoad,
		Products: cloneProducts(loaded),
		Version:  s.version,
	})

	cartLoadTotal.WithLabelValues("loaded").Inc()
	s.logger.Infow("cart loaded", "key", s.key, "items", len(loaded))
}

// sanitize восстанавливает инварианты корзины у прочитанных данных:
// без пустых id, без дублей, количество не меньше 1
func sanitize(loaded []product.Product) []product.Product {
	result := make([]product.Product, 0, len(loaded))
	index := make(map[string]int, len(loaded))

	for _, p := range loaded {
		if p.ID == "" {
			continue
		}
		if p.Quantity < 1 {
			p.Quantity = 1
		}
		if i, ok := index[p.ID]; ok {
			result[i].Quantity += p.Quantity
			continue
		}

		index[p.ID] = len(result)
		result = append(result, p)
	}

	return result
}

func cloneProducts(products []product.Product) []product.Product {
	result := make([]product.Product, len(products))
	copy(result, products)
	return result
}

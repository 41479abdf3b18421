package cart

import "sync"

// queue - подписка без потерь. Изменения копятся в неограниченной очереди,
// отдельная горутина отдает их в out по одному.
type queue struct {
	mu     sync.Mutex
	items  []Change
	closed bool
	signal chan struct{}
	done   chan struct{}
	out    chan Change
	cancel sync.Once
}

func newQueue() *queue {
	q := &queue{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
		out:    make(chan Change),
	}
	go q.run()

	return q
}

func (q *queue) push(c Change) {
	q.mu.Lock()
	if !q.closed {
		q.items = append(q.items, c)
	}
	q.mu.Unlock()

	q.wake()
}

// close дает дочитать накопленное, после чего out закрывается
func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.wake()
}

// stop закрывает out, не дожидаясь очереди
func (q *queue) stop() {
	q.cancel.Do(func() {
		close(q.done)
	})
}

func (q *queue) wake() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *queue) run() {
	defer close(q.out)

	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			closed := q.closed
			q.mu.Unlock()

			if closed {
				return
			}

			select {
			case <-q.signal:
				continue
			case <-q.done:
				return
			}
		}

		next := q.items[0]
		q.items[0] = Change{}
		q.items = q.items[1:]
		q.mu.Unlock()

		select {
		case q.out <- next:
		case <-q.done:
			return
		}
	}
}

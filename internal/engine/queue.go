package engine

import (
	"sync"

	"github.com/roach88/minesweep/internal/game"
)

// requestKind distinguishes the requests a Session accepts.
type requestKind int

const (
	// requestStart replaces the live game with a new one.
	requestStart requestKind = iota + 1
	// requestMove applies one move to the live game.
	requestMove
	// requestSnapshot reads the live game without mutating it.
	requestSnapshot
)

func (k requestKind) String() string {
	switch k {
	case requestStart:
		return "start"
	case requestMove:
		return "move"
	case requestSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// request is one unit of work for the Run loop. reply is buffered (size 1)
// so the loop never blocks on a caller that gave up.
type request struct {
	kind  requestKind
	cfg   game.Config
	move  game.Move
	reply chan Reply
}

// requestQueue is a thread-safe unbounded FIFO of requests.
//
// Producers are the Session client methods on arbitrary goroutines; the
// only consumer is Session.Run. A buffered signal channel of size 1 lets
// the consumer wait with select alongside ctx.Done().
type requestQueue struct {
	mu     sync.Mutex
	items  []request
	closed bool
	signal chan struct{}
}

func newRequestQueue() *requestQueue {
	return &requestQueue{
		items:  make([]request, 0, 16),
		signal: make(chan struct{}, 1),
	}
}

// Enqueue appends r. Returns false if the queue is closed.
func (q *requestQueue) Enqueue(r request) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items = append(q.items, r)

	// Non-blocking: one pending signal is enough to wake the consumer.
	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// TryDequeue removes the front request without blocking.
func (q *requestQueue) TryDequeue() (request, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return request{}, false
	}
	r := q.items[0]
	// Clear the slot so the reply channel can be collected.
	q.items[0] = request{}
	if len(q.items) == 1 {
		q.items = q.items[:0]
	} else {
		q.items = q.items[1:]
	}
	return r, true
}

// Wait returns the signal channel. It fires after an Enqueue and is closed
// by Close.
func (q *requestQueue) Wait() <-chan struct{} {
	return q.signal
}

// Len returns the number of pending requests.
func (q *requestQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Drained reports whether the queue is closed and empty.
func (q *requestQueue) Drained() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed && len(q.items) == 0
}

// Close rejects further Enqueue calls and wakes the consumer. Idempotent.
func (q *requestQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.signal)
}

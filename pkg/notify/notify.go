package notify

import (
	"sync"
	"time"
)

// Notification is a user-facing toast message.
type Notification struct {
	Title     string
	Message   string
	Type      string
	CreatedAt time.Time
}

// Notifier is what write paths call to emit a notification. Implementations
// must never block and never fail the caller.
type Notifier interface {
	Notify(n Notification)
}

// Queue is a bounded in-process notification queue. Enqueueing on a full
// queue drops the notification; delivery is best effort.
type Queue struct {
	items []Notification
	limit int
	mu    sync.Mutex
}

func NewQueue(limit int) *Queue {
	return &Queue{
		items: make([]Notification, 0),
		limit: limit,
	}
}

func (q *Queue) Notify(n Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.limit > 0 && len(q.items) >= q.limit {
		return
	}
	q.items = append(q.items, n)
}

func (q *Queue) Dequeue() (Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Notification{}, false
	}
	n := q.items[0]
	q.items = q.items[1:]
	return n, true
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Drain removes and returns all pending notifications.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.items
	q.items = make([]Notification, 0)
	return drained
}

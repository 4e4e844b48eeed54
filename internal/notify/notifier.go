// Package notify fans state-change events out to presentation layers.
package notify

import (
	"sync"
	"time"
)

// Kind names what changed
type Kind string

const (
	PlanChanged    Kind = "plan.changed"
	SessionChanged Kind = "session.changed"
	PlansChanged   Kind = "plans.changed"
	LogChanged     Kind = "log.changed"
)

// Event is a change notification. Listeners re-read state; events carry no payload.
type Event struct {
	Kind Kind      `json:"kind"`
	At   time.Time `json:"at"`
}

// Listener receives events synchronously on the publishing goroutine
// and must not block.
type Listener func(Event)

// Notifier is a minimal synchronous publish/subscribe hub
type Notifier struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]Listener
	now       func() time.Time
}

func New() *Notifier {
	return &Notifier{
		listeners: make(map[int]Listener),
		now:       time.Now,
	}
}

// Subscribe registers l and returns a func that unregisters it
func (n *Notifier) Subscribe(l Listener) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = l
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// Publish delivers an event of kind k to every listener. A nil Notifier is a no-op.
func (n *Notifier) Publish(k Kind) {
	if n == nil {
		return
	}
	ev := Event{Kind: k, At: n.now()}

	n.mu.RLock()
	ls := make([]Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		ls = append(ls, l)
	}
	n.mu.RUnlock()

	for _, l := range ls {
		l(ev)
	}
}

// Channel subscribes a buffered channel. Events are dropped when the buffer
// is full so a slow reader never stalls publishers.
func (n *Notifier) Channel(buffer int) (<-chan Event, func()) {
	ch := make(chan Event, buffer)
	var mu sync.Mutex
	closed := false

	unsub := n.Subscribe(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- ev:
		default:
		}
	})

	return ch, func() {
		unsub()
		mu.Lock()
		if !closed {
			closed = true
			close(ch)
		}
		mu.Unlock()
	}
}

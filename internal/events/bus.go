package events

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Change announces that a collection was mutated and persisted.
type Change struct {
	Collection string    `json:"collection"`
	RecordID   string    `json:"recordId,omitempty"`
	Action     string    `json:"action"`
	At         time.Time `json:"at"`
}

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Publisher is what collection managers depend on.
type Publisher interface {
	Publish(change Change)
}

// Bus fans changes out to subscribers. Publish never blocks: a subscriber whose
// buffer is full misses the change.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan Change
	nextID int
	log    *zap.Logger
}

func NewBus(log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{
		subs: make(map[int]chan Change),
		log:  log,
	}
}

func (b *Bus) Publish(change Change) {
	if change.At.IsZero() {
		change.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subs {
		select {
		case ch <- change:
		default:
			b.log.Warn("dropping change for slow subscriber", zap.Int("subscriber", id), zap.String("collection", change.Collection))
		}
	}
}

// Subscribe registers a buffered channel. The returned func unsubscribes and
// closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe(buffer int) (<-chan Change, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Change, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Nop discards every change.
type Nop struct{}

func (Nop) Publish(Change) {}

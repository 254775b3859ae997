package utils

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random UUID string. Two creates in the same millisecond no
// longer collide.
func NewID() string {
	return uuid.NewString()
}

// MonotonicClock never returns a time earlier than one it already returned, so
// createdAt stays non-decreasing even if the wall clock steps backwards.
type MonotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewMonotonicClock(now func() time.Time) *MonotonicClock {
	if now == nil {
		now = time.Now
	}
	return &MonotonicClock{now: now}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now()
	if t.Before(c.last) {
		t = c.last
	}
	c.last = t
	return t
}

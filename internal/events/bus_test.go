package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_SubscribePublish(t *testing.T) {
	bus := NewBus(nil)
	ch, cancel := bus.Subscribe(4)
	defer cancel()

	bus.Publish(Change{Collection: "crm_leads", Action: ActionCreate, RecordID: "abc"})

	select {
	case got := <-ch:
		assert.Equal(t, "crm_leads", got.Collection)
		assert.Equal(t, ActionCreate, got.Action)
		assert.False(t, got.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for change")
	}
}

func TestBus_PublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := NewBus(nil)
	_, cancel := bus.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		bus.Publish(Change{Collection: "a"})
		bus.Publish(Change{Collection: "b"})
		bus.Publish(Change{Collection: "c"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked")
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)
	ch, cancel := bus.Subscribe(1)
	require.Equal(t, 1, bus.SubscriberCount())

	cancel()
	cancel()
	assert.Equal(t, 0, bus.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)
}

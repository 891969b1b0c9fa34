package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_SyncEmit(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store)

	err := p.Emit(context.Background(), Event{
		ClientID: "client-1",
		Action:   ActionConsentGranted,
		Decision: DecisionGranted,
	})
	require.NoError(t, err)

	events, err := p.List(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ActionConsentGranted, events[0].Action)
	assert.False(t, events[0].Timestamp.IsZero(), "timestamp must be stamped on emit")
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store, WithAsyncBuffer(16))

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Emit(context.Background(), Event{
			ClientID: "client-2",
			Action:   ActionDisclosureMade,
		}))
	}
	p.Close()

	events, err := store.ListByClient(context.Background(), "client-2")
	require.NoError(t, err)
	assert.Len(t, events, 10, "Close must drain all buffered events")
}

func TestPublisher_AsyncDropsWhenFull(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store, WithAsyncBuffer(1))

	// Fill the buffer faster than the worker can drain; emits never block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = p.Emit(context.Background(), Event{ClientID: "client-3", Action: ActionAlertReported})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async emit blocked")
	}
	p.Close()
}

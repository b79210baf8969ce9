package realtime

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, ch <-chan interface{}) interface{} {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	events := make(chan interface{}, 16)

	sub := hub.Subscribe("topic", func(event interface{}) { events <- event })
	defer sub.Close()

	hub.Publish("topic", "hello")
	require.Equal(t, "hello", collect(t, events))
}

func TestPublishOrdering(t *testing.T) {
	hub := NewHub()
	events := make(chan interface{}, 16)

	sub := hub.Subscribe("topic", func(event interface{}) { events <- event })
	defer sub.Close()

	for i := 0; i < 10; i++ {
		hub.Publish("topic", i)
	}
	for i := 0; i < 10; i++ {
		require.Equal(t, i, collect(t, events))
	}
}

func TestTopicsAreIsolated(t *testing.T) {
	hub := NewHub()
	events := make(chan interface{}, 16)

	sub := hub.Subscribe(MessagesTopic("alice", "bob"), func(event interface{}) { events <- event })
	defer sub.Close()

	hub.Publish(MessagesTopic("bob", "alice"), "wrong direction")
	hub.Publish(RecentMessagesTopic("alice"), "wrong topic")

	select {
	case event := <-events:
		t.Fatalf("event leaked across topics: %v", event)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMultipleSubscribersEachReceive(t *testing.T) {
	hub := NewHub()
	first := make(chan interface{}, 16)
	second := make(chan interface{}, 16)

	subA := hub.Subscribe("topic", func(event interface{}) { first <- event })
	defer subA.Close()
	subB := hub.Subscribe("topic", func(event interface{}) { second <- event })
	defer subB.Close()

	hub.Publish("topic", "shared")
	require.Equal(t, "shared", collect(t, first))
	require.Equal(t, "shared", collect(t, second))
}

func TestCloseStopsDelivery(t *testing.T) {
	hub := NewHub()
	events := make(chan interface{}, 16)

	sub := hub.Subscribe("topic", func(event interface{}) { events <- event })
	sub.Close()
	sub.Close() // closing twice is a no-op

	hub.Publish("topic", "after close")
	select {
	case event := <-events:
		t.Fatalf("delivery after Close: %v", event)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribeOnlySeesFutureEvents(t *testing.T) {
	hub := NewHub()
	hub.Publish("topic", "before")

	events := make(chan interface{}, 16)
	sub := hub.Subscribe("topic", func(event interface{}) { events <- event })
	defer sub.Close()

	hub.Publish("topic", "after")
	require.Equal(t, "after", collect(t, events))
}

func TestTopicNames(t *testing.T) {
	require.Equal(t, "messages/alice/bob", MessagesTopic("alice", "bob"))
	require.Equal(t, "recent/alice", RecentMessagesTopic("alice"))
	require.NotEqual(t, MessagesTopic("alice", "bob"), MessagesTopic("bob", "alice"))
}

func TestManySubscriptionsTearDownCleanly(t *testing.T) {
	hub := NewHub()

	subs := make([]*Subscription, 0, 50)
	for i := 0; i < 50; i++ {
		topic := fmt.Sprintf("topic-%d", i%5)
		subs = append(subs, hub.Subscribe(topic, func(interface{}) {}))
	}
	for _, sub := range subs {
		sub.Close()
	}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	require.Empty(t, hub.topics)
}

// Package realtime provides the in-process publish/subscribe hub that
// backs live message and recent-summary feeds. Each observed value has
// its own topic; subscribers receive events published after they
// subscribed, in publish order, exactly once.
package realtime

import "sync"

const subscriptionBuffer = 64

// Hub fans events out to topic subscribers.
type Hub struct {
	mu     sync.Mutex
	nextID int
	topics map[string]map[int]*Subscription
}

// Subscription is one live listener on a topic. It must be closed when
// the viewing context ends; an unclosed subscription keeps its delivery
// goroutine and buffer alive.
type Subscription struct {
	hub    *Hub
	topic  string
	id     int
	events chan interface{}
	done   chan struct{}
	once   sync.Once
}

func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[int]*Subscription)}
}

// Subscribe registers fn for every future event on topic. fn is invoked
// from a dedicated goroutine, one event at a time, in publish order.
func (h *Hub) Subscribe(topic string, fn func(event interface{})) *Subscription {
	h.mu.Lock()
	h.nextID++
	sub := &Subscription{
		hub:    h,
		topic:  topic,
		id:     h.nextID,
		events: make(chan interface{}, subscriptionBuffer),
		done:   make(chan struct{}),
	}
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[int]*Subscription)
	}
	h.topics[topic][sub.id] = sub
	h.mu.Unlock()

	go func() {
		for {
			select {
			case event := <-sub.events:
				fn(event)
			case <-sub.done:
				return
			}
		}
	}()

	return sub
}

// Publish delivers event to every current subscriber of topic. A
// subscriber that has fallen subscriptionBuffer events behind loses the
// oldest ones rather than blocking the publisher.
func (h *Hub) Publish(topic string, event interface{}) {
	h.mu.Lock()
	subs := make([]*Subscription, 0, len(h.topics[topic]))
	for _, sub := range h.topics[topic] {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.events <- event:
		default:
			select {
			case <-sub.events:
			default:
			}
			select {
			case sub.events <- event:
			default:
			}
		}
	}
}

// Close tears the subscription down. Buffered events that have not yet
// reached the callback are dropped. Closing twice is a no-op.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		if subs, ok := s.hub.topics[s.topic]; ok {
			delete(subs, s.id)
			if len(subs) == 0 {
				delete(s.hub.topics, s.topic)
			}
		}
		s.hub.mu.Unlock()
		close(s.done)
	})
}

// MessagesTopic names the live feed of one direction of a conversation.
func MessagesTopic(viewerUID, partnerUID string) string {
	return "messages/" + viewerUID + "/" + partnerUID
}

// RecentMessagesTopic names a viewer's recent-summary feed.
func RecentMessagesTopic(viewerUID string) string {
	return "recent/" + viewerUID
}

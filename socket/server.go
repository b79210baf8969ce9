package socket

import (
	"cinder_server/auth"
	"cinder_server/models"
	"cinder_server/realtime"
	"cinder_server/services"
	"context"
	"log"
	"sync"

	socketio "github.com/googollee/go-socket.io"
)

// connState tracks one connected client: its session uid and the live
// subscriptions it holds. Every subscription is closed when the client
// leaves the conversation or disconnects, so a dropped socket cannot
// leak listeners.
type connState struct {
	uid  string
	mu   sync.Mutex
	subs map[string]*realtime.Subscription
}

func (cs *connState) track(key string, sub *realtime.Subscription) {
	cs.mu.Lock()
	if old, ok := cs.subs[key]; ok {
		old.Close()
	}
	cs.subs[key] = sub
	cs.mu.Unlock()
}

func (cs *connState) release(key string) {
	cs.mu.Lock()
	if sub, ok := cs.subs[key]; ok {
		sub.Close()
		delete(cs.subs, key)
	}
	cs.mu.Unlock()
}

func (cs *connState) releaseAll() {
	cs.mu.Lock()
	for key, sub := range cs.subs {
		sub.Close()
		delete(cs.subs, key)
	}
	cs.mu.Unlock()
}

// NewSocketServer initializes and returns a new Socket.IO server that
// bridges the in-process feeds to connected clients. Clients connect
// with ?token=<session token>, join a conversation to start receiving
// newMessage events, and may subscribe to their recent-messages list.
func NewSocketServer(chat *services.ChatService, tokens *auth.TokenManager) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		u := s.URL()
		uid, err := tokens.ValidateToken(u.Query().Get("token"))
		if err != nil {
			log.Printf("Socket auth failed for %s: %v", s.ID(), err)
			return err
		}
		s.SetContext(&connState{uid: uid, subs: map[string]*realtime.Subscription{}})
		log.Println("Socket connected:", s.ID())
		return nil
	})

	// Handle join events: start the live message feed for one conversation
	server.OnEvent("/", "join", func(s socketio.Conn, data map[string]string) {
		state, ok := s.Context().(*connState)
		if !ok {
			return
		}
		partnerID := data["partnerId"]
		if partnerID == "" {
			log.Println("Invalid partnerId in join request")
			return
		}

		sub := chat.SubscribeToMessages(state.uid, partnerID, func(msg models.Message) {
			s.Emit("newMessage", msg)
		})
		state.track("messages/"+partnerID, sub)
		log.Printf("User %s joined conversation with %s", state.uid, partnerID)
	})

	// Handle leave events: tear the conversation feed down
	server.OnEvent("/", "leave", func(s socketio.Conn, data map[string]string) {
		state, ok := s.Context().(*connState)
		if !ok {
			return
		}
		state.release("messages/" + data["partnerId"])
	})

	// Handle subscribeRecent events: live matches/chat list updates
	server.OnEvent("/", "subscribeRecent", func(s socketio.Conn) {
		state, ok := s.Context().(*connState)
		if !ok {
			return
		}
		sub, err := chat.SubscribeToRecentMessages(context.Background(), state.uid, func(summaries []models.RecentMessage) {
			s.Emit("recentMessages", summaries)
		})
		if err != nil {
			log.Printf("Failed to subscribe %s to recent messages: %v", state.uid, err)
			return
		}
		state.track("recent", sub)
	})

	// Handle sendMessage events
	server.OnEvent("/", "sendMessage", func(s socketio.Conn, data map[string]string) {
		state, ok := s.Context().(*connState)
		if !ok {
			return
		}
		if err := chat.SendMessage(context.Background(), state.uid, data["toId"], data["text"]); err != nil {
			log.Printf("Failed to send message over socket: %v", err)
			s.Emit("sendError", map[string]string{"error": "failed to send message"})
		}
	})

	// Handle disconnection
	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if state, ok := s.Context().(*connState); ok {
			state.releaseAll()
		}
		log.Println("Socket disconnected:", s.ID(), reason)
	})

	return server
}

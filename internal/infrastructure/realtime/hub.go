package realtime

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"laundry-scout.backend/internal/domain/entities"
)

// Hub fans registration and review events out to connected dashboards.
// Broadcast never blocks; when the channel is full the event is dropped
// (the feed endpoint remains the source of truth).
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	ch      chan entities.Event
}

func NewHub() *Hub {
	return &Hub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan entities.Event, 16),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case event := <-h.ch:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.WriteJSON(event)
			}
			h.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) Broadcast(event entities.Event) {
	select {
	case h.ch <- event:
	default:
	}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// ClientCount reports connected dashboards, used by the watcher to skip
// polling when nobody is listening.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

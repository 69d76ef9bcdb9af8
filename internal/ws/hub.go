package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"AgentDesk/internal/lib/sl"
)

// Event is one push sent to connected dashboards.
type Event struct {
	Type string `json:"type"` // "notification"
	Data any    `json:"data"`
}

// Hub maintains the set of connected dashboard clients and routes events
// to the tenant they belong to. Admin connections receive every tenant's
// events.
type Hub struct {
	clients    map[*Client]bool
	deliver    chan targetedEvent
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

type targetedEvent struct {
	clientId string
	event    *Event
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		deliver:    make(chan targetedEvent, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.With(sl.Module("ws.hub")),
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case te := <-h.deliver:
			data, err := json.Marshal(te.event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for client := range h.clients {
				if !client.admin && client.clientId != te.clientId {
					continue
				}
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Notify queues an event for one tenant's dashboards (and all admins).
// Drops the event when the hub is saturated rather than blocking the
// caller.
func (h *Hub) Notify(clientId string, event *Event) {
	select {
	case h.deliver <- targetedEvent{clientId: clientId, event: event}:
	default:
		h.log.Warn("event dropped, hub saturated", slog.String("client_id", clientId))
	}
}

package ws

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"chirp/internal/models"
)

type EventType string

const (
	EventMessageCreated EventType = "message_created"
	EventMessageUpdated EventType = "message_updated"
	EventMessageDeleted EventType = "message_deleted"
)

// Event is what the feed pushes to connected clients. For deletions only the
// message id is populated.
type Event struct {
	Type    EventType      `json:"type"`
	Message models.Message `json:"message"`
}

type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Events to fan out to the clients.
	broadcast chan Event

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	log zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Debug().Int("clients", len(h.clients)).Msg("client connected")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Debug().Int("clients", len(h.clients)).Msg("client disconnected")
			}
		case event := <-h.broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				h.log.Error().Err(err).Msg("marshal feed event")
				continue
			}

			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Slow client, drop it rather than stall the feed.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast publishes an event to every connected client. It blocks until
// the run loop picks the event up, so Run must be started first.
func (h *Hub) Broadcast(event Event) {
	h.broadcast <- event
}

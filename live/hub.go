package live

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is the wire format for every live update pushed to the front end,
// e.g. {"type": "likeUpdate", "payload": {...}}.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub broadcasts data-change events to every connected websocket client.
// All clients share one stream; there are no rooms.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			log.Printf("live: client registered, %d connected", len(h.clients))
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
				log.Printf("live: client unregistered, %d connected", len(h.clients))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				client.mu.Lock()
				if client.isClosed {
					client.mu.Unlock()
					continue
				}
				select {
				case client.send <- message:
				default:
					// Client cannot keep up; drop the event rather than
					// blocking every other connection.
				}
				client.mu.Unlock()
			}
			h.mu.RUnlock()
		}
	}
}

// Publish marshals an event and queues it for every connected client.
// A marshalling failure is logged and the event dropped; live updates are
// advisory and must never fail the request that triggered them.
func (h *Hub) Publish(eventType string, payload interface{}) {
	message, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("live: failed to marshal %s event: %v", eventType, err)
		return
	}
	h.broadcast <- message
}

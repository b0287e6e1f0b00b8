// Package realtime pushes order events to connected dashboards over
// websockets.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"wholesale-delivery/events"
)

const adminRoom = "admin"

func driverRoom(driverID string) string {
	return "driver:" + driverID
}

// roomEvent is an encoded event addressed to a set of rooms
type roomEvent struct {
	rooms   []string
	message []byte
}

// Hub maintains the set of active clients and broadcasts messages to them.
// Admins share one room; each driver only sees orders assigned to them.
type Hub struct {
	// Registered clients by room
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *roomEvent
	done       chan struct{}

	// Guards rooms for readers outside Run
	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *roomEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled, then closes every
// client's send channel.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for room, clients := range h.rooms {
				for client := range clients {
					close(client.send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.room] == nil {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for _, room := range event.rooms {
				for client := range h.rooms[room] {
					select {
					case client.send <- event.message:
					default:
						// Slow consumer
						h.remove(client)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.rooms[client.room]
	if !ok {
		return
	}
	if _, exists := clients[client]; exists {
		delete(clients, client)
		close(client.send)
		if len(clients) == 0 {
			delete(h.rooms, client.room)
		}
	}
}

// Publish implements events.Publisher. The event goes to the admin room
// and to the room of the order's driver.
func (h *Hub) Publish(ctx context.Context, e events.Event) error {
	message, err := json.Marshal(e)
	if err != nil {
		return err
	}
	rooms := []string{adminRoom}
	if e.DriverID != "" {
		rooms = append(rooms, driverRoom(e.DriverID))
	}

	select {
	case h.broadcast <- &roomEvent{rooms: rooms, message: message}:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribers reports how many clients are connected to a room.
func (h *Hub) Subscribers(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

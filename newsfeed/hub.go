// Package newsfeed pushes player news to websocket subscribers grouped in rooms.
package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/schemas"
)

const (
	GlobalRoom         = "news"
	MessageNewsCreated = "NEWS_CREATED"
)

// PlayerRoom is the room of subscribers to a single player's news.
func PlayerRoom(playerID int) string {
	return fmt.Sprintf("player_%d", playerID)
}

type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
	RoomID  string `json:"room_id,omitempty"`
}

// Hub owns room membership. Run must be running for clients to attach.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run processes registrations until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			size := len(h.rooms[client.room])
			h.mu.Unlock()
			h.logger.Debug("client joined room", slog.String("room", client.room), slog.Int("clients", size))

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok && clients[client] {
				client.closeSend()
				delete(clients, client)
				if len(clients) == 0 {
					delete(h.rooms, client.room)
				}
			}
			h.mu.Unlock()
			h.logger.Debug("client left room", slog.String("room", client.room))
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, clients := range h.rooms {
		for client := range clients {
			client.closeSend()
		}
		delete(h.rooms, room)
	}
}

// Attach registers conn in room and starts its pumps. It returns false and
// closes conn when the hub has stopped.
func (h *Hub) Attach(conn *websocket.Conn, room string) bool {
	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
		room: room,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return false
	}

	go client.writePump()
	go client.readPump()
	return true
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ClientCount returns the number of clients currently in room.
func (h *Hub) ClientCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// BroadcastToRoom sends message to every client in room. Clients whose
// buffer is full miss the message.
func (h *Hub) BroadcastToRoom(room string, message any) {
	payload, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal message", slog.String("room", room), slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		if !client.trySend(payload) {
			h.logger.Warn("client send buffer full, message dropped", slog.String("room", room))
		}
	}
}

// PublishNews broadcasts a NEWS_CREATED message to the player's room and the global room.
func (h *Hub) PublishNews(news *models.PlayerNews) {
	payload := schemas.NewPlayerNewsResponse(news)
	for _, room := range []string{PlayerRoom(news.NFLPlayerID), GlobalRoom} {
		h.BroadcastToRoom(room, Message{Type: MessageNewsCreated, Payload: payload, RoomID: room})
	}
}

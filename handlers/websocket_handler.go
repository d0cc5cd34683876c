package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"github.com/ffliq/ffliq-backend/newsfeed"
	"github.com/ffliq/ffliq-backend/services"
)

type WebSocketHandler struct {
	hub           *newsfeed.Hub
	playerService *services.PlayerService
	upgrader      websocket.Upgrader
}

// NewWebSocketHandler accepts upgrades from allowedOrigins. A "*" entry allows any origin.
func NewWebSocketHandler(hub *newsfeed.Hub, ps *services.PlayerService, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub:           hub,
		playerService: ps,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
	}
}

// ServeNews subscribes to news about every player.
func (h *WebSocketHandler) ServeNews(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, newsfeed.GlobalRoom)
}

// ServePlayerNews subscribes to one player's news. The player must exist.
func (h *WebSocketHandler) ServePlayerNews(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := h.playerService.GetPlayer(r.Context(), playerID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.serve(w, r, newsfeed.PlayerRoom(playerID))
}

func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, room string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(r.Context(), "websocket upgrade failed", slog.String("room", room), slog.Any("error", err))
		return
	}

	if !h.hub.Attach(conn, room) {
		slog.WarnContext(r.Context(), "news hub stopped, connection dropped", slog.String("room", room))
	}
}

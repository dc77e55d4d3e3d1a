package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"starseed-server/internal/celestial"
	"starseed-server/internal/galaxy"
	"starseed-server/internal/shared/errors"
	"starseed-server/internal/shared/response"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	readWait       = 60 * time.Second
	maxMessageSize = 1024
)

// streamError is sent in place of a reply when a client message is rejected.
// The connection stays open.
type streamError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type StreamHandler struct {
	service       *galaxy.Service
	defaultGalaxy string
	upgrader      websocket.Upgrader
}

// NewStreamHandler accepts upgrades from allowedOrigin only; an empty origin
// allows any.
func NewStreamHandler(service *galaxy.Service, defaultGalaxy, allowedOrigin string) *StreamHandler {
	return &StreamHandler{
		service:       service,
		defaultGalaxy: defaultGalaxy,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || origin == "" || origin == allowedOrigin
			},
		},
	}
}

// ServeHTTP handles GET /ws/nearby_stars?galaxy=. Each text message carrying a
// {"x":..,"y":..} position is answered with the nearby stars at that position.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("galaxy")
	if name == "" {
		name = h.defaultGalaxy
	}
	logger := slog.With("handler", "nearby_stars_stream", "galaxy", name)

	g, err := h.service.GetGalaxy(r.Context(), name)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		logger.Debug("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	logger.Debug("WebSocket client connected", "remote_addr", r.RemoteAddr)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(readWait))

		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("WebSocket read failed", "error", err)
			}
			return
		}

		var reply any
		var pos celestial.GalacticPosition
		if err := json.Unmarshal(msg, &pos); err != nil {
			reply = streamError{Error: string(errors.ErrorTypeValidation), Message: "invalid position: " + err.Error()}
		} else {
			reply = galaxy.NearbyStarsResponse{
				Galaxy:   *g,
				Position: pos,
				Stars:    h.service.NearbyStars(*g, pos),
			}
		}

		if !h.write(conn, logger, reply) {
			return
		}
	}
}

func (h *StreamHandler) write(conn *websocket.Conn, logger *slog.Logger, v any) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(v); err != nil {
		logger.Debug("WebSocket write failed", "error", err)
		return false
	}
	return true
}

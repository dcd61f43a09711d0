// Package wsserver streams game snapshots to read-only websocket spectators.
package wsserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mo-shahab/bracket-pong/client"
	"github.com/mo-shahab/bracket-pong/game"
	"github.com/mo-shahab/bracket-pong/room"
	"github.com/mo-shahab/bracket-pong/scores"
)

// connection constants
const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	maxReadSize  = 1 << 10
)

type WebSocketHandler struct {
	Upgrader    websocket.Upgrader
	RoomManager *room.RoomManager

	// DefaultRoom is used when the request names no room
	DefaultRoom string
}

func NewWebSocketHandler(rm *room.RoomManager, defaultRoom string) *WebSocketHandler {
	return &WebSocketHandler{
		Upgrader:    websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		RoomManager: rm,
		DefaultRoom: defaultRoom,
	}
}

func (wsh *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomId := r.URL.Query().Get("room")
	if roomId == "" {
		roomId = wsh.DefaultRoom
	}
	if _, exists := wsh.RoomManager.GetRoom(roomId); !exists {
		http.Error(w, "Room id is invalid", http.StatusNotFound)
		return
	}

	conn, err := wsh.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error %s when connecting to the socket", err)
		return
	}

	c := client.NewClient(conn, roomId)
	if ok, reason := wsh.RoomManager.JoinRoom(roomId, c); !ok {
		log.Printf("Client %s rejected from room %s: %s", c.ID, roomId, reason)
		if encoded, err := EncodeError(reason); err == nil {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.BinaryMessage, encoded)
		}
		conn.Close()
		return
	}

	go wsh.writePump(c)
	wsh.readPump(c)
}

// writePump drains the client's send queue and keeps the connection alive
// with pings. It ends when the queue is closed or a write fails.
func (wsh *WebSocketHandler) writePump(c *client.Client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.SendQueue:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				log.Println("Binary Message Write error (go routine sendqueue):", err)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only watches for the connection going away; spectators have
// nothing to say to the game
func (wsh *WebSocketHandler) readPump(c *client.Client) {
	defer wsh.RoomManager.RemoveClient(c.RoomId, c.ID)

	c.Conn.SetReadLimit(maxReadSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading message from the client: %s", err)
			}
			return
		}
	}
}

// ---------------------------------------------------
// Broadcast functions

// roomBroadcaster feeds one room from an engine. It is called from the
// engine's goroutine only.
type roomBroadcaster struct {
	rm      *room.RoomManager
	roomId  string
	last    game.GameStateSnapshot
	started bool
}

// Broadcaster returns a game.MessageBroadcaster publishing to roomId
func (wsh *WebSocketHandler) Broadcaster(roomId string) game.MessageBroadcaster {
	return &roomBroadcaster{rm: wsh.RoomManager, roomId: roomId}
}

// BroadcastGameState sends the snapshot if it differs from the previous one,
// and a score message when the tally moved
func (b *roomBroadcaster) BroadcastGameState(s game.GameStateSnapshot) {
	if b.started && s == b.last {
		return
	}

	if b.started && s.Scores != b.last.Scores {
		b.broadcastScore(s)
	}
	b.last = s
	b.started = true

	message, err := EncodeGameState(s)
	if err != nil {
		log.Printf("Failed to encode game state message: %v", err)
		return
	}
	b.rm.Broadcast(b.roomId, message)
}

func (b *roomBroadcaster) broadcastScore(s game.GameStateSnapshot) {
	delta := scores.Delta{
		Left:  s.Scores.Left - b.last.Scores.Left,
		Right: s.Scores.Right - b.last.Scores.Right,
	}

	message, err := EncodeScore(s.Scores, delta)
	if err != nil {
		log.Printf("Failed to marshal score message: %v", err)
		return
	}
	log.Printf("Score update: Left %d - Right %d", s.Scores.Left, s.Scores.Right)
	b.rm.Broadcast(b.roomId, message)
}

// ---------------------------------------------------
// Server

// Server serves the spectator endpoint on /ws
type Server struct {
	httpServer *http.Server
}

func NewServer(addr string, handler *WebSocketHandler) *Server {
	mux := http.NewServeMux()
	mux.Handle("/ws", handler)
	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: mux},
	}
}

// Start listens in the background
func (s *Server) Start() {
	go func() {
		log.Printf("Spectator server starting at ws://%s/ws", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Spectator server stopped: %v", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package reservation

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// ErrHubClosed is returned by ServeWS once Close has been called.
var ErrHubClosed = errors.New("live feed is shutting down")

const (
	EventReservationCreated = "reservation_created"
	EventReservationUpdated = "reservation_updated"
)

// Event is pushed to live occupation clients after a reservation changes.
type Event struct {
	Type    string `json:"type"`
	RoomID  string `json:"room_id"`
	Payload any    `json:"payload,omitempty"`
}

// Publisher receives committed reservation changes.
type Publisher interface {
	Publish(event Event)
}

// client is a single websocket subscriber. With no room subscriptions it
// receives events for every room.
type client struct {
	conn  *websocket.Conn
	send  chan []byte
	rooms map[string]bool
}

// Hub fans reservation events out to websocket clients.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	closed   bool
	upgrader websocket.Upgrader
}

// NewHub accepts upgrades from the given origins; an empty list or "*"
// accepts any origin.
func NewHub(allowedOrigins []string) *Hub {
	h := &Hub{clients: make(map[*client]struct{})}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[strings.TrimRight(o, "/")] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return len(set) == 0 || origin == "" || set[origin]
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws_event_marshal_failed type=%s error=%v", event.Type, err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if len(c.rooms) > 0 && !c.rooms[event.RoomID] {
			continue
		}
		select {
		case c.send <- data:
		default:
			// slow consumer
		}
	}
}

// Close disconnects every client. Later upgrades are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// ServeWS upgrades the request and blocks until the client disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, initialRooms []string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		conn:  conn,
		send:  make(chan []byte, 256),
		rooms: make(map[string]bool),
	}
	for _, id := range initialRooms {
		c.rooms[id] = true
	}

	if !h.register(c) {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		conn.Close()
		return ErrHubClosed
	}

	go h.writePump(c)
	h.readPump(c)
	return nil
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws_read_failed error=%v", err)
			}
			return
		}

		var cmd struct {
			Type   string `json:"type"`
			RoomID string `json:"room_id"`
		}
		if err := json.Unmarshal(msg, &cmd); err != nil || cmd.RoomID == "" {
			continue
		}

		switch cmd.Type {
		case "subscribe":
			h.mu.Lock()
			c.rooms[cmd.RoomID] = true
			h.mu.Unlock()
		case "unsubscribe":
			h.mu.Lock()
			delete(c.rooms, cmd.RoomID)
			h.mu.Unlock()
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

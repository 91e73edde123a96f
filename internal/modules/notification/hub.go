package notification

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
)

// connection owns a websocket. All writes (pushes, pings, the close frame)
// go through send and are performed by a single writePump goroutine, the
// only writer gorilla/websocket allows.
type connection struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks one live websocket connection per user. A reconnect replaces
// the previous connection.
type Hub struct {
	connections map[int64]*connection
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*connection),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	c := &connection{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mutex.Lock()
	if old, exists := h.connections[userID]; exists {
		close(old.send)
	}
	h.connections[userID] = c
	h.mutex.Unlock()

	go h.writePump(c)
}

// Unregister removes the user's connection if it is still the given one,
// so a stale handler exiting after a reconnect does not evict the
// replacement.
func (h *Hub) Unregister(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.connections[userID]; exists && c.conn == conn {
		close(c.send)
		delete(h.connections, userID)
	}
}

// SendToUser queues a JSON message for the user's connection. Returns false
// if the user is offline or the connection's buffer is full.
func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	data, err := json.Marshal(message)
	if err != nil {
		return false
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	c, exists := h.connections[userID]
	if !exists {
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		// Client too slow — skip
		return false
	}
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, c := range h.connections {
		close(c.send)
		delete(h.connections, userID)
	}
}

func (h *Hub) writePump(c *connection) {
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

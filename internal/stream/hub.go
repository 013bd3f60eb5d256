// Package stream broadcasts mining progress and findings to connected
// websocket clients while a long run is in flight, the same shape as
// internal/websocket.WebSocketHub: a ring buffer of recent events, a
// per-client send queue, and a Run loop that serializes registration,
// broadcast, and heartbeats through channels, with a mutex guarding the
// client map. It is
// wired in behind the --serve flag described in SPEC_FULL.md §11 and
// trimmed to the events a mining run actually produces (LevelEvent,
// MDCOPEvent) rather than the teacher's network-proxy log stream.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
)

const (
	writeDeadline     = 5 * time.Second
	heartbeatInterval = 10 * time.Second
	pongWait          = 60 * time.Second
	pingInterval      = 30 * time.Second
)

var upgrader = gws.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub manages connected websocket clients and broadcasts Events to all of
// them as a mining run progresses.
type Hub struct {
	clients    map[string]*client
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	mutex      sync.RWMutex

	eventBuffer *eventRingBuffer
	instanceID  string
	seq         uint64
	startTime   time.Time
}

type client struct {
	id      string
	conn    *gws.Conn
	send    chan []byte
	hub     *Hub
	closed  chan struct{}
	closeMu sync.Mutex
}

// NewHub creates a Hub whose ring buffer holds the last bufferSize events.
func NewHub(bufferSize int) *Hub {
	h := &Hub{
		clients:     make(map[string]*client),
		broadcast:   make(chan []byte, 256),
		register:    make(chan *client),
		unregister:  make(chan *client),
		eventBuffer: newEventRingBuffer(bufferSize),
		instanceID:  uuid.NewString(),
		startTime:   time.Now(),
	}
	h.emitHello()
	return h
}

// Run processes client registration, broadcast, and heartbeats. It takes no
// context and never returns, so the caller runs it in its own goroutine for
// the lifetime of the process.
func (h *Hub) Run() {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c.id] = c
			h.mutex.Unlock()
			log.Printf("stream: client connected, total=%d", len(h.clients))

		case c := <-h.unregister:
			h.removeClient(c.id)

		case message := <-h.broadcast:
			for _, c := range h.snapshotClients() {
				h.enqueue(c, message)
			}

		case <-ticker.C:
			h.emitHeartbeat()
		}
	}
}

func (h *Hub) snapshotClients() []*client {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

func (h *Hub) enqueue(c *client, payload []byte) {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	select {
	case <-c.closed:
		return
	default:
	}
	select {
	case c.send <- payload:
	default:
		log.Printf("stream: dropping message for client %s, send buffer full", c.id)
	}
}

func (h *Hub) removeClient(id string) {
	h.mutex.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
	}
	h.mutex.Unlock()

	if ok && c != nil {
		c.close()
	}
	log.Printf("stream: client disconnected, total=%d", len(h.clients))
}

// EmitJSON marshals payload, wraps it in an Event of the given kind, adds it
// to the ring buffer, and broadcasts it to every connected client.
func (h *Hub) EmitJSON(kind string, payload any) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Printf("stream: failed to marshal payload for %s: %v", kind, err)
			return
		}
		raw = data
	}
	h.emit(Event{Kind: kind, Payload: raw})
}

func (h *Hub) emit(entry Event) {
	if entry.Time == "" {
		entry.Time = time.Now().Format(time.RFC3339)
	}
	entry.InstanceID = h.instanceID
	entry.Seq = atomic.AddUint64(&h.seq, 1)

	h.eventBuffer.Add(entry)

	if data, err := json.Marshal(entry); err == nil {
		select {
		case h.broadcast <- data:
		default:
		}
	}
}

func (h *Hub) emitHello() {
	h.emit(Event{
		Time:      time.Now().Format(time.RFC3339),
		Kind:      KindHello,
		StartedAt: h.startTime.Format(time.RFC3339),
	})
}

func (h *Hub) emitHeartbeat() {
	uptime := int64(time.Since(h.startTime).Seconds())
	lastSeq := atomic.LoadUint64(&h.seq)
	h.emit(Event{
		Time:      time.Now().Format(time.RFC3339),
		Kind:      KindHeartbeat,
		UptimeSec: &uptime,
		LastSeq:   &lastSeq,
	})
}

// HandleWebSocket upgrades the request, sends the buffered event backlog as
// NDJSON, then registers the connection to receive live broadcasts.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: websocket upgrade failed: %v", err)
		return
	}

	backlog := h.eventBuffer.GetBulkNDJSON()
	if err := conn.WriteMessage(gws.TextMessage, backlog); err != nil {
		log.Printf("stream: failed to send backlog: %v", err)
		conn.Close()
		return
	}

	c := newClient(h, conn)
	h.register <- c

	go c.writePump()
	go c.readPump()
}

func newClient(h *Hub, conn *gws.Conn) *client {
	return &client{
		id:     uuid.NewString(),
		conn:   conn,
		send:   make(chan []byte, 256),
		hub:    h,
		closed: make(chan struct{}),
	}
}

func (c *client) readPump() {
	defer func() { c.hub.unregister <- c }()

	c.conn.SetReadLimit(1 << 20)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if !ok {
				_ = c.conn.WriteMessage(gws.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(gws.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(gws.PingMessage, nil); err != nil {
				return
			}

		case <-c.closed:
			return
		}
	}
}

func (c *client) close() {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	select {
	case <-c.closed:
	default:
		close(c.closed)
		close(c.send)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	}
}

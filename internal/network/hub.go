package network

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/satiregames/orangenotlemons/server/internal/engine"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
	"github.com/satiregames/orangenotlemons/server/internal/platform/metrics"
)

// Message is the envelope for everything pushed over the socket.
type Message struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

const (
	MsgTypeEvent = "EVENT"
	MsgTypeState = "STATE"
	MsgTypeError = "ERROR"
	MsgTypeAck   = "ACK"
)

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
	session    *engine.Session
	logger     *logger.Logger
}

// NewHub initializes a new WebSocket Hub bound to a game session.
func NewHub(session *engine.Session, log *logger.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		session:    session,
		logger:     log,
	}
}

// Run starts the Hub's main loop to handle client connections and broadcasts.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("WebSocket Hub shutting down.")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			metrics.Get().RecordWSConnection(1)
			h.logger.Info("New WebSocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.Get().RecordWSConnection(-1)
				h.logger.Info("WebSocket client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
					metrics.Get().RecordWSMessage(false)
				default:
					close(client.send)
					delete(h.clients, client)
					metrics.Get().RecordWSConnection(-1)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast serializes a message envelope and sends it to all clients.
func (h *Hub) Broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to serialize message for WebSocket broadcast: " + err.Error())
		metrics.Get().RecordWSError()
		return
	}
	h.broadcast <- payload
}

// BroadcastEvent pushes a single game event to all connected clients.
func (h *Hub) BroadcastEvent(event events.GameEvent) {
	h.Broadcast(Message{
		Type:      MsgTypeEvent,
		Timestamp: time.Now().Unix(),
		Payload:   event,
	})
}

// BroadcastState pushes a fresh state snapshot to all connected clients.
func (h *Hub) BroadcastState() {
	h.Broadcast(Message{
		Type:      MsgTypeState,
		Timestamp: time.Now().Unix(),
		Payload:   h.session.Snapshot(),
	})
}

// StartEventPoller spawns a goroutine that polls the session's event log and
// pushes new events to the Hub, followed by a state snapshot. This keeps the
// Hub independent from the engine's turn pipeline while picking up every
// event, including timer-driven skips.
func (h *Hub) StartEventPoller(ctx context.Context) {
	go func() {
		pollInterval := time.NewTicker(200 * time.Millisecond)
		defer pollInterval.Stop()

		lastProcessed := 0

		for {
			select {
			case <-ctx.Done():
				return
			case <-pollInterval.C:
				allEvents := h.session.EventLog().Replay()
				if len(allEvents) <= lastProcessed {
					continue
				}

				for _, event := range allEvents[lastProcessed:] {
					h.BroadcastEvent(event)
				}
				lastProcessed = len(allEvents)

				// Anything new on the log means the state moved too.
				h.BroadcastState()
			}
		}
	}()
}

// upgrader turns HTTP requests into WebSocket connections.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The desktop client is served from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades an HTTP request and attaches the client to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed: " + err.Error())
		metrics.Get().RecordWSError()
		return
	}

	client := NewClient(h, conn)
	client.Register()

	go client.WritePump()
	go client.ReadPump()
}

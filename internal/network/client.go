package network

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/satiregames/orangenotlemons/server/internal/engine"
	"github.com/satiregames/orangenotlemons/server/internal/platform/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 4096
	// Minimum spacing between player actions.
	actionCooldown = 200 * time.Millisecond
)

// Client holds one WebSocket connection and its outbound queue.
type Client struct {
	hub            *Hub
	conn           *websocket.Conn
	send           chan []byte
	lastActionTime time.Time
}

// NewClient creates a new WebSocket client.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// Register adds the client to the hub.
func (c *Client) Register() {
	c.hub.register <- c
}

// PlayerAction represents an incoming command from the frontend.
type PlayerAction struct {
	Type    string          `json:"type"`    // "SELECT_PLAN", "SPIN", "TRADE", etc.
	Payload json.RawMessage `json:"payload"` // Action-specific data
}

// ReadPump pumps messages from the websocket connection into the session.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Error("WebSocket read error: " + err.Error())
				metrics.Get().RecordWSError()
			}
			break
		}
		metrics.Get().RecordWSMessage(true)

		var action PlayerAction
		if err := json.Unmarshal(message, &action); err != nil {
			c.hub.logger.Error("Failed to parse PlayerAction from WebSocket: " + err.Error())
			c.sendError("malformed action")
			continue
		}

		c.handlePlayerAction(action)
	}
}

func (c *Client) handlePlayerAction(action PlayerAction) {
	// Rate limiting: the UI debounces, but the socket is open to anyone.
	if time.Since(c.lastActionTime) < actionCooldown {
		c.hub.logger.Warn("Rate limit exceeded for client action " + action.Type)
		return
	}
	c.lastActionTime = time.Now()

	session := c.hub.session

	switch action.Type {
	case "NEW_RUN":
		session.StartRun()
		c.sendAck(action.Type, nil)
	case "SELECT_PLAN":
		var req struct {
			PlanID string `json:"plan_id"`
		}
		if err := json.Unmarshal(action.Payload, &req); err != nil {
			c.sendError("malformed payload")
			return
		}
		c.reply(action.Type, nil, session.SelectPlan(req.PlanID))
	case "RESEARCH_PLAN":
		var req struct {
			PlanID    string `json:"plan_id"`
			Attribute string `json:"attribute"`
			PayWith   string `json:"pay_with"`
		}
		if err := json.Unmarshal(action.Payload, &req); err != nil {
			c.sendError("malformed payload")
			return
		}
		revealed, err := session.ResearchPlan(req.PlanID, req.Attribute, req.PayWith)
		c.reply(action.Type, map[string]interface{}{"revealed": revealed}, err)
	case "SPIN":
		result, err := session.SpinSlot()
		c.reply(action.Type, map[string]interface{}{"spin": result}, err)
	case "EXECUTE":
		c.reply(action.Type, nil, session.ExecutePlan())
	case "EXECUTE_BLIND":
		score, err := session.ExecuteBlind()
		c.reply(action.Type, map[string]interface{}{"score": score}, err)
	case "SKIP_TURN":
		c.reply(action.Type, nil, session.SkipTurn())
	case "MODERATE":
		var req struct {
			MessageID string `json:"message_id"`
			Action    string `json:"action"`
		}
		if err := json.Unmarshal(action.Payload, &req); err != nil {
			c.sendError("malformed payload")
			return
		}
		c.reply(action.Type, nil, session.ModerateFeed(req.MessageID, req.Action))
	case "RANT":
		post, success, err := session.Rant()
		c.reply(action.Type, map[string]interface{}{"post": post, "success": success}, err)
	case "TRADE":
		var req struct {
			Action       string `json:"action"`
			InstrumentID string `json:"instrument_id"`
			Shares       int    `json:"shares"`
		}
		if err := json.Unmarshal(action.Payload, &req); err != nil {
			c.sendError("malformed payload")
			return
		}
		receipt, err := session.Trade(engine.TradeAction(req.Action), req.InstrumentID, req.Shares)
		c.reply(action.Type, map[string]interface{}{"receipt": receipt}, err)
	case "RESEARCH_STOCK":
		var req struct {
			InstrumentID string `json:"instrument_id"`
		}
		if err := json.Unmarshal(action.Payload, &req); err != nil {
			c.sendError("malformed payload")
			return
		}
		level, hints, err := session.ResearchStock(req.InstrumentID)
		c.reply(action.Type, map[string]interface{}{"level": level, "hints": hints}, err)
	case "STATE":
		c.sendDirect(Message{Type: MsgTypeState, Timestamp: time.Now().Unix(), Payload: session.Snapshot()})
	default:
		c.hub.logger.Warn("Unknown PlayerAction type: " + action.Type)
		c.sendError("unknown action " + action.Type)
	}
}

// reply acknowledges an action or reports its error back to the sender.
func (c *Client) reply(actionType string, data map[string]interface{}, err error) {
	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.sendAck(actionType, data)
}

func (c *Client) sendAck(actionType string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["action"] = actionType
	c.sendDirect(Message{Type: MsgTypeAck, Timestamp: time.Now().Unix(), Payload: data})
}

func (c *Client) sendError(message string) {
	c.sendDirect(Message{
		Type:      MsgTypeError,
		Timestamp: time.Now().Unix(),
		Payload:   map[string]string{"error": message},
	})
}

// sendDirect queues a message for this client only, dropping it when the
// outbound buffer is full rather than blocking the read loop.
func (c *Client) sendDirect(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		metrics.Get().RecordWSError()
		return
	}
	select {
	case c.send <- payload:
		metrics.Get().RecordWSMessage(false)
	default:
		metrics.Get().RecordWSError()
	}
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
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

package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10
	sendBufferSize = 16
)

// Client is one connected terminal: a websocket connection plus the buffered
// outbound queue its write pump drains. All writes to the connection go
// through send, so hub broadcasts and targeted replies never interleave.
type Client struct {
	ID     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	logger logger.ZapLogger

	// mu guards closed: the hub drops slow clients by closing send, while
	// targeted replies arrive from the read pump goroutine. Both paths must
	// agree before anyone touches the channel.
	mu     sync.Mutex
	closed bool
}

// queue enqueues one frame. Returns false if the client has been dropped or
// its buffer is full; it never panics on a closed channel.
func (c *Client) queue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// closeSend retires the client's queue. Idempotent; only the hub goroutine
// calls it.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// disconnect hands the client back to the hub, or gives up immediately if
// the hub has already stopped.
func (c *Client) disconnect() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}

func newClient(hub *Hub, conn *websocket.Conn, log logger.ZapLogger) *Client {
	return &Client{
		ID:     uuid.New().String(),
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		logger: log,
	}
}

func (c *Client) readPump(handler *Handler) {
	defer func() {
		c.disconnect()
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read error", zap.String("client_id", c.ID), zap.Error(err))
			}
			return
		}
		handler.Dispatch(context.Background(), c, raw)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.logger.Warn("websocket write error", zap.String("client_id", c.ID), zap.Error(err))
			return
		}
	}
	// send was closed by the hub.
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// sendEvent queues a targeted reply. A dropped client or a full buffer
// discards the frame; the hub is reaping that client anyway.
func (c *Client) sendEvent(event string, data any) {
	msg, err := json.Marshal(outEnvelope{Event: event, Data: data})
	if err != nil {
		c.logger.Error("failed to marshal event", zap.String("event", event), zap.Error(err))
		return
	}
	if !c.queue(msg) {
		c.logger.Warn("discarding frame", zap.String("client_id", c.ID), zap.String("event", event))
	}
}

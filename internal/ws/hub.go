package ws

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-restaurant-service/internal/state"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
	"go.uber.org/zap"
)

// Hub is the broadcast coordinator: the single goroutine that rebuilds the
// snapshot and fans it out. Mutation handlers never push state themselves;
// they only signal Notify after a successful write.
type Hub struct {
	state  state.UseCase
	logger logger.ZapLogger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client

	// notify has capacity 1: a burst of mutations while a rebuild is in
	// flight coalesces into a single follow-up rebuild.
	notify chan struct{}

	// done is closed when Run returns so disconnecting clients stop
	// waiting on unregister.
	done chan struct{}
}

func NewHub(state state.UseCase, log logger.ZapLogger) *Hub {
	return &Hub{
		state:      state,
		logger:     log,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		notify:     make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
}

// Notify signals that state changed. Never blocks the mutation path.
func (h *Hub) Notify() {
	select {
	case h.notify <- struct{}{}:
	default:
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				c.closeSend()
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			h.logger.Info("client connected", zap.String("client_id", c.ID), zap.Int("clients", len(h.clients)))
			// Bootstrap: this one client gets the current state right away.
			h.sendSnapshot(ctx, c, EventInitData)

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				c.closeSend()
				h.logger.Info("client disconnected", zap.String("client_id", c.ID), zap.Int("clients", len(h.clients)))
			}

		case <-h.notify:
			h.broadcast(ctx)
		}
	}
}

func (h *Hub) sendSnapshot(ctx context.Context, c *Client, event string) {
	snap, err := h.state.BuildSnapshot(ctx)
	if err != nil {
		// Storage being down means the client simply gets nothing yet; the
		// next successful mutation broadcast catches it up.
		h.logger.Error("failed to build snapshot", zap.Error(err))
		return
	}
	msg, err := json.Marshal(outEnvelope{Event: event, Data: snap})
	if err != nil {
		h.logger.Error("failed to marshal snapshot", zap.Error(err))
		return
	}
	h.deliver(c, msg)
}

func (h *Hub) broadcast(ctx context.Context) {
	snap, err := h.state.BuildSnapshot(ctx)
	if err != nil {
		h.logger.Error("failed to build snapshot", zap.Error(err))
		return
	}
	msg, err := json.Marshal(outEnvelope{Event: EventSyncState, Data: snap})
	if err != nil {
		h.logger.Error("failed to marshal snapshot", zap.Error(err))
		return
	}
	for c := range h.clients {
		h.deliver(c, msg)
	}
}

// deliver drops a client whose send buffer is full rather than letting a
// stalled terminal block the hub.
func (h *Hub) deliver(c *Client, msg []byte) {
	if !c.queue(msg) {
		delete(h.clients, c)
		c.closeSend()
		h.logger.Warn("dropping slow client", zap.String("client_id", c.ID))
	}
}

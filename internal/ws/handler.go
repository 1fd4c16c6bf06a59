package ws

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/auth"
	"github.com/fekuna/omnipos-restaurant-service/internal/inventory"
	"github.com/fekuna/omnipos-restaurant-service/internal/menu"
	menudto "github.com/fekuna/omnipos-restaurant-service/internal/menu/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order"
	orderdto "github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/table"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
	"go.uber.org/zap"
)

// Handler routes inbound envelopes to the usecases. Mutations that succeed
// signal the hub for a rebroadcast; failures are logged and the broadcast is
// skipped, so clients keep the last consistent state they were sent.
type Handler struct {
	hub    *Hub
	auth   auth.UseCase
	menu   menu.UseCase
	inv    inventory.UseCase
	order  order.UseCase
	table  table.UseCase
	logger logger.ZapLogger
}

func NewHandler(
	hub *Hub,
	authUC auth.UseCase,
	menuUC menu.UseCase,
	invUC inventory.UseCase,
	orderUC order.UseCase,
	tableUC table.UseCase,
	log logger.ZapLogger,
) *Handler {
	return &Handler{
		hub:    hub,
		auth:   authUC,
		menu:   menuUC,
		inv:    invUC,
		order:  orderUC,
		table:  tableUC,
		logger: log,
	}
}

func (h *Handler) Dispatch(ctx context.Context, c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.logger.Warn("malformed frame", zap.String("client_id", c.ID), zap.Error(err))
		c.sendEvent(EventError, "malformed payload")
		return
	}

	switch env.Event {
	case EventLoginAttempt:
		h.handleLogin(ctx, c, env.Data)

	case EventAddMenuItem:
		var input menudto.CreateMenuItemInput
		if !h.decode(c, env, &input) {
			return
		}
		h.mutate(ctx, c, env.Event, func() error {
			return h.menu.CreateItem(ctx, &input)
		})

	case EventDeleteMenuItem:
		var id int64
		if !h.decode(c, env, &id) {
			return
		}
		h.mutate(ctx, c, env.Event, func() error {
			return h.menu.DeleteItem(ctx, id)
		})

	case EventPlaceOrder:
		var input orderdto.PlaceOrderInput
		if !h.decode(c, env, &input) {
			return
		}
		h.mutate(ctx, c, env.Event, func() error {
			_, err := h.order.PlaceOrder(ctx, &input)
			return err
		})

	case EventPayBill:
		var tableNo int64
		if !h.decode(c, env, &tableNo) {
			return
		}
		h.mutate(ctx, c, env.Event, func() error {
			return h.order.SettlePayment(ctx, tableNo)
		})

	case EventResetTable:
		var tableNo int64
		if !h.decode(c, env, &tableNo) {
			return
		}
		h.mutate(ctx, c, env.Event, func() error {
			return h.table.ResetTable(ctx, tableNo)
		})

	case EventUpdateStatus:
		var p updateStatusPayload
		if !h.decode(c, env, &p) {
			return
		}
		status := model.OrderStatus(p.Status)
		if !status.Valid() {
			h.logger.Warn("rejected unknown order status", zap.String("status", p.Status))
			c.sendEvent(EventError, "unknown order status")
			return
		}
		h.mutate(ctx, c, env.Event, func() error {
			return h.order.UpdateStatus(ctx, p.ID, status)
		})

	case EventRestockItem:
		var p restockPayload
		if !h.decode(c, env, &p) {
			return
		}
		h.mutate(ctx, c, env.Event, func() error {
			return h.inv.Restock(ctx, p.ID, p.Amount)
		})

	case EventGenerateReport:
		report, err := h.order.Report(ctx)
		if err != nil {
			h.logger.Error("failed to generate report", zap.Error(err))
			return
		}
		c.sendEvent(EventReportData, report)

	default:
		h.logger.Warn("unknown event", zap.String("event", env.Event), zap.String("client_id", c.ID))
		c.sendEvent(EventError, "unknown event")
	}
}

func (h *Handler) handleLogin(ctx context.Context, c *Client, data json.RawMessage) {
	var creds loginAttempt
	if err := json.Unmarshal(data, &creds); err != nil {
		c.sendEvent(EventLoginError, "Invalid Credentials")
		return
	}

	user, err := h.auth.Login(ctx, creds.Username, creds.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.sendEvent(EventLoginError, "Invalid Credentials")
		return
	}
	if err != nil {
		h.logger.Error("login lookup failed", zap.Error(err))
		c.sendEvent(EventLoginError, "DB Error")
		return
	}
	c.sendEvent(EventLoginSuccess, loginSuccess{Role: user.Role, Name: user.Name})
}

// decode reports a malformed payload back to the sender, per the tightened
// validation policy, and tells the caller to stop.
func (h *Handler) decode(c *Client, env Envelope, v any) bool {
	if err := json.Unmarshal(env.Data, v); err != nil {
		h.logger.Warn("malformed payload", zap.String("event", env.Event), zap.Error(err))
		c.sendEvent(EventError, "malformed payload")
		return false
	}
	return true
}

// mutate applies one command. Only success triggers a rebroadcast; a failed
// command changes nothing and is terminal for that one command.
func (h *Handler) mutate(ctx context.Context, c *Client, event string, fn func() error) {
	if err := fn(); err != nil {
		h.logger.Error("mutation failed", zap.String("event", event), zap.String("client_id", c.ID), zap.Error(err))
		return
	}
	h.hub.Notify()
}

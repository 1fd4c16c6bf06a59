package ws

import (
	"net/http"

	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and hands it to the hub. The client's
// pumps own the connection from here on.
func ServeWS(hub *Hub, handler *Handler, log logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		c := newClient(hub, conn, log)
		hub.register <- c

		go c.writePump()
		go c.readPump(handler)
	}
}

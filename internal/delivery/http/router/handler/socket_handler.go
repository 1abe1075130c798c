package handler

import (
	"log/slog"
	"net/http"

	"homely/internal/delivery/http/middleware"
	"homely/internal/delivery/http/response"
	"homely/internal/infra/socket"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SocketHandlerParams holds dependencies for SocketHandler, injected by Fx.
type SocketHandlerParams struct {
	fx.In

	Hub    *socket.Hub
	Logger *slog.Logger
}

// SocketHandler upgrades HTTP requests to live booking-update sockets.
type SocketHandler struct {
	hub      *socket.Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewSocketHandler is the constructor for SocketHandler
func NewSocketHandler(params SocketHandlerParams) *SocketHandler {
	return &SocketHandler{
		hub:    params.Hub,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Token auth runs before the upgrade; origin is not re-checked here.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect upgrades the request and registers the connection with the hub.
// Runs behind the auth middleware, so the connection is bound to a user.
func (h *SocketHandler) Connect(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade writes its own error response.
		return nil
	}

	client := socket.NewClient(h.hub, conn, userID, h.logger)
	h.hub.Register(client)

	h.logger.Info("Socket client connected", slog.String("userID", userID))

	go client.WritePump()
	go client.ReadPump()

	return nil
}

// Package socket maintains live WebSocket connections and broadcasts booking
// updates to them.
package socket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"homely/config"
	"homely/internal/domain/entity"

	"github.com/pkg/errors"
)

const socketNotifierName = "socket"

// Envelope is the wire frame sent to socket clients. Data carries the full
// booking record; socket clients apply it as a replace-by-id, so unlike the
// push transports there is no title/body wrapper around it.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks every connected socket client and fans booking updates out to
// them. It implements service.Notifier so the dispatcher treats the live
// socket channel like any other transport.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}

	logger       *slog.Logger
	broadcastAll bool
}

// NewHub creates a new socket hub instance
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	broadcastAll := false
	if cfg.Notifications != nil {
		broadcastAll = cfg.Notifications.BroadcastAll
	}

	return &Hub{
		clients:      make(map[*Client]struct{}),
		logger:       logger,
		broadcastAll: broadcastAll,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = struct{}{}
}

// Unregister removes a client and closes its send queue.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Name identifies the transport in logs.
func (h *Hub) Name() string {
	return socketNotifierName
}

// NotifyBookingUpdate sends the update to the booking owner's connections.
// With broadcastAll enabled it reverts to emitting to every connection
// regardless of ownership. A client whose send queue is full gets the frame
// dropped rather than stalling the fan-out.
func (h *Hub) NotifyBookingUpdate(ctx context.Context, booking *entity.Booking) error {
	frame, err := json.Marshal(&Envelope{
		Event: "bookingUpdate",
		Data:  booking,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode socket frame")
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !h.broadcastAll && client.userID != booking.UserID {
			continue
		}

		select {
		case client.send <- frame:
		default:
			h.logger.WarnContext(ctx, "Dropping socket frame for slow client",
				slog.String("userID", client.userID))
		}
	}

	return nil
}

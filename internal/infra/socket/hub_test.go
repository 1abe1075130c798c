package socket

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"homely/config"
	"homely/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T, broadcastAll bool) *Hub {
	t.Helper()

	return NewHub(&config.Config{
		Notifications: &config.NotificationsConfig{BroadcastAll: broadcastAll},
	}, slog.Default())
}

func attachClient(hub *Hub, userID string, queue int) *Client {
	client := &Client{
		hub:    hub,
		send:   make(chan []byte, queue),
		userID: userID,
		logger: slog.Default(),
	}
	hub.Register(client)

	return client
}

// bookingEnvelope is the decoded client view of a socket frame.
type bookingEnvelope struct {
	Event string         `json:"event"`
	Data  entity.Booking `json:"data"`
}

func receivedFrame(t *testing.T, client *Client) bookingEnvelope {
	t.Helper()

	select {
	case frame := <-client.send:
		var envelope bookingEnvelope
		require.NoError(t, json.Unmarshal(frame, &envelope))

		return envelope
	default:
		t.Fatal("expected a frame on the client send queue")

		return bookingEnvelope{}
	}
}

func TestHub_NotifyBookingUpdate_OwnerScoped(t *testing.T) {
	hub := newTestHub(t, false)

	owner := attachClient(hub, "user-1", 1)
	ownerSecondTab := attachClient(hub, "user-1", 1)
	stranger := attachClient(hub, "user-2", 1)

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusConfirmed}
	require.NoError(t, hub.NotifyBookingUpdate(context.Background(), booking))

	assert.Equal(t, "bookingUpdate", receivedFrame(t, owner).Event)
	assert.Equal(t, "bookingUpdate", receivedFrame(t, ownerSecondTab).Event)
	assert.Empty(t, stranger.send)
}

func TestHub_NotifyBookingUpdate_FrameCarriesBookingRecord(t *testing.T) {
	hub := newTestHub(t, false)
	owner := attachClient(hub, "user-1", 1)

	booking := &entity.Booking{
		ID:          "b1",
		ServiceName: "Deep Cleaning",
		UserID:      "user-1",
		Status:      entity.BookingStatusConfirmed,
		Version:     3,
	}
	require.NoError(t, hub.NotifyBookingUpdate(context.Background(), booking))

	// Clients replace their local copy by id, so the booking record sits
	// directly under data with no notification wrapper around it.
	envelope := receivedFrame(t, owner)
	assert.Equal(t, "bookingUpdate", envelope.Event)
	assert.Equal(t, "b1", envelope.Data.ID)
	assert.Equal(t, "Deep Cleaning", envelope.Data.ServiceName)
	assert.Equal(t, entity.BookingStatusConfirmed, envelope.Data.Status)
	assert.Equal(t, int64(3), envelope.Data.Version)
}

func TestHub_NotifyBookingUpdate_BroadcastAll(t *testing.T) {
	hub := newTestHub(t, true)

	owner := attachClient(hub, "user-1", 1)
	stranger := attachClient(hub, "user-2", 1)

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusCancelled}
	require.NoError(t, hub.NotifyBookingUpdate(context.Background(), booking))

	assert.Len(t, owner.send, 1)
	assert.Len(t, stranger.send, 1)
}

func TestHub_NotifyBookingUpdate_SlowClientDropsFrame(t *testing.T) {
	hub := newTestHub(t, false)

	slow := attachClient(hub, "user-1", 1)
	slow.send <- []byte("backlog")

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusConfirmed}

	// The queue is already full, so the frame is dropped instead of blocking.
	require.NoError(t, hub.NotifyBookingUpdate(context.Background(), booking))
	assert.Len(t, slow.send, 1)
	assert.Equal(t, []byte("backlog"), <-slow.send)
}

func TestHub_Unregister(t *testing.T) {
	hub := newTestHub(t, false)

	client := attachClient(hub, "user-1", 1)
	require.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())

	_, open := <-client.send
	assert.False(t, open)

	// Unregistering twice is harmless.
	hub.Unregister(client)
}

package notification

import (
	"context"
	"fmt"

	"homely/internal/domain/entity"
	"homely/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const firebaseNotifierName = "fcm"

// firebaseService delivers booking updates through Firebase Cloud Messaging.
// Each user has a personal topic; mobile clients subscribe to their own topic
// after sign-in, so delivery is owner-scoped by construction.
type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notifier instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.Notifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Name identifies the transport in logs.
func (s *firebaseService) Name() string {
	return firebaseNotifierName
}

// NotifyBookingUpdate publishes the update to the booking owner's topic.
func (s *firebaseService) NotifyBookingUpdate(ctx context.Context, booking *entity.Booking) error {
	payload := service.NewBookingUpdateNotification(booking)

	message := &messaging.Message{
		Topic: UserTopic(booking.UserID),
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: map[string]string{
			"bookingId": booking.ID,
			"status":    string(booking.Status),
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// UserTopic returns the FCM topic name for a user's booking updates.
func UserTopic(userID string) string {
	return "bookings-" + userID
}

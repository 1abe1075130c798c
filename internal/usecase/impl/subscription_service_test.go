package impl

import (
	"context"
	"testing"

	"homely/config"
	"homely/internal/domain/entity"
	domainerrors "homely/internal/domain/errors"
	mockRepo "homely/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSubscriptionService(t *testing.T) (*mockRepo.MockPushSubscriptionRepository, *subscriptionService) {
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	cfg := &config.Config{
		WebPush: &config.WebPushConfig{
			Subject:   "mailto:ops@example.com",
			PublicKey: "test-public-key",
		},
	}
	svc := NewSubscriptionService(mockSubRepo, cfg).(*subscriptionService)

	return mockSubRepo, svc
}

func TestSubscriptionService_RegisterSubscription(t *testing.T) {
	mockSubRepo, service := newTestSubscriptionService(t)

	ctx := context.Background()
	subscription := &entity.PushSubscription{
		Endpoint: "https://push.example.com/send/abc",
		Keys: entity.SubscriptionKeys{
			P256dh: "p256dh-key",
			Auth:   "auth-secret",
		},
	}

	mockSubRepo.EXPECT().
		Register(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(nil)

	err := service.RegisterSubscription(ctx, subscription)
	require.NoError(t, err)
	assert.False(t, subscription.CreatedAt.IsZero())
}

func TestSubscriptionService_RegisterSubscription_Invalid(t *testing.T) {
	_, service := newTestSubscriptionService(t)

	ctx := context.Background()

	err := service.RegisterSubscription(ctx, nil)
	require.ErrorIs(t, err, domainerrors.ErrInvalidSubscription)

	err = service.RegisterSubscription(ctx, &entity.PushSubscription{
		Keys: entity.SubscriptionKeys{P256dh: "k", Auth: "a"},
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidSubscription)

	err = service.RegisterSubscription(ctx, &entity.PushSubscription{
		Endpoint: "https://push.example.com/send/abc",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidSubscription)
}

func TestSubscriptionService_RegisterSubscription_DuplicatesAllowed(t *testing.T) {
	mockSubRepo, service := newTestSubscriptionService(t)

	ctx := context.Background()
	subscription := &entity.PushSubscription{
		Endpoint: "https://push.example.com/send/abc",
		Keys: entity.SubscriptionKeys{
			P256dh: "p256dh-key",
			Auth:   "auth-secret",
		},
	}

	// Registration is append-only: the same endpoint registers twice without error.
	mockSubRepo.EXPECT().
		Register(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(nil).
		Twice()

	require.NoError(t, service.RegisterSubscription(ctx, subscription))
	require.NoError(t, service.RegisterSubscription(ctx, subscription))
}

func TestSubscriptionService_RegisterSubscription_RepoError(t *testing.T) {
	mockSubRepo, service := newTestSubscriptionService(t)

	ctx := context.Background()

	mockSubRepo.EXPECT().
		Register(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(errors.New("insert failed"))

	err := service.RegisterSubscription(ctx, &entity.PushSubscription{
		Endpoint: "https://push.example.com/send/abc",
		Keys: entity.SubscriptionKeys{
			P256dh: "p256dh-key",
			Auth:   "auth-secret",
		},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestSubscriptionService_VAPIDPublicKey(t *testing.T) {
	_, service := newTestSubscriptionService(t)

	assert.Equal(t, "test-public-key", service.VAPIDPublicKey())
}

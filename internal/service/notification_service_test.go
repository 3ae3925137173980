package service

import (
	"testing"
	"time"

	"stylehub-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRoutesTargets(t *testing.T) {
	adminEvents := []string{"USER_REGISTERED", "ORDER_PAID", "CANCELLATION_REQUESTED"}
	selfEvents := []string{"CANCELLATION_APPROVED", "CANCELLATION_REJECTED", "CANCELLATION_PROCESSED"}

	for _, code := range adminEvents {
		route, ok := notificationRoutes[code]
		require.True(t, ok, code)
		assert.Equal(t, "ADMIN", route.Target, code)
	}
	for _, code := range selfEvents {
		route, ok := notificationRoutes[code]
		require.True(t, ok, code)
		assert.Equal(t, "SELF", route.Target, code)
	}
}

func TestBuildNotificationRendersTemplate(t *testing.T) {
	s := &NotificationService{}
	userID := uuid.New()
	orderID := uuid.New()

	route := notificationRoutes["CANCELLATION_APPROVED"]
	event := events.BaseEvent{
		Type: "events.CANCELLATION_APPROVED",
		Data: map[string]interface{}{
			"user_id":       userID.String(),
			"order_id":      orderID.String(),
			"refund_amount": 1800.0,
			"entity_type":   "order",
			"entity_id":     orderID.String(),
		},
		OccurredAt: time.Now(),
	}

	notif := s.buildNotification(userID, "CANCELLATION_APPROVED", route, event)

	assert.Equal(t, userID, notif.UserID)
	assert.Equal(t, "CANCELLATION_APPROVED", notif.TypeCode)
	assert.Equal(t, route.Title, notif.Title)
	assert.Contains(t, notif.Message, orderID.String())
	assert.NotContains(t, notif.Message, "{order_id}")
	assert.Equal(t, "order", notif.EntityType)
	require.NotNil(t, notif.EntityID)
	assert.Equal(t, orderID, *notif.EntityID)
	assert.False(t, notif.IsRead)
}

func TestPayloadUUID(t *testing.T) {
	id := uuid.New()

	got, ok := payloadUUID(map[string]interface{}{"user_id": id.String()}, "user_id")
	require.True(t, ok)
	assert.Equal(t, id, got)

	got, ok = payloadUUID(map[string]interface{}{"user_id": id}, "user_id")
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = payloadUUID(map[string]interface{}{"user_id": "not-a-uuid"}, "user_id")
	assert.False(t, ok)

	_, ok = payloadUUID(map[string]interface{}{}, "user_id")
	assert.False(t, ok)

	_, ok = payloadUUID(map[string]interface{}{"user_id": 42}, "user_id")
	assert.False(t, ok)
}

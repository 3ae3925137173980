package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"stylehub-be/internal/model"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/repository"
	"stylehub-be/pkg/events"
	pktNats "stylehub-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

// notificationRoute maps an event type to recipients and rendered text.
// Placeholders like {order_id} are replaced from the event payload.
type notificationRoute struct {
	Target   string // ADMIN or SELF
	Title    string
	Template string
}

var notificationRoutes = map[string]notificationRoute{
	"USER_REGISTERED": {
		Target:   "ADMIN",
		Title:    "New customer",
		Template: "{full_name} just created an account.",
	},
	"ORDER_PAID": {
		Target:   "ADMIN",
		Title:    "Order paid",
		Template: "Order {order_id} was paid ({payment_method}, total {total}).",
	},
	"CANCELLATION_REQUESTED": {
		Target:   "ADMIN",
		Title:    "New cancellation request",
		Template: "A cancellation was requested for order {order_id}: {reason}.",
	},
	"CANCELLATION_APPROVED": {
		Target:   "SELF",
		Title:    "Cancellation approved",
		Template: "Your cancellation for order {order_id} was approved. Refund: {refund_amount}.",
	},
	"CANCELLATION_REJECTED": {
		Target:   "SELF",
		Title:    "Cancellation rejected",
		Template: "Your cancellation for order {order_id} was rejected.",
	},
	"CANCELLATION_PROCESSED": {
		Target:   "SELF",
		Title:    "Refund issued",
		Template: "Your refund of {refund_amount} for order {order_id} has been issued.",
	},
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	route, ok := notificationRoutes[typeCode]
	if !ok {
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, route, event)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error resolving recipients for %s", typeCode), map[string]interface{}{"error": err})
		return err // NATS will retry
	}

	for _, userID := range recipients {
		notif := s.buildNotification(userID, typeCode, route, event)

		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(userID, notif)
		}
	}

	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, route notificationRoute, event events.Event) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	switch route.Target {
	case "SELF":
		uid, ok := payloadUUID(event.Payload(), "user_id")
		if !ok {
			s.logger.Warn("NotificationService", fmt.Sprintf("Target SELF but no user_id in payload for event %s", event.EventType()), nil)
			return nil, nil
		}
		userIDs = append(userIDs, uid)

	case "ADMIN":
		admins, err := s.repo.GetUsersByRole(ctx, "admin")
		if err != nil {
			return nil, err
		}
		for _, u := range admins {
			userIDs = append(userIDs, u.Id)
		}
	}

	return userIDs, nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, typeCode string, route notificationRoute, event events.Event) model.Notification {
	msg := route.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		valStr := fmt.Sprintf("%v", v)
		msg = strings.ReplaceAll(msg, placeholder, valStr)
	}

	entityType := ""
	var entityID *uuid.UUID
	if et, ok := payload["entity_type"].(string); ok {
		entityType = et
	}
	if eid, ok := payloadUUID(payload, "entity_id"); ok {
		entityID = &eid
	}

	metaMap := make(map[string]interface{})
	for k, v := range payload {
		metaMap[k] = v
	}
	if entityType != "" && entityID != nil {
		metaMap["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID.String())
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		TypeCode:   typeCode,
		Title:      route.Title,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, ok := payload[key]
	if !ok {
		return uuid.Nil, false
	}
	switch v := raw.(type) {
	case string:
		id, err := uuid.Parse(v)
		return id, err == nil
	case uuid.UUID:
		return v, true
	}
	return uuid.Nil, false
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

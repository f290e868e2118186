package pubsub

import (
	"marketnav/internal/domain/service"
)

// eventAttributes builds the message attributes subscribers filter on.
func eventAttributes(event *service.NavigationEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.EventType,
		"session_id": event.SessionID,
		"user_id":    event.UserID,
		"status":     event.Status,
	}
	if event.MarketID != "" {
		attributes["market_id"] = event.MarketID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

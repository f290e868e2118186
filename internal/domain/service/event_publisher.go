package service

import (
	"context"
	"time"
)

// Navigation event types published on session lifecycle changes.
const (
	EventNavigationStarted   = "navigation.session.started"
	EventNavigationPaused    = "navigation.session.paused"
	EventNavigationResumed   = "navigation.session.active"
	EventNavigationCompleted = "navigation.session.completed"
	EventNavigationCancelled = "navigation.session.cancelled"
)

// NavigationEvent describes a navigation session state change for downstream consumers such as analytics
type NavigationEvent struct {
	RequestID         string    `json:"request_id,omitempty"` // For distributed tracing
	EventType         string    `json:"event_type"`
	SessionID         string    `json:"session_id"`
	UserID            string    `json:"user_id"`
	MarketID          string    `json:"market_id,omitempty"`
	DestinationShopID string    `json:"destination_shop_id,omitempty"`
	DestinationName   string    `json:"destination_name"`
	Status            string    `json:"status"`
	NavigationMode    string    `json:"navigation_mode"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNavigationEvent publishes a navigation session event
	PublishNavigationEvent(ctx context.Context, event *NavigationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

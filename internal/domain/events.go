package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_KV_UPDATED represents the event when a key/value entry changes.
	EventType_KV_UPDATED EventType = "KV.UPDATED"
	// EventType_FEATURES_CHANGED represents the event when the effective tool
	// feature set changes (toggle or condition flip).
	EventType_FEATURES_CHANGED EventType = "TOOLS.FEATURES_CHANGED"
	// EventType_CHAT_MESSAGE_SENT represents the event when a chat message is sent.
	EventType_CHAT_MESSAGE_SENT EventType = "CHAT_MESSAGE.SENT"
)

// KVUpdateEvent signals one key/value change to realtime subscribers. Length
// is set for list-typed keys only.
type KVUpdateEvent struct {
	Type    EventType
	Key     string
	Value   any
	Length  *int
	Deleted bool
}

// FeaturesChangedEvent signals that clients must refetch the tool feature set.
type FeaturesChangedEvent struct {
	Type   EventType
	Reason string
}

// ChatMessageEvent represents a domain event for chat messages in the system.
type ChatMessageEvent struct {
	Type           EventType
	ChatRole       ChatRole
	ChatMessageID  uuid.UUID
	ConversationID uuid.UUID
	CreatedAt      time.Time
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}

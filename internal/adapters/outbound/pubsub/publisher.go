package pubsub

import (
	"context"
	"encoding/json"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubEventPublisher implements domain.EventPublisher using Google Cloud
// Pub/Sub. Outbox topics map onto configured Pub/Sub topic IDs, and message
// attributes carry the event type plus the key for key/wildcard filtered
// realtime subscriptions.
type PubSubEventPublisher struct {
	Client   *pubsubV2.Client
	topicIDs map[domain.OutboxTopic]string
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher
func NewPubSubEventPublisher(client *pubsubV2.Client, realtimeTopicID, chatTopicID string) PubSubEventPublisher {
	return PubSubEventPublisher{
		Client: client,
		topicIDs: map[domain.OutboxTopic]string{
			domain.OutboxTopic_Realtime:     realtimeTopicID,
			domain.OutboxTopic_ChatMessages: chatTopicID,
		},
	}
}

// PublishEvent publishes the given event to the appropriate Pub/Sub topic
func (p PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	topicID, ok := p.topicIDs[event.Topic]
	if !ok {
		err := domain.NewValidationErr("unknown outbox topic: " + string(event.Topic))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	attributes := map[string]string{
		"event_type": string(event.EventType),
		"entity_id":  event.EntityID.String(),
	}
	if key := kvEventKey(event); key != "" {
		attributes["key"] = key
	}

	result := p.Client.Publisher(topicID).Publish(spanCtx, &pubsubV2.Message{
		Data:       event.Payload,
		Attributes: attributes,
	})

	_, err := result.Get(ctx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// kvEventKey extracts the key of a key/value update payload so subscribers
// can filter by exact key or prefix wildcard.
func kvEventKey(event domain.OutboxEvent) string {
	if event.EntityType != domain.OutboxEntityType_KVEntry {
		return ""
	}
	var payload struct {
		Key string
	}
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return ""
	}
	return payload.Key
}

// InitPublisher initializes the EventPublisher implementation
type InitPublisher struct {
	Client          *pubsubV2.Client `resolve:""`
	RealtimeTopicID string           `config:"PUBSUB_REALTIME_TOPIC_ID" default:"realtime-events"`
	ChatTopicID     string           `config:"PUBSUB_CHAT_TOPIC_ID" default:"chat-message-events"`
}

// Initialize registers the PubSubEventPublisher as the implementation of EventPublisher
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventPublisher](NewPubSubEventPublisher(i.Client, i.RealtimeTopicID, i.ChatTopicID))
	return ctx, nil
}

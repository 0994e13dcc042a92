package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/google/uuid"
)

const outboxDefaultMaxRetries = 5

var outboxEventFields = []string{
	"id",
	"entity_type",
	"entity_id",
	"topic",
	"event_type",
	"payload",
	"status",
	"retry_count",
	"max_retries",
	"last_error",
	"dedupe_key",
	"available_at",
	"processed_at",
	"created_at",
}

// OutboxRepository persists outbox events in Postgres.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateKVUpdateEvent records a key/value update bound for the realtime topic.
// Repeated updates of the same key collapse onto the pending row.
func (op OutboxRepository) CreateKVUpdateEvent(ctx context.Context, event domain.KVUpdateEvent) error {
	dedupeKey := fmt.Sprintf("kv:%s", event.Key)
	return op.createEvent(ctx, domain.OutboxEvent{
		EntityType: domain.OutboxEntityType_KVEntry,
		EntityID:   uuid.New(),
		Topic:      domain.OutboxTopic_Realtime,
		EventType:  event.Type,
		DedupeKey:  &dedupeKey,
	}, event)
}

// CreateFeaturesChangedEvent records a feature-set change bound for the
// realtime topic. Concurrent changes collapse onto one pending row.
func (op OutboxRepository) CreateFeaturesChangedEvent(ctx context.Context, event domain.FeaturesChangedEvent) error {
	dedupeKey := "features"
	return op.createEvent(ctx, domain.OutboxEvent{
		EntityType: domain.OutboxEntityType_ToolSet,
		EntityID:   uuid.New(),
		Topic:      domain.OutboxTopic_Realtime,
		EventType:  event.Type,
		DedupeKey:  &dedupeKey,
	}, event)
}

// CreateChatEvent records a chat message event bound for the chat topic.
func (op OutboxRepository) CreateChatEvent(ctx context.Context, event domain.ChatMessageEvent) error {
	return op.createEvent(ctx, domain.OutboxEvent{
		EntityType: domain.OutboxEntityType_ChatMessage,
		EntityID:   event.ChatMessageID,
		Topic:      domain.OutboxTopic_ChatMessages,
		EventType:  event.Type,
	}, event)
}

func (op OutboxRepository) createEvent(ctx context.Context, event domain.OutboxEvent, payload any) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payloadJSON, err := json.Marshal(payload)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal outbox payload: %w", err)
	}

	now := time.Now().UTC()
	qry := op.sb.Insert("outbox_events").
		Columns(outboxEventFields...).
		Values(
			uuid.New(),
			event.EntityType,
			event.EntityID,
			event.Topic,
			event.EventType,
			payloadJSON,
			domain.OutboxStatus_Pending,
			0,
			outboxDefaultMaxRetries,
			nil,
			event.DedupeKey,
			now,
			nil,
			now,
		)
	if event.DedupeKey != nil {
		qry = qry.Suffix(
			"ON CONFLICT (dedupe_key) WHERE status = 'PENDING' DO UPDATE SET payload = EXCLUDED.payload, available_at = EXCLUDED.available_at",
		)
	}

	_, err = qry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events from the database.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	rows, err := op.sb.
		Select(outboxEventFields...).
		From("outbox_events").
		Where(squirrel.Eq{"status": domain.OutboxStatus_Pending}).
		Where(squirrel.LtOrEq{"available_at": time.Now().UTC()}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(ctx)

	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.Status,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.DedupeKey,
			&oe.AvailableAt,
			&oe.ProcessedAt,
			&oe.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, oe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	qry := op.sb.
		Update("outbox_events").
		Set("status", status).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID})

	if status == domain.OutboxStatus_Processed {
		qry = qry.Set("processed_at", time.Now().UTC())
	}

	_, err := qry.ExecContext(ctx)
	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

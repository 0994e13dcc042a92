package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var chatFields = []string{
	"id",
	"conversation_id",
	"turn_id",
	"turn_sequence",
	"chat_role",
	"content",
	"tool_call_id",
	"tool_calls",
	"model",
	"hidden",
	"message_state",
	"error_message",
	"prompt_tokens",
	"completion_tokens",
	"total_tokens",
	"created_at",
	"updated_at",
}

// ChatMessageRepository persists chat messages in Postgres.
type ChatMessageRepository struct {
	sb squirrel.StatementBuilderType
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(br squirrel.BaseRunner) ChatMessageRepository {
	return ChatMessageRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateChatMessages persists a batch of chat messages.
func (r ChatMessageRepository) CreateChatMessages(ctx context.Context, messages []domain.ChatMessage) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	insertQry := r.sb.
		Insert("chat_messages").
		Columns(chatFields...)

	for _, message := range messages {
		toolCallsJSON, err := json.Marshal(message.ToolCalls)
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		insertQry = insertQry.Values(
			message.ID,
			message.ConversationID,
			message.TurnID,
			message.TurnSequence,
			message.ChatRole,
			message.Content,
			message.ToolCallID,
			toolCallsJSON,
			message.Model,
			message.Hidden,
			message.MessageState,
			message.ErrorMessage,
			message.PromptTokens,
			message.CompletionTokens,
			message.TotalTokens,
			message.CreatedAt,
			message.UpdatedAt,
		)
	}

	_, err := insertQry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListChatMessages retrieves messages of a conversation ordered by creation
// time, paginated. Fetches one extra row to detect whether older pages exist.
func (r ChatMessageRepository) ListChatMessages(
	ctx context.Context,
	conversationID uuid.UUID,
	page int,
	pageSize int,
) ([]domain.ChatMessage, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	))
	defer span.End()

	if page <= 0 {
		err := domain.NewValidationErr("page must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, false, err
	}
	if pageSize <= 0 {
		err := domain.NewValidationErr("page_size must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, false, err
	}

	rows, err := r.sb.
		Select(chatFields...).
		From("chat_messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at DESC", "turn_sequence DESC").
		Limit(uint64(pageSize + 1)).
		Offset(uint64((page - 1) * pageSize)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	defer rows.Close() //nolint:errcheck

	msgs, err := scanChatMessages(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	hasMore := false
	if len(msgs) > pageSize {
		hasMore = true
		msgs = msgs[:pageSize]
	}

	sortChronological(msgs)
	return msgs, hasMore, nil
}

// ListRecentTurnMessages retrieves up to limit latest messages of a
// conversation, hidden context included, oldest first.
func (r ChatMessageRepository) ListRecentTurnMessages(
	ctx context.Context,
	conversationID uuid.UUID,
	limit int,
) ([]domain.ChatMessage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(chatFields...).
		From("chat_messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at DESC", "turn_sequence DESC")

	if limit > 0 {
		qry = qry.Limit(uint64(limit))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	msgs, err := scanChatMessages(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	sortChronological(msgs)
	return msgs, nil
}

// DeleteConversationMessages removes all messages of a conversation.
func (r ChatMessageRepository) DeleteConversationMessages(ctx context.Context, conversationID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Delete("chat_messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func scanChatMessages(rows *sql.Rows) ([]domain.ChatMessage, error) {
	var msgs []domain.ChatMessage
	for rows.Next() {
		var (
			m      domain.ChatMessage
			tcJSON []byte
		)

		if err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.TurnID,
			&m.TurnSequence,
			&m.ChatRole,
			&m.Content,
			&m.ToolCallID,
			&tcJSON,
			&m.Model,
			&m.Hidden,
			&m.MessageState,
			&m.ErrorMessage,
			&m.PromptTokens,
			&m.CompletionTokens,
			&m.TotalTokens,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if len(tcJSON) > 0 {
			if err := json.Unmarshal(tcJSON, &m.ToolCalls); err != nil {
				return nil, err
			}
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// sortChronological reverses the DESC fetch order back to ASC.
func sortChronological(msgs []domain.ChatMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].TurnSequence < msgs[j].TurnSequence
		}
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
}

// InitChatMessageRepository is a Symbiont initializer for ChatMessageRepository.
type InitChatMessageRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ChatMessageRepository in the dependency container.
func (r InitChatMessageRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChatMessageRepository](NewChatMessageRepository(r.DB))
	return ctx, nil
}

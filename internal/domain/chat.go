package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChatRole represents the role of a chat message.
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Developer ChatRole = "developer"
	ChatRole_Tool      ChatRole = "tool"
)

// ChatMessageState represents the processing state of a chat message.
type ChatMessageState string

const (
	ChatMessageState_Completed   ChatMessageState = "COMPLETED"
	ChatMessageState_Failed      ChatMessageState = "FAILED"
	ChatMessageState_Interrupted ChatMessageState = "INTERRUPTED"
)

// ChatMessage represents one persisted message in a conversation. Hidden
// messages (accumulated tool context) feed the model but are never rendered
// to the user.
type ChatMessage struct {
	ID               uuid.UUID
	ConversationID   uuid.UUID
	TurnID           uuid.UUID
	TurnSequence     int64
	ChatRole         ChatRole
	Content          string
	ToolCallID       *string
	ToolCalls        []ToolCall
	Model            string
	Hidden           bool
	MessageState     ChatMessageState
	ErrorMessage     *string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks if the chat message has valid data.
func (m ChatMessage) Validate() error {
	switch m.ChatRole {
	case ChatRole_User, ChatRole_Assistant, ChatRole_System, ChatRole_Developer, ChatRole_Tool:
	default:
		return NewValidationErr("invalid chat role: " + string(m.ChatRole))
	}
	if m.ConversationID == uuid.Nil {
		return NewValidationErr("chat message requires a conversation id")
	}
	return nil
}

// ChatMessageRepository defines the interface for chat message persistence.
type ChatMessageRepository interface {
	// CreateChatMessages persists a batch of chat messages.
	CreateChatMessages(ctx context.Context, messages []ChatMessage) error

	// ListChatMessages retrieves messages of a conversation ordered by
	// creation time, paginated. Returns messages and a boolean indicating if
	// there are more messages.
	ListChatMessages(ctx context.Context, conversationID uuid.UUID, page, pageSize int) ([]ChatMessage, bool, error)

	// ListRecentTurnMessages retrieves the last N non-hidden-filtered messages
	// used to rebuild model context, oldest first.
	ListRecentTurnMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]ChatMessage, error)

	// DeleteConversationMessages removes all messages of a conversation.
	DeleteConversationMessages(ctx context.Context, conversationID uuid.UUID) error
}

package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
)

// ListChatMessages defines the interface for the ListChatMessages use case
type ListChatMessages interface {
	Query(ctx context.Context, conversationID uuid.UUID, page int, pageSize int) ([]domain.ChatMessage, bool, error)
}

// ListChatMessagesImpl is the implementation of the ListChatMessages use case
type ListChatMessagesImpl struct {
	chatMessageRepo domain.ChatMessageRepository
}

// NewListChatMessagesImpl creates a new instance of ListChatMessagesImpl
func NewListChatMessagesImpl(chatMessageRepo domain.ChatMessageRepository) ListChatMessagesImpl {
	return ListChatMessagesImpl{
		chatMessageRepo: chatMessageRepo,
	}
}

// Query retrieves renderable chat messages of a conversation with pagination support
func (lcm ListChatMessagesImpl) Query(ctx context.Context, conversationID uuid.UUID, page int, pageSize int) ([]domain.ChatMessage, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, hasMore, err := lcm.chatMessageRepo.ListChatMessages(spanCtx, conversationID, page, pageSize)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	// Tool plumbing and hidden context messages never render in the client.
	messagesToReturnToUser := []domain.ChatMessage{}
	for _, msg := range messages {
		if msg.ChatRole == domain.ChatRole_Tool || msg.Hidden {
			continue
		}
		if len(msg.Content) == 0 {
			continue
		}
		messagesToReturnToUser = append(messagesToReturnToUser, msg)
	}

	return messagesToReturnToUser, hasMore, nil
}

// InitListChatMessages is the initializer for the ListChatMessages use case
type InitListChatMessages struct {
	Repo domain.ChatMessageRepository `resolve:""`
}

// Initialize registers the ListChatMessages use case in the dependency container
func (i InitListChatMessages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListChatMessages](NewListChatMessagesImpl(i.Repo))
	return ctx, nil
}

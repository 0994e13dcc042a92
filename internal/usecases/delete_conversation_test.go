package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteConversationImpl_Execute(t *testing.T) {
	conversationID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		setExpectations func(conv *domain.MockConversationRepository, chat *domain.MockChatMessageRepository)
		expectedErr     error
	}{
		"success-deletes-messages-then-conversation": {
			setExpectations: func(conv *domain.MockConversationRepository, chat *domain.MockChatMessageRepository) {
				conv.EXPECT().GetConversation(mock.Anything, conversationID).
					Return(domain.Conversation{ID: conversationID}, true, nil)
				chat.EXPECT().DeleteConversationMessages(mock.Anything, conversationID).Return(nil)
				conv.EXPECT().DeleteConversation(mock.Anything, conversationID).Return(nil)
			},
		},
		"conversation-not-found": {
			setExpectations: func(conv *domain.MockConversationRepository, chat *domain.MockChatMessageRepository) {
				conv.EXPECT().GetConversation(mock.Anything, conversationID).
					Return(domain.Conversation{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr(fmt.Sprintf("conversation with ID %s not found", conversationID)),
		},
		"message-deletion-error-aborts": {
			setExpectations: func(conv *domain.MockConversationRepository, chat *domain.MockChatMessageRepository) {
				conv.EXPECT().GetConversation(mock.Anything, conversationID).
					Return(domain.Conversation{ID: conversationID}, true, nil)
				chat.EXPECT().DeleteConversationMessages(mock.Anything, conversationID).
					Return(errors.New("delete failed"))
			},
			expectedErr: errors.New("delete failed"),
		},
		"lookup-error": {
			setExpectations: func(conv *domain.MockConversationRepository, chat *domain.MockChatMessageRepository) {
				conv.EXPECT().GetConversation(mock.Anything, conversationID).
					Return(domain.Conversation{}, false, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conv := domain.NewMockConversationRepository(t)
			chat := domain.NewMockChatMessageRepository(t)
			uow := domain.NewMockUnitOfWork(t)
			passthroughUow(uow)
			uow.EXPECT().Conversation().Return(conv).Maybe()
			uow.EXPECT().ChatMessage().Return(chat).Maybe()
			tt.setExpectations(conv, chat)

			dc := NewDeleteConversationImpl(uow)

			err := dc.Execute(context.Background(), conversationID)
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestInitDeleteConversation_Initialize(t *testing.T) {
	i := InitDeleteConversation{Uow: domain.NewMockUnitOfWork(t)}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	dc, err := depend.Resolve[DeleteConversation]()
	assert.NoError(t, err)
	assert.NotNil(t, dc)
}

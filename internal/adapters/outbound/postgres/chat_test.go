package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const (
	chatInsertSQL = "INSERT INTO chat_messages (id,conversation_id,turn_id,turn_sequence,chat_role,content,tool_call_id,tool_calls,model,hidden,message_state,error_message,prompt_tokens,completion_tokens,total_tokens,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)"
	chatSelectSQL = "SELECT id, conversation_id, turn_id, turn_sequence, chat_role, content, tool_call_id, tool_calls, model, hidden, message_state, error_message, prompt_tokens, completion_tokens, total_tokens, created_at, updated_at FROM chat_messages WHERE conversation_id = $1 ORDER BY created_at DESC, turn_sequence DESC"
)

func TestChatMessageRepository_CreateChatMessages(t *testing.T) {
	conversationID := uuid.MustParse("923e4567-e89b-12d3-a456-426614174999")
	turnID := uuid.MustParse("823e4567-e89b-12d3-a456-426614174888")
	fixedID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2026, 1, 24, 12, 0, 0, 0, time.UTC)
	msg := domain.ChatMessage{
		ID:             fixedID,
		ConversationID: conversationID,
		TurnID:         turnID,
		TurnSequence:   1,
		ChatRole:       domain.ChatRole_User,
		Content:        "hello",
		Model:          "ai/gpt-oss",
		ToolCalls: []domain.ToolCall{
			{
				ID:        "id",
				Name:      "test_func",
				Arguments: "{\"arg1\":0}",
			},
		},
		MessageState: domain.ChatMessageState_Completed,
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
	toolCallsJSON := []byte(`[{"ID":"id","Name":"test_func","Arguments":"{\"arg1\":0}"}]`)

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    error
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(chatInsertSQL).
					WithArgs(
						msg.ID,
						msg.ConversationID,
						msg.TurnID,
						msg.TurnSequence,
						msg.ChatRole,
						msg.Content,
						msg.ToolCallID,
						toolCallsJSON,
						msg.Model,
						msg.Hidden,
						msg.MessageState,
						msg.ErrorMessage,
						msg.PromptTokens,
						msg.CompletionTokens,
						msg.TotalTokens,
						msg.CreatedAt,
						msg.UpdatedAt,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: nil,
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(chatInsertSQL).
					WithArgs(
						msg.ID,
						msg.ConversationID,
						msg.TurnID,
						msg.TurnSequence,
						msg.ChatRole,
						msg.Content,
						msg.ToolCallID,
						toolCallsJSON,
						msg.Model,
						msg.Hidden,
						msg.MessageState,
						msg.ErrorMessage,
						msg.PromptTokens,
						msg.CompletionTokens,
						msg.TotalTokens,
						msg.CreatedAt,
						msg.UpdatedAt,
					).
					WillReturnError(errors.New("db error"))
			},
			err: errors.New("db error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewChatMessageRepository(db)
			gotErr := repo.CreateChatMessages(context.Background(), []domain.ChatMessage{msg})
			assert.Equal(t, tt.err, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatMessageRepository_ListChatMessages(t *testing.T) {
	conversationID := uuid.MustParse("923e4567-e89b-12d3-a456-426614174999")
	turnID := uuid.MustParse("823e4567-e89b-12d3-a456-426614174888")
	fixedID1 := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedID2 := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	fixedID3 := uuid.MustParse("323e4567-e89b-12d3-a456-426614174002")
	t1 := time.Date(2026, 1, 24, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 24, 11, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 1, 24, 12, 0, 0, 0, time.UTC)

	row := func(id uuid.UUID, seq int64, ts time.Time) []driver.Value {
		return []driver.Value{
			id.String(),
			conversationID.String(),
			turnID.String(),
			seq,
			domain.ChatRole_User,
			"content",
			nil,
			nil,
			"ai/gpt-oss",
			false,
			domain.ChatMessageState_Completed,
			nil,
			0,
			0,
			0,
			ts,
			ts,
		}
	}
	msg := func(id uuid.UUID, seq int64, ts time.Time) domain.ChatMessage {
		return domain.ChatMessage{
			ID:             id,
			ConversationID: conversationID,
			TurnID:         turnID,
			TurnSequence:   seq,
			ChatRole:       domain.ChatRole_User,
			Content:        "content",
			Model:          "ai/gpt-oss",
			MessageState:   domain.ChatMessageState_Completed,
			CreatedAt:      ts,
			UpdatedAt:      ts,
		}
	}

	tests := map[string]struct {
		page            int
		pageSize        int
		expect          func(sqlmock.Sqlmock)
		expectedMsgs    []domain.ChatMessage
		expectedHasMore bool
		expectErr       bool
	}{
		"success-first-page": {
			page:     1,
			pageSize: 10,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(chatFields).
					AddRow(row(fixedID3, 3, t3)...).
					AddRow(row(fixedID2, 2, t2)...).
					AddRow(row(fixedID1, 1, t1)...)
				m.ExpectQuery(chatSelectSQL + " LIMIT 11 OFFSET 0").
					WithArgs(conversationID).
					WillReturnRows(rows)
			},
			expectedMsgs: []domain.ChatMessage{
				msg(fixedID1, 1, t1),
				msg(fixedID2, 2, t2),
				msg(fixedID3, 3, t3),
			},
			expectedHasMore: false,
		},
		"success-has-more": {
			page:     1,
			pageSize: 2,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(chatFields).
					AddRow(row(fixedID3, 3, t3)...).
					AddRow(row(fixedID2, 2, t2)...).
					AddRow(row(fixedID1, 1, t1)...)
				m.ExpectQuery(chatSelectSQL + " LIMIT 3 OFFSET 0").
					WithArgs(conversationID).
					WillReturnRows(rows)
			},
			expectedMsgs: []domain.ChatMessage{
				msg(fixedID2, 2, t2),
				msg(fixedID3, 3, t3),
			},
			expectedHasMore: true,
		},
		"empty": {
			page:     1,
			pageSize: 10,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(chatSelectSQL + " LIMIT 11 OFFSET 0").
					WithArgs(conversationID).
					WillReturnRows(sqlmock.NewRows(chatFields))
			},
			expectedMsgs:    nil,
			expectedHasMore: false,
		},
		"invalid-page": {
			page:      0,
			pageSize:  10,
			expect:    func(m sqlmock.Sqlmock) {},
			expectErr: true,
		},
		"database-error": {
			page:     1,
			pageSize: 10,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(chatSelectSQL + " LIMIT 11 OFFSET 0").
					WithArgs(conversationID).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewChatMessageRepository(db)
			got, hasMore, gotErr := repo.ListChatMessages(context.Background(), conversationID, tt.page, tt.pageSize)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedMsgs, got)
				assert.Equal(t, tt.expectedHasMore, hasMore)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatMessageRepository_ListRecentTurnMessages(t *testing.T) {
	conversationID := uuid.MustParse("923e4567-e89b-12d3-a456-426614174999")
	turnID := uuid.MustParse("823e4567-e89b-12d3-a456-426614174888")
	fixedID1 := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedID2 := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	t1 := time.Date(2026, 1, 24, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 24, 11, 0, 0, 0, time.UTC)

	hiddenRow := []driver.Value{
		fixedID2.String(),
		conversationID.String(),
		turnID.String(),
		int64(2),
		domain.ChatRole_Developer,
		"tool context",
		nil,
		nil,
		"ai/gpt-oss",
		true,
		domain.ChatMessageState_Completed,
		nil,
		0,
		0,
		0,
		t2,
		t2,
	}
	userRow := []driver.Value{
		fixedID1.String(),
		conversationID.String(),
		turnID.String(),
		int64(1),
		domain.ChatRole_User,
		"hello",
		nil,
		nil,
		"ai/gpt-oss",
		false,
		domain.ChatMessageState_Completed,
		nil,
		0,
		0,
		0,
		t1,
		t1,
	}

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	rows := sqlmock.NewRows(chatFields).
		AddRow(hiddenRow...).
		AddRow(userRow...)
	mock.ExpectQuery(chatSelectSQL + " LIMIT 50").
		WithArgs(conversationID).
		WillReturnRows(rows)

	repo := NewChatMessageRepository(db)
	got, gotErr := repo.ListRecentTurnMessages(context.Background(), conversationID, 50)
	assert.NoError(t, gotErr)
	assert.Len(t, got, 2)

	// Chronological order with hidden context retained.
	assert.Equal(t, fixedID1, got[0].ID)
	assert.Equal(t, fixedID2, got[1].ID)
	assert.True(t, got[1].Hidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatMessageRepository_DeleteConversationMessages(t *testing.T) {
	conversationID := uuid.MustParse("923e4567-e89b-12d3-a456-426614174999")

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    error
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM chat_messages WHERE conversation_id = $1").
					WithArgs(conversationID).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: nil,
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM chat_messages WHERE conversation_id = $1").
					WithArgs(conversationID).
					WillReturnError(errors.New("db error"))
			},
			err: errors.New("db error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewChatMessageRepository(db)
			gotErr := repo.DeleteConversationMessages(context.Background(), conversationID)
			assert.Equal(t, tt.err, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitChatMessageRepository_Initialize(t *testing.T) {
	i := &InitChatMessageRepository{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.ChatMessageRepository]()
	assert.NoError(t, err)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUnitOfWork_Execute(t *testing.T) {
	conversationID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		setupMock func(sqlmock.Sqlmock)
		fn        func(uow domain.UnitOfWork) error
		expectErr bool
	}{
		"success-commit": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM conversations WHERE id = $1").
					WithArgs(conversationID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: func(uow domain.UnitOfWork) error {
				return uow.Conversation().DeleteConversation(context.Background(), conversationID)
			},
			expectErr: false,
		},
		"success-rollback-on-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM conversations WHERE id = $1").
					WithArgs(conversationID).
					WillReturnError(errors.New("delete error"))
				m.ExpectRollback()
			},
			fn: func(uow domain.UnitOfWork) error {
				return uow.Conversation().DeleteConversation(context.Background(), conversationID)
			},
			expectErr: true,
		},
		"begin-transaction-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			fn: func(uow domain.UnitOfWork) error {
				return nil
			},
			expectErr: true,
		},
		"commit-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM conversations WHERE id = $1").
					WithArgs(conversationID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			fn: func(uow domain.UnitOfWork) error {
				return uow.Conversation().DeleteConversation(context.Background(), conversationID)
			},
			expectErr: true,
		},
		"rollback-error-with-original-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM conversations WHERE id = $1").
					WithArgs(conversationID).
					WillReturnError(errors.New("delete error"))
				m.ExpectRollback().WillReturnError(errors.New("rollback error"))
			},
			fn: func(uow domain.UnitOfWork) error {
				return uow.Conversation().DeleteConversation(context.Background(), conversationID)
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setupMock(mock)

			uow := NewUnitOfWork(db)
			err = uow.Execute(context.Background(), tt.fn)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnitOfWork_Repositories(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	uow := NewUnitOfWork(db)

	assert.IsType(t, ConversationRepository{}, uow.Conversation())
	assert.IsType(t, ChatMessageRepository{}, uow.ChatMessage())
	assert.IsType(t, KVRepository{}, uow.KV())
	assert.IsType(t, OutboxRepository{}, uow.Outbox())
}

func TestUnitOfWork_getBaseRunner(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	t.Run("returns-db-when-no-transaction", func(t *testing.T) {
		uow := NewUnitOfWork(db)
		runner := uow.getBaseRunner()
		assert.Equal(t, db, runner)
	})

	t.Run("returns-tx-when-in-transaction", func(t *testing.T) {
		mock.ExpectBegin()

		tx, err := db.Begin()
		assert.NoError(t, err)

		uow := &UnitOfWork{
			db: db,
			tx: tx,
		}

		runner := uow.getBaseRunner()
		assert.Equal(t, tx, runner)

		// Clean up
		mock.ExpectRollback()
		_ = tx.Rollback()
	})
}

func TestUnitOfWork_TransactionIsolation(t *testing.T) {
	conversationID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	// Both operations must run on the same transaction.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM chat_messages WHERE conversation_id = $1").
		WithArgs(conversationID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(outboxInsertSQL + outboxDedupeSuffix).
		WithArgs(
			sqlmock.AnyArg(),
			"KVEntry",
			sqlmock.AnyArg(),
			"Realtime",
			"KV.UPDATED",
			sqlmock.AnyArg(),
			"PENDING",
			0,
			5,
			nil,
			"kv:history",
			sqlmock.AnyArg(),
			nil,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	uow := NewUnitOfWork(db)
	err = uow.Execute(context.Background(), func(uow domain.UnitOfWork) error {
		if err := uow.ChatMessage().DeleteConversationMessages(context.Background(), conversationID); err != nil {
			return err
		}

		return uow.Outbox().CreateKVUpdateEvent(context.Background(), domain.KVUpdateEvent{
			Type:    domain.EventType_KV_UPDATED,
			Key:     "history",
			Deleted: true,
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitUnitOfWork_Initialize(t *testing.T) {
	i := &InitUnitOfWork{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.UnitOfWork]()
	assert.NoError(t, err)

}

package usecases

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
	"github.com/cleitonmarx/symbiont/depend"
)

var streamChatNow = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

// callableStubTool additionally implements domain.Callable and records its
// invocations.
type callableStubTool struct {
	stubTool
	result   string
	err      error
	calls    int
	lastCall domain.ToolCall
	lastMeta domain.ToolMetadata
}

func (s *callableStubTool) Call(_ context.Context, call domain.ToolCall, meta domain.ToolMetadata) (string, error) {
	s.calls++
	s.lastCall = call
	s.lastMeta = meta
	return s.result, s.err
}

// cleanupCallableTool additionally implements domain.CleanupHook.
type cleanupCallableTool struct {
	*callableStubTool
	cleanups int
}

func (s *cleanupCallableTool) Cleanup(context.Context) error {
	s.cleanups++
	return nil
}

// streamingStubTool additionally implements domain.Streamer, emitting a fixed
// chunk sequence.
type streamingStubTool struct {
	stubTool
	chunks []domain.ResponseChunk
}

func (s streamingStubTool) Stream(ctx context.Context, _ domain.ToolCall, _ domain.ToolMetadata) (*domain.ChunkStream, error) {
	stream := domain.NewChunkStream(len(s.chunks))
	go func() {
		for _, chunk := range s.chunks {
			if err := stream.Emit(ctx, chunk); err != nil {
				return
			}
		}
		stream.Finish()
	}()
	return stream, nil
}

// reportingStubTool additionally implements domain.StatusReporter.
type reportingStubTool struct {
	stubTool
	status string
}

func (s reportingStubTool) ReportStatus(context.Context, uuid.UUID) (string, error) {
	return s.status, nil
}

// streamEventRecorder collects callback events in emission order.
type streamEventRecorder struct {
	types  []domain.ChatStreamEventType
	events []any
}

func (r *streamEventRecorder) record(eventType domain.ChatStreamEventType, data any) error {
	r.types = append(r.types, eventType)
	r.events = append(r.events, data)
	return nil
}

type streamChatFixture struct {
	conversationRepo *domain.MockConversationRepository
	chatMessageRepo  *domain.MockChatMessageRepository
	outboxRepo       *domain.MockOutboxRepository
	uow              *domain.MockUnitOfWork
	timeProvider     *domain.MockCurrentTimeProvider
	assistant        *domain.MockAssistant
	registry         *toolkit.ToolManager
	usecase          StreamChatImpl

	persisted []domain.ChatMessage
}

func newStreamChatFixture(t *testing.T, maxToolCycles int, plugins ...domain.Plugin) *streamChatFixture {
	t.Helper()

	fx := &streamChatFixture{
		conversationRepo: domain.NewMockConversationRepository(t),
		chatMessageRepo:  domain.NewMockChatMessageRepository(t),
		outboxRepo:       domain.NewMockOutboxRepository(t),
		uow:              domain.NewMockUnitOfWork(t),
		timeProvider:     domain.NewMockCurrentTimeProvider(t),
		assistant:        domain.NewMockAssistant(t),
		registry:         discoverTestRegistry(t, plugins...),
	}
	fx.timeProvider.EXPECT().Now().Return(streamChatNow).Maybe()

	logger := log.New(io.Discard, "", 0)
	orchestrator := toolkit.NewOrchestrator(
		logger,
		fx.registry,
		fakeVisibility{},
		toolkit.NewChunkRouter(logger),
		toolkit.NewCleanupScheduler(logger, fx.registry),
		fx.timeProvider,
	)
	dashboard := toolkit.NewStatusDashboard(logger, fx.registry, fakeVisibility{})

	fx.usecase = NewStreamChatImpl(
		fx.chatMessageRepo,
		fx.conversationRepo,
		fx.timeProvider,
		fx.assistant,
		orchestrator,
		dashboard,
		fx.uow,
		maxToolCycles,
	)
	return fx
}

// expectPersistence wires the unit of work for any number of chat message
// writes and records every persisted message.
func (fx *streamChatFixture) expectPersistence() {
	passthroughUow(fx.uow)
	fx.uow.EXPECT().ChatMessage().Return(fx.chatMessageRepo).Maybe()
	fx.uow.EXPECT().Outbox().Return(fx.outboxRepo).Maybe()
	fx.uow.EXPECT().Conversation().Return(fx.conversationRepo).Maybe()
	fx.chatMessageRepo.EXPECT().CreateChatMessages(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, messages []domain.ChatMessage) error {
			fx.persisted = append(fx.persisted, messages...)
			return nil
		},
	)
	fx.outboxRepo.EXPECT().CreateChatEvent(mock.Anything, mock.Anything).Return(nil)
	fx.conversationRepo.EXPECT().UpdateConversation(mock.Anything, mock.Anything).Return(nil)
}

func (fx *streamChatFixture) expectNewConversation(conversation domain.Conversation) {
	fx.conversationRepo.EXPECT().
		CreateConversation(mock.Anything, mock.Anything, domain.ConversationTitleSource_Auto).
		Return(conversation, nil)
}

func (fx *streamChatFixture) expectHistory(conversationID uuid.UUID, history []domain.ChatMessage) {
	fx.chatMessageRepo.EXPECT().
		ListRecentTurnMessages(mock.Anything, conversationID, MAX_CHAT_HISTORY_MESSAGES).
		Return(history, nil)
}

func (fx *streamChatFixture) persistedByRole(role domain.ChatRole) []domain.ChatMessage {
	var messages []domain.ChatMessage
	for _, msg := range fx.persisted {
		if msg.ChatRole == role {
			messages = append(messages, msg)
		}
	}
	return messages
}

func testConversation() domain.Conversation {
	return domain.Conversation{
		ID:          uuid.New(),
		Title:       "Hello there",
		TitleSource: domain.ConversationTitleSource_Auto,
		CreatedAt:   streamChatNow,
		UpdatedAt:   streamChatNow,
	}
}

func TestStreamChatImpl_Execute_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name        string
		message     string
		model       string
		expectedErr string
	}{
		{
			name:        "empty-message",
			message:     "   ",
			model:       "test-model",
			expectedErr: "message cannot be empty",
		},
		{
			name:        "empty-model",
			message:     "hello",
			model:       "",
			expectedErr: "model cannot be empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newStreamChatFixture(t, 5)
			recorder := &streamEventRecorder{}

			err := fx.usecase.Execute(context.Background(), tc.message, tc.model, recorder.record)

			assert.EqualError(t, err, tc.expectedErr)
			assert.Empty(t, recorder.types)
		})
	}
}

func TestStreamChatImpl_Execute_StreamsAssistantReply(t *testing.T) {
	fx := newStreamChatFixture(t, 5)
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	assistantMsgID := uuid.New()
	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			assert.Equal(t, "test-model", req.Model)
			assert.True(t, req.Stream)
			require.NotNil(t, req.Temperature)
			assert.Equal(t, CHAT_TEMPERATURE, *req.Temperature)
			require.NotNil(t, req.TopP)
			assert.Equal(t, CHAT_TOP_P, *req.TopP)

			// System prompt carries today's date, then the user message closes the context.
			require.NotEmpty(t, req.Messages)
			assert.Equal(t, domain.ChatRole_Developer, req.Messages[0].Role)
			assert.Contains(t, req.Messages[0].Content, "2026-01-02")
			last := req.Messages[len(req.Messages)-1]
			assert.Equal(t, domain.ChatRole_User, last.Role)
			assert.Equal(t, "hello", last.Content)

			require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{
				AssistantMessageID: assistantMsgID,
			}))
			require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "Hi "}))
			require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "there!"}))
			require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{
				Usage: domain.AssistantUsage{PromptTokens: 12, CompletionTokens: 4, TotalTokens: 16},
			}))
			return nil
		},
	)

	recorder := &streamEventRecorder{}
	err := fx.usecase.Execute(context.Background(), "hello", "test-model", recorder.record)
	require.NoError(t, err)

	assert.Equal(t, []domain.ChatStreamEventType{
		domain.ChatStreamEvent_UserMessage,
		domain.ChatStreamEvent_StreamStart,
		domain.ChatStreamEvent_StreamChunk,
		domain.ChatStreamEvent_StreamChunk,
		domain.ChatStreamEvent_AssistantComplete,
		domain.ChatStreamEvent_Complete,
	}, recorder.types)

	userEvent := recorder.events[0].(domain.UserMessageEvent)
	assert.Equal(t, conversation.ID, userEvent.ConversationID)
	assert.True(t, userEvent.ConversationCreated)
	assert.Equal(t, "hello", userEvent.Content)

	startEvent := recorder.events[1].(domain.StreamStartEvent)
	assert.Equal(t, assistantMsgID, startEvent.AssistantMessageID)
	assert.Equal(t, "test-model", startEvent.Model)

	completeEvent := recorder.events[5].(domain.CompleteEvent)
	assert.Equal(t, assistantMsgID, completeEvent.AssistantMessageID)
	assert.Equal(t, "2026-01-02T15:04:05Z", completeEvent.CompletedAt)
	assert.Equal(t, 16, completeEvent.Usage.TotalTokens)

	require.Len(t, fx.persisted, 2)
	assert.Equal(t, domain.ChatRole_User, fx.persisted[0].ChatRole)
	assert.Equal(t, int64(0), fx.persisted[0].TurnSequence)
	assistantMsg := fx.persisted[1]
	assert.Equal(t, assistantMsgID, assistantMsg.ID)
	assert.Equal(t, "Hi there!", assistantMsg.Content)
	assert.Equal(t, domain.ChatMessageState_Completed, assistantMsg.MessageState)
	assert.Equal(t, int64(1), assistantMsg.TurnSequence)
	assert.Equal(t, 12, assistantMsg.PromptTokens)
	assert.Equal(t, 4, assistantMsg.CompletionTokens)
}

func TestStreamChatImpl_Execute_ResumesExistingConversation(t *testing.T) {
	fx := newStreamChatFixture(t, 5)
	conversation := testConversation()
	fx.expectPersistence()
	fx.conversationRepo.EXPECT().
		GetConversation(mock.Anything, conversation.ID).
		Return(conversation, true, nil)

	// The leading orphan tool result is dropped from the model context; every
	// other history row, system notices included, is replayed as-is.
	fx.expectHistory(conversation.ID, []domain.ChatMessage{
		{ChatRole: domain.ChatRole_Tool, Content: "orphan result", ToolCallID: common.Ptr("call-0")},
		{ChatRole: domain.ChatRole_User, Content: "what is the weather?"},
		{ChatRole: domain.ChatRole_System, Content: "notice"},
		{ChatRole: domain.ChatRole_Assistant, Content: "It is sunny."},
	})

	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			var contents []string
			for _, msg := range req.Messages[1:] {
				contents = append(contents, msg.Content)
			}
			assert.Equal(t, []string{"what is the weather?", "notice", "It is sunny.", "and tomorrow?"}, contents)

			require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
			require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "Rainy."}))
			require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{}))
			return nil
		},
	)

	recorder := &streamEventRecorder{}
	err := fx.usecase.Execute(
		context.Background(),
		"and tomorrow?",
		"test-model",
		recorder.record,
		WithConversationID(conversation.ID),
	)
	require.NoError(t, err)

	userEvent := recorder.events[0].(domain.UserMessageEvent)
	assert.False(t, userEvent.ConversationCreated)
}

func TestStreamChatImpl_Execute_ConversationNotFound(t *testing.T) {
	fx := newStreamChatFixture(t, 5)
	missingID := uuid.New()
	fx.conversationRepo.EXPECT().
		GetConversation(mock.Anything, missingID).
		Return(domain.Conversation{}, false, nil)

	recorder := &streamEventRecorder{}
	err := fx.usecase.Execute(
		context.Background(),
		"hello",
		"test-model",
		recorder.record,
		WithConversationID(missingID),
	)

	assert.EqualError(t, err, "conversation not found")
	assert.Empty(t, recorder.types)
}

func TestStreamChatImpl_Execute_ToolCallCycle(t *testing.T) {
	reminder := &callableStubTool{
		stubTool: stubTool{def: domain.ToolDefinition{
			Schema: domain.ToolSchema{Name: "set_reminder", Description: "Saves a reminder"},
		}},
		result: "reminder saved",
	}
	tool := &cleanupCallableTool{callableStubTool: reminder}
	fx := newStreamChatFixture(t, 5, stubPlugin{unit: "reminder", tools: []domain.Tool{tool}})
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	toolCall := domain.ToolCall{ID: "call-1", Name: "set_reminder", Arguments: `{"text":"water plants"}`}
	runs := 0
	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			runs++
			switch runs {
			case 1:
				require.Len(t, req.AvailableTools, 1)
				assert.Equal(t, "set_reminder", req.AvailableTools[0].Name)
				require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
				require.NoError(t, onEvent(domain.AssistantEventType_ToolRequested, toolCall))
				require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{
					Usage: domain.AssistantUsage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12},
				}))
			case 2:
				// The tool exchange is appended to the request context.
				require.GreaterOrEqual(t, len(req.Messages), 2)
				callMsg := req.Messages[len(req.Messages)-2]
				resultMsg := req.Messages[len(req.Messages)-1]
				require.Len(t, callMsg.ToolCalls, 1)
				assert.Equal(t, toolCall, callMsg.ToolCalls[0])
				assert.Equal(t, domain.ChatRole_Tool, resultMsg.Role)
				assert.Equal(t, "reminder saved", resultMsg.Content)
				require.NotNil(t, resultMsg.ToolCallID)
				assert.Equal(t, "call-1", *resultMsg.ToolCallID)
				assert.Len(t, req.AvailableTools, 1)

				require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "Reminder set."}))
				require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{
					Usage: domain.AssistantUsage{PromptTokens: 20, CompletionTokens: 3, TotalTokens: 23},
				}))
			}
			return nil
		},
	)

	recorder := &streamEventRecorder{}
	err := fx.usecase.Execute(context.Background(), "remind me to water plants", "test-model", recorder.record)
	require.NoError(t, err)

	assert.Equal(t, []domain.ChatStreamEventType{
		domain.ChatStreamEvent_UserMessage,
		domain.ChatStreamEvent_StreamStart,
		domain.ChatStreamEvent_ToolStarted,
		domain.ChatStreamEvent_ToolComplete,
		domain.ChatStreamEvent_StreamChunk,
		domain.ChatStreamEvent_AssistantComplete,
		domain.ChatStreamEvent_Complete,
	}, recorder.types)

	startedEvent := recorder.events[2].(domain.ToolStartedEvent)
	assert.Equal(t, "call-1", startedEvent.CallID)
	assert.Equal(t, "working", startedEvent.Status)

	completedEvent := recorder.events[3].(domain.ToolCompleteEvent)
	assert.True(t, completedEvent.Success)
	assert.Nil(t, completedEvent.Error)

	assert.Equal(t, 1, tool.calls)
	assert.Equal(t, toolCall, tool.lastCall)
	assert.Equal(t, conversation.ID, tool.lastMeta.ConversationID)
	assert.Equal(t, "test-model", tool.lastMeta.Model)
	assert.Equal(t, "2026-01-02T15:04:05Z", tool.lastMeta.Timestamp)
	assert.Equal(t, 1, tool.cleanups)

	// user, assistant tool call, tool result, final assistant.
	require.Len(t, fx.persisted, 4)
	assert.Equal(t, domain.ChatRole_Assistant, fx.persisted[1].ChatRole)
	require.Len(t, fx.persisted[1].ToolCalls, 1)
	assert.Equal(t, domain.ChatRole_Tool, fx.persisted[2].ChatRole)
	assert.Equal(t, "reminder saved", fx.persisted[2].Content)
	assert.Equal(t, domain.ChatMessageState_Completed, fx.persisted[2].MessageState)

	finalMsg := fx.persisted[3]
	assert.Equal(t, "Reminder set.", finalMsg.Content)
	assert.Equal(t, 30, finalMsg.PromptTokens)
	assert.Equal(t, 5, finalMsg.CompletionTokens)
	assert.Equal(t, 35, finalMsg.TotalTokens)

	completeEvent := recorder.events[6].(domain.CompleteEvent)
	assert.Equal(t, 35, completeEvent.Usage.TotalTokens)
}

func TestStreamChatImpl_Execute_OneTimeToolLeavesOfferedSet(t *testing.T) {
	tool := &callableStubTool{
		stubTool: stubTool{def: domain.ToolDefinition{
			Schema:  domain.ToolSchema{Name: "show_thinking", Description: "Reveals reasoning"},
			OneTime: true,
		}},
		result: "THINKING: done",
	}
	fx := newStreamChatFixture(t, 5, stubPlugin{unit: "thinking", tools: []domain.Tool{tool}})
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	runs := 0
	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			runs++
			switch runs {
			case 1:
				require.Len(t, req.AvailableTools, 1)
				require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
				require.NoError(t, onEvent(domain.AssistantEventType_ToolRequested, domain.ToolCall{
					ID: "call-1", Name: "show_thinking", Arguments: "{}",
				}))
				require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{}))
			case 2:
				assert.Empty(t, req.AvailableTools)
				require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "Done."}))
				require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{}))
			}
			return nil
		},
	)

	err := fx.usecase.Execute(context.Background(), "think out loud", "test-model", (&streamEventRecorder{}).record)
	require.NoError(t, err)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 1, tool.calls)
}

func TestStreamChatImpl_Execute_ToolCycleLimitStopsLoop(t *testing.T) {
	tool := &callableStubTool{
		stubTool: stubTool{def: domain.ToolDefinition{
			Schema: domain.ToolSchema{Name: "convert", Description: "Converts currency"},
		}},
		result: "42.00 EUR",
	}
	fx := newStreamChatFixture(t, 1, stubPlugin{unit: "currency", tools: []domain.Tool{tool}})
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	runs := 0
	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, _ domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			runs++
			if runs == 1 {
				require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
			}
			// The model keeps asking for another tool call every cycle.
			require.NoError(t, onEvent(domain.AssistantEventType_ToolRequested, domain.ToolCall{
				ID: "call-1", Name: "convert", Arguments: `{"amount":50}`,
			}))
			require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "ok"}))
			require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{}))
			return nil
		},
	)

	err := fx.usecase.Execute(context.Background(), "convert 50 usd", "test-model", (&streamEventRecorder{}).record)
	require.NoError(t, err)

	// The second request exceeds the cycle limit, so it is ignored and the
	// turn finishes instead of looping.
	assert.Equal(t, 2, runs)
	assert.Equal(t, 1, tool.calls)
}

func TestStreamChatImpl_Execute_StreamingToolRoutesChunks(t *testing.T) {
	tool := streamingStubTool{
		stubTool: stubTool{def: domain.ToolDefinition{
			Schema: domain.ToolSchema{Name: "lookup", Description: "Looks things up"},
		}},
		chunks: []domain.ResponseChunk{
			domain.AssistantChunk("Searching... "),
			domain.SystemChunk("cache warmed"),
			domain.ContextChunk("GUIDANCE: answer briefly"),
		},
	}
	fx := newStreamChatFixture(t, 5, stubPlugin{unit: "search", tools: []domain.Tool{tool}})
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	runs := 0
	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			runs++
			switch runs {
			case 1:
				require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
				require.NoError(t, onEvent(domain.AssistantEventType_ToolRequested, domain.ToolCall{
					ID: "call-1", Name: "lookup", Arguments: "{}",
				}))
				require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{}))
			case 2:
				resultMsg := req.Messages[len(req.Messages)-1]
				assert.Equal(t, "GUIDANCE: answer briefly\nSearching... ", resultMsg.Content)
				require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "Found it."}))
				require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{}))
			}
			return nil
		},
	)

	recorder := &streamEventRecorder{}
	err := fx.usecase.Execute(context.Background(), "look this up", "test-model", recorder.record)
	require.NoError(t, err)

	assert.Equal(t, []domain.ChatStreamEventType{
		domain.ChatStreamEvent_UserMessage,
		domain.ChatStreamEvent_StreamStart,
		domain.ChatStreamEvent_ToolStarted,
		domain.ChatStreamEvent_StreamChunk,
		domain.ChatStreamEvent_SystemMessageStart,
		domain.ChatStreamEvent_SystemChunk,
		domain.ChatStreamEvent_SystemComplete,
		domain.ChatStreamEvent_ToolComplete,
		domain.ChatStreamEvent_StreamChunk,
		domain.ChatStreamEvent_AssistantComplete,
		domain.ChatStreamEvent_Complete,
	}, recorder.types)

	systemComplete := recorder.events[6].(domain.SystemCompleteEvent)
	assert.Equal(t, "cache warmed", systemComplete.Content)

	systemMessages := fx.persistedByRole(domain.ChatRole_System)
	require.Len(t, systemMessages, 1)
	assert.Equal(t, "cache warmed", systemMessages[0].Content)

	contextMessages := fx.persistedByRole(domain.ChatRole_Developer)
	require.Len(t, contextMessages, 1)
	assert.Equal(t, "GUIDANCE: answer briefly", contextMessages[0].Content)
	assert.True(t, contextMessages[0].Hidden)

	// Tool chunks stream into the same visible assistant message.
	assistantMessages := fx.persistedByRole(domain.ChatRole_Assistant)
	finalMsg := assistantMessages[len(assistantMessages)-1]
	assert.Equal(t, "Searching... Found it.", finalMsg.Content)
}

func TestStreamChatImpl_Execute_AutoToolAndDashboardContext(t *testing.T) {
	auto := &callableStubTool{
		stubTool: stubTool{def: domain.ToolDefinition{
			Schema:   domain.ToolSchema{Name: "heartbeat", Description: "Ambient context"},
			AutoTool: true,
		}},
		result: "GUIDANCE: stay upbeat",
	}
	reporter := reportingStubTool{
		stubTool: stubTool{def: domain.ToolDefinition{
			Schema: domain.ToolSchema{Name: "reminders", Description: "Reminder status"},
		}},
		status: "2 reminders pending",
	}
	fx := newStreamChatFixture(t, 5, stubPlugin{unit: "ambient", tools: []domain.Tool{auto, reporter}})
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			// Auto tools never appear in the offered schema set.
			assert.Empty(t, req.AvailableTools)

			var developerContext []string
			for _, msg := range req.Messages {
				if msg.Role == domain.ChatRole_Developer {
					developerContext = append(developerContext, msg.Content)
				}
			}
			require.Len(t, developerContext, 3)
			assert.Equal(t, "GUIDANCE: stay upbeat", developerContext[1])
			assert.Contains(t, developerContext[2], "STATUS_DASHBOARD:")
			assert.Contains(t, developerContext[2], "2 reminders pending")

			require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
			require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "Hello!"}))
			require.NoError(t, onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{}))
			return nil
		},
	)

	err := fx.usecase.Execute(context.Background(), "hi", "test-model", (&streamEventRecorder{}).record)
	require.NoError(t, err)
	assert.Equal(t, 1, auto.calls)
}

func TestStreamChatImpl_Execute_EmptyReplyFallback(t *testing.T) {
	fx := newStreamChatFixture(t, 5)
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, _ domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
			return onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{})
		},
	)

	recorder := &streamEventRecorder{}
	err := fx.usecase.Execute(context.Background(), "hello", "test-model", recorder.record)
	require.NoError(t, err)

	assert.Equal(t, []domain.ChatStreamEventType{
		domain.ChatStreamEvent_UserMessage,
		domain.ChatStreamEvent_StreamStart,
		domain.ChatStreamEvent_StreamChunk,
		domain.ChatStreamEvent_AssistantComplete,
		domain.ChatStreamEvent_Complete,
	}, recorder.types)

	completeEvent := recorder.events[3].(domain.AssistantCompleteEvent)
	assert.Equal(t, "Sorry, I could not process your request. Please try again.", completeEvent.Content)
	assert.Equal(t, completeEvent.Content, fx.persisted[1].Content)
}

func TestStreamChatImpl_Execute_AssistantFailurePersistsFailedMessage(t *testing.T) {
	fx := newStreamChatFixture(t, 5)
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, _ domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
			require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "partial"}))
			return assert.AnError
		},
	)

	err := fx.usecase.Execute(context.Background(), "hello", "test-model", (&streamEventRecorder{}).record)
	assert.ErrorIs(t, err, assert.AnError)

	require.Len(t, fx.persisted, 2)
	failedMsg := fx.persisted[1]
	assert.Equal(t, domain.ChatRole_Assistant, failedMsg.ChatRole)
	assert.Equal(t, domain.ChatMessageState_Failed, failedMsg.MessageState)
	assert.Equal(t, "partial", failedMsg.Content)
	require.NotNil(t, failedMsg.ErrorMessage)
	assert.Equal(t, assert.AnError.Error(), *failedMsg.ErrorMessage)
}

func TestStreamChatImpl_Execute_CancelMidStreamRetainsFlushedContent(t *testing.T) {
	fx := newStreamChatFixture(t, 5)
	conversation := testConversation()
	fx.expectPersistence()
	fx.expectNewConversation(conversation)
	fx.expectHistory(conversation.ID, nil)

	ctx, cancel := context.WithCancel(context.Background())
	fx.assistant.EXPECT().RunTurn(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(runCtx context.Context, _ domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
			require.NoError(t, onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{AssistantMessageID: uuid.New()}))
			require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "Hello, "}))
			require.NoError(t, onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: "world"}))
			cancel()
			return runCtx.Err()
		},
	)

	err := fx.usecase.Execute(ctx, "hello", "test-model", (&streamEventRecorder{}).record)
	assert.ErrorIs(t, err, context.Canceled)

	assistantMsgs := fx.persistedByRole(domain.ChatRole_Assistant)
	require.Len(t, assistantMsgs, 1)
	assert.Equal(t, "Hello, world", assistantMsgs[0].Content)
	assert.Equal(t, domain.ChatMessageState_Interrupted, assistantMsgs[0].MessageState)
	require.NotNil(t, assistantMsgs[0].ErrorMessage)
	assert.Equal(t, context.Canceled.Error(), *assistantMsgs[0].ErrorMessage)
}

func TestToolCycleTracker(t *testing.T) {
	t.Run("max-cycles", func(t *testing.T) {
		tracker := newToolCycleTracker(2, 5)
		assert.False(t, tracker.hasExceededMaxCycles())
		assert.False(t, tracker.hasExceededMaxCycles())
		assert.True(t, tracker.hasExceededMaxCycles())
	})

	t.Run("repeated-identical-calls", func(t *testing.T) {
		tracker := newToolCycleTracker(50, 3)
		assert.False(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":50}`))
		assert.False(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":50}`))
		assert.False(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":50}`))
		assert.True(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":50}`))
	})

	t.Run("changed-arguments-reset-the-streak", func(t *testing.T) {
		tracker := newToolCycleTracker(50, 2)
		assert.False(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":50}`))
		assert.False(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":50}`))
		assert.False(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":75}`))
		assert.False(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":75}`))
		assert.True(t, tracker.hasExceededMaxToolCalls("convert", `{"amount":75}`))
	})
}

func TestInitStreamChat_Initialize(t *testing.T) {
	registry := discoverTestRegistry(t)
	logger := log.New(io.Discard, "", 0)
	timeProvider := domain.NewMockCurrentTimeProvider(t)

	i := InitStreamChat{
		ChatMessageRepo:  domain.NewMockChatMessageRepository(t),
		ConversationRepo: domain.NewMockConversationRepository(t),
		Uow:              domain.NewMockUnitOfWork(t),
		TimeProvider:     timeProvider,
		Assistant:        domain.NewMockAssistant(t),
		Orchestrator: toolkit.NewOrchestrator(
			logger,
			registry,
			fakeVisibility{},
			toolkit.NewChunkRouter(logger),
			toolkit.NewCleanupScheduler(logger, registry),
			timeProvider,
		),
		Dashboard:     toolkit.NewStatusDashboard(logger, registry, fakeVisibility{}),
		MaxToolCycles: 50,
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	sc, err := depend.Resolve[StreamChat]()
	assert.NoError(t, err)
	assert.NotNil(t, sc)
}

package usecases

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

const (
	// Maximum number of chat history messages to include in the context
	MAX_CHAT_HISTORY_MESSAGES = 5

	// Maximum number of repeated tool call hits to prevent infinite loops
	MAX_REPEATED_TOOL_CALL_HIT = 5

	// Keep tool-calling deterministic to reduce malformed function arguments.
	CHAT_TEMPERATURE = 0.2
	CHAT_TOP_P       = 0.7
)

//go:embed prompts/chat.yml
var chatPrompt embed.FS

// StreamChatParams holds optional parameters for StreamChat execution.
type StreamChatParams struct {
	ConversationID *uuid.UUID
}

// StreamChatOption defines a functional option for configuring StreamChatParams.
type StreamChatOption func(*StreamChatParams)

func WithConversationID(conversationID uuid.UUID) StreamChatOption {
	return func(params *StreamChatParams) {
		params.ConversationID = &conversationID
	}
}

// StreamChat defines the interface for the StreamChat use case
type StreamChat interface {
	// Execute streams a chat response and persists the conversation
	Execute(ctx context.Context, userMessage, model string, onEvent domain.ChatStreamCallback, opts ...StreamChatOption) error
}

// StreamChatImpl is the implementation of the StreamChat use case
type StreamChatImpl struct {
	chatMessageRepo  domain.ChatMessageRepository
	conversationRepo domain.ConversationRepository
	uow              domain.UnitOfWork
	timeProvider     domain.CurrentTimeProvider
	assistant        domain.Assistant
	orchestrator     *toolkit.Orchestrator
	dashboard        *toolkit.StatusDashboard
	maxToolCycles    int
}

// NewStreamChatImpl creates a new instance of StreamChatImpl
func NewStreamChatImpl(
	chatMessageRepo domain.ChatMessageRepository,
	conversationRepo domain.ConversationRepository,
	timeProvider domain.CurrentTimeProvider,
	assistant domain.Assistant,
	orchestrator *toolkit.Orchestrator,
	dashboard *toolkit.StatusDashboard,
	uow domain.UnitOfWork,
	maxToolCycles int,
) StreamChatImpl {
	return StreamChatImpl{
		chatMessageRepo:  chatMessageRepo,
		conversationRepo: conversationRepo,
		uow:              uow,
		timeProvider:     timeProvider,
		assistant:        assistant,
		orchestrator:     orchestrator,
		dashboard:        dashboard,
		maxToolCycles:    maxToolCycles,
	}
}

// Execute streams a chat response and persists the conversation
func (sc StreamChatImpl) Execute(ctx context.Context, userMessage, model string, onEvent domain.ChatStreamCallback, opts ...StreamChatOption) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(userMessage) == "" {
		return domain.NewValidationErr("message cannot be empty")
	}

	if model == "" {
		return domain.NewValidationErr("model cannot be empty")
	}

	params := &StreamChatParams{}
	for _, opt := range opts {
		opt(params)
	}

	conversation, conversationCreated, err := sc.createOrRetrieveConversation(spanCtx, params, userMessage)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	messages, err := sc.fetchChatHistory(spanCtx, conversation.ID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	state := streamChatExecutionState{
		conversation:        conversation,
		conversationCreated: conversationCreated,
		turnID:              uuid.New(),
		tracker: newToolCycleTracker(
			sc.maxToolCycles,
			MAX_REPEATED_TOOL_CALL_HIT,
		),
	}

	now := sc.timeProvider.Now()
	state.userMsg = domain.ChatMessage{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		TurnID:         state.turnID,
		TurnSequence:   state.nextTurnSequence(),
		ChatRole:       domain.ChatRole_User,
		Content:        userMessage,
		Model:          model,
		MessageState:   domain.ChatMessageState_Completed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := sc.persistChatMessage(spanCtx, state.userMsg, state.conversation); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if err := onEvent(domain.ChatStreamEvent_UserMessage, domain.UserMessageEvent{
		MessageID:           state.userMsg.ID,
		ConversationID:      conversation.ID,
		ConversationCreated: conversationCreated,
		Content:             userMessage,
	}); err != nil {
		return err
	}

	turn := sc.orchestrator.BeginTurn(conversation.ID, model)
	defer sc.orchestrator.FinishTurn(spanCtx, turn)

	messages = append(messages, domain.AssistantMessage{
		Role:    domain.ChatRole_User,
		Content: userMessage,
	})
	messages = append(messages, sc.buildTurnContext(spanCtx, turn, conversation.ID)...)

	req := domain.AssistantTurnRequest{
		Model:          model,
		Messages:       messages,
		Stream:         true,
		Temperature:    common.Ptr(CHAT_TEMPERATURE),
		TopP:           common.Ptr(CHAT_TOP_P),
		AvailableTools: sc.orchestrator.AvailableTools(turn),
	}

	for continueChatStreaming := true; continueChatStreaming; {
		continueChatStreaming = false

		err = sc.assistant.RunTurn(spanCtx, req, func(eventType domain.AssistantEventType, data any) error {
			shouldContinue, eventErr := sc.handleStreamEvent(spanCtx, eventType, data, model, turn, &req, &state, onEvent)
			if shouldContinue {
				continueChatStreaming = true
			}
			return eventErr
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			if persistErr := sc.persistFailureMessages(spanCtx, err, model, &state); persistErr != nil {
				return persistErr
			}
			return err
		}
	}

	if state.assistantMsgID == uuid.Nil {
		state.assistantMsgID = uuid.New()
	}

	completedAt := sc.timeProvider.Now()
	assistantMsg := domain.ChatMessage{
		ID:               state.assistantMsgID,
		ConversationID:   state.conversation.ID,
		TurnID:           state.turnID,
		TurnSequence:     state.nextTurnSequence(),
		ChatRole:         domain.ChatRole_Assistant,
		Content:          state.assistantMsgContent.String(),
		Model:            model,
		MessageState:     domain.ChatMessageState_Completed,
		PromptTokens:     state.tokenUsage.PromptTokens,
		CompletionTokens: state.tokenUsage.CompletionTokens,
		TotalTokens:      state.tokenUsage.TotalTokens,
		CreatedAt:        completedAt,
		UpdatedAt:        completedAt,
	}

	// Append the final assistant message with the full content only if there is content
	if assistantMsg.Content == "" {
		assistantMsg.Content = "Sorry, I could not process your request. Please try again."
		if err := onEvent(domain.ChatStreamEvent_StreamChunk,
			domain.StreamChunkEvent{
				Text: assistantMsg.Content + "\n",
			},
		); err != nil {
			return err
		}
	}

	err = sc.persistChatMessage(spanCtx, assistantMsg, state.conversation)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	RecordLLMTokensUsed(spanCtx, state.tokenUsage.PromptTokens, state.tokenUsage.CompletionTokens)

	if err := onEvent(domain.ChatStreamEvent_AssistantComplete, domain.AssistantCompleteEvent{
		MessageID: assistantMsg.ID,
		Content:   assistantMsg.Content,
	}); err != nil {
		return err
	}

	return onEvent(domain.ChatStreamEvent_Complete, domain.CompleteEvent{
		AssistantMessageID: assistantMsg.ID,
		CompletedAt:        completedAt.Format(time.RFC3339),
		Usage:              state.tokenUsage,
	})
}

// createOrRetrieveConversation either creates a new conversation or
// retrieves an existing one based on the provided parameters.
func (sc StreamChatImpl) createOrRetrieveConversation(ctx context.Context, params *StreamChatParams, userMessage string) (domain.Conversation, bool, error) {
	var (
		conversation        domain.Conversation
		conversationCreated bool
	)

	if params.ConversationID == nil {
		title := domain.GenerateAutoConversationTitle(userMessage)
		newConversation, err := sc.conversationRepo.CreateConversation(ctx, title, domain.ConversationTitleSource_Auto)
		if err != nil {
			return domain.Conversation{}, false, err
		}
		conversation = newConversation
		conversationCreated = true
	} else {
		c, found, err := sc.conversationRepo.GetConversation(ctx, *params.ConversationID)
		if err != nil {
			return domain.Conversation{}, false, err
		}
		if !found {
			return domain.Conversation{}, false, domain.NewValidationErr("conversation not found")
		}
		conversation = c
	}
	return conversation, conversationCreated, nil
}

// buildTurnContext runs the auto tools and renders the status dashboard into
// ephemeral developer messages. They shape this turn's model call only and
// are never persisted.
func (sc StreamChatImpl) buildTurnContext(ctx context.Context, turn *toolkit.Turn, conversationID uuid.UUID) []domain.AssistantMessage {
	var turnContext []domain.AssistantMessage
	for _, result := range sc.orchestrator.RunAutoTools(ctx, turn) {
		if strings.TrimSpace(result.Content) == "" {
			continue
		}
		turnContext = append(turnContext, domain.AssistantMessage{
			Role:    domain.ChatRole_Developer,
			Content: result.Content,
		})
	}

	if dashboard := sc.dashboard.Render(ctx, conversationID); dashboard != "" {
		turnContext = append(turnContext, domain.AssistantMessage{
			Role:    domain.ChatRole_Developer,
			Content: dashboard,
		})
	}
	return turnContext
}

// streamChatExecutionState holds mutable state during a stream-chat execution.
type streamChatExecutionState struct {
	conversation        domain.Conversation
	conversationCreated bool
	assistantMsgContent strings.Builder
	assistantMsgID      uuid.UUID
	tokenUsage          domain.AssistantUsage
	turnID              uuid.UUID
	turnSequence        int64
	userMsg             domain.ChatMessage
	tracker             *toolCycleTracker
}

// nextTurnSequence returns the current sequence value and advances the counter.
func (s *streamChatExecutionState) nextTurnSequence() int64 {
	current := s.turnSequence
	s.turnSequence++
	return current
}

// handleStreamEvent routes one stream event to the corresponding specialized handler.
func (sc StreamChatImpl) handleStreamEvent(
	ctx context.Context,
	eventType domain.AssistantEventType,
	data any,
	model string,
	turn *toolkit.Turn,
	req *domain.AssistantTurnRequest,
	state *streamChatExecutionState,
	onEvent domain.ChatStreamCallback,
) (bool, error) {
	switch eventType {
	case domain.AssistantEventType_TurnStarted:
		return false, sc.handleTurnStartedEvent(data, model, state, onEvent)
	case domain.AssistantEventType_ToolRequested:
		return sc.handleToolCallEvent(ctx, data, model, turn, req, state, onEvent)
	case domain.AssistantEventType_MessageDelta:
		return false, sc.handleDeltaEvent(data, state, onEvent)
	case domain.AssistantEventType_TurnCompleted:
		sc.handleDoneEvent(data, state)
		return false, nil
	default:
		return false, nil
	}
}

// handleTurnStartedEvent captures the assistant message ID from the first
// stream and announces generation to the client.
func (sc StreamChatImpl) handleTurnStartedEvent(
	data any,
	model string,
	state *streamChatExecutionState,
	onEvent domain.ChatStreamCallback,
) error {
	if state.assistantMsgID != uuid.Nil {
		return nil
	}

	meta := data.(domain.AssistantTurnStarted)
	state.assistantMsgID = meta.AssistantMessageID
	if state.assistantMsgID == uuid.Nil {
		state.assistantMsgID = uuid.New()
	}
	return onEvent(domain.ChatStreamEvent_StreamStart, domain.StreamStartEvent{
		AssistantMessageID: state.assistantMsgID,
		Model:              model,
	})
}

// handleToolCallEvent persists assistant tool-call and tool-result messages,
// executes the tool through the orchestrator, then updates request context.
func (sc StreamChatImpl) handleToolCallEvent(
	ctx context.Context,
	data any,
	model string,
	turn *toolkit.Turn,
	req *domain.AssistantTurnRequest,
	state *streamChatExecutionState,
	onEvent domain.ChatStreamCallback,
) (bool, error) {
	toolCall := data.(domain.ToolCall)
	if state.tracker.hasExceededMaxCycles() || state.tracker.hasExceededMaxToolCalls(toolCall.Name, toolCall.Arguments) {
		return false, nil
	}

	toolCallMsg := domain.ChatMessage{
		ID:             uuid.New(),
		ConversationID: state.conversation.ID,
		TurnID:         state.turnID,
		TurnSequence:   state.nextTurnSequence(),
		ChatRole:       domain.ChatRole_Assistant,
		ToolCalls:      []domain.ToolCall{toolCall},
		Model:          model,
		MessageState:   domain.ChatMessageState_Completed,
		CreatedAt:      sc.timeProvider.Now(),
	}
	toolCallMsg.UpdatedAt = toolCallMsg.CreatedAt
	if err := sc.persistChatMessage(ctx, toolCallMsg, state.conversation); err != nil {
		return false, err
	}

	if err := onEvent(domain.ChatStreamEvent_ToolStarted, domain.ToolStartedEvent{
		CallID: toolCall.ID,
		Name:   toolCall.Name,
		Status: sc.orchestrator.StatusMessage(toolCall.Name),
	}); err != nil {
		return false, err
	}

	sink := &chatStreamSink{usecase: sc, state: state, model: model, onEvent: onEvent}
	toolMessage, err := sc.orchestrator.Execute(ctx, turn, toolCall, sink)
	if err != nil {
		return false, err
	}

	toolSucceeded := toolMessage.IsToolResultSuccess()
	now := sc.timeProvider.Now()
	toolResultMsg := domain.ChatMessage{
		ID:             uuid.New(),
		ConversationID: state.conversation.ID,
		TurnID:         state.turnID,
		TurnSequence:   state.nextTurnSequence(),
		ChatRole:       domain.ChatRole_Tool,
		ToolCallID:     &toolCall.ID,
		Content:        toolMessage.Content,
		Model:          model,
		MessageState:   domain.ChatMessageState_Completed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !toolSucceeded {
		toolResultMsg.MessageState = domain.ChatMessageState_Failed
		toolResultMsg.ErrorMessage = &toolMessage.Content
	}

	if err := sc.persistChatMessage(ctx, toolResultMsg, state.conversation); err != nil {
		return false, err
	}

	toolCompleted := domain.ToolCompleteEvent{
		CallID:  toolCall.ID,
		Name:    toolCall.Name,
		Success: toolSucceeded,
	}
	if !toolSucceeded {
		toolCompleted.Error = &toolMessage.Content
	}
	if err := onEvent(domain.ChatStreamEvent_ToolComplete, toolCompleted); err != nil {
		return false, err
	}
	RecordToolExecution(ctx, toolCall.Name, toolSucceeded)

	req.Messages = append(req.Messages,
		domain.AssistantMessage{
			Role:      domain.ChatRole_Assistant,
			ToolCalls: []domain.ToolCall{toolCall},
		},
		domain.AssistantMessage{
			Role:       toolMessage.Role,
			Content:    toolMessage.Content,
			ToolCallID: toolMessage.ToolCallID,
			ToolCalls:  toolMessage.ToolCalls,
		},
	)
	// One-time tools used this cycle must disappear from the offered set.
	req.AvailableTools = sc.orchestrator.AvailableTools(turn)

	return true, nil
}

// handleDeltaEvent appends assistant delta text and forwards the delta to the caller callback.
func (sc StreamChatImpl) handleDeltaEvent(
	data any,
	state *streamChatExecutionState,
	onEvent domain.ChatStreamCallback,
) error {
	delta := data.(domain.AssistantMessageDelta)
	state.assistantMsgContent.WriteString(delta.Text)
	return onEvent(domain.ChatStreamEvent_StreamChunk, domain.StreamChunkEvent{Text: delta.Text})
}

// handleDoneEvent accumulates usage from one stream completion event.
func (sc StreamChatImpl) handleDoneEvent(data any, state *streamChatExecutionState) {
	done := data.(domain.AssistantTurnCompleted)
	state.tokenUsage.CompletionTokens += done.Usage.CompletionTokens
	state.tokenUsage.PromptTokens += done.Usage.PromptTokens
	state.tokenUsage.TotalTokens += done.Usage.TotalTokens
}

// persistFailureMessages persists the assistant message produced by a failed
// stream, retaining any content that was already flushed to the client. When
// the failure came from a cancelled context (client disconnect) the message is
// marked interrupted and persistence runs detached from the cancellation.
func (sc StreamChatImpl) persistFailureMessages(
	ctx context.Context,
	streamErr error,
	model string,
	state *streamChatExecutionState,
) error {
	if state.assistantMsgID == uuid.Nil {
		state.assistantMsgID = uuid.New()
	}

	messageState := domain.ChatMessageState_Failed
	if ctx.Err() != nil {
		messageState = domain.ChatMessageState_Interrupted
	}

	failedAt := sc.timeProvider.Now()
	errorMessage := streamErr.Error()
	failedAssistantMsg := domain.ChatMessage{
		ID:               state.assistantMsgID,
		ConversationID:   state.conversation.ID,
		TurnID:           state.turnID,
		TurnSequence:     state.nextTurnSequence(),
		ChatRole:         domain.ChatRole_Assistant,
		Content:          state.assistantMsgContent.String(),
		Model:            model,
		MessageState:     messageState,
		ErrorMessage:     &errorMessage,
		PromptTokens:     state.tokenUsage.PromptTokens,
		CompletionTokens: state.tokenUsage.CompletionTokens,
		TotalTokens:      state.tokenUsage.TotalTokens,
		CreatedAt:        failedAt,
		UpdatedAt:        failedAt,
	}
	return sc.persistChatMessage(context.WithoutCancel(ctx), failedAssistantMsg, state.conversation)
}

// persistChatMessage persists a chat message and emits a corresponding domain event for outbox processing.
func (sc StreamChatImpl) persistChatMessage(ctx context.Context, message domain.ChatMessage, conversation domain.Conversation) error {
	return sc.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		if err := uow.ChatMessage().CreateChatMessages(ctx, []domain.ChatMessage{message}); err != nil {
			return err
		}

		if err := uow.Outbox().CreateChatEvent(ctx, domain.ChatMessageEvent{
			Type:           domain.EventType_CHAT_MESSAGE_SENT,
			ChatRole:       message.ChatRole,
			ChatMessageID:  message.ID,
			ConversationID: message.ConversationID,
			CreatedAt:      message.CreatedAt,
		}); err != nil {
			return err
		}

		lastMessageAt := message.CreatedAt
		if conversation.LastMessageAt == nil || message.CreatedAt.After(*conversation.LastMessageAt) {
			conversation.LastMessageAt = &lastMessageAt
		}
		if message.CreatedAt.After(conversation.UpdatedAt) {
			conversation.UpdatedAt = message.CreatedAt
		}
		if err := uow.Conversation().UpdateConversation(ctx, conversation); err != nil {
			return err
		}

		return nil
	})
}

// buildSystemPrompt creates the base chat prompt with the current date injected.
func (sc StreamChatImpl) buildSystemPrompt() ([]domain.AssistantMessage, error) {
	file, err := chatPrompt.Open("prompts/chat.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open chat prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.AssistantMessage{}
	err = yaml.NewDecoder(file).Decode(&messages)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chat prompt: %w", err)
	}
	for i, msg := range messages {
		if msg.Role == domain.ChatRole_Developer || msg.Role == domain.ChatRole_System {
			now := sc.timeProvider.Now()
			messages[i].Content = fmt.Sprintf(
				msg.Content,
				now.Format(time.DateOnly),
			)
		}
	}
	return messages, nil
}

// fetchChatHistory retrieves the prior conversation as assistant messages,
// prefixed with the base system prompt.
func (sc StreamChatImpl) fetchChatHistory(ctx context.Context, conversationID uuid.UUID) ([]domain.AssistantMessage, error) {
	systemPrompt, err := sc.buildSystemPrompt()
	if err != nil {
		return nil, err
	}

	// Load prior conversation to preserve context, hidden tool context included.
	history, err := sc.chatMessageRepo.ListRecentTurnMessages(ctx, conversationID, MAX_CHAT_HISTORY_MESSAGES)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.AssistantMessage, 0, len(systemPrompt)+len(history)+1)
	messages = append(messages, systemPrompt...)

	// If the first message in history is a tool message its call context is
	// gone; drop the orphan.
	if len(history) > 0 {
		if history[0].ChatRole == domain.ChatRole_Tool {
			history = history[1:]
		}
	}

	for _, msg := range history {
		messages = append(messages, domain.AssistantMessage{
			Role:       msg.ChatRole,
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
			ToolCalls:  msg.ToolCalls,
		})
	}
	return messages, nil
}

// chatStreamSink routes a streaming tool's chunks to the client and persists
// system and hidden context messages as they complete.
type chatStreamSink struct {
	usecase            StreamChatImpl
	state              *streamChatExecutionState
	model              string
	onEvent            domain.ChatStreamCallback
	currentSystemMsgID uuid.UUID
}

func (s *chatStreamSink) AssistantDelta(ctx context.Context, text string) error {
	s.state.assistantMsgContent.WriteString(text)
	return s.onEvent(domain.ChatStreamEvent_StreamChunk, domain.StreamChunkEvent{Text: text})
}

func (s *chatStreamSink) SystemMessageStart(ctx context.Context) error {
	s.currentSystemMsgID = uuid.New()
	return s.onEvent(domain.ChatStreamEvent_SystemMessageStart, domain.SystemMessageStartEvent{
		MessageID: s.currentSystemMsgID,
	})
}

func (s *chatStreamSink) SystemDelta(ctx context.Context, text string) error {
	return s.onEvent(domain.ChatStreamEvent_SystemChunk, domain.SystemChunkEvent{
		MessageID: s.currentSystemMsgID,
		Text:      text,
	})
}

func (s *chatStreamSink) SystemMessageComplete(ctx context.Context, content string) error {
	now := s.usecase.timeProvider.Now()
	systemMsg := domain.ChatMessage{
		ID:             s.currentSystemMsgID,
		ConversationID: s.state.conversation.ID,
		TurnID:         s.state.turnID,
		TurnSequence:   s.state.nextTurnSequence(),
		ChatRole:       domain.ChatRole_System,
		Content:        content,
		Model:          s.model,
		MessageState:   domain.ChatMessageState_Completed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.usecase.persistChatMessage(ctx, systemMsg, s.state.conversation); err != nil {
		return err
	}
	return s.onEvent(domain.ChatStreamEvent_SystemComplete, domain.SystemCompleteEvent{
		MessageID: systemMsg.ID,
		Content:   content,
	})
}

func (s *chatStreamSink) ContextComplete(ctx context.Context, content string) error {
	now := s.usecase.timeProvider.Now()
	contextMsg := domain.ChatMessage{
		ID:             uuid.New(),
		ConversationID: s.state.conversation.ID,
		TurnID:         s.state.turnID,
		TurnSequence:   s.state.nextTurnSequence(),
		ChatRole:       domain.ChatRole_Developer,
		Content:        content,
		Model:          s.model,
		Hidden:         true,
		MessageState:   domain.ChatMessageState_Completed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return s.usecase.persistChatMessage(ctx, contextMsg, s.state.conversation)
}

// toolCycleTracker helps track repeated tool calls to prevent infinite loops
type toolCycleTracker struct {
	maxToolCycles          int
	maxRepeatedToolCallHit int
	toolCycles             int
	lastToolCallSignature  string
	repeatToolCallCount    int
}

// newToolCycleTracker creates a new toolCycleTracker
func newToolCycleTracker(maxToolCycles, maxRepeatedToolCallHit int) *toolCycleTracker {
	return &toolCycleTracker{
		maxToolCycles:          maxToolCycles,
		maxRepeatedToolCallHit: maxRepeatedToolCallHit,
	}
}

// hasExceededMaxCycles checks if the maximum number of tool cycles has been exceeded
func (t *toolCycleTracker) hasExceededMaxCycles() bool {
	t.toolCycles++
	return t.toolCycles > t.maxToolCycles
}

// hasExceededMaxToolCalls checks if the same tool call has been repeated too many times
func (t *toolCycleTracker) hasExceededMaxToolCalls(functionName, arguments string) bool {
	signature := functionName + ":" + arguments
	if signature == t.lastToolCallSignature {
		t.repeatToolCallCount++
		return t.repeatToolCallCount >= t.maxRepeatedToolCallHit
	}
	t.lastToolCallSignature = signature
	t.repeatToolCallCount = 0
	return false
}

// InitStreamChat is the initializer for the StreamChat use case
type InitStreamChat struct {
	ChatMessageRepo  domain.ChatMessageRepository  `resolve:""`
	ConversationRepo domain.ConversationRepository `resolve:""`
	Uow              domain.UnitOfWork             `resolve:""`
	TimeProvider     domain.CurrentTimeProvider    `resolve:""`
	Assistant        domain.Assistant              `resolve:""`
	Orchestrator     *toolkit.Orchestrator         `resolve:""`
	Dashboard        *toolkit.StatusDashboard      `resolve:""`
	// Maximum number of tool cycles to prevent infinite loops
	// It restricts how many times the Assistant can invoke tools in a single chat session
	MaxToolCycles int `config:"ASSISTANT_MAX_TOOL_CYCLES" default:"50"`
}

// Initialize registers the StreamChat use case in the dependency container
func (i InitStreamChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StreamChat](NewStreamChatImpl(
		i.ChatMessageRepo,
		i.ConversationRepo,
		i.TimeProvider,
		i.Assistant,
		i.Orchestrator,
		i.Dashboard,
		i.Uow,
		i.MaxToolCycles,
	))
	return ctx, nil
}

package domain

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// AssistantEventType represents the type of event in an assistant stream.
type AssistantEventType string

const (
	AssistantEventType_TurnStarted   AssistantEventType = "turn_started"
	AssistantEventType_MessageDelta  AssistantEventType = "message_delta"
	AssistantEventType_ToolRequested AssistantEventType = "tool_requested"
	AssistantEventType_TurnCompleted AssistantEventType = "turn_completed"
)

// AssistantUsage contains token usage for one assistant turn.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// AssistantTurnStarted contains metadata for a streaming assistant session.
type AssistantTurnStarted struct {
	ConversationID      uuid.UUID `json:"conversation_id"`
	UserMessageID       uuid.UUID `json:"user_message_id"`
	AssistantMessageID  uuid.UUID `json:"assistant_message_id"`
	ConversationCreated bool      `json:"conversation_created"`
}

// AssistantMessageDelta contains a text delta from the stream.
type AssistantMessageDelta struct {
	Text string `json:"text"`
}

// AssistantTurnCompleted contains completion metadata and usage.
type AssistantTurnCompleted struct {
	Usage              AssistantUsage `json:"usage"`
	AssistantMessageID string         `json:"assistant_message_id"`
	CompletedAt        string         `json:"completed_at"`
}

// AssistantEventCallback is called for each assistant turn event.
type AssistantEventCallback func(eventType AssistantEventType, data any) error

// AssistantMessage represents a message exchanged during assistant turns.
type AssistantMessage struct {
	Role       ChatRole
	Content    string
	ToolCallID *string
	ToolCalls  []ToolCall
}

// IsToolResultSuccess returns true when this message is a successful tool result.
func (m AssistantMessage) IsToolResultSuccess() bool {
	return m.Role == ChatRole_Tool &&
		m.ToolCallID != nil &&
		!strings.Contains(m.Content, "error")
}

// AssistantTurnRequest is the domain request for one assistant turn.
type AssistantTurnRequest struct {
	Model    string
	Messages []AssistantMessage
	Stream   bool
	// Optional generation settings.
	Temperature      *float64
	TopP             *float64
	MaxTokens        *int
	FrequencyPenalty *float64
	AvailableTools   []ToolSchema
}

// AssistantTurnResponse contains the final assistant message and usage for non-stream mode.
type AssistantTurnResponse struct {
	Content string
	Usage   AssistantUsage
}

// Assistant defines assistant interaction in domain terms.
type Assistant interface {
	// RunTurn streams one assistant turn. Requested tool calls are reported
	// through the callback; the caller decides whether and how to execute them.
	RunTurn(ctx context.Context, req AssistantTurnRequest, onEvent AssistantEventCallback) error

	// RunTurnSync executes one assistant turn and returns the final response.
	RunTurnSync(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResponse, error)
}

// AssistantModelInfo describes a model that can be used for assistant turns.
type AssistantModelInfo struct {
	Name string
	// SupportsStreaming indicates the model can emit incremental deltas.
	SupportsStreaming bool
	// SupportsTools indicates the model can request tool calls.
	SupportsTools bool
}

// AssistantModelCatalog exposes available assistant-capable models.
type AssistantModelCatalog interface {
	ListAssistantModels(ctx context.Context) ([]AssistantModelInfo, error)
}

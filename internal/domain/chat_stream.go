package domain

import "github.com/google/uuid"

// ChatStreamEventType is the wire-level event name of one streaming chat
// event. Consumers must ignore unknown event types.
type ChatStreamEventType string

const (
	ChatStreamEvent_UserMessage        ChatStreamEventType = "user_message"
	ChatStreamEvent_StreamStart        ChatStreamEventType = "stream_start"
	ChatStreamEvent_StreamChunk        ChatStreamEventType = "stream_chunk"
	ChatStreamEvent_AssistantComplete  ChatStreamEventType = "assistant_complete"
	ChatStreamEvent_SystemMessageStart ChatStreamEventType = "system_message_start"
	ChatStreamEvent_SystemChunk        ChatStreamEventType = "system_chunk"
	ChatStreamEvent_SystemComplete     ChatStreamEventType = "system_complete"
	ChatStreamEvent_ToolStarted        ChatStreamEventType = "tool_started"
	ChatStreamEvent_ToolComplete       ChatStreamEventType = "tool_complete"
	ChatStreamEvent_Complete           ChatStreamEventType = "complete"
	ChatStreamEvent_Error              ChatStreamEventType = "error"
)

// ChatStreamCallback receives streaming chat events in emission order.
type ChatStreamCallback func(eventType ChatStreamEventType, data any) error

// UserMessageEvent is emitted once the user message is persisted.
type UserMessageEvent struct {
	MessageID           uuid.UUID `json:"message_id"`
	ConversationID      uuid.UUID `json:"conversation_id"`
	ConversationCreated bool      `json:"conversation_created"`
	Content             string    `json:"content"`
}

// StreamStartEvent is emitted when assistant generation begins.
type StreamStartEvent struct {
	AssistantMessageID uuid.UUID `json:"assistant_message_id"`
	Model              string    `json:"model"`
}

// StreamChunkEvent carries one assistant content increment.
type StreamChunkEvent struct {
	Text string `json:"text"`
}

// AssistantCompleteEvent carries the final persisted assistant message.
type AssistantCompleteEvent struct {
	MessageID uuid.UUID `json:"message_id"`
	Content   string    `json:"content"`
}

// SystemMessageStartEvent announces a standalone system message.
type SystemMessageStartEvent struct {
	MessageID uuid.UUID `json:"message_id"`
}

// SystemChunkEvent carries one system content increment.
type SystemChunkEvent struct {
	MessageID uuid.UUID `json:"message_id"`
	Text      string    `json:"text"`
}

// SystemCompleteEvent closes a standalone system message.
type SystemCompleteEvent struct {
	MessageID uuid.UUID `json:"message_id"`
	Content   string    `json:"content"`
}

// ToolStartedEvent reports one tool invocation beginning, with its friendly
// status line.
type ToolStartedEvent struct {
	CallID string `json:"call_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ToolCompleteEvent reports one tool invocation finishing.
type ToolCompleteEvent struct {
	CallID  string  `json:"call_id"`
	Name    string  `json:"name"`
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

// CompleteEvent closes the turn.
type CompleteEvent struct {
	AssistantMessageID uuid.UUID      `json:"assistant_message_id"`
	CompletedAt        string         `json:"completed_at"`
	Usage              AssistantUsage `json:"usage"`
}

// ErrorEvent reports a fatal turn failure to the client.
type ErrorEvent struct {
	Message string `json:"message"`
}

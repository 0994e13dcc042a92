package domain

import (
	"context"

	"github.com/google/uuid"
)

// ToolSchema is the OpenAI-compatible function schema of a tool.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// ToolDefinition describes a tool declared by a plugin unit.
type ToolDefinition struct {
	Schema    ToolSchema
	AutoTool  bool
	OneTime   bool
	UIFeature *UIFeature
}

// Tool is the base contract every plugin tool implements. Optional
// capabilities (Callable, Streamer, Conditional, StatusReporter,
// CleanupHook, UIProvider) are discovered by type assertion.
type Tool interface {
	// Definition returns the tool definition.
	Definition() ToolDefinition
	// StatusMessage returns a user-friendly status line shown while the tool runs.
	StatusMessage() string
}

// Callable is a tool that executes a call and returns a single result value.
type Callable interface {
	Tool
	Call(ctx context.Context, call ToolCall, meta ToolMetadata) (string, error)
}

// Streamer is a tool that produces a live stream of response chunks.
type Streamer interface {
	Tool
	Stream(ctx context.Context, call ToolCall, meta ToolMetadata) (*ChunkStream, error)
}

// Conditional is a tool whose runtime visibility depends on a predicate.
type Conditional interface {
	Tool
	Condition(ctx context.Context) (bool, error)
}

// StatusReporter is a tool that contributes a line to the status dashboard
// injected into model context before each generation cycle.
type StatusReporter interface {
	Tool
	ReportStatus(ctx context.Context, conversationID uuid.UUID) (string, error)
}

// CleanupHook is a tool with an end-of-response cleanup function.
type CleanupHook interface {
	Tool
	Cleanup(ctx context.Context) error
}

// UIProvider is a tool exposing named UI handlers invocable from rendered
// tool UI.
type UIProvider interface {
	Tool
	UIHandlers() map[string]UIHandler
}

// Plugin is the loader contract for one plugin unit. Units that fail to list
// their tools are skipped during discovery; they never abort it.
type Plugin interface {
	// Unit returns the unit name used as the tool ID prefix.
	Unit() string
	// Tools returns the tool definitions declared by this unit.
	Tools() ([]Tool, error)
}

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolMetadata is passed to tool callables for one execution. It is built by
// the orchestrator and never persisted.
type ToolMetadata struct {
	ConversationID uuid.UUID
	Timestamp      string
	Model          string
	ToolCallCount  int
}

// ToolRegistry is the read/toggle surface of tool discovery.
type ToolRegistry interface {
	// Get returns the tool registered under the given ID.
	Get(id string) (RegisteredTool, bool)
	// List returns all registered tools in registration order.
	List() []RegisteredTool
	// SetEnabled enables or disables one tool. Returns false when unknown.
	SetEnabled(ctx context.Context, id string, enabled bool) (bool, error)
	// SetUnitEnabled enables or disables every tool of one unit.
	SetUnitEnabled(ctx context.Context, unit string, enabled bool) (bool, error)
	// GroupByUnit returns per-unit aggregates in registration order.
	GroupByUnit() []ToolUnit
}

// RegisteredTool is a tool plus the registry-assigned identity and state.
type RegisteredTool struct {
	ID      string
	Unit    string
	Enabled bool
	Tool    Tool
}

// ToolUnit aggregates the tools of one defining unit.
type ToolUnit struct {
	Name         string
	Tools        []RegisteredTool
	EnabledCount int
	TotalCount   int
	AllEnabled   bool
	AnyEnabled   bool
}

// ConditionState is the cached visibility of a conditional tool.
type ConditionState string

const (
	ConditionState_Unknown ConditionState = "unknown"
	ConditionState_Visible ConditionState = "visible"
	ConditionState_Hidden  ConditionState = "hidden"
)

// VisibilityReader provides point-in-time visibility snapshots maintained by
// the condition evaluator. Tools without a condition are always visible.
type VisibilityReader interface {
	// Visible reports whether the tool with the given ID is currently visible.
	Visible(id string) bool
	// State returns the raw cached condition state for the given tool ID.
	State(id string) ConditionState
}

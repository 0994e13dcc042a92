package plugins

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// GuidancePlugin declares the guidance unit: a one-time streaming tool the
// model calls to pin a directive into hidden context for the rest of the
// conversation.
type GuidancePlugin struct{}

// NewGuidancePlugin creates the guidance plugin.
func NewGuidancePlugin() GuidancePlugin {
	return GuidancePlugin{}
}

// Unit returns the unit name used as the tool ID prefix.
func (p GuidancePlugin) Unit() string { return "guidance" }

// Tools returns the tool definitions declared by this unit.
func (p GuidancePlugin) Tools() ([]domain.Tool, error) {
	return []domain.Tool{guideTool{}}, nil
}

type guideTool struct{}

type guideArgs struct {
	Directive string `json:"directive" jsonschema:"title=Directive,description=The instruction to keep following for the rest of the conversation.,required"`
	Notify    bool   `json:"notify,omitempty" jsonschema:"title=Notify,description=Whether to show the user a short system notice that guidance was recorded."`
}

// StatusMessage returns a status message about the tool execution.
func (t guideTool) StatusMessage() string {
	return "🧭 Recording guidance..."
}

// Definition returns the tool definition for guideTool.
func (t guideTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Schema: domain.ToolSchema{
			Name:        "guide",
			Description: "Record a persistent directive to follow for the rest of the conversation. Usable once per response.",
			Parameters:  toolkit.ParameterSchemaFor(&guideArgs{}),
		},
		OneTime: true,
	}
}

// Stream executes guideTool, emitting the directive as hidden context and an
// optional user-visible notice.
func (t guideTool) Stream(_ context.Context, call domain.ToolCall, _ domain.ToolMetadata) (*domain.ChunkStream, error) {
	var args guideArgs
	if err := toolkit.UnmarshalToolInput(call.Arguments, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	directive := strings.TrimSpace(args.Directive)
	if directive == "" {
		return nil, fmt.Errorf("directive cannot be empty")
	}

	stream := domain.NewChunkStream(2)
	go func() {
		defer stream.Finish()
		_ = stream.Emit(context.Background(), domain.ContextChunk("GUIDANCE: "+directive))
		if args.Notify {
			_ = stream.Emit(context.Background(), domain.SystemChunk("Guidance recorded."))
		}
	}()
	return stream, nil
}

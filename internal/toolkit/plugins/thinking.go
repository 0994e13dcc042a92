package plugins

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// ThinkingScratchpadKey holds within-turn reasoning notes. The cleanup hook
// clears it at the end of every response that used the tool.
const ThinkingScratchpadKey = "thinking.scratchpad"

// ThinkingPlugin declares the thinking unit: a scratchpad the model streams
// hidden reasoning into.
type ThinkingPlugin struct {
	kv domain.KVStore
}

// NewThinkingPlugin creates the thinking plugin.
func NewThinkingPlugin(kv domain.KVStore) ThinkingPlugin {
	return ThinkingPlugin{kv: kv}
}

// Unit returns the unit name used as the tool ID prefix.
func (p ThinkingPlugin) Unit() string { return "thinking" }

// Tools returns the tool definitions declared by this unit.
func (p ThinkingPlugin) Tools() ([]domain.Tool, error) {
	return []domain.Tool{thinkTool{kv: p.kv}}, nil
}

type thinkTool struct {
	kv domain.KVStore
}

type thinkArgs struct {
	Thoughts string `json:"thoughts" jsonschema:"title=Thoughts,description=Working notes to keep in hidden context while composing the response.,required"`
}

// StatusMessage returns a status message about the tool execution.
func (t thinkTool) StatusMessage() string {
	return "💭 Thinking..."
}

// Definition returns the tool definition for thinkTool.
func (t thinkTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Schema: domain.ToolSchema{
			Name:        "think",
			Description: "Write working notes into hidden context. The user never sees them; they stay available to you for the rest of the conversation.",
			Parameters:  toolkit.ParameterSchemaFor(&thinkArgs{}),
		},
	}
}

// Stream executes thinkTool, appending the notes to the scratchpad and
// emitting them as hidden context.
func (t thinkTool) Stream(ctx context.Context, call domain.ToolCall, _ domain.ToolMetadata) (*domain.ChunkStream, error) {
	var args thinkArgs
	if err := toolkit.UnmarshalToolInput(call.Arguments, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	thoughts := strings.TrimSpace(args.Thoughts)
	if thoughts == "" {
		return nil, fmt.Errorf("thoughts cannot be empty")
	}
	if _, err := t.kv.ListAppend(ctx, ThinkingScratchpadKey, thoughts); err != nil {
		return nil, err
	}

	stream := domain.NewChunkStream(1)
	go func() {
		defer stream.Finish()
		_ = stream.Emit(context.Background(), domain.ContextChunk("THINKING: "+thoughts))
	}()
	return stream, nil
}

// Cleanup clears the scratchpad once the response finishes.
func (t thinkTool) Cleanup(ctx context.Context) error {
	_, err := t.kv.Delete(ctx, ThinkingScratchpadKey)
	return err
}

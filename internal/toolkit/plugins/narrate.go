package plugins

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// NarratePlugin declares the narrate unit: a streaming tool that writes
// scene narration directly into the visible assistant message, with an
// optional system notice announcing the scene change.
type NarratePlugin struct{}

// NewNarratePlugin creates the narrate plugin.
func NewNarratePlugin() NarratePlugin {
	return NarratePlugin{}
}

// Unit returns the unit name used as the tool ID prefix.
func (p NarratePlugin) Unit() string { return "narrate" }

// Tools returns the tool definitions declared by this unit.
func (p NarratePlugin) Tools() ([]domain.Tool, error) {
	return []domain.Tool{narrateTool{}}, nil
}

type narrateTool struct{}

type narrateArgs struct {
	Narration   string `json:"narration" jsonschema:"title=Narration,description=The narration text to stream into the assistant message.,required"`
	SceneChange string `json:"scene_change,omitempty" jsonschema:"title=Scene change,description=Optional short notice shown to the user as a separate system message before the narration."`
}

// StatusMessage returns a status message about the tool execution.
func (t narrateTool) StatusMessage() string {
	return "🎬 Narrating..."
}

// Definition returns the tool definition for narrateTool.
func (t narrateTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Schema: domain.ToolSchema{
			Name:        "narrate",
			Description: "Stream narration into the assistant response, sentence by sentence. Use scene_change to announce a new scene.",
			Parameters:  toolkit.ParameterSchemaFor(&narrateArgs{}),
		},
	}
}

// Stream executes narrateTool.
func (t narrateTool) Stream(_ context.Context, call domain.ToolCall, _ domain.ToolMetadata) (*domain.ChunkStream, error) {
	var args narrateArgs
	if err := toolkit.UnmarshalToolInput(call.Arguments, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	narration := strings.TrimSpace(args.Narration)
	if narration == "" {
		return nil, fmt.Errorf("narration cannot be empty")
	}

	stream := domain.NewChunkStream(4)
	go func() {
		defer stream.Finish()
		ctx := context.Background()
		if notice := strings.TrimSpace(args.SceneChange); notice != "" {
			if stream.Emit(ctx, domain.SystemChunk("— "+notice+" —")) != nil {
				return
			}
		}
		for _, sentence := range splitSentences(narration) {
			if stream.Emit(ctx, domain.AssistantChunk(sentence)) != nil {
				return
			}
		}
	}()
	return stream, nil
}

// splitSentences cuts text at sentence boundaries, keeping terminators and
// trailing whitespace with the preceding sentence.
func splitSentences(text string) []string {
	var (
		sentences []string
		start     int
	)
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			end := i + 1
			for end < len(runes) && runes[end] == ' ' {
				end++
			}
			sentences = append(sentences, string(runes[start:end]))
			start = end
			i = end - 1
		}
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}
